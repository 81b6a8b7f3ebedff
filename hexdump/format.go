package hexdump

import (
	"fmt"
	"strings"
)

const lineSize = 16

// printable reports whether b renders literally in the ASCII column.
func printable(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}

// Format renders data as a hex dump, 16 bytes per line.  Each line shows the
// absolute offset of its first byte as uppercase hex padded to at least 8
// digits, two groups of eight hex byte values, and the ASCII rendering of the
// same bytes with '.' substituted for anything outside the printable range.
// offset is the position of data[0] in the original source; it affects only
// the line labels.  Empty input produces an empty string.
func Format(data []byte, offset uint64) string {
	var output strings.Builder
	for i := 0; i < len(data); i += lineSize {
		end := i + lineSize
		if end > len(data) {
			end = len(data)
		}
		line := data[i:end]

		output.WriteString(fmt.Sprintf("%08X:  ", offset+uint64(i)))
		for j := 0; j < lineSize; j++ {
			if j < len(line) {
				output.WriteString(fmt.Sprintf("%02X ", line[j]))
			} else {
				output.WriteString("   ")
			}
			if j == 7 {
				output.WriteString(" ")
			}
		}
		output.WriteString(" |")
		for _, b := range line {
			if printable(b) {
				output.WriteByte(b)
			} else {
				output.WriteByte('.')
			}
		}
		output.WriteString("|\n")
	}
	return output.String()
}
