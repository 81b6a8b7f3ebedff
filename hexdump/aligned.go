package hexdump

import (
	"fmt"
	"strings"
)

// FormatAligned renders data like Format but aligns lines to absolute 16 byte
// boundaries.  When offset is not a multiple of 16 the first line starts with
// blank hex slots up to the offset's position within its 16 byte row, and the
// ASCII column is space padded to a constant 16 characters.  Line labels show
// the address of the first byte actually present on the line.
func FormatAligned(data []byte, offset uint64) string {
	var output strings.Builder
	addr := offset
	limit := offset + uint64(len(data))
	for addr < limit {
		skip := int(addr % lineSize)
		end := addr + uint64(lineSize-skip)
		if end > limit {
			end = limit
		}
		skep := lineSize - 1 - int((end-1)%lineSize)
		line := data[addr-offset : end-offset]

		output.WriteString(fmt.Sprintf("%08X: ", addr))
		lead := 1 + 3*skip
		if skip > 8 {
			lead++
		}
		output.WriteString(strings.Repeat(" ", lead))
		for i, b := range line {
			if skip+i == 8 {
				output.WriteString(" ")
			}
			output.WriteString(fmt.Sprintf("%02X ", b))
		}
		trail := 1 + 3*skep
		if skep >= 8 {
			trail++
		}
		output.WriteString(strings.Repeat(" ", trail))

		output.WriteString("|")
		output.WriteString(strings.Repeat(" ", skip))
		for _, b := range line {
			if printable(b) {
				output.WriteByte(b)
			} else {
				output.WriteByte('.')
			}
		}
		output.WriteString(strings.Repeat(" ", skep))
		output.WriteString("|\n")

		addr = end
	}
	return output.String()
}
