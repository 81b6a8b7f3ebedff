package hexdump

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var sample = []byte{
	0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
	0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
}

func TestFormatEmpty(t *testing.T) {
	require.Equal(t, "", Format(nil, 0))
	require.Equal(t, "", Format([]byte{}, 0))
	require.Equal(t, "", Format([]byte{}, 0xDEADBEEF))
}

func TestFormatFullLine(t *testing.T) {
	expected := "00000020:  00 11 22 33 44 55 66 77  88 99 AA BB CC DD EE FF  |..\"3DUfw........|\n"
	require.Equal(t, expected, Format(sample, 32))
}

func TestFormatPartialLine(t *testing.T) {
	expected := "00000000:  68 65 78 64 75 6D 70 00                           |hexdump.|\n"
	require.Equal(t, expected, Format([]byte("hexdump\x00"), 0))
}

func TestFormatPrintableBand(t *testing.T) {
	expected := "00000000:  1F 20 7E 7F                                       |. ~.|\n"
	require.Equal(t, expected, Format([]byte{0x1F, 0x20, 0x7E, 0x7F}, 0))
}

func TestFormatOffsetProgression(t *testing.T) {
	data := make([]byte, 16*3+5)
	text := Format(data, 4096)
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "00001000:  "))
	require.True(t, strings.HasPrefix(lines[1], "00001010:  "))
	require.True(t, strings.HasPrefix(lines[2], "00001020:  "))
	require.True(t, strings.HasPrefix(lines[3], "00001030:  "))

	// hex field width is constant even on the short final line
	for _, line := range lines {
		require.Equal(t, strings.Index(lines[0], "|"), strings.Index(line, "|"))
	}

	text = Format(make([]byte, 32), 0)
	require.Equal(t, 2, strings.Count(text, "\n"))
}

func TestFormatOffsetShiftOnly(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	a := strings.Split(Format(data, 0), "\n")
	b := strings.Split(Format(data, 16), "\n")
	require.Equal(t, len(a), len(b))
	for i := range a {
		if a[i] == "" {
			continue
		}
		require.Equal(t, a[i][8:], b[i][8:])
		aOffset, err := strconv.ParseUint(a[i][:8], 16, 64)
		require.Nil(t, err)
		bOffset, err := strconv.ParseUint(b[i][:8], 16, 64)
		require.Nil(t, err)
		require.Equal(t, aOffset+16, bOffset)
	}
}

func TestFormatWideOffset(t *testing.T) {
	text := Format([]byte{0x41}, 1<<32)
	require.True(t, strings.HasPrefix(text, "100000000:  41 "))
	require.True(t, strings.HasSuffix(text, "|A|\n"))
}
