package hexdump

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpValue(t *testing.T) {
	value := [4]byte{0x2A, 0x00, 0x00, 0x00}
	expected := "00000000:  2A 00 00 00                                       |*...            |\n"
	require.Equal(t, expected, DumpValue(&value))
}

func TestDumpValueArray(t *testing.T) {
	value := [16]byte{}
	copy(value[:], "hexdump")
	expected := "00000000:  68 65 78 64 75 6D 70 00  00 00 00 00 00 00 00 00  |hexdump.........|\n"
	require.Equal(t, expected, DumpValue(&value))
}
