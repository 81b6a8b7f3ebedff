package hexdump

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadAll selects the entire remainder of the source after the skip.
const ReadAll = int64(-1)

// ParseCount parses a decimal unsigned byte count as used by the --skip and
// --length options.  Hex, octal, signs and size suffixes are rejected.
func ParseCount(param string) (uint64, error) {
	count, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte count: '%s'", param)
	}
	return count, nil
}

// ReadWindow discards skip bytes from r, then reads at most length bytes.
// A length of ReadAll reads everything remaining.  A source shorter than
// skip yields an empty window, not an error.
func ReadWindow(r io.Reader, skip uint64, length int64) ([]byte, error) {
	remaining := skip
	for remaining > 0 {
		chunk := remaining
		if chunk > 1<<30 {
			chunk = 1 << 30
		}
		_, err := io.CopyN(io.Discard, r, int64(chunk))
		if err == io.EOF {
			return []byte{}, nil
		}
		if err != nil {
			return nil, err
		}
		remaining -= chunk
	}
	if length == ReadAll {
		return io.ReadAll(r)
	}
	return io.ReadAll(io.LimitReader(r, length))
}

// ReadFileWindow opens path and reads its skip/length window.
func ReadFileWindow(path string, skip uint64, length int64) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %v", path, err)
	}
	defer file.Close()
	data, err := ReadWindow(file, skip, length)
	if err != nil {
		return nil, fmt.Errorf("failed reading %s: %v", path, err)
	}
	return data, nil
}
