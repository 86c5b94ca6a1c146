package eltetrado

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/edsrzf/mmap-go"
)

// ErrResource marks a failure to load or decompress the input. It is
// fatal and carries its cause.
var ErrResource = errors.New("cannot load input")

// openInput loads the whole file into one in-memory buffer. Files ending
// in ".gz" are inflated into memory; anything else is memory-mapped
// read-only. The returned cleanup releases the mapping and must be called
// on every exit path once the buffer is no longer needed.
func openInput(fileName string) ([]byte, func() error, error) {
	noop := func() error { return nil }

	f, err := os.Open(fileName)
	if err != nil {
		return nil, noop, fmt.Errorf("%w: %w", ErrResource, err)
	}

	if path.Ext(fileName) == ".gz" {
		defer f.Close()
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %s: %w", ErrResource, fileName, err)
		}
		buf, err := io.ReadAll(gz)
		if cerr := gz.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %s: %w", ErrResource, fileName, err)
		}
		return buf, noop, nil
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, noop, fmt.Errorf("%w: %s: %w", ErrResource, fileName, err)
	}
	if fi.Size() == 0 {
		f.Close()
		return nil, noop, nil
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, noop, fmt.Errorf("%w: %s: %w", ErrResource, fileName, err)
	}
	cleanup := func() error {
		uerr := mm.Unmap()
		cerr := f.Close()
		if uerr != nil {
			return uerr
		}
		return cerr
	}
	return mm, cleanup, nil
}
