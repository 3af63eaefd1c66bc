// Package input opens tinygrep's inputs, decompressing gzip and zstd
// streams transparently.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Stdin is the path that names standard input. Open treats it as an
// ordinary file name; callers pass their standard input to NewReader.
const Stdin = "-"

// Compression identifies a stream's encoding.
type Compression int

// Supported encodings.
const (
	None Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Detect classifies a stream by its leading bytes.
func Detect(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip
	default:
		return None
	}
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// Open opens the file at path. Closing the result closes the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := newReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rc.closers = append(rc.closers, f.Close)
	return rc, nil
}

// NewReader wraps r, decompressing it when it starts with a gzip or zstd
// header. Closing the result releases the decompressor but not r.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	rc, err := newReader(r)
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func newReader(r io.Reader) (*readCloser, error) {
	br := bufio.NewReader(r)
	// a short or empty stream is plain text; Peek's error says nothing else
	head, _ := br.Peek(len(zstdMagic))

	switch Detect(head) {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return &readCloser{Reader: zr, closers: []func() error{zr.Close}}, nil
	case Zstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return &readCloser{Reader: zr, closers: []func() error{func() error { zr.Close(); return nil }}}, nil
	default:
		return &readCloser{Reader: br}, nil
	}
}
