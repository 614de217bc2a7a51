// Package source opens input and output files for the command line,
// transparently handling gzip and zstd compression.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Format is the structure encoding of a file.
type Format int

// Known formats.
const (
	FormatUnknown Format = iota
	FormatMolfile
	FormatSDF
	FormatGraphYAML
)

func (f Format) String() string {
	switch f {
	case FormatMolfile:
		return "molfile"
	case FormatSDF:
		return "sdf"
	case FormatGraphYAML:
		return "graph-yaml"
	default:
		return "unknown"
	}
}

// ErrFormat indicates a file name with no recognised structure format.
var ErrFormat = errors.New("source: unknown format")

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ParseFormat maps a format name (molfile, sdf, graph-yaml) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "mol", "molfile":
		return FormatMolfile, nil
	case "sdf", "sd":
		return FormatSDF, nil
	case "yaml", "graph-yaml", "graph":
		return FormatGraphYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrFormat, name)
	}
}

// FormatOf infers the format from a file name, ignoring a trailing .gz or
// .zst suffix.
func FormatOf(path string) (Format, error) {
	base := strings.ToLower(filepath.Base(path))
	base = strings.TrimSuffix(strings.TrimSuffix(base, ".gz"), ".zst")
	switch filepath.Ext(base) {
	case ".mol":
		return FormatMolfile, nil
	case ".sdf", ".sd":
		return FormatSDF, nil
	case ".yaml", ".yml":
		return FormatGraphYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %s", ErrFormat, path)
	}
}

// zstdReadCloser closes the decoder and the underlying file.
type zstdReadCloser struct {
	*zstd.Decoder
	under io.Closer
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	if z.under != nil {
		return z.under.Close()
	}

	return nil
}

type gzipReadCloser struct {
	*gzip.Reader
	under io.Closer
}

func (g gzipReadCloser) Close() error {
	err := g.Reader.Close()
	if g.under != nil {
		if cerr := g.under.Close(); err == nil {
			err = cerr
		}
	}

	return err
}

type plainReadCloser struct {
	io.Reader
	under io.Closer
}

func (p plainReadCloser) Close() error {
	if p.under != nil {
		return p.under.Close()
	}

	return nil
}

// NewReader detects gzip or zstd by magic bytes and returns a decompressing
// reader; other input passes through. Closing the result closes under when
// it is non-nil.
func NewReader(r io.Reader, under io.Closer) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("sniff input: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return gzipReadCloser{Reader: zr, under: under}, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return zstdReadCloser{Decoder: zr, under: under}, nil
	default:
		return plainReadCloser{Reader: br, under: under}, nil
	}
}

// Open opens path for reading; "-" is standard input.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return NewReader(os.Stdin, nil)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := NewReader(f, f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rc, nil
}

type writeCloser struct {
	io.WriteCloser
	under io.Closer
}

func (w writeCloser) Close() error {
	err := w.WriteCloser.Close()
	if cerr := w.under.Close(); err == nil {
		err = cerr
	}

	return err
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Create opens path for writing, compressing for .gz and .zst suffixes;
// "-" is standard output.
func Create(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return writeCloser{WriteCloser: gzip.NewWriter(f), under: f}, nil
	case ".zst":
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return writeCloser{WriteCloser: zw, under: f}, nil
	default:
		return f, nil
	}
}
