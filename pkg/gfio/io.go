/*
Package gfio provides io functionality, including to/from stdin/stderr,
transparent reading of gzip- and bgzip-compressed alignments, and helpful error
messages when used in combination with bad filepaths from commandline options
*/
package gfio

import (
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/spf13/pflag"
)

func parseInErr(err error, flagString string) error {
	var x *fs.PathError
	if errors.As(err, &x) {
		return errors.New(x.Op + " " + flagString + " " + x.Path + ": " + x.Err.Error())
	}
	return err
}

// Compressed reports whether path names a gzip- or bgzip-compressed file
func Compressed(path string) bool {
	return strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".bgz")
}

// compressedFile closes both the decompressor and the file underneath it
type compressedFile struct {
	io.ReadCloser
	f *os.File
}

func (c compressedFile) Close() error {
	err := c.ReadCloser.Close()
	if ferr := c.f.Close(); err == nil {
		err = ferr
	}
	return err
}

// Open opens path for reading. "stdin" (or "-") is standard input. Files
// ending in .gz or .bgz are decompressed as BGZF, or as plain gzip when they
// carry no BGZF block size.
func Open(path string) (io.ReadCloser, error) {
	if path == "stdin" || path == "-" {
		return os.Stdin, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !Compressed(path) {
		return f, nil
	}

	r, err := decompress(f)
	if err != nil {
		f.Close()
		return nil, &fs.PathError{Op: "decompress", Path: path, Err: err}
	}
	return compressedFile{ReadCloser: r, f: f}, nil
}

func decompress(f *os.File) (io.ReadCloser, error) {
	br, err := bgzf.NewReader(f, 1)
	if err == nil {
		return br, nil
	}
	if !errors.Is(err, bgzf.ErrNoBlockSize) {
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return gzip.NewReader(f)
}

func flagString(flag pflag.Flag) string {
	switch len(flag.Shorthand) {
	case 0:
		return "--" + flag.Name
	default:
		return "-" + flag.Shorthand + " / --" + flag.Name
	}
}

// OpenIn opens the file named by an input flag
func OpenIn(flag pflag.Flag) (io.ReadCloser, error) {
	r, err := Open(flag.Value.String())
	if err != nil {
		return nil, parseInErr(err, flagString(flag))
	}
	return r, nil
}

// OpenOut creates the file named by an output flag, or returns stdout
func OpenOut(flag pflag.Flag) (*os.File, error) {
	outFile := flag.Value.String()

	if outFile == "stdout" || outFile == "-" {
		return os.Stdout, nil
	}

	f, err := os.Create(outFile)
	if err != nil {
		return nil, parseInErr(err, flagString(flag))
	}
	return f, nil
}
