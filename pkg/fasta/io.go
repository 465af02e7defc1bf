package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

var (
	ErrBadlyFormedFasta = errors.New("badly formed fasta file: sequence data before the first header")
	ErrEmptyFasta       = errors.New("empty fasta file")
)

type Reader struct {
	*bufio.Reader
	format  Format
	header  []byte // a header line that has been read but not yet returned
	counter int
}

func NewReader(f io.Reader) *Reader {
	return &Reader{Reader: bufio.NewReader(f)}
}

// NewFormatReader is as NewReader, but sequence lines are interpreted
// according to format
func NewFormatReader(f io.Reader, format Format) *Reader {
	return &Reader{Reader: bufio.NewReader(f), format: format}
}

// readLine returns the next line with its newline and any carriage returns
// removed. A final line without a newline is returned with err = nil, and the
// following call returns io.EOF.
func (r *Reader) readLine() ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(line) == 0 {
		return nil, io.EOF
	}
	if line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	if bytes.IndexByte(line, '\r') >= 0 {
		line = bytes.ReplaceAll(line, []byte{'\r'}, nil)
	}
	return line, nil
}

// skip is true for lines that carry no data: blanks and ';' comments
func skip(line []byte) bool {
	return len(line) == 0 || line[0] == ';'
}

func (r *Reader) appendSequence(buffer, line []byte) []byte {
	if r.format != A3M {
		return append(buffer, line...)
	}
	for _, c := range line {
		if c == '.' || ('a' <= c && c <= 'z') {
			continue
		}
		buffer = append(buffer, c)
	}
	return buffer
}

// Read reads one fasta record from the underlying reader. The final record is
// returned with error = nil, and the next call to Read() returns an empty Record
// struct and error = io.EOF.
func (r *Reader) Read() (Record, error) {
	var (
		FR     Record
		buffer []byte
	)

	for r.header == nil {
		line, err := r.readLine()
		if err != nil {
			return Record{}, err
		}
		if skip(line) {
			continue
		}
		if line[0] != '>' {
			return Record{}, ErrBadlyFormedFasta
		}
		r.header = line
	}

	FR.Description = string(r.header[1:])
	if fields := bytes.Fields(r.header[1:]); len(fields) > 0 {
		FR.ID = string(fields[0])
	}
	r.header = nil

	for {
		line, err := r.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Record{}, err
		}
		if skip(line) {
			continue
		}
		// the next record's header: keep it for the next call
		if line[0] == '>' {
			r.header = line
			break
		}
		buffer = r.appendSequence(buffer, line)
	}

	FR.Seq = string(buffer)
	FR.Idx = r.counter
	r.counter++

	return FR, nil
}

// LoadAlignment reads every record from f into a slice
func LoadAlignment(f io.Reader, format Format) ([]Record, error) {
	r := NewFormatReader(f, format)
	records := make([]Record, 0)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFasta
	}
	return records, nil
}
