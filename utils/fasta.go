package common

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// ErrNoRecords is returned when a FASTA stream holds no '>' record.
var ErrNoRecords = errors.New("no FASTA records found")

var (
	gzipMagic = []byte{0x1F, 0x8B}
	xzMagic   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
)

// FastaRecord is one FASTA entry. ID is the first whitespace-delimited
// token of the header line; Sequence is uppercased with line breaks removed.
type FastaRecord struct {
	ID          string
	Description string
	Sequence    string
}

type FastaHandler func(rec FastaRecord) error

// errStopStream lets a handler end StreamFasta early without reporting an error.
var errStopStream = errors.New("stop stream")

type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var first error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OpenMaybeCompressed opens path and transparently decompresses gzip or xz
// content, detected from the leading magic bytes rather than the extension.
func OpenMaybeCompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	r, err := Decompress(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	rc := &multiCloser{Reader: r, closers: []io.Closer{f}}
	if c, ok := r.(io.Closer); ok {
		rc.closers = append(rc.closers, c)
	}
	return rc, nil
}

// Decompress sniffs r for gzip or xz magic bytes and returns a reader over
// the decompressed content. Plain input is returned buffered but unchanged.
func Decompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(xzMagic))

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gr, nil
	case bytes.HasPrefix(head, xzMagic):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open xz reader: %w", err)
		}
		return xr, nil
	}
	return br, nil
}

// StreamFasta reads FASTA records from r and calls handler for each one.
// Sequences are uppercased and every whitespace character is dropped.
func StreamFasta(r io.Reader, handler FastaHandler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<30) // single-line genomes

	var current *FastaRecord
	var buffer strings.Builder

	flush := func() error {
		if current == nil {
			return nil
		}
		current.Sequence = buffer.String()
		buffer.Reset()
		if err := handler(*current); err != nil {
			if errors.Is(err, errStopStream) {
				return err
			}
			return fmt.Errorf("handler error (%s): %w", current.ID, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			id, desc := splitHeader(strings.TrimPrefix(line, ">"))
			current = &FastaRecord{ID: id, Description: desc}
			continue
		}
		if current == nil {
			continue // text before the first header
		}
		for _, field := range strings.Fields(line) {
			buffer.WriteString(strings.ToUpper(field))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return flush()
}

// ReadFirstFasta returns the first record in r and ignores the rest.
func ReadFirstFasta(r io.Reader) (FastaRecord, error) {
	var first FastaRecord
	found := false
	err := StreamFasta(r, func(rec FastaRecord) error {
		first = rec
		found = true
		return errStopStream
	})
	if err != nil && !errors.Is(err, errStopStream) {
		return FastaRecord{}, err
	}
	if !found {
		return FastaRecord{}, ErrNoRecords
	}
	return first, nil
}

// LoadFirstFasta opens path (plain, gzip or xz) and returns its first record.
func LoadFirstFasta(path string) (FastaRecord, error) {
	rc, err := OpenMaybeCompressed(path)
	if err != nil {
		return FastaRecord{}, err
	}
	defer rc.Close()

	rec, err := ReadFirstFasta(rc)
	if err != nil {
		return FastaRecord{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func splitHeader(header string) (string, string) {
	header = strings.TrimSpace(header)
	if i := strings.IndexAny(header, " \t"); i >= 0 {
		return header[:i], strings.TrimSpace(header[i+1:])
	}
	return header, ""
}
