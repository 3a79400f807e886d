package denovo_api

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bgzf"
	"github.com/klauspost/compress/gzip"
)

// The gzip magic bytes and the BC subfield id of a BGZF block header
var (
	gzipMagic    = []byte{0x1f, 0x8b}
	bgzfSubfield = []byte{'B', 'C'}
)

// Length of a BGZF block header up to and including the BC subfield id
const bgzfHeaderSize = 14

// Call fn for every line of the VCF file at path. The compression is taken
// from the first bytes: BGZF, plain gzip or uncompressed.
// Reading stops at the first error returned by fn
func readLines(path string, fn func(line string) error) error {
	inputVcf, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open the input VCF: %w", err)
	}
	defer inputVcf.Close()

	input := bufio.NewReader(inputVcf)
	head, err := input.Peek(bgzfHeaderSize)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read the input VCF: %w", err)
	}

	switch {
	case isBgzip(head):
		return readBgzip(input, fn)
	case bytes.HasPrefix(head, gzipMagic):
		return readGzip(input, fn)
	}
	return readPlain(input, fn)
}

// True when head starts a gzip member carrying the BGZF extra subfield
func isBgzip(head []byte) bool {
	if len(head) < bgzfHeaderSize || !bytes.HasPrefix(head, gzipMagic) {
		return false
	}
	const flagExtra = 0x04
	return head[3]&flagExtra != 0 && bytes.Equal(head[12:14], bgzfSubfield)
}

func readGzip(input io.Reader, fn func(line string) error) error {
	gzReader, err := gzip.NewReader(input)
	if err != nil {
		return fmt.Errorf("failed to open the gzip stream: %w", err)
	}
	defer gzReader.Close()
	return readPlain(gzReader, fn)
}

func readBgzip(input io.Reader, fn func(line string) error) error {
	bgReader, err := bgzf.NewReader(input, 1)
	if err != nil {
		return fmt.Errorf("failed to open the bgzip stream: %w", err)
	}
	defer bgReader.Close()

	for {
		b, err := readBgzipLine(bgReader)
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read the bgzip stream: %w", err)
		}
		if len(b) > 0 {
			if fnErr := fn(string(b)); fnErr != nil {
				return fnErr
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// readBgzipLine reads a line from a bgzip file
func readBgzipLine(r *bgzf.Reader) ([]byte, error) {
	var (
		data []byte
		b    byte
		err  error
	)
	for {
		b, err = r.ReadByte()
		if err != nil {
			break
		}
		data = append(data, b)
		if b == '\n' {
			break
		}
	}
	return data, err
}

func readPlain(input io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(input)
	const maxCapacity = 8 * 1000000 // 8 MB
	scanner.Buffer(make([]byte, maxCapacity), maxCapacity)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read the input VCF: %w", err)
	}
	return nil
}
