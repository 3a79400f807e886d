package denovo_api

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// The identity columns written before the feature columns
var identityColumns = []string{"chrom", "pos", "id", "ref", "alt", "iid", "offspring_gt", "father_gt", "mother_gt"}

// One output row: a child carrying a de novo allele at a variant
type Row struct {
	Variant   VariantIdentity
	Child     string
	Genotypes TrioGenotypes
	Feature   *Feature
}

// A sink for output rows
type RowWriter interface {
	Write(row *Row) error
	Close() error
}

// Writes rows as tab delimited text to a file or stdout
type TsvWriter struct {
	file   *os.File
	writer *bufio.Writer
	stdout bool
}

// Create a TSV writer at path, stdout when path is empty, and write the header
func NewTsvWriter(path string, columns []string) (*TsvWriter, error) {
	w := &TsvWriter{stdout: path == ""}
	if w.stdout {
		w.file = os.Stdout
	} else {
		outputFile, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create the output file: %w", err)
		}
		w.file = outputFile
	}
	w.writer = bufio.NewWriter(w.file)

	header := append(append([]string{}, identityColumns...), columns...)
	if err := w.writeLine(strings.Join(header, "\t")); err != nil {
		return nil, errors.Join(err, w.Close())
	}
	return w, nil
}

func (w *TsvWriter) Write(row *Row) error {
	return w.writeLine(fmt.Sprintf(
		"%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
		row.Variant.Chromosome,
		row.Variant.Pos,
		row.Variant.Id,
		row.Variant.Ref,
		row.Variant.Alt,
		row.Child,
		row.Genotypes.Child,
		row.Genotypes.Father,
		row.Genotypes.Mother,
		row.Feature.Output(),
	))
}

// Write a line to the output file or stdout
func (w *TsvWriter) writeLine(line string) error {
	if _, err := w.writer.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (w *TsvWriter) Close() error {
	err := w.writer.Flush()
	if !w.stdout {
		err = errors.Join(err, w.file.Close())
	}
	return err
}

// Writes every row to all writers
type multiWriter []RowWriter

func (writers multiWriter) Write(row *Row) error {
	for _, w := range writers {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (writers multiWriter) Close() error {
	var err error
	for _, w := range writers {
		err = errors.Join(err, w.Close())
	}
	return err
}
