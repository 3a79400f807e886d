package denovo_api

import (
	"errors"
	"fmt"
	"os"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"
	"github.com/apache/arrow/go/v14/arrow/ipc"
	"github.com/apache/arrow/go/v14/arrow/memory"
)

// Writes rows to an Arrow IPC file in chunks of chunkSize records
type ArrowWriter struct {
	file           *os.File
	schema         *arrow.Schema
	writer         *ipc.FileWriter
	builders       []array.Builder
	pool           memory.Allocator
	chunkSize      int
	numRowsInChunk int
}

// Create an Arrow writer at path. The identity columns and filter are strings,
// pos is an int64 and numericColumns are float64 with NaN for unavailable values.
func NewArrowWriter(path string, numericColumns []string, chunkSize int) (*ArrowWriter, error) {
	return newArrowWriter(path, numericColumns, chunkSize, memory.NewGoAllocator())
}

func newArrowWriter(path string, numericColumns []string, chunkSize int, pool memory.Allocator) (*ArrowWriter, error) {
	if chunkSize < 1 {
		return nil, fmt.Errorf("arrow chunk size must be positive, got %d", chunkSize)
	}

	fields := []arrow.Field{}
	for _, name := range identityColumns {
		if name == "pos" {
			fields = append(fields, arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Int64})
			continue
		}
		fields = append(fields, arrow.Field{Name: name, Type: arrow.BinaryTypes.String})
	}
	fields = append(fields, arrow.Field{Name: "filter", Type: arrow.BinaryTypes.String})
	for _, name := range numericColumns {
		fields = append(fields, arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64})
	}

	schema := arrow.NewSchema(fields, nil)
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create the arrow file: %w", err)
	}

	writer, err := ipc.NewFileWriter(file, ipc.WithSchema(schema), ipc.WithAllocator(pool))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create the arrow writer: %w", err)
	}

	builders := make([]array.Builder, len(fields))
	for i, field := range fields {
		switch field.Type {
		case arrow.PrimitiveTypes.Int64:
			builders[i] = array.NewInt64Builder(pool)
		case arrow.PrimitiveTypes.Float64:
			builders[i] = array.NewFloat64Builder(pool)
		default:
			builders[i] = array.NewStringBuilder(pool)
		}
	}

	return &ArrowWriter{
		file:      file,
		schema:    schema,
		writer:    writer,
		builders:  builders,
		pool:      pool,
		chunkSize: chunkSize,
	}, nil
}

func (aw *ArrowWriter) Write(row *Row) error {
	text := []string{
		row.Variant.Chromosome,
		row.Variant.Id,
		row.Variant.Ref,
		row.Variant.Alt,
		row.Child,
		row.Genotypes.Child,
		row.Genotypes.Father,
		row.Genotypes.Mother,
		row.Feature.Filter,
	}
	numeric := row.Feature.Numeric()
	if len(text)+1+len(numeric) != len(aw.builders) {
		return fmt.Errorf("mismatch in number of fields: expected %d, got %d", len(aw.builders), len(text)+1+len(numeric))
	}

	s, n := 0, 0
	for _, b := range aw.builders {
		switch builder := b.(type) {
		case *array.Int64Builder:
			builder.Append(row.Variant.Pos)
		case *array.Float64Builder:
			builder.Append(numeric[n])
			n++
		case *array.StringBuilder:
			builder.Append(text[s])
			s++
		}
	}

	aw.numRowsInChunk++
	if aw.numRowsInChunk == aw.chunkSize {
		return aw.writeChunk()
	}
	return nil
}

func (aw *ArrowWriter) writeChunk() error {
	cols := make([]arrow.Array, 0, len(aw.builders))
	for _, b := range aw.builders {
		// NewArray resets the builder
		cols = append(cols, b.NewArray())
	}

	record := array.NewRecord(aw.schema, cols, int64(aw.numRowsInChunk))
	defer record.Release()
	for _, col := range cols {
		col.Release()
	}

	if err := aw.writer.Write(record); err != nil {
		return fmt.Errorf("failed to write arrow record: %w", err)
	}

	aw.numRowsInChunk = 0
	return nil
}

// Flush the last chunk and close the file, the builders are released even when the flush fails
func (aw *ArrowWriter) Close() error {
	var err error
	if aw.numRowsInChunk > 0 {
		err = aw.writeChunk()
	}
	err = errors.Join(err, aw.writer.Close())
	for _, b := range aw.builders {
		b.Release()
	}
	if closeErr := aw.file.Close(); closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		err = errors.Join(err, closeErr)
	}
	return err
}
