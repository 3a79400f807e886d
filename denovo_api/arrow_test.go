package denovo_api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow/go/v14/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRow() *Row {
	feature := newFeature(&Config{Info: []string{"DP"}})
	feature.parse([]string{"chr1", "100", ".", "A", "G", "50", "PASS", "DP=7", "GT"}, newHeader())
	return &Row{
		Variant:   VariantIdentity{Chromosome: "chr1", Pos: 100, Id: ".", Ref: "A", Alt: "G"},
		Child:     "kid1",
		Genotypes: TrioGenotypes{Child: "0/1", Father: "0/0", Mother: "0/0"},
		Feature:   feature,
	}
}

func TestArrowWriterReleases(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	columns := testRow().Feature.numericColumns()
	writer, err := newArrowWriter(filepath.Join(t.TempDir(), "features.arrow"), columns, 2, mem)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, writer.Write(testRow()))
	}
	require.NoError(t, writer.Close())
}

func TestArrowWriterCloseFailedFlush(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	columns := testRow().Feature.numericColumns()
	writer, err := newArrowWriter(filepath.Join(t.TempDir(), "features.arrow"), columns, 10, mem)
	require.NoError(t, err)
	require.NoError(t, writer.Write(testRow()))

	require.NoError(t, writer.file.Close())
	assert.Error(t, writer.Close())
}

func TestArrowWriterChunkSize(t *testing.T) {
	_, err := NewArrowWriter(filepath.Join(t.TempDir(), "features.arrow"), nil, 0)
	assert.ErrorContains(t, err, "chunk size")
}

func TestTsvWriterHeaderFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	columns := make([]string, 2000)
	for i := range columns {
		columns[i] = "column"
	}
	writer, err := NewTsvWriter("/dev/full", columns)
	assert.Error(t, err)
	assert.Nil(t, writer)
}
