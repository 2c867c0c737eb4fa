package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bioseq-tools/genefind/internal/extract"
	"github.com/bioseq-tools/genefind/internal/gff"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndLookupGenes(t *testing.T) {
	s := openInMemory(t)

	genes := []gff.Gene{
		{ID: "araC", Start: 1, End: 24, Strand: "+", Length: 24},
		{ID: "crp", Start: 3, End: 12, Strand: "-", Length: 10},
	}
	extracted := []extract.Gene{
		{ID: "araC", Seq: "ATGCATGCATGCATGCATGCATGC", Length: 24},
		{ID: "crp", Seq: "GCATGCATGC", Length: 10},
	}

	require.NoError(t, s.WriteGenes(genes, extracted))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	rows, err := s.Lookup("crp")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, CatalogGene{
		ID: "crp", Start: 3, End: 12, Strand: "-", Length: 10, Seq: "GCATGCATGC",
	}, rows[0])

	rows, err = s.Lookup("nosuchgene")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWriteGenes_CountMismatch(t *testing.T) {
	s := openInMemory(t)

	err := s.WriteGenes([]gff.Gene{{ID: "a"}}, nil)
	require.Error(t, err)
}

func TestWriteGenes_Empty(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteGenes(nil, nil))
	n, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClear(t *testing.T) {
	s := openInMemory(t)

	genes := []gff.Gene{{ID: "g", Start: 1, End: 4, Strand: "+", Length: 4}}
	extracted := []extract.Gene{{ID: "g", Seq: "ATGC", Length: 4}}
	require.NoError(t, s.WriteGenes(genes, extracted))

	require.NoError(t, s.Clear())
	n, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog", "genes.duckdb")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	genes := []gff.Gene{{ID: "g", Start: 1, End: 4, Strand: "+", Length: 4}}
	extracted := []extract.Gene{{ID: "g", Seq: "ATGC", Length: 4}}
	require.NoError(t, s.WriteGenes(genes, extracted))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
