package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenome(t *testing.T) {
	content := ">chr1 test genome\n" +
		"ATGCATGCATGC\n" +
		"ATGCATGCATGC\n"

	seq, err := parseGenome(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "ATGCATGCATGCATGCATGCATGC", seq)
}

func TestParseGenome_MultiRecordMerged(t *testing.T) {
	// Multiple records are concatenated into a single sequence
	content := ">chr1\nATGC\n>chr2\nGGCC\n"

	seq, err := parseGenome(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "ATGCGGCC", seq)
}

func TestParseGenome_TrimsWhitespace(t *testing.T) {
	content := ">chr1\n  ATGC  \nGGCC\t\n"

	seq, err := parseGenome(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "ATGCGGCC", seq)
}

func TestParseGenome_Empty(t *testing.T) {
	seq, err := parseGenome(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", seq)
}

func TestReadGenome_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genome.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">chr1\nATGC\n"), 0644))

	seq, err := ReadGenome(path)
	require.NoError(t, err)
	assert.Equal(t, "ATGC", seq)
}

func TestReadGenome_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genome.fasta.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(">chr1\nATGCATGC\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	seq, err := ReadGenome(path)
	require.NoError(t, err)
	assert.Equal(t, "ATGCATGC", seq)
}

func TestReadGenome_MissingFile(t *testing.T) {
	_, err := ReadGenome(filepath.Join(t.TempDir(), "nope.fasta"))
	require.Error(t, err)
}
