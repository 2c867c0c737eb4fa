// Package fasta reads genome sequences from FASTA files.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadGenome reads a FASTA file and returns the genomic sequence as a
// single string. Header lines (starting with '>') are skipped; all other
// lines are whitespace-trimmed and concatenated in file order. Files with
// multiple records are merged into one sequence.
func ReadGenome(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open FASTA file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	// Handle gzipped files
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return parseGenome(reader)
}

// parseGenome parses FASTA content into a single concatenated sequence.
func parseGenome(reader io.Reader) (string, error) {
	scanner := bufio.NewScanner(reader)
	// Increase buffer size for long sequence lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var seq strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			continue
		}
		seq.WriteString(strings.TrimSpace(line))
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan FASTA: %w", err)
	}

	return seq.String(), nil
}
