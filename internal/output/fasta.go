// Package output provides extracted-gene output formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bioseq-tools/genefind/internal/extract"
)

// LineWidth is the number of sequence characters per FASTA body line.
const LineWidth = 60

// FASTAWriter writes extracted genes in FASTA format.
type FASTAWriter struct {
	w *bufio.Writer
}

// NewFASTAWriter creates a new FASTA writer.
func NewFASTAWriter(w io.Writer) *FASTAWriter {
	return &FASTAWriter{w: bufio.NewWriter(w)}
}

// Write writes a single gene: a ">{id} length={length}" header followed
// by the sequence wrapped at LineWidth characters per line. A zero-length
// sequence produces the header with no body lines.
func (fw *FASTAWriter) Write(g extract.Gene) error {
	if _, err := fmt.Fprintf(fw.w, ">%s length=%d\n", g.ID, g.Length); err != nil {
		return err
	}

	for i := 0; i < len(g.Seq); i += LineWidth {
		end := i + LineWidth
		if end > len(g.Seq) {
			end = len(g.Seq)
		}
		if _, err := fw.w.WriteString(g.Seq[i:end] + "\n"); err != nil {
			return err
		}
	}

	return nil
}

// WriteAll writes all genes in input order.
func (fw *FASTAWriter) WriteAll(genes []extract.Gene) error {
	for _, g := range genes {
		if err := fw.Write(g); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered output.
func (fw *FASTAWriter) Flush() error {
	return fw.w.Flush()
}

// WriteFile writes all genes to a FASTA file, creating or truncating it.
func WriteFile(path string, genes []extract.Gene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	fw := NewFASTAWriter(f)
	if err := fw.WriteAll(genes); err != nil {
		return fmt.Errorf("write FASTA: %w", err)
	}
	if err := fw.Flush(); err != nil {
		return fmt.Errorf("flush FASTA: %w", err)
	}

	return f.Close()
}
