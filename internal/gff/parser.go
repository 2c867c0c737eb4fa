// Package gff parses gene annotations from GFF files.
package gff

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Gene is a single gene annotation parsed from a GFF line.
// Coordinates are 1-based inclusive, as in the file.
type Gene struct {
	ID     string
	Start  int64
	End    int64
	Strand string
	Length int64 // End - Start + 1, always derived
}

// IsReverseStrand returns true if the gene is on the reverse strand.
// Any strand value other than "-" is treated as forward.
func (g Gene) IsReverseStrand() bool {
	return g.Strand == "-"
}

// Read parses a GFF file and returns the gene records in file order.
// If minLength is non-zero, genes shorter than minLength are skipped.
func Read(path string, minLength int64) ([]Gene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open GFF file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	// Handle gzipped files
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return Parse(reader, minLength)
}

// Parse parses GFF content and returns gene records in input order.
// Only rows whose feature type is "gene" (case-insensitive) are kept.
// Lines with fewer than 9 tab-separated fields are skipped as malformed.
func Parse(reader io.Reader, minLength int64) ([]Gene, error) {
	scanner := bufio.NewScanner(reader)
	// Increase buffer size for long attribute columns
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var genes []Gene

	for scanner.Scan() {
		line := scanner.Text()

		// Skip comments and empty lines
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
		if len(fields) < 9 {
			continue // Skip malformed lines
		}

		if !strings.EqualFold(fields[2], "gene") {
			continue
		}

		start, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse start: %w", err)
		}

		end, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse end: %w", err)
		}

		length := end - start + 1
		if minLength > 0 && length < minLength {
			continue
		}

		genes = append(genes, Gene{
			ID:     parseGeneID(fields[8]),
			Start:  start,
			End:    end,
			Strand: fields[6],
			Length: length,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan GFF: %w", err)
	}

	return genes, nil
}

// parseGeneID extracts the gene id from the GFF attribute column.
// Attributes are semicolon-separated key=value pairs; the first attribute
// starting with "ID=" supplies the id. Records without one get "unknown".
func parseGeneID(attrStr string) string {
	for _, attr := range strings.Split(attrStr, ";") {
		if strings.HasPrefix(attr, "ID=") {
			return strings.SplitN(attr, "=", 2)[1]
		}
	}
	return "unknown"
}
