package catalog

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/bioseq-tools/genefind/internal/extract"
	"github.com/bioseq-tools/genefind/internal/gff"
)

// WriteGenes batch-inserts extracted genes into the catalog using the
// DuckDB Appender API. The two slices must be parallel: extracted[i] is
// the extraction of genes[i].
func (s *Store) WriteGenes(genes []gff.Gene, extracted []extract.Gene) error {
	if len(genes) != len(extracted) {
		return fmt.Errorf("gene/extraction count mismatch: %d vs %d", len(genes), len(extracted))
	}
	if len(genes) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "genes")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for i, g := range genes {
		e := extracted[i]
		if err := appender.AppendRow(
			e.ID, g.Start, g.End, g.Strand, e.Length, e.Seq,
		); err != nil {
			return fmt.Errorf("append gene: %w", err)
		}
	}

	return appender.Flush()
}

// Count returns the number of genes in the catalog.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM genes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count genes: %w", err)
	}
	return n, nil
}

// CatalogGene is one row of the gene catalog.
type CatalogGene struct {
	ID     string
	Start  int64
	End    int64
	Strand string
	Length int64
	Seq    string
}

// Lookup returns all catalog rows for a gene id, in insertion order.
func (s *Store) Lookup(id string) ([]CatalogGene, error) {
	rows, err := s.db.Query(
		`SELECT gene_id, start_pos, end_pos, strand, length, seq
		 FROM genes WHERE gene_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("lookup gene: %w", err)
	}
	defer rows.Close()

	var genes []CatalogGene
	for rows.Next() {
		var g CatalogGene
		if err := rows.Scan(&g.ID, &g.Start, &g.End, &g.Strand, &g.Length, &g.Seq); err != nil {
			return nil, fmt.Errorf("scan gene row: %w", err)
		}
		genes = append(genes, g)
	}

	return genes, rows.Err()
}

// Clear removes all genes from the catalog.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM genes`)
	return err
}
