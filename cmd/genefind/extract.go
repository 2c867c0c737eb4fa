package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bioseq-tools/genefind/internal/catalog"
	"github.com/bioseq-tools/genefind/internal/extract"
	"github.com/bioseq-tools/genefind/internal/fasta"
	"github.com/bioseq-tools/genefind/internal/gff"
	"github.com/bioseq-tools/genefind/internal/output"
)

func runExtract(args []string) int {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)

	var (
		gffPath    string
		fastaPath  string
		outputFile string
		minLength  int64
		dbPath     string
		verbose    bool
	)

	fs.StringVar(&gffPath, "gff", "", "GFF file with gene annotations")
	fs.StringVar(&fastaPath, "fasta", "", "FASTA file with the genomic sequence")
	fs.StringVar(&outputFile, "o", "", "Output FASTA file")
	fs.StringVar(&outputFile, "output", "", "Output FASTA file")
	fs.Int64Var(&minLength, "min-length", viper.GetInt64("extract.min_length"), "Minimum gene length to extract")
	fs.StringVar(&dbPath, "db", viper.GetString("catalog.path"), "Optional DuckDB catalog to record extracted genes")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Extract annotated gene sequences from a genomic FASTA file.

Usage:
  genefind extract --gff <file> --fasta <file> -o <file> [options]

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  genefind extract --gff genes.gff --fasta genome.fasta -o genes.fna
  genefind extract --gff genes.gff --fasta genome.fasta -o genes.fna --min-length 300
`)
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if gffPath == "" || fastaPath == "" || outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: --gff, --fasta and -o are required\n\n")
		fs.Usage()
		return ExitUsage
	}

	// Validate input files before any parsing
	for _, path := range []string{gffPath, fastaPath} {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: input file %s does not exist\n", path)
			return ExitError
		}
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}
		defer l.Sync()
		logger = l
	}

	seq, err := fasta.ReadGenome(fastaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	genes, err := gff.Read(gffPath, minLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	if len(genes) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no genes matched the filter criteria\n")
		return ExitError
	}

	extractor := extract.New()
	extractor.SetLogger(logger)
	extracted := extractor.Extract(seq, genes)

	if err := output.WriteFile(outputFile, extracted); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	if dbPath != "" {
		if err := writeCatalog(dbPath, genes, extracted); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(os.Stderr, "Recorded %d genes in %s\n", len(extracted), dbPath)
	}

	fmt.Printf("Extracted %d genes to %s\n", len(extracted), outputFile)
	return ExitSuccess
}

// writeCatalog records the extracted genes in a DuckDB catalog.
func writeCatalog(path string, genes []gff.Gene, extracted []extract.Gene) error {
	store, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.WriteGenes(genes, extracted)
}
