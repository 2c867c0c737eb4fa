// Package main provides the genefind command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Global flags
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	// Parse global flags first
	flag.Parse()

	if showVersion {
		fmt.Printf("genefind version %s (%s) built %s\n", version, commit, date)
		return ExitSuccess
	}

	initConfig()

	// Check for subcommand
	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return ExitUsage
	}

	switch args[0] {
	case "extract":
		return runExtract(args[1:])
	case "config":
		return runConfig(args[1:])
	case "help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printUsage()
		return ExitUsage
	}
}

// initConfig loads ~/.genefind.yaml if present. A missing config file is
// not an error; flags fall back to their built-in defaults.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.SetConfigFile(filepath.Join(home, ".genefind.yaml"))
	_ = viper.ReadInConfig()
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `genefind - Extract annotated gene sequences from a genome

Usage:
  genefind [options] <command> [arguments]

Commands:
  extract     Extract gene sequences from a FASTA genome using GFF annotations
  config      Manage genefind configuration
  help        Show this help message

Global Options:
  --version   Show version information

Examples:
  # Extract all annotated genes
  genefind extract --gff genes.gff --fasta genome.fasta -o genes.fna

  # Only keep genes of at least 300 bp
  genefind extract --gff genes.gff --fasta genome.fasta -o genes.fna --min-length 300

  # Also record the extracted genes in a DuckDB catalog
  genefind extract --gff genes.gff --fasta genome.fasta -o genes.fna --db genes.duckdb

For more information on a command, use:
  genefind <command> --help
`)
}
