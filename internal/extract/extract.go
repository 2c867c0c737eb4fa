// Package extract slices annotated gene subsequences out of a genome.
package extract

import (
	"go.uber.org/zap"

	"github.com/bioseq-tools/genefind/internal/gff"
)

// Gene is one extracted gene subsequence.
// Length is copied from the source annotation, not recomputed from Seq;
// the two diverge when the annotated span runs past the genome end.
type Gene struct {
	ID     string
	Seq    string
	Length int64
}

// Extractor extracts gene subsequences from a genomic sequence.
type Extractor struct {
	logger *zap.Logger
}

// New creates a new extractor.
func New() *Extractor {
	return &Extractor{logger: zap.NewNop()}
}

// SetLogger sets the logger for truncation warnings.
func (e *Extractor) SetLogger(l *zap.Logger) {
	e.logger = l
}

// Extract slices each gene's subsequence out of seq, preserving input
// order. Coordinates are 1-based inclusive; spans outside the genome are
// clamped, so the result may be truncated or empty. Reverse-strand genes
// are reverse complemented.
func (e *Extractor) Extract(seq string, genes []gff.Gene) []Gene {
	extracted := make([]Gene, 0, len(genes))

	for _, g := range genes {
		lo := g.Start - 1
		hi := g.End
		if lo < 0 {
			lo = 0
		}
		if hi > int64(len(seq)) {
			hi = int64(len(seq))
		}
		if lo > hi {
			lo = hi
		}

		geneSeq := seq[lo:hi]
		if int64(len(geneSeq)) != g.Length {
			e.logger.Warn("annotated span exceeds genome bounds, sequence truncated",
				zap.String("gene", g.ID),
				zap.Int64("start", g.Start),
				zap.Int64("end", g.End),
				zap.Int("genome_length", len(seq)))
		}

		if g.IsReverseStrand() {
			geneSeq = ReverseComplement(geneSeq)
		}

		extracted = append(extracted, Gene{
			ID:     g.ID,
			Seq:    geneSeq,
			Length: g.Length,
		})
	}

	return extracted
}

// ReverseComplement returns the reverse complement of a DNA sequence:
// each base is complemented and the whole sequence is reversed.
func ReverseComplement(seq string) string {
	n := len(seq)
	// Stack-allocate for short sequences
	var buf [64]byte
	var result []byte
	if n <= len(buf) {
		result = buf[:n]
	} else {
		result = make([]byte, n)
	}
	for i := 0; i < n; i++ {
		result[i] = Complement(seq[n-1-i])
	}
	return string(result)
}

// Complement returns the complement of a single base, preserving case.
// Bases outside {A,C,G,T,a,c,g,t} are returned unchanged.
func Complement(base byte) byte {
	switch base {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	case 'a':
		return 't'
	case 't':
		return 'a'
	case 'g':
		return 'c'
	case 'c':
		return 'g'
	default:
		return base
	}
}
