// Package report runs the full analysis pipeline over a text — frequency
// statistics, entropy metrics, both code constructions with round-trip
// verification, and frequency-based removal deltas — and renders the result
// for display.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Pelfox/discrete-math/entropy"
	"github.com/Pelfox/discrete-math/huffman"
	"github.com/Pelfox/discrete-math/prefixcode"
	"github.com/Pelfox/discrete-math/shannonfano"
)

// punctuation mirrors Python's string.punctuation, the character set the
// original workbooks strip before analysis.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// CleanText strips spaces and punctuation from raw text, leaving the symbol
// stream the analyses run over.
func CleanText(text string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
}

// CodecStats holds the outcome of building one codec and pushing the token
// stream through it and back.
type CodecStats struct {
	Codec         prefixcode.Codec
	Encoded       string
	Decoded       string
	RoundTrip     bool
	AverageLength float64
	Efficiency    float64
}

// StreamStats holds the analysis of one token stream (unigrams or bigrams).
// The codec fields are nil when the alphabet is too small to build that
// codec.
type StreamStats struct {
	Counts      *entropy.Counter
	Entropy     float64
	CodeLength  float64
	Redundancy  float64
	ShannonFano *CodecStats
	Huffman     *CodecStats
}

// Removal holds the effect of dropping one end of the frequency ranking.
type Removal struct {
	Mode     entropy.Mode
	Removed  []entropy.Symbol
	Filtered string
	Entropy  float64
	Delta    float64
}

// Report is the complete analysis of a cleaned text.
type Report struct {
	Text     string
	Unigrams StreamStats
	Bigrams  StreamStats
	Removals []Removal
}

// Analyze runs every analysis over the cleaned text.  The unigram and
// bigram streams share no state and run concurrently; frac is the share of
// the alphabet the removal analyses drop from each end of the frequency
// ranking.
func Analyze(text string, frac float64) (*Report, error) {
	r := &Report{Text: text}

	var g errgroup.Group
	g.Go(func() error {
		stats, err := analyzeStream(entropy.Unigrams(text), joinUnigrams)
		if err != nil {
			return fmt.Errorf("unigram analysis: %w", err)
		}
		r.Unigrams = stats
		return nil
	})
	g.Go(func() error {
		stats, err := analyzeStream(entropy.Bigrams(text), entropy.JoinBigrams)
		if err != nil {
			return fmt.Errorf("bigram analysis: %w", err)
		}
		r.Bigrams = stats
		return nil
	})
	g.Go(func() error {
		base := entropy.Entropy(entropy.Count(entropy.Unigrams(text)))
		for _, mode := range []entropy.Mode{entropy.Top, entropy.Bottom} {
			r.Removals = append(r.Removals, analyzeRemoval(text, mode, frac, base))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return r, nil
}

func joinUnigrams(tokens []entropy.Symbol) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(string(tok))
	}
	return sb.String()
}

func analyzeStream(tokens []entropy.Symbol, join func([]entropy.Symbol) string) (StreamStats, error) {
	counts := entropy.Count(tokens)
	stats := StreamStats{
		Counts:     counts,
		Entropy:    entropy.Entropy(counts),
		CodeLength: entropy.IdealCodeLength(counts.Len()),
	}
	stats.Redundancy = entropy.Redundancy(stats.Entropy, stats.CodeLength)

	if counts.Len() >= 2 {
		sf, err := codecStats(shannonfano.Build(counts), tokens, counts, stats.Entropy, join)
		if err != nil {
			return StreamStats{}, err
		}
		stats.ShannonFano = sf
	}
	if counts.Len() >= 1 {
		codec, root, err := huffman.Build(counts)
		if err != nil {
			return StreamStats{}, err
		}
		hf, err := codecStats(codec, tokens, counts, stats.Entropy, join)
		if err != nil {
			return StreamStats{}, err
		}
		// Cross-check the generic decode against the tree walk.
		treeTokens, err := huffman.DecodeTree(hf.Encoded, root)
		if err != nil {
			return StreamStats{}, err
		}
		hf.RoundTrip = hf.RoundTrip && join(treeTokens) == hf.Decoded
		stats.Huffman = hf
	}
	return stats, nil
}

func codecStats(codec prefixcode.Codec, tokens []entropy.Symbol, counts *entropy.Counter, entropyBits float64, join func([]entropy.Symbol) string) (*CodecStats, error) {
	encoded, err := prefixcode.Encode(tokens, codec)
	if err != nil {
		return nil, err
	}
	decoded, err := prefixcode.Decode(encoded, codec)
	if err != nil {
		return nil, err
	}
	avg := prefixcode.AverageLength(codec, counts)
	return &CodecStats{
		Codec:         codec,
		Encoded:       encoded,
		Decoded:       join(decoded),
		RoundTrip:     join(decoded) == join(tokens),
		AverageLength: avg,
		Efficiency:    prefixcode.Efficiency(entropyBits, avg),
	}, nil
}

func analyzeRemoval(text string, mode entropy.Mode, frac float64, baseEntropy float64) Removal {
	filtered, removedSet := entropy.RemoveByFrequency(entropy.Unigrams(text), mode, frac)
	removed := make([]entropy.Symbol, 0, len(removedSet))
	for sym := range removedSet {
		removed = append(removed, sym)
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })

	after := entropy.Entropy(entropy.Count(filtered))
	return Removal{
		Mode:     mode,
		Removed:  removed,
		Filtered: joinUnigrams(filtered),
		Entropy:  after,
		Delta:    after - baseEntropy,
	}
}

// Render writes the report in the workbook layout.
func (r *Report) Render(w io.Writer) {
	p := message.NewPrinter(language.English) // commas between thousands

	p.Fprintf(w, "Text: %s\n", r.Text)

	p.Fprintf(w, "\nSymbol frequencies:\n")
	for _, e := range r.Unigrams.Counts.Entries() {
		p.Fprintf(w, " * %s: %d\n", string(e.Symbol), e.Count)
	}

	p.Fprintf(w, "\nEntropy and redundancy:\n")
	p.Fprintf(w, " * Unigram entropy: %.6f bits/symbol\n", r.Unigrams.Entropy)
	p.Fprintf(w, " * Bigram entropy: %.6f bits/symbol\n", r.Bigrams.Entropy)
	p.Fprintf(w, " * Uniform code length: %.6f bits\n", r.Unigrams.CodeLength)
	p.Fprintf(w, " * Redundancy: %.6f\n", r.Unigrams.Redundancy)

	renderCodec(p, w, "Shannon-Fano (unigrams)", r.Unigrams.Counts, r.Unigrams.ShannonFano)
	renderCodec(p, w, "Huffman (unigrams)", r.Unigrams.Counts, r.Unigrams.Huffman)
	renderCodec(p, w, "Shannon-Fano (bigrams)", r.Bigrams.Counts, r.Bigrams.ShannonFano)
	renderCodec(p, w, "Huffman (bigrams)", r.Bigrams.Counts, r.Bigrams.Huffman)

	for _, removal := range r.Removals {
		p.Fprintf(w, "\nRemoval of %s-frequency symbols:\n", removal.Mode)
		p.Fprintf(w, " * Removed: %v\n", removal.Removed)
		p.Fprintf(w, " * Filtered text: %s\n", removal.Filtered)
		p.Fprintf(w, " * Entropy after removal: %.6f\n", removal.Entropy)
		p.Fprintf(w, " * Entropy change: %+.6f\n", removal.Delta)
	}
}

func renderCodec(p *message.Printer, w io.Writer, title string, counts *entropy.Counter, cs *CodecStats) {
	if cs == nil {
		return
	}
	p.Fprintf(w, "\n%s:\n", title)
	for _, sym := range counts.Symbols() {
		if word, ok := cs.Codec[sym]; ok {
			p.Fprintf(w, " * %s: %s\n", string(sym), word)
		}
	}
	p.Fprintf(w, " * Encoded: %s\n", cs.Encoded)
	p.Fprintf(w, " * Decoded: %s\n", cs.Decoded)
	p.Fprintf(w, " * Round trip ok: %t\n", cs.RoundTrip)
	p.Fprintf(w, " * Average code length: %.6f bits/symbol\n", cs.AverageLength)
	p.Fprintf(w, " * Coding efficiency: %.6f (%.2f%%)\n", cs.Efficiency, cs.Efficiency*100)
}
