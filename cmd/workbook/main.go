// Command workbook reads a text file, strips spaces and punctuation, and
// prints the full entropy and prefix-coding analysis.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Pelfox/discrete-math/report"
)

func main() {
	input := flag.String("input", "", "path of the text file to analyze")
	frac := flag.Float64("frac", 0.2, "share of the alphabet removed by the frequency filter")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: workbook -input <file> [-frac 0.2]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r, err := report.Analyze(report.CleanText(string(raw)), *frac)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	r.Render(os.Stdout)
}
