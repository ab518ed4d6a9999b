package prefixcode

import (
	"math"
	"testing"

	"github.com/Pelfox/discrete-math/entropy"
)

func near(got, want float64) bool {
	return math.Abs(got-want) <= 1e-9
}

func TestAverageLength(t *testing.T) {
	// counts {a:5, b:2, c:1, d:1}, lengths {1, 2, 3, 3}:
	// (5*1 + 2*2 + 1*3 + 1*3) / 9 = 15/9.
	c := entropy.Count(entropy.Unigrams("aaaaabbcd"))
	if got := AverageLength(testCodec, c); !near(got, 15.0/9.0) {
		t.Errorf("AverageLength = %v, want %v", got, 15.0/9.0)
	}
}

func TestAverageLengthEmptyCounter(t *testing.T) {
	if got := AverageLength(testCodec, entropy.NewCounter()); got != 0 {
		t.Errorf("AverageLength = %v, want 0", got)
	}
}

func TestEfficiency(t *testing.T) {
	c := entropy.Count(entropy.Unigrams("aaaaabbcd"))
	h := entropy.Entropy(c)
	avg := AverageLength(testCodec, c)
	if got := Efficiency(h, avg); !near(got, h/avg) {
		t.Errorf("Efficiency = %v, want %v", got, h/avg)
	}
	if got := Efficiency(h, 0); got != 0 {
		t.Errorf("Efficiency with zero length = %v, want 0", got)
	}
}
