package combo_test

import (
	"testing"

	"github.com/quintle/quintle/combo"
	"github.com/quintle/quintle/word"
)

// benchmarkSearch runs a size-k search over n synthetic candidates drawn from
// a ten-letter alphabet, so subsets stay viable at every k.
func benchmarkSearch(b *testing.B, n, k int) {
	candidates := make([]word.Word, n)
	for i := 0; i < n; i++ {
		// Five consecutive letters mod 10: every word holds five distinct
		// letters, so subsets stay viable up to k=5.
		w := make([]byte, 5)
		for j := 0; j < 5; j++ {
			w[j] = byte('a' + (i+j)%10)
		}
		candidates[i] = word.Word(w)
	}
	alphabet := word.MustLetterSet("abcdefghij")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := combo.Search(candidates, alphabet, k); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}

// BenchmarkSearch_K2 benchmarks pair search over 500 candidates.
func BenchmarkSearch_K2(b *testing.B) { benchmarkSearch(b, 500, 2) }

// BenchmarkSearch_K3 benchmarks triple search over 500 candidates.
func BenchmarkSearch_K3(b *testing.B) { benchmarkSearch(b, 500, 3) }

// BenchmarkSearch_K5 benchmarks the maximum subset size over 500 candidates.
func BenchmarkSearch_K5(b *testing.B) { benchmarkSearch(b, 500, combo.MaxComboSize) }
