package checksum

import (
	"strings"
	"testing"
)

// BenchmarkSum benchmarks checksum calculation of a typical template
func BenchmarkSum(b *testing.B) {
	calculator := New()
	content := []byte(strings.Repeat(`<button _="on click toggle .active on me">Go</button>`+"\n", 200))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.Sum(content)
	}
}
