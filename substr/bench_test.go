package substr_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/kata/substr"
)

// BenchmarkLongestUniqueLength_Random scans 64k random letters — the
// window stays short, so the map stays small.
func BenchmarkLongestUniqueLength_Random(b *testing.B) {
	const N = 1 << 16
	r := rand.New(rand.NewSource(3))
	var sb strings.Builder
	sb.Grow(N)
	for i := 0; i < N; i++ {
		sb.WriteByte(byte('a' + r.Intn(26)))
	}
	s := sb.String()

	b.ReportAllocs()
	b.SetBytes(N)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = substr.LongestUniqueLength(s)
	}
}

// BenchmarkLongestUniqueLength_AllUnique scans a worst-case window: no
// repeats at all, so the window spans the whole input.
func BenchmarkLongestUniqueLength_AllUnique(b *testing.B) {
	const N = 1 << 14
	runes := make([]rune, N)
	for i := range runes {
		runes[i] = rune(i + 1) // distinct, skipping NUL
	}
	s := string(runes)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = substr.LongestUniqueLength(s)
	}
}
