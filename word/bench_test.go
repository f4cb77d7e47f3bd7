package word_test

import (
	"testing"

	"github.com/wippyai/int-runtime/word"
)

var (
	sinkI64 int64
	sinkU64 uint64
)

func BenchmarkDivMod(b *testing.B) {
	for i := 0; i < b.N; i++ {
		q, r := word.DivMod(int64(i)-(1<<40), 3)
		sinkI64 = q + r
	}
}

func BenchmarkUdivMod(b *testing.B) {
	for i := 0; i < b.N; i++ {
		q, r := word.UdivMod(uint64(i)+(1<<40), 7)
		sinkU64 = q + r
	}
}
