package benchmark_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/dzonerzy/go-dropt/internal/fuzzy"
	"github.com/dzonerzy/go-dropt/internal/pool"
	"github.com/dzonerzy/go-dropt/internal/strbuf"
)

var candidates = []string{
	"help", "version", "verbose", "config", "output", "input",
	"force", "debug", "port", "host", "timeout", "retry",
}

func BenchmarkFuzzy_Best(b *testing.B) {
	m := fuzzy.NewMatcher(fuzzy.DefaultMaxDistance)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Best("verbsoe", candidates)
	}
}

func BenchmarkFuzzy_Rank(b *testing.B) {
	m := fuzzy.NewMatcher(fuzzy.DefaultMaxDistance)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Rank("ver", candidates)
	}
}

func BenchmarkBufferPool(b *testing.B) {
	b.Run("pool", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				buf := pool.GetBuffer(300)
				*buf = append(*buf, "some help text"...)
				pool.PutBuffer(buf)
			}
		})
	})
	b.Run("direct", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				buf := make([]byte, 0, 512)
				buf = append(buf, "some help text"...)
				_ = buf
			}
		})
	})
}

func BenchmarkStrbuf(b *testing.B) {
	line := strings.Repeat("x", 40)
	b.Run("strbuf", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sb := strbuf.Open()
			for j := 0; j < 50; j++ {
				sb.Printf("  --%s %d\n", line, j)
			}
			_, _ = sb.Finalize()
		}
	})
	b.Run("builder", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var sb strings.Builder
			for j := 0; j < 50; j++ {
				sb.WriteString("  --")
				sb.WriteString(line)
				sb.WriteString(" ")
				sb.WriteString(strconv.Itoa(j))
				sb.WriteString("\n")
			}
			_ = sb.String()
		}
	})
}
