package benchmark_test

import (
	"io"
	"testing"

	droptio "github.com/dzonerzy/go-dropt/io"
)

func BenchmarkLogger(b *testing.B) {
	b.Run("plain", func(b *testing.B) {
		l := droptio.NewLogger(droptio.New().WithOut(io.Discard).NoColor())
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("parsed %d options", i)
		}
	})
	b.Run("colored", func(b *testing.B) {
		l := droptio.NewLogger(droptio.New().WithOut(io.Discard).ForceColor().ForceColorLevel(3))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("parsed %d options", i)
		}
	})
	b.Run("filtered", func(b *testing.B) {
		l := droptio.NewLogger(droptio.New().WithOut(io.Discard))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("parsed %d options", i)
		}
	})
}
