package eq_test

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// benchEQ returns an equalizer with the given number of active peak bands.
func benchEQ(b *testing.B, active int) *eq.Equalizer {
	b.Helper()
	e, err := eq.New(48000)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	for i := 0; i < active; i++ {
		if err := e.Set(i, design.CurvePeak, 100+600*float64(i), 1, 3); err != nil {
			b.Fatalf("Set(%d): %v", i, err)
		}
	}
	return e
}

func BenchmarkProcess(b *testing.B) {
	for _, active := range []int{1, 8, 32} {
		b.Run(fmt.Sprintf("bands=%d", active), func(b *testing.B) {
			e := benchEQ(b, active)
			x := 1.0
			b.ReportAllocs()
			for b.Loop() {
				x = e.Process(x)
			}
			_ = x
		})
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, size := range []int{256, 1024, 4096} {
		b.Run(fmt.Sprintf("N=%d", size), func(b *testing.B) {
			e := benchEQ(b, 8)
			buf := make([]float64, size)
			for i := range buf {
				buf[i] = float64(i) * 0.001
			}
			b.SetBytes(int64(size * 8))
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				e.ProcessBlock(buf)
			}
		})
	}
}
