// Package benchmarks provides performance benchmarks for element throughput.
package benchmarks

import (
	"slices"
	"testing"

	"github.com/comalice/staticvec"
)

func BenchmarkPushPop(b *testing.B) {
	b.Run("vector", func(b *testing.B) {
		var v staticvec.Vector[int, staticvec.Cap128[int]]
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 128; j++ {
				_, _ = v.PushBack(j)
			}
			for !v.Empty() {
				v.PopBack()
			}
		}
	})
	b.Run("slice", func(b *testing.B) {
		s := make([]int, 0, 128)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 128; j++ {
				s = append(s, j)
			}
			for len(s) > 0 {
				s = s[:len(s)-1]
			}
		}
	})
}

func BenchmarkInsertFront(b *testing.B) {
	b.Run("vector", func(b *testing.B) {
		var v staticvec.Vector[int, staticvec.Cap64[int]]
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v.Clear()
			for j := 0; j < 64; j++ {
				_, _ = v.Insert(v.Begin(), j)
			}
		}
	})
	b.Run("slice", func(b *testing.B) {
		s := make([]int, 0, 64)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s = s[:0]
			for j := 0; j < 64; j++ {
				s = slices.Insert(s, 0, j)
			}
		}
	})
}

func BenchmarkEraseRange(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := Fill[staticvec.Cap256[int]](256)
		for !v.Empty() {
			last := v.Begin().Add(min(8, v.Len()))
			_, _ = v.EraseRange(v.Begin(), last)
		}
	}
}

// BenchmarkParallelVectors gives every goroutine its own vector; nothing is shared.
func BenchmarkParallelVectors(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		var v staticvec.Vector[int, staticvec.Cap32[int]]
		for pb.Next() {
			if v.Full() {
				v.Clear()
			}
			_, _ = v.PushBack(v.Len())
		}
	})
}
