package vector_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vector"
)

// BenchmarkPushBack compares growing from empty against builtin append.
func BenchmarkPushBack(b *testing.B) {
	counts := []int{16, 256, 4096, 65536}

	for _, n := range counts {
		b.Run(fmt.Sprintf("Vector_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := vector.New[int]()
				for j := 0; j < n; j++ {
					v.PushBack(j)
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < n; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})
	}
}

// BenchmarkPushBackReserved appends into storage allocated up front.
func BenchmarkPushBackReserved(b *testing.B) {
	const n = 4096

	b.Run("Vector", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := vector.NewReserved[int](vector.Reserve(n))
			for j := 0; j < n; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, n)
			for j := 0; j < n; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})
}

// BenchmarkClearAndRefill reuses the same storage across rounds, the way a
// per-request scratch buffer is used.
func BenchmarkClearAndRefill(b *testing.B) {
	const n = 1024

	b.Run("Vector", func(b *testing.B) {
		v := vector.New[int]()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Clear()
			for j := 0; j < n; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		var s []int
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s = s[:0]
			for j := 0; j < n; j++ {
				s = append(s, j)
			}
		}
	})
}
