package storage

import "testing"

func Benchmark_Initialize_Inline(b *testing.B) {
	values := seq(0, 4)
	for i := 0; i < b.N; i++ {
		s := New[int, [4]int](nil)
		if err := s.Initialize(FromSlice(values), 4); err != nil {
			b.Fatal(err)
		}
		s.DestroyAndDeallocate()
	}
}

func Benchmark_Initialize_Heap(b *testing.B) {
	values := seq(0, 64)
	for i := 0; i < b.N; i++ {
		s := New[int, [4]int](nil)
		if err := s.Initialize(FromSlice(values), 64); err != nil {
			b.Fatal(err)
		}
		s.DestroyAndDeallocate()
	}
}

func Benchmark_Assign_InPlace(b *testing.B) {
	s := New[int, [4]int](nil)
	if err := s.Initialize(FromSlice(seq(0, 64)), 64); err != nil {
		b.Fatal(err)
	}
	defer s.DestroyAndDeallocate()
	values := seq(100, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Assign(FromSlice(values), 64); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Assign_Realloc(b *testing.B) {
	values := seq(0, 64)
	for i := 0; i < b.N; i++ {
		s := New[int, [4]int](nil)
		if err := s.Initialize(FromSlice(seq(0, 8)), 8); err != nil {
			b.Fatal(err)
		}
		if err := s.Assign(FromSlice(values), 64); err != nil {
			b.Fatal(err)
		}
		s.DestroyAndDeallocate()
	}
}
