package idset_test

import (
	"testing"

	"github.com/atl-go/atl/internal/idset"
)

func TestSet_PushDedup(t *testing.T) {
	s := idset.New[uint32](0)

	if !s.Push(3) {
		t.Fatal("first push of 3 should report newly inserted")
	}
	if s.Push(3) {
		t.Fatal("second push of 3 should report already present")
	}
	if !s.Push(7) {
		t.Fatal("first push of 7 should report newly inserted")
	}

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestSet_InsertionOrderPreserved(t *testing.T) {
	s := idset.New[uint32](0)
	order := []uint32{5, 1, 9, 1, 5, 2}
	for _, v := range order {
		s.Push(v)
	}

	want := []uint32{5, 1, 9, 2}
	got := s.Slice()
	if len(got) != len(want) {
		t.Fatalf("Slice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSet_ContainsAndIndexOf(t *testing.T) {
	s := idset.New[uint32](0)
	s.Push(10)
	s.Push(20)

	if !s.Contains(10) || !s.Contains(20) {
		t.Fatal("expected both pushed elements to be Contains()")
	}
	if s.Contains(30) {
		t.Fatal("30 was never pushed")
	}
	if idx := s.IndexOf(20); idx != 1 {
		t.Fatalf("IndexOf(20) = %d, want 1", idx)
	}
	if idx := s.IndexOf(99); idx != -1 {
		t.Fatalf("IndexOf(99) = %d, want -1", idx)
	}
}

func TestSet_Each(t *testing.T) {
	s := idset.New[uint32](0)
	for _, v := range []uint32{1, 2, 3} {
		s.Push(v)
	}

	var sum uint32
	s.Each(func(v uint32) { sum += v })
	if sum != 6 {
		t.Fatalf("Each summed to %d, want 6", sum)
	}
}
