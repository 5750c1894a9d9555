package vinfo_test

import (
	"testing"

	"github.com/atl-go/atl/internal/vinfo"
)

func TestNew_StartsWithRefCountOne(t *testing.T) {
	info := vinfo.New(3.0)
	if info.RefCount() != 1 {
		t.Fatalf("RefCount() = %d, want 1", info.RefCount())
	}
	if info.VValue != 3.0 {
		t.Fatalf("VValue = %v, want 3.0", info.VValue)
	}
}

func TestRetainRelease_RoundTrip(t *testing.T) {
	info := vinfo.New(1.0)
	info.Retain()
	if info.RefCount() != 2 {
		t.Fatalf("RefCount() after Retain = %d, want 2", info.RefCount())
	}
	if remaining := info.Release(); remaining != 1 {
		t.Fatalf("Release() = %d, want 1", remaining)
	}
	if remaining := info.Release(); remaining != 0 {
		t.Fatalf("Release() = %d, want 0", remaining)
	}
}

func TestNextID_MonotonicAndUnique(t *testing.T) {
	a := vinfo.New(0.0)
	b := vinfo.New(0.0)
	c := vinfo.New(0.0)

	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Fatalf("ids not strictly increasing: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestSetNextID_RewindsGenerator(t *testing.T) {
	vinfo.SetNextID(1000)
	info := vinfo.New[float64](0)
	if info.ID != 1000 {
		t.Fatalf("ID after SetNextID(1000) = %d, want 1000", info.ID)
	}
	next := vinfo.New[float64](0)
	if next.ID != 1001 {
		t.Fatalf("ID after a second New = %d, want 1001", next.ID)
	}
}

func TestResetAdjoints(t *testing.T) {
	info := vinfo.New(2.0)
	info.DValue = 5.0
	info.HasNLInteraction = true

	info.ResetAdjoints()

	if info.DValue != 0 {
		t.Fatalf("DValue after ResetAdjoints = %v, want 0", info.DValue)
	}
	if info.HasNLInteraction {
		t.Fatal("HasNLInteraction should be cleared by ResetAdjoints")
	}
	// Identity and value bookkeeping must survive a reset.
	if info.VValue != 2.0 {
		t.Fatalf("VValue changed by ResetAdjoints: %v", info.VValue)
	}
}
