package variable_test

import (
	"math"
	"sync"
	"testing"

	"github.com/atl-go/atl/internal/tape"
	"github.com/atl-go/atl/transform"
	"github.com/atl-go/atl/variable"
)

func closeEnough(t *testing.T, got, want, tol float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

// Exercised through the public façade: x=3; y=2; z = x*y + sin(x).
func TestScenario1_ThroughFacade(t *testing.T) {
	tp := tape.New[float64]()
	tp.SetLevel(tape.GradientAndHessian)

	x := variable.New(tp, 3.0)
	y := variable.New(tp, 2.0)

	z := variable.New(tp, 0.0)
	z.Assign(variable.Add[float64](variable.Mul[float64](x, y), variable.Sin[float64](x)))

	hs := tp.AccumulateGradientAndHessian()

	closeEnough(t, z.Value(), 6+math.Sin(3), 1e-9, "z.Value()")
	closeEnough(t, x.Grad(), 2+math.Cos(3), 1e-9, "dz/dx")
	closeEnough(t, y.Grad(), 3, 1e-9, "dz/dy")
	closeEnough(t, hs.Value(x.Info.ID, x.Info.ID), -math.Sin(3), 1e-9, "d2z/dx2")
}

func TestCompoundAssignment_MulAssign(t *testing.T) {
	tp := tape.New[float64]()
	x := variable.New(tp, 5.0)

	before := tp.NumEntries()
	x.MulAssign(variable.Const[float64](2))
	if tp.NumEntries() != before+1 {
		t.Fatalf("MulAssign should append exactly one tape entry, got %d new entries", tp.NumEntries()-before)
	}
	if x.Value() != 10 {
		t.Fatalf("x.Value() after *=2 = %v, want 10", x.Value())
	}
}

func TestIncDec(t *testing.T) {
	tp := tape.New[float64]()
	x := variable.New(tp, 1.0)

	x.Inc()
	if x.Value() != 2 {
		t.Fatalf("x.Value() after Inc() = %v, want 2", x.Value())
	}
	x.Dec()
	if x.Value() != 1 {
		t.Fatalf("x.Value() after Dec() = %v, want 1", x.Value())
	}
}

func TestSetValue_BypassesTape(t *testing.T) {
	tp := tape.New[float64]()
	x := variable.New(tp, 1.0)

	before := tp.NumEntries()
	x.SetValue(9)
	if tp.NumEntries() != before {
		t.Fatalf("SetValue must not grow the tape, entries went from %d to %d", before, tp.NumEntries())
	}
	if x.Value() != 9 {
		t.Fatalf("x.Value() after SetValue(9) = %v, want 9", x.Value())
	}
}

func TestCopyRelease_RefCounting(t *testing.T) {
	tp := tape.New[float64]()
	x := variable.New(tp, 1.0)
	if x.Info.RefCount() != 1 {
		t.Fatalf("fresh Variable RefCount() = %d, want 1", x.Info.RefCount())
	}

	y := x.Copy()
	if x.Info.RefCount() != 2 {
		t.Fatalf("RefCount() after Copy() = %d, want 2", x.Info.RefCount())
	}

	if remaining := y.Release(); remaining != 1 {
		t.Fatalf("Release() after Copy() = %d, want 1", remaining)
	}
	if remaining := x.Release(); remaining != 0 {
		t.Fatalf("final Release() = %d, want 0", remaining)
	}
}

// v bounded to [0,10]; set to 7; round-trip internal->external via Sin
// recovers 7 within tolerance.
func TestBoundedVariable_SinRoundTrip(t *testing.T) {
	tp := tape.New[float64]()
	v := variable.New(tp, 0.0)
	v.Bound(0, 10, transform.Sin[float64]{})
	v.SetValue(7)

	internal := v.InternalValue()
	external := transform.Sin[float64]{}.Internal2External(internal, v.MinBoundary(), v.MaxBoundary())

	closeEnough(t, external, 7, 1e-9, "Sin transform round-trip")
	if !v.IsBounded() {
		t.Fatal("IsBounded() should be true after Bound()")
	}
}

func TestBoundedVariable_ClampsOutOfRange(t *testing.T) {
	tp := tape.New[float64]()
	v := variable.New(tp, 0.0)
	v.Bound(0, 10, transform.Identity[float64]{})

	v.SetValue(50)
	if v.Value() != 10 {
		t.Fatalf("SetValue(50) on [0,10] should clamp to 10, got %v", v.Value())
	}
	v.SetValue(-5)
	if v.Value() != 0 {
		t.Fatalf("SetValue(-5) on [0,10] should clamp to 0, got %v", v.Value())
	}
	v.SetValue(math.NaN())
	if v.Value() != 5 {
		t.Fatalf("SetValue(NaN) on [0,10] should settle to the midpoint 5, got %v", v.Value())
	}
}

// Two tapes in two goroutines computing the same x*y+sin(x) expression
// with independent leaves must both match the single-thread result.
func TestScenario5_TwoTapesTwoGoroutines(t *testing.T) {
	run := func() (dzdx, dzdy float64) {
		tp := tape.New[float64]()
		x := variable.New(tp, 3.0)
		y := variable.New(tp, 2.0)
		z := variable.New(tp, 0.0)
		z.Assign(variable.Add[float64](variable.Mul[float64](x, y), variable.Sin[float64](x)))
		tp.Accumulate()
		return x.Grad(), y.Grad()
	}

	var wg sync.WaitGroup
	results := make([][2]float64, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dx, dy := run()
			results[i] = [2]float64{dx, dy}
		}(i)
	}
	wg.Wait()

	want := [2]float64{2 + math.Cos(3), 3}
	for i, r := range results {
		closeEnough(t, r[0], want[0], 1e-9, "goroutine dz/dx")
		closeEnough(t, r[1], want[1], 1e-9, "goroutine dz/dy")
		_ = i
	}
}
