package tape_test

import (
	"math"
	"testing"

	"github.com/atl-go/atl/internal/expr"
	"github.com/atl-go/atl/internal/tape"
	"github.com/atl-go/atl/internal/vinfo"
)

func newLeaf(g *tape.GradientStructure[float64], v float64) (expr.Leaf[float64], *vinfo.Info[float64]) {
	info := vinfo.New(v)
	return expr.NewLeaf(info), info
}

func closeEnough(t *testing.T, got, want, tol float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

// Expression assignment, even of a constant expression, grows the tape
// by exactly one entry. Plain-scalar assignment is Variable.SetValue and
// is covered in package variable.
func TestAssign_ExpressionGrowsTapeByOne(t *testing.T) {
	g := tape.New[float64]()
	w := vinfo.New(0.0)

	g.Assign(w, expr.NewConst[float64](5))
	if g.NumEntries() != 1 {
		t.Fatalf("assigning an expression should grow the tape by one entry, got %d", g.NumEntries())
	}
}

func TestAssign_NotRecording_NoEntry(t *testing.T) {
	g := tape.New[float64]()
	g.SetRecording(false)
	w := vinfo.New(0.0)
	x, _ := newLeaf(g, 3)

	g.Assign(w, expr.NewAdd[float64](x, expr.NewConst[float64](1)))

	if g.NumEntries() != 0 {
		t.Fatalf("Assign while not recording should not append a tape entry, got %d", g.NumEntries())
	}
	if w.VValue != 4 {
		t.Fatalf("w.VValue = %v, want 4 (value still updates while not recording)", w.VValue)
	}
}

// Round-trip: identity assignment v = u where u is a leaf.
func TestAccumulate_IdentityAssignment(t *testing.T) {
	g := tape.New[float64]()
	g.SetLevel(tape.Gradient)
	u, _ := newLeaf(g, 7)
	v := vinfo.New(0.0)

	g.Assign(v, u)
	g.Accumulate()

	if v.DValue != 1 {
		t.Fatalf("v.DValue = %v, want 1", v.DValue)
	}
}

// Round-trip: constant assignment yields a zero gradient.
func TestAccumulate_ConstantAssignment(t *testing.T) {
	g := tape.New[float64]()
	g.SetLevel(tape.Gradient)
	w := vinfo.New(0.0)

	g.Assign(w, expr.NewConst[float64](9))
	g.Accumulate()

	// A constant assignment touches no leaves, so there is nothing to
	// check a gradient against — but it must not panic and the tape
	// must show exactly one entry.
	if g.NumEntries() != 1 {
		t.Fatalf("NumEntries() = %d, want 1", g.NumEntries())
	}
}

// End-to-end through the tape: x=3; y=2; z = x*y + sin(x).
func TestScenario1_Accumulate(t *testing.T) {
	g := tape.New[float64]()
	g.SetLevel(tape.GradientAndHessian)

	x, xi := newLeaf(g, 3)
	y, yi := newLeaf(g, 2)

	z := vinfo.New(0.0)
	zExpr := expr.NewAdd[float64](expr.NewMultiply[float64](x, y), expr.NewSin[float64](x))
	g.Assign(z, zExpr)

	hs := g.AccumulateGradientAndHessian()

	closeEnough(t, xi.DValue, 2+math.Cos(3), 1e-9, "dz/dx")
	closeEnough(t, yi.DValue, 3, 1e-9, "dz/dy")
	closeEnough(t, hs.Value(xi.ID, xi.ID), -math.Sin(3), 1e-9, "d2z/dx2")
	closeEnough(t, hs.Value(xi.ID, yi.ID), 1, 1e-9, "d2z/dxdy")
	closeEnough(t, hs.Value(yi.ID, yi.ID), 0, 1e-9, "d2z/dy2")
}

// End-to-end through the third-order sweep: w = x*y*z.
func TestScenario4_AccumulateThirdOrderMixed(t *testing.T) {
	g := tape.New[float64]()
	g.SetLevel(tape.ThirdOrderMixedPartials)

	x, xi := newLeaf(g, 2)
	y, yi := newLeaf(g, 3)
	z, zi := newLeaf(g, 4)

	// w = x*y*z recorded as a single entry — the third-order sweep's
	// documented scope is exact within one entry (see
	// AccumulateThirdOrderMixed's doc comment and DESIGN.md).
	w := vinfo.New(0.0)
	g.Assign(w, expr.NewMultiply[float64](expr.NewMultiply[float64](x, y), z))

	hs, ts := g.AccumulateThirdOrderMixed()

	closeEnough(t, xi.DValue, 12, 1e-9, "dw/dx")
	closeEnough(t, yi.DValue, 8, 1e-9, "dw/dy")
	closeEnough(t, zi.DValue, 6, 1e-9, "dw/dz")

	closeEnough(t, hs.Value(xi.ID, yi.ID), 4, 1e-9, "d2w/dxdy")
	closeEnough(t, hs.Value(xi.ID, zi.ID), 3, 1e-9, "d2w/dxdz")
	closeEnough(t, hs.Value(yi.ID, zi.ID), 2, 1e-9, "d2w/dydz")

	closeEnough(t, ts.Value(xi.ID, yi.ID, zi.ID), 1, 1e-9, "d3w/dxdydz")
}

// SecondOrder/ThirdOrder diagonal levels must equal taking only the
// diagonal of the mixed-partial sweep.
func TestDiagonalLevels_MatchMixedPartialDiagonal(t *testing.T) {
	build := func(level tape.Level) (dx, dxx float64) {
		g := tape.New[float64]()
		g.SetLevel(level)
		x, xi := newLeaf(g, 1.5)
		w := vinfo.New(0.0)
		g.Assign(w, expr.NewMultiply[float64](x, x))

		hs := g.AccumulateGradientAndHessian()
		return xi.DValue, hs.Value(xi.ID, xi.ID)
	}

	dxDiag, hDiag := build(tape.SecondOrder)
	dxMixed, hMixed := build(tape.SecondOrderMixedPartials)

	closeEnough(t, dxDiag, dxMixed, 1e-12, "gradient should agree between SecondOrder and SecondOrderMixedPartials")
	closeEnough(t, hDiag, hMixed, 1e-12, "Hessian diagonal should agree between SecondOrder and SecondOrderMixedPartials")
	// x*x at x=1.5: dw/dx = 2x = 3, d2w/dx2 = 2.
	closeEnough(t, hMixed, 2, 1e-12, "d2(x*x)/dx2")
	closeEnough(t, dxMixed, 3, 1e-12, "d(x*x)/dx")
}

// A dependent info may be reused as an independent in a later
// assignment; the gradient sweep must still chain correctly across the
// two entries.
func TestAccumulate_DependentReusedAsIndependent(t *testing.T) {
	g := tape.New[float64]()
	g.SetLevel(tape.Gradient)

	x, xi := newLeaf(g, 2)
	y, yi := newLeaf(g, 3)

	xy := vinfo.New(0.0)
	g.Assign(xy, expr.NewMultiply[float64](x, y))

	w := vinfo.New(0.0)
	g.Assign(w, expr.NewMultiply[float64](expr.NewLeaf(xy), expr.NewConst[float64](2)))

	g.Accumulate()

	// w = 2*x*y: dw/dx = 2y = 6, dw/dy = 2x = 4.
	closeEnough(t, xi.DValue, 6, 1e-12, "dw/dx across two entries")
	closeEnough(t, yi.DValue, 4, 1e-12, "dw/dy across two entries")
}

func TestAccumulate_EmptyTapePanics(t *testing.T) {
	g := tape.New[float64]()
	defer func() {
		if recover() == nil {
			t.Fatal("Accumulate on an empty tape should panic with a *FatalError")
		}
	}()
	g.Accumulate()
}

func TestAccumulateGradientAndHessian_MissingSecondOrderDataPanics(t *testing.T) {
	g := tape.New[float64]()
	g.SetLevel(tape.FirstOrder)
	x, _ := newLeaf(g, 2)
	w := vinfo.New(0.0)
	g.Assign(w, x)

	defer func() {
		if recover() == nil {
			t.Fatal("AccumulateGradientAndHessian on a FirstOrder-only tape should panic")
		}
	}()
	g.AccumulateGradientAndHessian()
}

func TestResetWithEpoch_RewindsIDGeneratorAndClearsTape(t *testing.T) {
	g := tape.New[float64]()
	x, _ := newLeaf(g, 1)
	w := vinfo.New(0.0)
	g.Assign(w, x)

	if g.NumEntries() == 0 {
		t.Fatal("expected at least one entry before reset")
	}

	g.ResetWithEpoch(500)
	if g.NumEntries() != 0 {
		t.Fatalf("NumEntries() after ResetWithEpoch = %d, want 0", g.NumEntries())
	}

	fresh := vinfo.New[float64](0)
	if fresh.ID != 500 {
		t.Fatalf("ID after ResetWithEpoch(500) = %d, want 500", fresh.ID)
	}
}

func TestDynamicRecord_DefersDerivativeEvaluation(t *testing.T) {
	g := tape.New[float64]()
	g.SetLevel(tape.DynamicRecord)

	x, xi := newLeaf(g, 2)
	w := vinfo.New(0.0)
	g.Assign(w, expr.NewMultiply[float64](x, x))

	g.Accumulate()
	// d(x*x)/dx = 2x = 4 at x=2, evaluated lazily off the cloned tree.
	closeEnough(t, xi.DValue, 4, 1e-12, "dw/dx under DynamicRecord")
}
