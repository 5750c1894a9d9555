// Package variable implements the top-level façade: Variable, the
// differentiable handle application code actually holds, built on top
// of internal/expr's node contract and internal/tape's record-and-assign.
// Every arithmetic and math-catalog operation in this package returns an
// expr.Node[T] rather than mutating anything — the tape is only touched
// when a caller explicitly commits a built expression to a Variable via
// Assign or one of the compound-assignment methods, mirroring the
// assignment-operator boundary: plain-scalar assignment bypasses the
// tape, while expression assignment triggers record-and-assign.
package variable

import (
	"math"

	"github.com/atl-go/atl/internal/expr"
	"github.com/atl-go/atl/internal/tape"
	"github.com/atl-go/atl/internal/vinfo"
	"github.com/atl-go/atl/transform"
)

// Real re-exports the scalar constraint this package is generic over.
type Real = tape.Real

// Variable is a differentiable scalar handle: a named leaf identity plus
// the tape it assigns into. It embeds expr.Leaf so a bare Variable
// already satisfies expr.Node[T] — it can be passed directly to any
// package-level math-catalog function or used as an operand in an
// arithmetic expression, the same way any other node can.
//
// Bounds and the transform that maps between external (this Variable's
// Value) and internal space travel with the handle itself rather than
// the shared Info: two Copy()s of the same leaf may legitimately be
// bound differently by two different bounded-parameter optimizers,
// while they must still share one identity and one adjoint.
type Variable[T Real] struct {
	expr.Leaf[T]
	tp *tape.GradientStructure[T]

	bounded   bool
	min, max  T
	transform transform.ParameterTransformation[T]
}

// New allocates a fresh, unnamed Variable on tp with the given initial
// value.
func New[T Real](tp *tape.GradientStructure[T], value T) Variable[T] {
	return Variable[T]{Leaf: expr.NewLeaf(vinfo.New(value)), tp: tp}
}

// NewNamed allocates a fresh Variable carrying a diagnostic name.
func NewNamed[T Real](tp *tape.GradientStructure[T], name string, value T) Variable[T] {
	info := vinfo.New(value)
	info.Name = name
	return Variable[T]{Leaf: expr.NewLeaf(info), tp: tp}
}

// Bound attaches [min, max] and a ParameterTransformation to this
// handle, turning it into a bounded variable. The current value is
// clamped into range using the same NaN-to-midpoint convention SetValue
// uses.
func (v *Variable[T]) Bound(min, max T, tf transform.ParameterTransformation[T]) {
	v.bounded = true
	v.min, v.max = min, max
	v.transform = tf
	v.SetValue(v.Info.VValue)
}

// IsBounded reports whether Bound has been called on this handle.
func (v Variable[T]) IsBounded() bool { return v.bounded }

// MinBoundary and MaxBoundary return the attached bounds. They are zero
// when the variable is unbounded.
func (v Variable[T]) MinBoundary() T { return v.min }
func (v Variable[T]) MaxBoundary() T { return v.max }

// InternalValue returns the unbounded internal-space value the attached
// ParameterTransformation maps this Variable's external Value to. For
// an unbounded variable this is just Value.
func (v Variable[T]) InternalValue() T {
	if !v.bounded {
		return v.Info.VValue
	}
	return v.transform.External2Internal(v.Info.VValue, v.min, v.max)
}

// Grad returns the adjoint accumulated on this leaf by the most recent
// reverse sweep.
func (v Variable[T]) Grad() T { return v.Info.DValue }

// Name returns the variable's diagnostic name, or the empty string if
// it was constructed with New rather than NewNamed.
func (v Variable[T]) Name() string { return v.Info.Name }

// Tape returns the GradientStructure this Variable assigns into.
func (v Variable[T]) Tape() *tape.GradientStructure[T] { return v.tp }

// Copy is the façade's copy constructor: it returns a handle sharing
// this Variable's identity and increments its reference count. Use
// this, not a plain struct copy, when a second handle to the same leaf
// needs to independently Release it later — every Retain must be
// paired with a Release.
func (v Variable[T]) Copy() Variable[T] {
	v.Info.Retain()
	return v
}

// Release is the façade's destructor: it decrements the reference count
// and returns what remains.
func (v Variable[T]) Release() int { return v.Info.Release() }

// SetValue is plain-scalar assignment: it severs this Variable from
// whatever expression last produced its value and re-seeds it as a
// fresh independent leaf, without touching the tape. This is the
// "assignment from a scalar bypasses the tape" half of the
// assignment-operator boundary. When the variable is bounded, x is
// clamped into [min, max]; a NaN x is replaced by the midpoint.
func (v *Variable[T]) SetValue(x T) {
	if v.bounded {
		switch {
		case math.IsNaN(float64(x)):
			x = (v.min + v.max) / 2
		case x < v.min:
			x = v.min
		case x > v.max:
			x = v.max
		}
	}
	old := v.Info
	fresh := vinfo.New(x)
	fresh.Name = old.Name
	v.Leaf = expr.NewLeaf(fresh)
	old.Release()
}

// Assign is expression assignment: it commits e as this Variable's new
// value via the tape's record-and-assign procedure, then rebinds the
// Variable to a freshly minted dependent identity. A fresh identity is
// minted rather than reusing the old one because e may itself reference
// this Variable (v.MulAssign(c) builds Multiply(v, c)) — record-and-assign
// requires the dependent's id to be distinct from every independent id
// the expression touches.
func (v *Variable[T]) Assign(e expr.Node[T]) {
	old := v.Info
	fresh := vinfo.New(old.VValue)
	fresh.Name = old.Name
	v.tp.Assign(fresh, e)
	v.Leaf = expr.NewLeaf(fresh)
	old.Release()
}

// AddAssign, SubAssign, MulAssign, and DivAssign are the façade's
// compound-assignment operators (+=, -=, *=, /=): each builds the
// corresponding binary expression against this Variable's current value
// and commits it via Assign.
func (v *Variable[T]) AddAssign(e expr.Node[T]) { v.Assign(expr.NewAdd[T](*v, e)) }
func (v *Variable[T]) SubAssign(e expr.Node[T]) { v.Assign(expr.NewSubtract[T](*v, e)) }
func (v *Variable[T]) MulAssign(e expr.Node[T]) { v.Assign(expr.NewMultiply[T](*v, e)) }
func (v *Variable[T]) DivAssign(e expr.Node[T]) { v.Assign(expr.NewDivide[T](*v, e)) }

// Inc and Dec are the façade's pre/post increment and decrement
// operators (++, --); reverse-mode AD has no notion of evaluation-order
// side effects distinguishing pre- from post-increment, so both map to
// the same committed assignment.
func (v *Variable[T]) Inc() { v.Assign(expr.NewAdd[T](*v, expr.NewConst[T](1))) }
func (v *Variable[T]) Dec() { v.Assign(expr.NewSubtract[T](*v, expr.NewConst[T](1))) }
