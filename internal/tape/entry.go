package tape

import (
	"github.com/atl-go/atl/internal/expr"
	"github.com/atl-go/atl/internal/vinfo"
)

// StackEntry is one record on the tape: the dependent info a statement
// assigned to, the independent leaves its expression touched, and
// whatever derivative data the active Level asked for.
type StackEntry[T expr.Real] struct {
	W   *vinfo.Info[T]
	IDs []*vinfo.Info[T]

	First       []T // ∂w/∂xi, one per id
	Second      []T // ∂²w/∂xi², diagonal only — SecondOrder/ThirdOrder
	Third       []T // ∂³w/∂xi³, diagonal only — ThirdOrder
	SecondMixed []T // ∂²w/∂xi∂xj, row-major n×n
	ThirdMixed  []T // ∂³w/∂xi∂xj∂xk, row-major n×n×n

	// Expr is populated only under DynamicRecord: a snapshot of the
	// expression tree so derivatives can be evaluated lazily during the
	// reverse sweep instead of at record time.
	Expr expr.Node[T]
}

func (e *StackEntry[T]) n() int { return len(e.IDs) }

func (e *StackEntry[T]) firstAt(i int) T {
	if e.First != nil {
		return e.First[i]
	}
	return e.Expr.EvalD(e.IDs[i].ID)
}

func (e *StackEntry[T]) secondMixedAt(i, j int) (T, bool) {
	n := e.n()
	switch {
	case e.SecondMixed != nil:
		return e.SecondMixed[i*n+j], true
	case e.Expr != nil:
		return e.Expr.EvalD2(e.IDs[i].ID, e.IDs[j].ID), true
	default:
		var zero T
		return zero, false
	}
}

func (e *StackEntry[T]) thirdMixedAt(i, j, k int) (T, bool) {
	n := e.n()
	switch {
	case e.ThirdMixed != nil:
		return e.ThirdMixed[(i*n+j)*n+k], true
	case e.Expr != nil:
		return e.Expr.EvalD3(e.IDs[i].ID, e.IDs[j].ID, e.IDs[k].ID), true
	default:
		var zero T
		return zero, false
	}
}
