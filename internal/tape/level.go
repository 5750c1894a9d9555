package tape

// Level selects which derivative orders a StackEntry captures per
// assignment.
type Level int

const (
	// FirstOrder captures only entry.First (∂w/∂xi).
	FirstOrder Level = iota
	// SecondOrder captures First plus the diagonal entry.Second
	// (∂²w/∂xi²), with off-diagonal cross terms synthesized as zero so
	// the general mixed-partial sweep can still be reused — this level
	// is equivalent to taking only the diagonal of the mixed-partial
	// sweep.
	SecondOrder
	// ThirdOrder additionally captures the diagonal entry.Third
	// (∂³w/∂xi³).
	ThirdOrder
	// SecondOrderMixedPartials captures the full n×n entry.SecondMixed
	// grid and tracks nonlinear interactions.
	SecondOrderMixedPartials
	// ThirdOrderMixedPartials captures SecondMixed and the full n³
	// entry.ThirdMixed grid.
	ThirdOrderMixedPartials
	// Gradient captures only entry.First, exactly as FirstOrder does.
	Gradient
	// GradientAndHessian is SecondOrderMixedPartials under the calling
	// convention that callers query Value(i,j) with j≤i. This
	// implementation always stores (and returns) the full symmetric
	// grid, so the two trace levels behave identically here.
	GradientAndHessian
	// DynamicRecord defers all derivative evaluation: the entry stores a
	// clone of the expression tree instead of derivative arrays.
	DynamicRecord
)

func (l Level) String() string {
	switch l {
	case FirstOrder:
		return "FIRST_ORDER"
	case SecondOrder:
		return "SECOND_ORDER"
	case ThirdOrder:
		return "THIRD_ORDER"
	case SecondOrderMixedPartials:
		return "SECOND_ORDER_MIXED_PARTIALS"
	case ThirdOrderMixedPartials:
		return "THIRD_ORDER_MIXED_PARTIALS"
	case Gradient:
		return "GRADIENT"
	case GradientAndHessian:
		return "GRADIENT_AND_HESSIAN"
	case DynamicRecord:
		return "DYNAMIC_RECORD"
	default:
		return "UNKNOWN_TRACE_LEVEL"
	}
}

// usesMixedPartials reports whether a level wants PushIDs' dependent
// leaves marked as participating in a nonlinear chain and the
// dependent's Dependencies set recorded. Assign does not set any leaf's
// PushStart under any level.
func (l Level) usesMixedPartials() bool {
	switch l {
	case SecondOrderMixedPartials, GradientAndHessian, ThirdOrderMixedPartials:
		return true
	default:
		return false
	}
}

func (l Level) wantsSecond() bool {
	switch l {
	case SecondOrder, ThirdOrder, SecondOrderMixedPartials, GradientAndHessian, ThirdOrderMixedPartials:
		return true
	default:
		return false
	}
}

func (l Level) wantsThird() bool {
	switch l {
	case ThirdOrder, ThirdOrderMixedPartials:
		return true
	default:
		return false
	}
}

func (l Level) wantsFullMixedGrid() bool {
	switch l {
	case SecondOrderMixedPartials, GradientAndHessian, ThirdOrderMixedPartials:
		return true
	default:
		return false
	}
}
