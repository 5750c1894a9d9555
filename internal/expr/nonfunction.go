package expr

// Fabs, Floor, and Ceil are the "non-function" operators: IsNonFunction
// returns true, and every derivative is defined as the right-hand limit
// at a discontinuity rather than left undefined.

// Fabs represents the unary node |g|. Its derivative is sign(g), with
// sign(0) taken as +1 (the right-hand limit); second and third
// derivatives are zero everywhere away from the kink, and zero at the
// kink under the same right-hand-limit convention.
type Fabs[T Real] struct{ unary[T] }

// NewFabs builds a Fabs node over g.
func NewFabs[T Real](g Node[T]) Fabs[T] { return Fabs[T]{unary[T]{g}} }

func (n Fabs[T]) Value() T { return fabs(n.inner.Value()) }

func (n Fabs[T]) IsNonlinear() bool   { return true }
func (n Fabs[T]) IsNonFunction() bool { return true }

func (n Fabs[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Fabs[T]) sign() T {
	if n.inner.Value() < 0 {
		return -1
	}
	return 1
}

func (n Fabs[T]) EvalD(a uint32) T {
	return chain1(n.sign(), n.inner.EvalD(a))
}

func (n Fabs[T]) EvalD2(a, b uint32) T {
	return chain2(0, n.sign(), n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Fabs[T]) EvalD3(a, b, c uint32) T {
	return chain3(0, 0, n.sign(),
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Fabs[T]) Clone() Node[T] { return Fabs[T]{unary[T]{n.inner.Clone()}} }

// Floor represents the unary node floor(g). It is locally constant
// almost everywhere, and by the right-hand-limit convention its
// derivative is zero even at integer points.
type Floor[T Real] struct{ unary[T] }

// NewFloor builds a Floor node over g.
func NewFloor[T Real](g Node[T]) Floor[T] { return Floor[T]{unary[T]{g}} }

func (n Floor[T]) Value() T { return floor(n.inner.Value()) }

func (n Floor[T]) IsNonlinear() bool   { return true }
func (n Floor[T]) IsNonFunction() bool { return true }

func (n Floor[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Floor[T]) EvalD(a uint32) T        { return 0 }
func (n Floor[T]) EvalD2(a, b uint32) T    { return 0 }
func (n Floor[T]) EvalD3(a, b, c uint32) T { return 0 }

func (n Floor[T]) Clone() Node[T] { return Floor[T]{unary[T]{n.inner.Clone()}} }

// Ceil represents the unary node ceil(g). Same right-hand-limit
// convention as Floor: derivative is zero everywhere.
type Ceil[T Real] struct{ unary[T] }

// NewCeil builds a Ceil node over g.
func NewCeil[T Real](g Node[T]) Ceil[T] { return Ceil[T]{unary[T]{g}} }

func (n Ceil[T]) Value() T { return ceil(n.inner.Value()) }

func (n Ceil[T]) IsNonlinear() bool   { return true }
func (n Ceil[T]) IsNonFunction() bool { return true }

func (n Ceil[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Ceil[T]) EvalD(a uint32) T        { return 0 }
func (n Ceil[T]) EvalD2(a, b uint32) T    { return 0 }
func (n Ceil[T]) EvalD3(a, b, c uint32) T { return 0 }

func (n Ceil[T]) Clone() Node[T] { return Ceil[T]{unary[T]{n.inner.Clone()}} }
