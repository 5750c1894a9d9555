package expr

// PowVar represents a^b where both the base and the exponent are
// differentiable subexpressions, as opposed to Pow's constant-exponent
// form in transcendental.go. Rather than re-deriving the two-variable
// Faà di Bruno expansion by hand, PowVar is built as
// exp(b * ln(a)): Exp, Multiply, and Log already implement the correct
// chain and product rules, so composing them is both correct and the
// same "operator expressed through its neighbors" strategy Divide uses
// for the reciprocal (div.go).
type PowVar[T Real] struct {
	inner Node[T]
}

// NewPowVar builds a^b over differentiable a and b.
func NewPowVar[T Real](a, b Node[T]) PowVar[T] {
	return PowVar[T]{inner: NewExp[T](NewMultiply[T](b, NewLog[T](a)))}
}

func (n PowVar[T]) Value() T { return n.inner.Value() }

func (n PowVar[T]) PushIDs(ids *IDSet[T], includeDependent bool) {
	n.inner.PushIDs(ids, includeDependent)
}

func (n PowVar[T]) PushIDsU32(ids *IDSetU32) { n.inner.PushIDsU32(ids) }

func (n PowVar[T]) IsNonlinear() bool   { return true }
func (n PowVar[T]) IsNonFunction() bool { return false }

func (n PowVar[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(flag) }

func (n PowVar[T]) PushNLInteractions(ids *IDSet[T]) { n.inner.PushNLInteractions(ids) }

func (n PowVar[T]) EvalD(a uint32) T        { return n.inner.EvalD(a) }
func (n PowVar[T]) EvalD2(a, b uint32) T    { return n.inner.EvalD2(a, b) }
func (n PowVar[T]) EvalD3(a, b, c uint32) T { return n.inner.EvalD3(a, b, c) }

func (n PowVar[T]) Clone() Node[T] { return PowVar[T]{inner: n.inner.Clone()} }
