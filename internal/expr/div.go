package expr

// Divide represents the binary node a/b. It is built from the reciprocal
// chain rule applied to b (h(u) = 1/u, h' = -1/u², h'' = 2/u³,
// h''' = -6/u⁴) composed with the Multiply product rule against a —
// "operator expressed via its neighbors" rather than a hand-derived
// quotient-rule expansion.
type Divide[T Real] struct {
	binary[T]
}

// NewDivide builds a Divide node over a and b.
func NewDivide[T Real](a, b Node[T]) Divide[T] { return Divide[T]{binary[T]{a, b}} }

func (n Divide[T]) Value() T { return n.a.Value() / n.b.Value() }

func (n Divide[T]) IsNonlinear() bool  { return true }
func (n Divide[T]) IsNonFunction() bool { return false }

func (n Divide[T]) MakeNLInteractions(flag bool) {
	n.a.MakeNLInteractions(true)
	n.b.MakeNLInteractions(true)
}

// reciprocal1/2/3 evaluate h(u)=1/u's chain rule against b, given b's own
// value and derivatives up to the requested order.
func reciprocal1[T Real](bV, bA T) T {
	return -bA / (bV * bV)
}

func reciprocal2[T Real](bV, bA, bB, bAB T) T {
	return 2*bA*bB/(bV*bV*bV) - bAB/(bV*bV)
}

func reciprocal3[T Real](bV, bA, bB, bC, bAB, bAC, bBC, bABC T) T {
	return -6*bA*bB*bC/(bV*bV*bV*bV) +
		2*(bAB*bC+bAC*bB+bBC*bA)/(bV*bV*bV) -
		bABC/(bV*bV)
}

func (n Divide[T]) EvalD(x uint32) T {
	bV := n.b.Value()
	r := reciprocal1(bV, n.b.EvalD(x))
	return prod1(n.a.EvalD(x), 1/bV, n.a.Value(), r)
}

func (n Divide[T]) EvalD2(x, y uint32) T {
	bV := n.b.Value()
	bA, bB := n.b.EvalD(x), n.b.EvalD(y)
	bAB := n.b.EvalD2(x, y)
	rA := reciprocal1(bV, bA)
	rB := reciprocal1(bV, bB)
	rAB := reciprocal2(bV, bA, bB, bAB)
	return prod2(
		n.a.EvalD2(x, y), n.a.EvalD(x), n.a.EvalD(y), n.a.Value(),
		rAB, rA, rB, 1/bV,
	)
}

func (n Divide[T]) EvalD3(x, y, z uint32) T {
	bV := n.b.Value()
	bA, bB, bC := n.b.EvalD(x), n.b.EvalD(y), n.b.EvalD(z)
	bAB, bAC, bBC := n.b.EvalD2(x, y), n.b.EvalD2(x, z), n.b.EvalD2(y, z)
	bABC := n.b.EvalD3(x, y, z)

	rA := reciprocal1(bV, bA)
	rB := reciprocal1(bV, bB)
	rC := reciprocal1(bV, bC)
	rAB := reciprocal2(bV, bA, bB, bAB)
	rAC := reciprocal2(bV, bA, bC, bAC)
	rBC := reciprocal2(bV, bB, bC, bBC)
	rABC := reciprocal3(bV, bA, bB, bC, bAB, bAC, bBC, bABC)

	return prod3(
		n.a.EvalD3(x, y, z), n.a.EvalD2(x, y), n.a.EvalD2(x, z), n.a.EvalD2(y, z),
		n.a.EvalD(x), n.a.EvalD(y), n.a.EvalD(z), n.a.Value(),
		rABC, rAB, rAC, rBC,
		rA, rB, rC, 1/bV,
	)
}

func (n Divide[T]) Clone() Node[T] {
	return Divide[T]{binary[T]{n.a.Clone(), n.b.Clone()}}
}
