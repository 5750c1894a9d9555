package expr

// Sin represents the unary node sin(g).
type Sin[T Real] struct{ unary[T] }

// NewSin builds a Sin node over g.
func NewSin[T Real](g Node[T]) Sin[T] { return Sin[T]{unary[T]{g}} }

func (n Sin[T]) Value() T { return sin(n.inner.Value()) }

func (n Sin[T]) IsNonlinear() bool   { return true }
func (n Sin[T]) IsNonFunction() bool { return false }

func (n Sin[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Sin[T]) derivs() (fp, fpp, fppp T) {
	u := n.inner.Value()
	fp, fpp, fppp = cos(u), -sin(u), -cos(u)
	return
}

func (n Sin[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n Sin[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Sin[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Sin[T]) Clone() Node[T] { return Sin[T]{unary[T]{n.inner.Clone()}} }

// Cos represents the unary node cos(g).
type Cos[T Real] struct{ unary[T] }

// NewCos builds a Cos node over g.
func NewCos[T Real](g Node[T]) Cos[T] { return Cos[T]{unary[T]{g}} }

func (n Cos[T]) Value() T { return cos(n.inner.Value()) }

func (n Cos[T]) IsNonlinear() bool   { return true }
func (n Cos[T]) IsNonFunction() bool { return false }

func (n Cos[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Cos[T]) derivs() (fp, fpp, fppp T) {
	u := n.inner.Value()
	fp, fpp, fppp = -sin(u), -cos(u), sin(u)
	return
}

func (n Cos[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n Cos[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Cos[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Cos[T]) Clone() Node[T] { return Cos[T]{unary[T]{n.inner.Clone()}} }

// Tan represents the unary node tan(g). f' = 1+f², f'' = 2*f*f',
// f''' = 2*f'² + 2*f*f'' (derived from sec² = 1+tan²).
type Tan[T Real] struct{ unary[T] }

// NewTan builds a Tan node over g.
func NewTan[T Real](g Node[T]) Tan[T] { return Tan[T]{unary[T]{g}} }

func (n Tan[T]) Value() T { return tan(n.inner.Value()) }

func (n Tan[T]) IsNonlinear() bool   { return true }
func (n Tan[T]) IsNonFunction() bool { return false }

func (n Tan[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Tan[T]) derivs() (fp, fpp, fppp T) {
	f := n.Value()
	fp = 1 + f*f
	fpp = 2 * f * fp
	fppp = 2*fp*fp + 2*f*fpp
	return
}

func (n Tan[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n Tan[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Tan[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Tan[T]) Clone() Node[T] { return Tan[T]{unary[T]{n.inner.Clone()}} }

// ASin represents the unary node asin(g).
// f' = (1-u²)^(-1/2), f'' = u*(1-u²)^(-3/2), f''' = (1+2u²)*(1-u²)^(-5/2).
type ASin[T Real] struct{ unary[T] }

// NewASin builds an ASin node over g.
func NewASin[T Real](g Node[T]) ASin[T] { return ASin[T]{unary[T]{g}} }

func (n ASin[T]) Value() T { return asin(n.inner.Value()) }

func (n ASin[T]) IsNonlinear() bool   { return true }
func (n ASin[T]) IsNonFunction() bool { return false }

func (n ASin[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n ASin[T]) derivs() (fp, fpp, fppp T) {
	u := n.inner.Value()
	d := 1 - u*u
	s := sqrt(d)
	fp = 1 / s
	fpp = u / (d * s)
	fppp = (1 + 2*u*u) / (d * d * s)
	return
}

func (n ASin[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n ASin[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n ASin[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n ASin[T]) Clone() Node[T] { return ASin[T]{unary[T]{n.inner.Clone()}} }

// ACos represents the unary node acos(g) = -asin(g) + const, so it shares
// ASin's derivative magnitudes with flipped signs.
type ACos[T Real] struct{ unary[T] }

// NewACos builds an ACos node over g.
func NewACos[T Real](g Node[T]) ACos[T] { return ACos[T]{unary[T]{g}} }

func (n ACos[T]) Value() T { return acos(n.inner.Value()) }

func (n ACos[T]) IsNonlinear() bool   { return true }
func (n ACos[T]) IsNonFunction() bool { return false }

func (n ACos[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n ACos[T]) derivs() (fp, fpp, fppp T) {
	u := n.inner.Value()
	d := 1 - u*u
	s := sqrt(d)
	fp = -1 / s
	fpp = -u / (d * s)
	fppp = -(1 + 2*u*u) / (d * d * s)
	return
}

func (n ACos[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n ACos[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n ACos[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n ACos[T]) Clone() Node[T] { return ACos[T]{unary[T]{n.inner.Clone()}} }

// ATan represents the unary node atan(g).
// f' = 1/(1+u²), f'' = -2u/(1+u²)², f''' = (6u²-2)/(1+u²)³.
type ATan[T Real] struct{ unary[T] }

// NewATan builds an ATan node over g.
func NewATan[T Real](g Node[T]) ATan[T] { return ATan[T]{unary[T]{g}} }

func (n ATan[T]) Value() T { return atan(n.inner.Value()) }

func (n ATan[T]) IsNonlinear() bool   { return true }
func (n ATan[T]) IsNonFunction() bool { return false }

func (n ATan[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n ATan[T]) derivs() (fp, fpp, fppp T) {
	u := n.inner.Value()
	d := 1 + u*u
	fp = 1 / d
	fpp = -2 * u / (d * d)
	fppp = (6*u*u - 2) / (d * d * d)
	return
}

func (n ATan[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n ATan[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n ATan[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n ATan[T]) Clone() Node[T] { return ATan[T]{unary[T]{n.inner.Clone()}} }
