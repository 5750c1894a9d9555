package expr

// Sinh represents the unary node sinh(g): f'=cosh(g), f''=sinh(g),
// f'''=cosh(g).
type Sinh[T Real] struct{ unary[T] }

// NewSinh builds a Sinh node over g.
func NewSinh[T Real](g Node[T]) Sinh[T] { return Sinh[T]{unary[T]{g}} }

func (n Sinh[T]) Value() T { return sinh(n.inner.Value()) }

func (n Sinh[T]) IsNonlinear() bool   { return true }
func (n Sinh[T]) IsNonFunction() bool { return false }

func (n Sinh[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Sinh[T]) derivs() (fp, fpp, fppp T) {
	u := n.inner.Value()
	fp, fpp, fppp = cosh(u), sinh(u), cosh(u)
	return
}

func (n Sinh[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n Sinh[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Sinh[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Sinh[T]) Clone() Node[T] { return Sinh[T]{unary[T]{n.inner.Clone()}} }

// Cosh represents the unary node cosh(g): f'=sinh(g), f''=cosh(g),
// f'''=sinh(g).
type Cosh[T Real] struct{ unary[T] }

// NewCosh builds a Cosh node over g.
func NewCosh[T Real](g Node[T]) Cosh[T] { return Cosh[T]{unary[T]{g}} }

func (n Cosh[T]) Value() T { return cosh(n.inner.Value()) }

func (n Cosh[T]) IsNonlinear() bool   { return true }
func (n Cosh[T]) IsNonFunction() bool { return false }

func (n Cosh[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Cosh[T]) derivs() (fp, fpp, fppp T) {
	u := n.inner.Value()
	fp, fpp, fppp = sinh(u), cosh(u), sinh(u)
	return
}

func (n Cosh[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n Cosh[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Cosh[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Cosh[T]) Clone() Node[T] { return Cosh[T]{unary[T]{n.inner.Clone()}} }

// Tanh represents the unary node tanh(g).
// f' = 1-f², f'' = -2*f*f', f''' = -2*(f'² + f*f'').
type Tanh[T Real] struct{ unary[T] }

// NewTanh builds a Tanh node over g.
func NewTanh[T Real](g Node[T]) Tanh[T] { return Tanh[T]{unary[T]{g}} }

func (n Tanh[T]) Value() T { return tanh(n.inner.Value()) }

func (n Tanh[T]) IsNonlinear() bool   { return true }
func (n Tanh[T]) IsNonFunction() bool { return false }

func (n Tanh[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Tanh[T]) derivs() (fp, fpp, fppp T) {
	f := n.Value()
	fp = 1 - f*f
	fpp = -2 * f * fp
	fppp = -2 * (fp*fp + f*fpp)
	return
}

func (n Tanh[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n Tanh[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Tanh[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Tanh[T]) Clone() Node[T] { return Tanh[T]{unary[T]{n.inner.Clone()}} }
