package expr

import "math"

// Sqrt represents the unary node sqrt(g).
type Sqrt[T Real] struct {
	unary[T]
}

// NewSqrt builds a Sqrt node over g.
func NewSqrt[T Real](g Node[T]) Sqrt[T] { return Sqrt[T]{unary[T]{g}} }

func (n Sqrt[T]) Value() T { return sqrt(n.inner.Value()) }

func (n Sqrt[T]) IsNonlinear() bool  { return true }
func (n Sqrt[T]) IsNonFunction() bool { return false }

func (n Sqrt[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Sqrt[T]) derivs() (fp, fpp, fppp T) {
	s := sqrt(n.inner.Value())
	fp = 1 / (2 * s)
	fpp = -1 / (4 * s * s * s)
	fppp = T(3) / (8 * s * s * s * s * s)
	return
}

func (n Sqrt[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n Sqrt[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Sqrt[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Sqrt[T]) Clone() Node[T] { return Sqrt[T]{unary[T]{n.inner.Clone()}} }

// Exp represents the unary node exp(g). exp is its own derivative at
// every order, so f'=f''=f'''=exp(g).
type Exp[T Real] struct {
	unary[T]
}

// NewExp builds an Exp node over g.
func NewExp[T Real](g Node[T]) Exp[T] { return Exp[T]{unary[T]{g}} }

func (n Exp[T]) Value() T { return exp(n.inner.Value()) }

func (n Exp[T]) IsNonlinear() bool  { return true }
func (n Exp[T]) IsNonFunction() bool { return false }

func (n Exp[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Exp[T]) EvalD(a uint32) T {
	f := n.Value()
	return chain1(f, n.inner.EvalD(a))
}

func (n Exp[T]) EvalD2(a, b uint32) T {
	f := n.Value()
	return chain2(f, f, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Exp[T]) EvalD3(a, b, c uint32) T {
	f := n.Value()
	return chain3(f, f, f,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Exp[T]) Clone() Node[T] { return Exp[T]{unary[T]{n.inner.Clone()}} }

// Log represents the unary node ln(g). f'=1/g, f''=-1/g², f'''=2/g³.
type Log[T Real] struct {
	unary[T]
}

// NewLog builds a Log node over g.
func NewLog[T Real](g Node[T]) Log[T] { return Log[T]{unary[T]{g}} }

func (n Log[T]) Value() T { return logE(n.inner.Value()) }

func (n Log[T]) IsNonlinear() bool  { return true }
func (n Log[T]) IsNonFunction() bool { return false }

func (n Log[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Log[T]) derivs() (fp, fpp, fppp T) {
	u := n.inner.Value()
	fp = 1 / u
	fpp = -1 / (u * u)
	fppp = 2 / (u * u * u)
	return
}

func (n Log[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n Log[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Log[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Log[T]) Clone() Node[T] { return Log[T]{unary[T]{n.inner.Clone()}} }

// Log10 represents the unary node log10(g) = ln(g)/ln(10).
type Log10[T Real] struct {
	unary[T]
}

// NewLog10 builds a Log10 node over g.
func NewLog10[T Real](g Node[T]) Log10[T] { return Log10[T]{unary[T]{g}} }

var ln10 = math.Ln10

func (n Log10[T]) Value() T { return log10(n.inner.Value()) }

func (n Log10[T]) IsNonlinear() bool  { return true }
func (n Log10[T]) IsNonFunction() bool { return false }

func (n Log10[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Log10[T]) derivs() (fp, fpp, fppp T) {
	u := n.inner.Value()
	l := T(ln10)
	fp = 1 / (u * l)
	fpp = -1 / (u * u * l)
	fppp = 2 / (u * u * u * l)
	return
}

func (n Log10[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n Log10[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Log10[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Log10[T]) Clone() Node[T] { return Log10[T]{unary[T]{n.inner.Clone()}} }

// Pow represents the unary node g^c for a constant real exponent c.
// f'=c*g^(c-1), f''=c(c-1)*g^(c-2), f'''=c(c-1)(c-2)*g^(c-3).
type Pow[T Real] struct {
	unary[T]
	Exponent T
}

// NewPow builds a Pow node over g with constant exponent c.
func NewPow[T Real](g Node[T], c T) Pow[T] { return Pow[T]{unary[T]{g}, c} }

func (n Pow[T]) Value() T { return pow(n.inner.Value(), n.Exponent) }

func (n Pow[T]) IsNonlinear() bool  { return true }
func (n Pow[T]) IsNonFunction() bool { return false }

func (n Pow[T]) MakeNLInteractions(flag bool) { n.inner.MakeNLInteractions(true) }

func (n Pow[T]) derivs() (fp, fpp, fppp T) {
	u, c := n.inner.Value(), n.Exponent
	fp = c * pow(u, c-1)
	fpp = c * (c - 1) * pow(u, c-2)
	fppp = c * (c - 1) * (c - 2) * pow(u, c-3)
	return
}

func (n Pow[T]) EvalD(a uint32) T {
	fp, _, _ := n.derivs()
	return chain1(fp, n.inner.EvalD(a))
}

func (n Pow[T]) EvalD2(a, b uint32) T {
	fp, fpp, _ := n.derivs()
	return chain2(fpp, fp, n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD2(a, b))
}

func (n Pow[T]) EvalD3(a, b, c uint32) T {
	fp, fpp, fppp := n.derivs()
	return chain3(fppp, fpp, fp,
		n.inner.EvalD(a), n.inner.EvalD(b), n.inner.EvalD(c),
		n.inner.EvalD2(a, b), n.inner.EvalD2(a, c), n.inner.EvalD2(b, c),
		n.inner.EvalD3(a, b, c))
}

func (n Pow[T]) Clone() Node[T] { return Pow[T]{unary[T]{n.inner.Clone()}, n.Exponent} }
