package tape

// ResetAdjoints zeroes the accumulated adjoint on every leaf and
// dependent the tape currently references, ahead of a fresh sweep.
// Forward values and dependency bookkeeping are untouched.
func (g *GradientStructure[T]) ResetAdjoints() {
	for _, e := range g.stack {
		e.W.ResetAdjoints()
		for _, leaf := range e.IDs {
			leaf.ResetAdjoints()
		}
	}
}

// Accumulate runs the gradient-only reverse sweep: it seeds the final
// recorded entry's dependent with an adjoint of 1 and walks the tape
// newest to oldest, accumulating ∂(final output)/∂xi into each leaf's
// DValue. Every trace level except DynamicRecord populates enough data
// for this sweep; DynamicRecord entries evaluate EvalD lazily. Panics
// with a *FatalError if the tape has no recorded entries.
func (g *GradientStructure[T]) Accumulate() {
	if len(g.stack) == 0 {
		fatalf("accumulate: tape has no recorded entries")
	}
	g.ResetAdjoints()

	last := g.stack[len(g.stack)-1]
	last.W.DValue = 1

	for idx := len(g.stack) - 1; idx >= 0; idx-- {
		e := g.stack[idx]
		a := e.W.DValue
		if a == 0 {
			continue
		}
		for i, leaf := range e.IDs {
			leaf.DValue += a * e.firstAt(i)
		}
	}
}

// AccumulateGradientAndHessian runs the gradient-and-Hessian sweep:
// alongside the gradient (written into each leaf's DValue as Accumulate
// does), it
// maintains a sparse symmetric Hessian store using the edge-pushing
// algorithm — each entry's dependent a "pushes" its already-accumulated
// partials (H(a,a) and H(a,m) for every other leaf m it is related to)
// onto its own predecessors, weighted by the local first derivatives,
// before a's row and column are retired. Panics with a *FatalError if
// the tape is empty or an entry lacks second-order data.
func (g *GradientStructure[T]) AccumulateGradientAndHessian() *HessianStore[T] {
	if len(g.stack) == 0 {
		fatalf("accumulate-gradient-and-hessian: tape has no recorded entries")
	}
	g.ResetAdjoints()
	hs := newHessianStore[T]()

	last := g.stack[len(g.stack)-1]
	last.W.DValue = 1

	for idx := len(g.stack) - 1; idx >= 0; idx-- {
		e := g.stack[idx]
		a := e.W
		n := e.n()
		adval := a.DValue

		for i, leaf := range e.IDs {
			leaf.DValue += adval * e.firstAt(i)
		}

		for _, nb := range hs.neighbors(a.ID) {
			if nb.other == a.ID {
				for i := 0; i < n; i++ {
					fi := e.firstAt(i)
					for j := i; j < n; j++ {
						fj := e.firstAt(j)
						hs.add(e.IDs[i].ID, e.IDs[j].ID, nb.value*fi*fj)
					}
				}
				continue
			}
			for i := 0; i < n; i++ {
				v := nb.value * e.firstAt(i)
				if e.IDs[i].ID == nb.other {
					// Diagonal cell: f_i*H(a,m) + f_m*H(a,i) with i == m.
					v *= 2
				}
				hs.add(e.IDs[i].ID, nb.other, v)
			}
		}

		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				sm, ok := e.secondMixedAt(i, j)
				if !ok {
					fatalf("accumulate-gradient-and-hessian: entry for id %d has no second-order data; record under SecondOrder, SecondOrderMixedPartials, GradientAndHessian, ThirdOrderMixedPartials, or DynamicRecord", a.ID)
				}
				if adval == 0 && sm == 0 {
					continue
				}
				hs.add(e.IDs[i].ID, e.IDs[j].ID, adval*sm)
			}
		}

		hs.zeroRowCol(a.ID)
	}
	return hs
}

// AccumulateThirdOrderMixed runs the third-order sweep: it produces the
// gradient (as Accumulate), the Hessian (as AccumulateGradientAndHessian,
// via the same edge-pushing mechanics), and a sparse symmetric
// third-order tensor.
//
// The third-order push is exact for nonlinear interactions that arise
// within a single recorded statement (every worked scenario this engine
// ships with is of this shape): it combines the already-accumulated
// pure-a third derivative and a's existing Hessian relationship with
// itself with this entry's local third_mixed tensor via the standard
// one-variable Faà di Bruno expansion. It does not additionally
// edge-push a's existing third-order relationships with leaves outside
// this entry onto the new leaves the way the Hessian sweep edge-pushes
// H(a,m); a third-order interaction that only emerges from composing two
// or more statements nonlinearly is not captured.
func (g *GradientStructure[T]) AccumulateThirdOrderMixed() (*HessianStore[T], *ThirdOrderStore[T]) {
	if len(g.stack) == 0 {
		fatalf("accumulate-third-order-mixed: tape has no recorded entries")
	}
	g.ResetAdjoints()
	hs := newHessianStore[T]()
	ts := newThirdOrderStore[T]()

	last := g.stack[len(g.stack)-1]
	last.W.DValue = 1

	for idx := len(g.stack) - 1; idx >= 0; idx-- {
		e := g.stack[idx]
		a := e.W
		n := e.n()
		adval := a.DValue
		haa := hs.get(a.ID, a.ID)

		for i, leaf := range e.IDs {
			leaf.DValue += adval * e.firstAt(i)
		}

		for _, nb := range hs.neighbors(a.ID) {
			if nb.other == a.ID {
				for i := 0; i < n; i++ {
					fi := e.firstAt(i)
					for j := i; j < n; j++ {
						fj := e.firstAt(j)
						hs.add(e.IDs[i].ID, e.IDs[j].ID, nb.value*fi*fj)
					}
				}
				continue
			}
			for i := 0; i < n; i++ {
				v := nb.value * e.firstAt(i)
				if e.IDs[i].ID == nb.other {
					v *= 2
				}
				hs.add(e.IDs[i].ID, nb.other, v)
			}
		}
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				sm, ok := e.secondMixedAt(i, j)
				if !ok {
					fatalf("accumulate-third-order-mixed: entry for id %d has no second-order data", a.ID)
				}
				hs.add(e.IDs[i].ID, e.IDs[j].ID, adval*sm)
			}
		}

		taaa := ts.get(a.ID, a.ID, a.ID)
		for i := 0; i < n; i++ {
			fi := e.firstAt(i)
			for j := i; j < n; j++ {
				fj := e.firstAt(j)
				aij, ok := e.secondMixedAt(i, j)
				if !ok {
					fatalf("accumulate-third-order-mixed: entry for id %d has no second-order data", a.ID)
				}
				for k := j; k < n; k++ {
					fk := e.firstAt(k)
					aik, _ := e.secondMixedAt(i, k)
					ajk, _ := e.secondMixedAt(j, k)
					aijk, ok := e.thirdMixedAt(i, j, k)
					if !ok {
						fatalf("accumulate-third-order-mixed: entry for id %d has no third-order data; record under ThirdOrder, ThirdOrderMixedPartials, or DynamicRecord", a.ID)
					}
					v := taaa*fi*fj*fk +
						haa*(fi*ajk+fj*aik+fk*aij) +
						adval*aijk
					ts.add(e.IDs[i].ID, e.IDs[j].ID, e.IDs[k].ID, v)
				}
			}
		}

		hs.zeroRowCol(a.ID)
		ts.zeroRowCol(a.ID)
	}
	return hs, ts
}
