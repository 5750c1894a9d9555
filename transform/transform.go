// Package transform implements ParameterTransformation, an external
// collaborator contract: a bounded-parameter map between an external
// value constrained to [min, max] and an unbounded internal value the
// core never sees directly. Variable.InternalValue (package variable) is
// the only call site in this module that invokes these maps — the
// reverse sweep and the expression graph never do.
package transform

import "math"

// Real is the scalar constraint every transform is generic over.
type Real interface {
	~float32 | ~float64
}

// ParameterTransformation is the three-method external-collaborator
// contract: a map from a bounded external value to an unbounded internal
// one, its inverse, and the derivative of the inverse. Bounded-parameter
// optimizers (outside this module's scope) walk internal space and call
// Internal2External/DInternal2External to get back an external value and
// its sensitivity.
type ParameterTransformation[T Real] interface {
	External2Internal(external, min, max T) T
	Internal2External(internal, min, max T) T
	DInternal2External(internal, min, max T) T
}

// Identity is the unbounded passthrough: external and internal
// coincide. Variable does not install it by default: an unbounded
// Variable's InternalValue returns its Value without consulting any
// transform.
type Identity[T Real] struct{}

func (Identity[T]) External2Internal(external, _, _ T) T { return external }
func (Identity[T]) Internal2External(internal, _, _ T) T { return internal }
func (Identity[T]) DInternal2External(_, _, _ T) T       { return 1 }

// Sin rescales external values in [min,max] onto [-1,1] and maps that
// onto unbounded internal space with asin/sin, so internal space sweeps
// out the full bounded range every period. This is the MINUIT-style
// bounded-parameter transform.
//
//	External2Internal(e) = asin( 2*(e-min)/(max-min) - 1 )
//	Internal2External(i) = mid + amp*sin(i)
//	DInternal2External(i) = amp*cos(i)
//
// where mid = (min+max)/2 and amp = (max-min)/2.
type Sin[T Real] struct{}

func sinMidAmp[T Real](min, max T) (mid, amp T) {
	return (min + max) / 2, (max - min) / 2
}

func (Sin[T]) External2Internal(external, min, max T) T {
	mid, amp := sinMidAmp(min, max)
	return T(math.Asin(float64((external - mid) / amp)))
}

func (Sin[T]) Internal2External(internal, min, max T) T {
	mid, amp := sinMidAmp(min, max)
	return mid + amp*T(math.Sin(float64(internal)))
}

func (Sin[T]) DInternal2External(internal, min, max T) T {
	_, amp := sinMidAmp(min, max)
	return amp * T(math.Cos(float64(internal)))
}

// Tanh bounds the external value with a hyperbolic tangent instead of
// Sin — unlike Sin, internal space maps monotonically onto (min,max)
// rather than wrapping, which keeps a gradient-based search from
// circling the boundary repeatedly.
//
// DInternal2External here is derived symbolically from Internal2External
// rather than transcribed, to avoid a mis-parenthesized denominator bug
// some hand-transcriptions of this family carry:
//
//	Internal2External(i) = mid + amp*tanh(i)
//	d/di Internal2External(i) = amp*(1 - tanh(i)^2) = amp / cosh(i)^2
type Tanh[T Real] struct{}

func (Tanh[T]) External2Internal(external, min, max T) T {
	mid, amp := sinMidAmp(min, max)
	return T(math.Atanh(float64((external - mid) / amp)))
}

func (Tanh[T]) Internal2External(internal, min, max T) T {
	mid, amp := sinMidAmp(min, max)
	return mid + amp*T(math.Tanh(float64(internal)))
}

func (Tanh[T]) DInternal2External(internal, min, max T) T {
	_, amp := sinMidAmp(min, max)
	t := math.Tanh(float64(internal))
	return amp * T(1-t*t)
}

// Logit bounds the external value with the logistic sigmoid — a common
// bounded-parameter transform idiomatic for this family: internal space
// maps onto (min,max) through a sigmoid rather than a rescaled
// trig/hyperbolic function.
//
//	Internal2External(i) = min + (max-min)*sigmoid(i)
//	d/di Internal2External(i) = (max-min)*sigmoid(i)*(1-sigmoid(i))
type Logit[T Real] struct{}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func (Logit[T]) External2Internal(external, min, max T) T {
	p := float64((external - min) / (max - min))
	return T(math.Log(p / (1 - p)))
}

func (Logit[T]) Internal2External(internal, min, max T) T {
	s := sigmoid(float64(internal))
	return min + (max-min)*T(s)
}

func (Logit[T]) DInternal2External(internal, min, max T) T {
	s := sigmoid(float64(internal))
	return (max - min) * T(s*(1-s))
}
