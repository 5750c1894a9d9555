package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atl-go/atl/transform"
)

func finiteDiff(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

func TestIdentity_RoundTrip(t *testing.T) {
	id := transform.Identity[float64]{}
	assert.InDelta(t, 4.0, id.Internal2External(id.External2Internal(4, 0, 10), 0, 10), 1e-12, "Identity round trip")
	assert.InDelta(t, 1.0, id.DInternal2External(0, 0, 10), 1e-12, "Identity derivative")
}

func TestSin_RoundTrip(t *testing.T) {
	s := transform.Sin[float64]{}
	min, max := 0.0, 10.0
	for _, external := range []float64{0.1, 3, 5, 7, 9.9} {
		internal := s.External2Internal(external, min, max)
		got := s.Internal2External(internal, min, max)
		assert.InDelta(t, external, got, 1e-9, "Sin round trip")
	}
}

func TestSin_DerivativeMatchesFiniteDifference(t *testing.T) {
	s := transform.Sin[float64]{}
	min, max := -2.0, 6.0
	internal := 0.4
	f := func(i float64) float64 { return s.Internal2External(i, min, max) }
	want := finiteDiff(f, internal, 1e-6)
	got := s.DInternal2External(internal, min, max)
	assert.InDelta(t, want, got, 1e-6, "Sin derivative")
}

func TestTanh_RoundTrip(t *testing.T) {
	tf := transform.Tanh[float64]{}
	min, max := -5.0, 5.0
	for _, external := range []float64{-4, -1, 0, 2, 4.9} {
		internal := tf.External2Internal(external, min, max)
		got := tf.Internal2External(internal, min, max)
		assert.InDelta(t, external, got, 1e-9, "Tanh round trip")
	}
}

// The Tanh derivative is derived symbolically from Internal2External
// rather than transcribed, so it must match a finite-difference check
// of Internal2External exactly (within numerical tolerance).
func TestTanh_DerivativeMatchesFiniteDifference(t *testing.T) {
	tf := transform.Tanh[float64]{}
	min, max := -3.0, 9.0
	for _, internal := range []float64{-1.5, 0, 0.3, 1.2} {
		f := func(i float64) float64 { return tf.Internal2External(i, min, max) }
		want := finiteDiff(f, internal, 1e-6)
		got := tf.DInternal2External(internal, min, max)
		assert.InDelta(t, want, got, 1e-6, "Tanh derivative")
	}
}

func TestLogit_RoundTrip(t *testing.T) {
	lg := transform.Logit[float64]{}
	min, max := 0.0, 1.0
	for _, external := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		internal := lg.External2Internal(external, min, max)
		got := lg.Internal2External(internal, min, max)
		assert.InDelta(t, external, got, 1e-9, "Logit round trip")
	}
}

func TestLogit_DerivativeMatchesFiniteDifference(t *testing.T) {
	lg := transform.Logit[float64]{}
	min, max := 2.0, 8.0
	internal := 0.75
	f := func(i float64) float64 { return lg.Internal2External(i, min, max) }
	want := finiteDiff(f, internal, 1e-6)
	got := lg.DInternal2External(internal, min, max)
	assert.InDelta(t, want, got, 1e-6, "Logit derivative")
}
