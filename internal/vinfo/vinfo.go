// Package vinfo implements VariableInfo, the sole heap-resident entity in
// the automatic differentiation engine: a reference-counted record
// identifying one leaf — its unique id, current value, accumulated
// adjoint, dependency set, and the nonlinearity flags the higher-order
// reverse sweeps use to prune zero partials.
package vinfo

import (
	"sync/atomic"

	"github.com/atl-go/atl/internal/idset"
)

// Real is the scalar element type every differentiable computation is
// carried out in.
type Real interface {
	~float32 | ~float64
}

var nextID atomic.Uint32

// NextID mints a fresh process-wide leaf identifier. Ids are never
// reused while the Info that received them is live.
func NextID() uint32 {
	return nextID.Add(1) - 1
}

// SetNextID rewinds or fast-forwards the process-wide id generator. This
// is the "chosen epoch" the tape's ResetWithEpoch exposes to callers at
// an optimization-iteration boundary; it does not affect ids already
// minted.
func SetNextID(id uint32) {
	nextID.Store(id)
}

// Info is the leaf identifier record. It is shared by reference-count
// across every Variable handle and StackEntry that names it.
type Info[T Real] struct {
	ID    uint32
	Name  string
	VValue T // current primal value
	DValue T // accumulated first-order adjoint

	refCount int

	IsDependent      bool // appears as the LHS of at least one tape record
	IsNL             bool // this leaf participates in a nonlinear chain
	HasNLInteraction bool // this leaf has a nonzero cross-partial with another leaf

	// DependenceLevel counts the tape records that reference this info as
	// an independent. The reverse sweeps do not read it.
	DependenceLevel int

	// Dependencies holds the infos this dependent was derived from. Only
	// populated for the mixed-partials trace modes.
	Dependencies *idset.Set[*Info[T]]

	// PushStart is a slot for the tape index at which this info first
	// appeared in a nonlinear context. The tape's Assign does not set it,
	// so it keeps whatever value a caller stores (zero by default).
	PushStart int
}

// New allocates a fresh leaf Info with the given initial value. The
// returned Info starts with a reference count of one, for the Variable
// handle that owns it.
func New[T Real](value T) *Info[T] {
	return &Info[T]{
		ID:       NextID(),
		VValue:   value,
		refCount: 1,
	}
}

// Retain increments the reference count, for a new Variable handle or
// StackEntry that now names this info.
func (info *Info[T]) Retain() {
	info.refCount++
}

// Release decrements the reference count. Info carries no finalizer of
// its own — Go's garbage collector reclaims it once the last reference
// drops — but Release lets callers assert the ref-count invariant in
// tests: ref-count reaches zero exactly once over an Info's lifetime.
func (info *Info[T]) Release() int {
	info.refCount--
	return info.refCount
}

// RefCount returns the current reference count.
func (info *Info[T]) RefCount() int {
	return info.refCount
}

// ResetAdjoints zeroes the accumulated derivative state ahead of a fresh
// reverse sweep, without touching identity, value, or dependency
// bookkeeping.
func (info *Info[T]) ResetAdjoints() {
	info.DValue = 0
	info.HasNLInteraction = false
}
