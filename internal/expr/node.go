// Package expr implements the expression-node contract: a
// compile-time/value-level description of arithmetic trees that can
// evaluate a forward value, its first/second/third partial derivatives
// with respect to a leaf identifier, and enumerate the leaves it depends
// on.
//
// Every node here holds its children by interface value, and Clone walks
// the tree to copy its operator structure for the DynamicRecord trace
// mode; leaves in the copy share their Info with the original. A tagged-variant-by-struct representation, with one struct
// per operator, stands in for an expression-template hierarchy.
package expr

import (
	"github.com/atl-go/atl/internal/idset"
	"github.com/atl-go/atl/internal/vinfo"
)

// Real re-exports the scalar constraint every node is generic over.
type Real = vinfo.Real

// IDSet and IDSetU32 are the two flavors of id set the contract pushes
// leaves into.
type IDSet[T Real] = idset.Set[*vinfo.Info[T]]
type IDSetU32 = idset.Set[uint32]

// Node is the uniform contract every leaf, constant, or operator answers.
type Node[T Real] interface {
	// Value returns the current forward value of the subexpression.
	Value() T

	// PushIDs inserts every leaf Info this subexpression depends on into
	// ids. When includeDependent is true, each inserted leaf is marked as
	// participating in a nonlinear chain; every operator passes the flag
	// unchanged to its children.
	PushIDs(ids *IDSet[T], includeDependent bool)

	// PushIDsU32 is PushIDs by numeric id only, for callers that do not
	// need the Info object.
	PushIDsU32(ids *IDSetU32)

	// IsNonlinear conservatively reports whether this node or any
	// descendant is not purely affine in its leaves.
	IsNonlinear() bool

	// IsNonFunction reports an operator-local flag: true for floor, ceil,
	// fabs; false for arithmetic and smooth transcendentals.
	IsNonFunction() bool

	// MakeNLInteractions recursively propagates a nonlinear-interaction
	// mark down the tree so higher-order sweeps know which leaves need
	// cross-terms.
	MakeNLInteractions(flag bool)

	// PushNLInteractions populates ids with the leaves that participate
	// in nonlinear interactions within this subexpression.
	PushNLInteractions(ids *IDSet[T])

	// EvalD returns ∂/∂x_a of this subexpression at the current values.
	EvalD(a uint32) T

	// EvalD2 returns ∂²/∂x_a∂x_b.
	EvalD2(a, b uint32) T

	// EvalD3 returns ∂³/∂x_a∂x_b∂x_c.
	EvalD3(a, b, c uint32) T

	// Clone copies the operator nodes of this subexpression into a new
	// tree, used by the DYNAMIC_RECORD trace mode to defer derivative
	// evaluation past the end of the recording statement. Leaves are not
	// copied: the clone points at the same Info, so it reads the leaf
	// values current at evaluation time.
	Clone() Node[T]
}

// unary is embedded by every single-child operator; it implements the
// parts of the contract that are pure delegation to the child, so each
// concrete operator only needs to supply Value, EvalD*, and the
// nonlinearity flags.
type unary[T Real] struct {
	inner Node[T]
}

func (u unary[T]) PushIDs(ids *IDSet[T], includeDependent bool) {
	u.inner.PushIDs(ids, includeDependent)
}

func (u unary[T]) PushIDsU32(ids *IDSetU32) {
	u.inner.PushIDsU32(ids)
}

func (u unary[T]) PushNLInteractions(ids *IDSet[T]) {
	u.inner.PushNLInteractions(ids)
}

// binary is embedded by every two-child operator.
type binary[T Real] struct {
	a, b Node[T]
}

func (bi binary[T]) PushIDs(ids *IDSet[T], includeDependent bool) {
	bi.a.PushIDs(ids, includeDependent)
	bi.b.PushIDs(ids, includeDependent)
}

func (bi binary[T]) PushIDsU32(ids *IDSetU32) {
	bi.a.PushIDsU32(ids)
	bi.b.PushIDsU32(ids)
}

func (bi binary[T]) PushNLInteractions(ids *IDSet[T]) {
	bi.a.PushNLInteractions(ids)
	bi.b.PushNLInteractions(ids)
}
