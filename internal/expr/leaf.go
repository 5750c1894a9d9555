package expr

import "github.com/atl-go/atl/internal/vinfo"

// Leaf is the expression-tree view of a differentiable Variable. It
// never owns the Info it wraps — ownership stays with the Variable
// façade.
type Leaf[T Real] struct {
	Info *vinfo.Info[T]
}

// NewLeaf wraps info as a leaf node.
func NewLeaf[T Real](info *vinfo.Info[T]) Leaf[T] {
	return Leaf[T]{Info: info}
}

func (l Leaf[T]) Value() T { return l.Info.VValue }

func (l Leaf[T]) PushIDs(ids *IDSet[T], includeDependent bool) {
	ids.Push(l.Info)
	if includeDependent {
		l.Info.IsNL = true
	}
}

func (l Leaf[T]) PushIDsU32(ids *IDSetU32) {
	ids.Push(l.Info.ID)
}

func (l Leaf[T]) IsNonlinear() bool  { return false }
func (l Leaf[T]) IsNonFunction() bool { return false }

func (l Leaf[T]) MakeNLInteractions(flag bool) {
	if flag {
		l.Info.HasNLInteraction = true
	}
}

func (l Leaf[T]) PushNLInteractions(ids *IDSet[T]) {
	if l.Info.HasNLInteraction {
		ids.Push(l.Info)
	}
}

func (l Leaf[T]) EvalD(a uint32) T {
	if a == l.Info.ID {
		return 1
	}
	return 0
}

func (l Leaf[T]) EvalD2(a, b uint32) T { return 0 }

func (l Leaf[T]) EvalD3(a, b, c uint32) T { return 0 }

func (l Leaf[T]) Clone() Node[T] { return l }

// Const is the expression-tree view of a literal scalar. It depends on
// no leaves and every derivative is zero.
type Const[T Real] struct {
	V T
}

// NewConst wraps v as a constant node.
func NewConst[T Real](v T) Const[T] { return Const[T]{V: v} }

func (c Const[T]) Value() T { return c.V }

func (c Const[T]) PushIDs(ids *IDSet[T], includeDependent bool) {}
func (c Const[T]) PushIDsU32(ids *IDSetU32)                     {}

func (c Const[T]) IsNonlinear() bool  { return false }
func (c Const[T]) IsNonFunction() bool { return false }

func (c Const[T]) MakeNLInteractions(flag bool)        {}
func (c Const[T]) PushNLInteractions(ids *IDSet[T]) {}

func (c Const[T]) EvalD(a uint32) T        { return 0 }
func (c Const[T]) EvalD2(a, b uint32) T    { return 0 }
func (c Const[T]) EvalD3(a, b, cc uint32) T { return 0 }

func (c Const[T]) Clone() Node[T] { return c }
