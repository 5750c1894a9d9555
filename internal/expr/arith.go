package expr

// Add represents the binary node a+b.
type Add[T Real] struct {
	binary[T]
}

// NewAdd builds an Add node over a and b.
func NewAdd[T Real](a, b Node[T]) Add[T] { return Add[T]{binary[T]{a, b}} }

func (n Add[T]) Value() T { return n.a.Value() + n.b.Value() }

func (n Add[T]) IsNonlinear() bool  { return n.a.IsNonlinear() || n.b.IsNonlinear() }
func (n Add[T]) IsNonFunction() bool { return false }

func (n Add[T]) MakeNLInteractions(flag bool) {
	n.a.MakeNLInteractions(flag)
	n.b.MakeNLInteractions(flag)
}

func (n Add[T]) EvalD(x uint32) T { return n.a.EvalD(x) + n.b.EvalD(x) }
func (n Add[T]) EvalD2(x, y uint32) T {
	return n.a.EvalD2(x, y) + n.b.EvalD2(x, y)
}
func (n Add[T]) EvalD3(x, y, z uint32) T {
	return n.a.EvalD3(x, y, z) + n.b.EvalD3(x, y, z)
}

func (n Add[T]) Clone() Node[T] { return Add[T]{binary[T]{n.a.Clone(), n.b.Clone()}} }

// Subtract represents the binary node a-b.
type Subtract[T Real] struct {
	binary[T]
}

// NewSubtract builds a Subtract node over a and b.
func NewSubtract[T Real](a, b Node[T]) Subtract[T] { return Subtract[T]{binary[T]{a, b}} }

func (n Subtract[T]) Value() T { return n.a.Value() - n.b.Value() }

func (n Subtract[T]) IsNonlinear() bool  { return n.a.IsNonlinear() || n.b.IsNonlinear() }
func (n Subtract[T]) IsNonFunction() bool { return false }

func (n Subtract[T]) MakeNLInteractions(flag bool) {
	n.a.MakeNLInteractions(flag)
	n.b.MakeNLInteractions(flag)
}

func (n Subtract[T]) EvalD(x uint32) T { return n.a.EvalD(x) - n.b.EvalD(x) }
func (n Subtract[T]) EvalD2(x, y uint32) T {
	return n.a.EvalD2(x, y) - n.b.EvalD2(x, y)
}
func (n Subtract[T]) EvalD3(x, y, z uint32) T {
	return n.a.EvalD3(x, y, z) - n.b.EvalD3(x, y, z)
}

func (n Subtract[T]) Clone() Node[T] {
	return Subtract[T]{binary[T]{n.a.Clone(), n.b.Clone()}}
}

// Multiply represents the binary node a*b. Its derivatives follow the
// Leibniz product rule (prod1/prod2/prod3 in chainrule.go) — the
// canonical source of mixed partials (w = x*y*z has a nonzero
// ∂³w/∂x∂y∂z).
type Multiply[T Real] struct {
	binary[T]
}

// NewMultiply builds a Multiply node over a and b.
func NewMultiply[T Real](a, b Node[T]) Multiply[T] { return Multiply[T]{binary[T]{a, b}} }

func (n Multiply[T]) Value() T { return n.a.Value() * n.b.Value() }

func (n Multiply[T]) IsNonlinear() bool  { return true }
func (n Multiply[T]) IsNonFunction() bool { return false }

func (n Multiply[T]) MakeNLInteractions(flag bool) {
	n.a.MakeNLInteractions(true)
	n.b.MakeNLInteractions(true)
}

func (n Multiply[T]) EvalD(x uint32) T {
	return prod1(n.a.EvalD(x), n.b.Value(), n.a.Value(), n.b.EvalD(x))
}

func (n Multiply[T]) EvalD2(x, y uint32) T {
	return prod2(
		n.a.EvalD2(x, y), n.a.EvalD(x), n.a.EvalD(y), n.a.Value(),
		n.b.EvalD2(x, y), n.b.EvalD(x), n.b.EvalD(y), n.b.Value(),
	)
}

func (n Multiply[T]) EvalD3(x, y, z uint32) T {
	return prod3(
		n.a.EvalD3(x, y, z), n.a.EvalD2(x, y), n.a.EvalD2(x, z), n.a.EvalD2(y, z),
		n.a.EvalD(x), n.a.EvalD(y), n.a.EvalD(z), n.a.Value(),
		n.b.EvalD3(x, y, z), n.b.EvalD2(x, y), n.b.EvalD2(x, z), n.b.EvalD2(y, z),
		n.b.EvalD(x), n.b.EvalD(y), n.b.EvalD(z), n.b.Value(),
	)
}

func (n Multiply[T]) Clone() Node[T] {
	return Multiply[T]{binary[T]{n.a.Clone(), n.b.Clone()}}
}
