package variable

import "github.com/atl-go/atl/internal/expr"

// Node re-exports the expression-node contract so callers building
// expressions against this package don't need to import internal/expr
// directly.
type Node[T Real] = expr.Node[T]

// Const returns a constant node wrapping the literal v.
func Const[T Real](v T) Node[T] { return expr.NewConst[T](v) }

// Add, Sub, Mul, and Div are the façade's binary arithmetic operators.
// Variable satisfies Node[T] directly, so either operand may be a bare
// Variable or a previously built expression.
func Add[T Real](a, b Node[T]) Node[T] { return expr.NewAdd[T](a, b) }
func Sub[T Real](a, b Node[T]) Node[T] { return expr.NewSubtract[T](a, b) }
func Mul[T Real](a, b Node[T]) Node[T] { return expr.NewMultiply[T](a, b) }
func Div[T Real](a, b Node[T]) Node[T] { return expr.NewDivide[T](a, b) }

// Pow raises g to a constant exponent c.
func Pow[T Real](g Node[T], c T) Node[T] { return expr.NewPow[T](g, c) }

// PowVar raises a to a differentiable exponent b, as opposed to Pow's
// constant exponent.
func PowVar[T Real](a, b Node[T]) Node[T] { return expr.NewPowVar[T](a, b) }

// Sin, Cos, Tan, ASin, ACos, ATan, Sqrt, Exp, Log, Log10, Sinh, Cosh, and
// Tanh are the façade's unary math catalog. Fabs, Floor, and Ceil are
// the non-function operators.
func Sin[T Real](g Node[T]) Node[T]   { return expr.NewSin[T](g) }
func Cos[T Real](g Node[T]) Node[T]   { return expr.NewCos[T](g) }
func Tan[T Real](g Node[T]) Node[T]   { return expr.NewTan[T](g) }
func ASin[T Real](g Node[T]) Node[T]  { return expr.NewASin[T](g) }
func ACos[T Real](g Node[T]) Node[T]  { return expr.NewACos[T](g) }
func ATan[T Real](g Node[T]) Node[T]  { return expr.NewATan[T](g) }
func Sqrt[T Real](g Node[T]) Node[T]  { return expr.NewSqrt[T](g) }
func Exp[T Real](g Node[T]) Node[T]   { return expr.NewExp[T](g) }
func Log[T Real](g Node[T]) Node[T]   { return expr.NewLog[T](g) }
func Log10[T Real](g Node[T]) Node[T] { return expr.NewLog10[T](g) }
func Sinh[T Real](g Node[T]) Node[T]  { return expr.NewSinh[T](g) }
func Cosh[T Real](g Node[T]) Node[T]  { return expr.NewCosh[T](g) }
func Tanh[T Real](g Node[T]) Node[T]  { return expr.NewTanh[T](g) }
func Fabs[T Real](g Node[T]) Node[T]  { return expr.NewFabs[T](g) }
func Floor[T Real](g Node[T]) Node[T] { return expr.NewFloor[T](g) }
func Ceil[T Real](g Node[T]) Node[T]  { return expr.NewCeil[T](g) }
