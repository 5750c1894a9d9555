package expr

// realmath dispatches the elementary transcendental functions on the
// generic Real type: one type switch per call rather than a second
// generic math package. The float32 branch calls
// github.com/chewxy/math32 directly instead of round-tripping through
// float64, since this package has no tensor backend to delegate the
// native float32 path to.

import (
	"math"

	"github.com/chewxy/math32"
)

func sin[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sin(v))
	case float64:
		return T(math.Sin(v))
	}
	panic("expr: unsupported Real type")
}

func cos[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Cos(v))
	case float64:
		return T(math.Cos(v))
	}
	panic("expr: unsupported Real type")
}

func tan[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Tan(v))
	case float64:
		return T(math.Tan(v))
	}
	panic("expr: unsupported Real type")
}

func asin[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Asin(v))
	case float64:
		return T(math.Asin(v))
	}
	panic("expr: unsupported Real type")
}

func acos[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Acos(v))
	case float64:
		return T(math.Acos(v))
	}
	panic("expr: unsupported Real type")
}

func atan[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Atan(v))
	case float64:
		return T(math.Atan(v))
	}
	panic("expr: unsupported Real type")
}

func sinh[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sinh(v))
	case float64:
		return T(math.Sinh(v))
	}
	panic("expr: unsupported Real type")
}

func cosh[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Cosh(v))
	case float64:
		return T(math.Cosh(v))
	}
	panic("expr: unsupported Real type")
}

func tanh[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Tanh(v))
	case float64:
		return T(math.Tanh(v))
	}
	panic("expr: unsupported Real type")
}

func exp[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Exp(v))
	case float64:
		return T(math.Exp(v))
	}
	panic("expr: unsupported Real type")
}

func logE[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Log(v))
	case float64:
		return T(math.Log(v))
	}
	panic("expr: unsupported Real type")
}

func log10[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Log10(v))
	case float64:
		return T(math.Log10(v))
	}
	panic("expr: unsupported Real type")
}

func sqrt[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	case float64:
		return T(math.Sqrt(v))
	}
	panic("expr: unsupported Real type")
}

func pow[T Real](x, y T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Pow(v, any(y).(float32)))
	case float64:
		return T(math.Pow(v, any(y).(float64)))
	}
	panic("expr: unsupported Real type")
}

func fabs[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Abs(v))
	case float64:
		return T(math.Abs(v))
	}
	panic("expr: unsupported Real type")
}

func floor[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Floor(v))
	case float64:
		return T(math.Floor(v))
	}
	panic("expr: unsupported Real type")
}

func ceil[T Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Ceil(v))
	case float64:
		return T(math.Ceil(v))
	}
	panic("expr: unsupported Real type")
}
