// Package main provides the atl command-line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/atl-go/atl/internal/tape"
	"github.com/atl-go/atl/variable"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("atl %s\n", version)
		return
	}

	fmt.Println("atl - reverse-mode scalar automatic differentiation")
	fmt.Printf("Version: %s\n\n", version)
	runScenario1()
}

// runScenario1 runs z = x*y + sin(x) at x=3, y=2 up to second order and
// prints the value, gradient, and Hessian.
func runScenario1() {
	tp := tape.New[float64]()
	tp.SetLevel(tape.GradientAndHessian)

	x := variable.New(tp, 3.0)
	y := variable.New(tp, 2.0)

	z := variable.New(tp, 0.0)
	z.Assign(variable.Add[float64](variable.Mul[float64](x, y), variable.Sin[float64](x)))

	hs := tp.AccumulateGradientAndHessian()

	fmt.Println("z = x*y + sin(x), x=3, y=2")
	fmt.Printf("  z       = %v\n", z.Value())
	fmt.Printf("  dz/dx   = %v\n", x.Grad())
	fmt.Printf("  dz/dy   = %v\n", y.Grad())
	fmt.Printf("  d2z/dx2 = %v\n", hs.Value(idOf(x), idOf(x)))
	fmt.Printf("  d2z/dxdy = %v\n", hs.Value(idOf(x), idOf(y)))
	fmt.Printf("  d2z/dy2 = %v\n", hs.Value(idOf(y), idOf(y)))
}

func idOf[T variable.Real](v variable.Variable[T]) uint32 { return v.Info.ID }
