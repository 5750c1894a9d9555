package expr

// chain1, chain2, and chain3 implement the symbolic chain rule for a
// unary node f(g) with stored inner g, given f's first,
// second, and third derivatives evaluated at g's current value:
//
//	eval_d(a)     = f'(g) * g.eval_d(a)
//	eval_d(a,b)   = f''(g) * g.eval_d(a) * g.eval_d(b) + f'(g) * g.eval_d(a,b)
//	eval_d(a,b,c) = f'''(g)*ga*gb*gc
//	             + f''(g)*(gab*gc + gac*gb + gbc*ga)
//	             + f'(g)*gabc
//
// Every unary operator (Sqrt, Exp, Log, Sin, Cosh, ...) calls these with
// its own closed-form f', f'', f''' in place of hand-inlining the
// expansion.
func chain1[T Real](fp, gA T) T {
	return fp * gA
}

func chain2[T Real](fpp, fp, gA, gB, gAB T) T {
	return fpp*gA*gB + fp*gAB
}

func chain3[T Real](fppp, fpp, fp, gA, gB, gC, gAB, gAC, gBC, gABC T) T {
	return fppp*gA*gB*gC + fpp*(gAB*gC+gAC*gB+gBC*gA) + fp*gABC
}

// prod1, prod2, and prod3 implement the Leibniz product rule for two
// independent subexpressions a and b, to first, second, and third order.
// Mul and Div (via Div = a * b⁻¹, see div.go) both reduce to these.
func prod1[T Real](aA, bV, aV, bA T) T {
	return aA*bV + aV*bA
}

func prod2[T Real](aAB, aA, aB, aV, bAB, bA, bB, bV T) T {
	return aAB*bV + aA*bB + aB*bA + aV*bAB
}

func prod3[T Real](aABC, aAB, aAC, aBC, aA, aB, aC, aV, bABC, bAB, bAC, bBC, bA, bB, bC, bV T) T {
	return aABC*bV + aAB*bC + aAC*bB + aBC*bA + aA*bBC + aB*bAC + aC*bAB + aV*bABC
}
