package lambda

// SKINames names the three combinator identifiers Unlambda rewrites Lambda
// binders into. They do not need to be bound in any Context; the caller
// chooses identifiers that mean S, K, and I wherever the resulting
// expression is later evaluated.
type SKINames struct {
	S Identifier
	K Identifier
	I Identifier
}

// Unlambda eliminates every Lambda from e, producing an equivalent
// Lambda-free expression built from Variable/Symbol/Apply and occurrences
// of ski.S, ski.K, ski.I. It implements the standard bracket-abstraction
// translation: each Lambda{param, body} is eliminated by recursively
// abstracting param out of body.
func Unlambda(e Expr, ski SKINames) Expr {
	switch t := e.(type) {
	case Variable:
		return e
	case Symbol:
		return e
	case Apply:
		return Apply{Lhs: Unlambda(t.Lhs, ski), Rhs: Unlambda(t.Rhs, ski)}
	case Lambda:
		return unlambdaAbstract(t.Body, t.Param, ski)
	default:
		panic("lambda: unreachable Expr variant in Unlambda")
	}
}

// unlambdaAbstract abstracts param out of body, i.e. produces a
// Lambda-free expression equivalent to Lambda{Param: param, Body: body}.
func unlambdaAbstract(body Expr, param Identifier, ski SKINames) Expr {
	s := Variable{Name: ski.S}
	k := Variable{Name: ski.K}
	i := Variable{Name: ski.I}

	switch t := body.(type) {
	case Variable:
		if t.Name == param {
			return i
		}
		return Apply{Lhs: k, Rhs: body}

	case Symbol:
		return Apply{Lhs: k, Rhs: body}

	case Apply:
		if !FreeVars(body).Contains(param) {
			return Apply{Lhs: k, Rhs: body}
		}
		// Eta-reduction special case: `x.(f x) == f when x isn't free in f.
		if rv, ok := t.Rhs.(Variable); ok && rv.Name == param && !FreeVars(t.Lhs).Contains(param) {
			return t.Lhs
		}
		return Apply{
			Lhs: Apply{Lhs: s, Rhs: unlambdaAbstract(t.Lhs, param, ski)},
			Rhs: unlambdaAbstract(t.Rhs, param, ski),
		}

	case Lambda:
		return unlambdaAbstract(unlambdaAbstract(t.Body, t.Param, ski), param, ski)

	default:
		panic("lambda: unreachable Expr variant in unlambdaAbstract")
	}
}
