package lambda

// FreeVars returns the set of Identifiers that occur free in e.
//
//	Variable(x) -> {x}
//	Symbol      -> {}
//	Apply(l, r) -> free(l) ∪ free(r)
//	Lambda(p,b) -> free(b) \ {p}
func FreeVars(e Expr) IdentifierSet {
	switch t := e.(type) {
	case Variable:
		return newIdentifierSet(t.Name)
	case Symbol:
		return newIdentifierSet()
	case Apply:
		return FreeVars(t.Lhs).Union(FreeVars(t.Rhs))
	case Lambda:
		return FreeVars(t.Body).Without(t.Param)
	default:
		return newIdentifierSet()
	}
}
