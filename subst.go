package lambda

// Substitute performs standard call-by-name, capture-avoiding substitution:
// subst(body, param, arg).
//
//	Variable(x): x == param -> arg; else unchanged.
//	Symbol:      unchanged.
//	Apply(l,r):  Apply(subst(l,...), subst(r,...)).
//	Lambda(p,b): p == param -> unchanged (shadowed);
//	             p ∈ free(arg) -> alpha-rename to a fresh name first, then
//	             recurse into the renamed body;
//	             else recurse into b.
func Substitute(body Expr, param Identifier, arg Expr) Expr {
	switch t := body.(type) {
	case Variable:
		if t.Name == param {
			return arg
		}
		return t
	case Symbol:
		return t
	case Apply:
		return Apply{
			Lhs: Substitute(t.Lhs, param, arg),
			Rhs: Substitute(t.Rhs, param, arg),
		}
	case Lambda:
		if t.Param == param {
			return t
		}
		if FreeVars(arg).Contains(t.Param) {
			newParam := fresh(t.Param, FreeVars(arg).Union(FreeVars(t.Body)))
			renamedBody := AlphaRename(t.Body, t.Param, newParam)
			return Lambda{Param: newParam, Body: Substitute(renamedBody, param, arg)}
		}
		return Lambda{Param: t.Param, Body: Substitute(t.Body, param, arg)}
	default:
		return body
	}
}

// SubstituteSimultaneous performs capture-avoiding substitution of every
// params[i] by args[i] into body, all at once. This is not the same as
// folding Substitute over the pairs one at a time: a sequential fold can
// let an earlier argument's free variables collide with a later
// parameter's name, rewriting an occurrence that was only ever meant to
// see the original binding. Simultaneous substitution instead resolves
// every Variable occurrence against the original binding set in a single
// structural pass, so no substituted-in term is ever itself substituted
// into.
func SubstituteSimultaneous(body Expr, params []Identifier, args []Expr) Expr {
	bindings := make(map[Identifier]Expr, len(params))
	for i, p := range params {
		bindings[p] = args[i]
	}
	return substAll(body, bindings)
}

func substAll(e Expr, bindings map[Identifier]Expr) Expr {
	if len(bindings) == 0 {
		return e
	}

	switch t := e.(type) {
	case Variable:
		if arg, ok := bindings[t.Name]; ok {
			return arg
		}
		return t
	case Symbol:
		return t
	case Apply:
		return Apply{
			Lhs: substAll(t.Lhs, bindings),
			Rhs: substAll(t.Rhs, bindings),
		}
	case Lambda:
		rest := bindingsWithout(bindings, t.Param)
		if len(rest) == 0 {
			return t
		}
		if bindingsFreeVars(rest).Contains(t.Param) {
			newParam := fresh(t.Param, bindingsFreeVars(rest).Union(FreeVars(t.Body)))
			renamedBody := AlphaRename(t.Body, t.Param, newParam)
			return Lambda{Param: newParam, Body: substAll(renamedBody, rest)}
		}
		return Lambda{Param: t.Param, Body: substAll(t.Body, rest)}
	default:
		return e
	}
}

// bindingsWithout returns bindings with param's entry removed, i.e. the
// bindings still active once a Lambda{param, ...} shadows it.
func bindingsWithout(bindings map[Identifier]Expr, param Identifier) map[Identifier]Expr {
	if _, bound := bindings[param]; !bound {
		return bindings
	}
	out := make(map[Identifier]Expr, len(bindings)-1)
	for k, v := range bindings {
		if k != param {
			out[k] = v
		}
	}
	return out
}

// bindingsFreeVars is the union of the free variables of every argument
// still active in bindings.
func bindingsFreeVars(bindings map[Identifier]Expr) IdentifierSet {
	fv := newIdentifierSet()
	for _, arg := range bindings {
		fv = fv.Union(FreeVars(arg))
	}
	return fv
}
