package lambda

// AlphaRename replaces every occurrence of old within e with new: binders,
// bound references and free occurrences alike, including inside a Lambda
// that rebinds old. It is used before a
// capture-risking substitution to introduce a fresh bound name that does
// not appear free in the term being substituted in.
func AlphaRename(e Expr, old, new Identifier) Expr {
	switch t := e.(type) {
	case Variable:
		if t.Name == old {
			return Variable{Name: new}
		}
		return t
	case Symbol:
		return t
	case Apply:
		return Apply{Lhs: AlphaRename(t.Lhs, old, new), Rhs: AlphaRename(t.Rhs, old, new)}
	case Lambda:
		if t.Param == old {
			return Lambda{Param: new, Body: AlphaRename(t.Body, old, new)}
		}
		return Lambda{Param: t.Param, Body: AlphaRename(t.Body, old, new)}
	default:
		return e
	}
}
