package lambda

import "strconv"

// DefaultContext returns the standard combinator library every reduction
// starts from: I/K/S, Church booleans and the usual boolean gates, cons
// cells, the Y and Z fixed-point combinators, Church numerals 0 through 10,
// and the arithmetic/comparison operators built on them. The shape of every
// body here is load-bearing (in particular PRED's inlined λg.λh.h (g f)
// predecessor) and must not be refactored through intermediate helper
// functions that aren't part of the library itself.
func DefaultContext() *Context {
	ctx := NewContext()

	ctx.Def(MustNewFunction("i", []Identifier{"x"}, V("x")))
	ctx.Def(MustNewFunction("k", []Identifier{"x", "y"}, V("x")))
	ctx.Def(MustNewFunction("s", []Identifier{"x", "y", "z"},
		A(A(V("x"), V("z")), A(V("y"), V("z")))))

	ctx.Def(MustNewFunction("TRUE", nil, L(V("x"), "x", "y")))
	ctx.Def(MustNewFunction("FALSE", nil, L(V("y"), "x", "y")))

	ctx.Def(MustNewFunction("IF", []Identifier{"PRED", "THEN", "ELSE"},
		A(A(V("PRED"), V("THEN")), V("ELSE"))))
	ctx.Def(MustNewFunction("NOT", []Identifier{"x"},
		A(A(V("x"), V("FALSE")), V("TRUE"))))
	ctx.Def(MustNewFunction("AND", []Identifier{"x", "y"},
		A(A(V("x"), V("y")), V("FALSE"))))
	ctx.Def(MustNewFunction("OR", []Identifier{"x", "y"},
		A(A(V("x"), V("TRUE")), V("y"))))
	ctx.Def(MustNewFunction("XOR", []Identifier{"x", "y"},
		A(A(V("x"), A(V("NOT"), V("y"))), V("y"))))

	ctx.Def(MustNewFunction("CONS", []Identifier{"x", "y"},
		L(A(A(V("f"), V("x")), V("y")), "f")))
	ctx.Def(MustNewFunction("CAR", []Identifier{"x"}, A(V("x"), V("TRUE"))))
	ctx.Def(MustNewFunction("CDR", []Identifier{"x"}, A(V("x"), V("FALSE"))))
	ctx.Def(MustNewFunction("NIL", nil, V("FALSE")))
	ctx.Def(MustNewFunction("IS_NIL", []Identifier{"x"},
		A(A(V("x"), L(V("FALSE"), "_")), V("TRUE"))))

	fixedPoint := func(inner Expr) Expr {
		half := L(inner, "x")
		return A(half, half)
	}
	ctx.Def(MustNewFunction("Y", []Identifier{"f"},
		fixedPoint(A(V("f"), A(V("x"), V("x"))))))
	ctx.Def(MustNewFunction("Z", []Identifier{"f"},
		fixedPoint(A(V("f"), L(A(A(V("x"), V("x")), V("y")), "y")))))

	ctx.Def(MustNewFunction("IS_ZERO", []Identifier{"n"},
		A(A(V("n"), L(V("FALSE"), "_")), V("TRUE"))))
	ctx.Def(MustNewFunction("SUCC", []Identifier{"n"},
		L(A(V("f"), A(A(V("n"), V("f")), V("x"))), "f", "x")))
	ctx.Def(MustNewFunction("ADD", []Identifier{"m", "n"},
		L(A(A(V("m"), V("f")), A(A(V("n"), V("f")), V("x"))), "f", "x")))
	ctx.Def(MustNewFunction("MUL", []Identifier{"m", "n"},
		L(A(V("m"), A(V("n"), V("f"))), "f")))
	ctx.Def(MustNewFunction("POW", []Identifier{"m", "n"}, A(V("n"), V("m"))))

	predGH := L(A(V("h"), A(V("g"), V("f"))), "g", "h")
	predBody := A(A(A(V("n"), predGH), L(V("x"), "u")), L(V("u"), "u"))
	ctx.Def(MustNewFunction("PRED", []Identifier{"n"}, L(predBody, "f", "x")))

	ctx.Def(MustNewFunction("SUB", []Identifier{"m", "n"},
		A(A(V("n"), V("PRED")), V("m"))))
	ctx.Def(MustNewFunction("GTE", []Identifier{"m", "n"},
		A(V("IS_ZERO"), A(A(V("SUB"), V("n")), V("m")))))
	ctx.Def(MustNewFunction("LTE", []Identifier{"m", "n"},
		A(V("IS_ZERO"), A(A(V("SUB"), V("m")), V("n")))))
	ctx.Def(MustNewFunction("EQ", []Identifier{"m", "n"},
		A(A(V("AND"), A(A(V("GTE"), V("m")), V("n"))), A(A(V("LTE"), V("m")), V("n")))))

	for n := 0; n <= 10; n++ {
		ctx.Def(MustNewFunction(Identifier(strconv.Itoa(n)), nil, churchNumeralBody(n)))
	}

	return ctx
}

// churchNumeralBody builds λf.λx. f (f ( ... (f x) ... )), f applied n
// times, the Church encoding of the natural number n.
func churchNumeralBody(n int) Expr {
	body := V("x")
	for i := 0; i < n; i++ {
		body = A(V("f"), body)
	}
	return L(body, "f", "x")
}
