package lambda

// ExtendedContext returns DefaultContext() plus a bonus combinator library:
// the BCKW basis (B, C, W, U and the diverging term OMEGA), a modular
// arithmetic toolkit (GCD, MOD, POWMOD) built on the Y fixed-point
// combinator, a binary pair/bit-counter toolkit (PAIR/FIRST/SECOND,
// DIV2/ISODD/ISEVEN), comparison helpers (LT, MAX, MIN) and FACTORIAL.
// These are not part of the verbatim default library and are never
// implicitly merged into it; callers opt in by calling ExtendedContext
// instead of DefaultContext.
func ExtendedContext() *Context {
	ctx := DefaultContext()

	ctx.Def(MustNewFunction("B", []Identifier{"x", "y", "z"},
		A(V("x"), A(V("y"), V("z")))))
	ctx.Def(MustNewFunction("C", []Identifier{"x", "y", "z"},
		A(A(V("x"), V("z")), V("y"))))
	ctx.Def(MustNewFunction("W", []Identifier{"x", "y"},
		A(A(V("x"), V("y")), V("y"))))
	ctx.Def(MustNewFunction("U", []Identifier{"x"}, A(V("x"), V("x"))))
	ctx.Def(MustNewFunction("OMEGA", nil, A(V("U"), V("U"))))

	ctx.Def(MustNewFunction("PAIR", []Identifier{"x", "y"},
		A(A(V("CONS"), V("x")), V("y"))))
	ctx.Def(MustNewFunction("FIRST", []Identifier{"p"}, A(V("CAR"), V("p"))))
	ctx.Def(MustNewFunction("SECOND", []Identifier{"p"}, A(V("CDR"), V("p"))))

	ctx.Def(MustNewFunction("STEP2", []Identifier{"p"},
		A(A(V("PAIR"),
			A(A(A(V("IF"), A(V("SECOND"), V("p"))),
				A(V("SUCC"), A(V("FIRST"), V("p")))),
				A(V("FIRST"), V("p")))),
			A(V("NOT"), A(V("SECOND"), V("p"))))))
	ctx.Def(MustNewFunction("INIT2", nil, A(A(V("PAIR"), V("0")), V("FALSE"))))
	ctx.Def(MustNewFunction("DIV2", []Identifier{"n"},
		A(V("FIRST"), A(A(V("n"), V("STEP2")), V("INIT2")))))
	ctx.Def(MustNewFunction("ISODD", []Identifier{"n"},
		A(V("SECOND"), A(A(V("n"), V("STEP2")), V("INIT2")))))
	ctx.Def(MustNewFunction("ISEVEN", []Identifier{"n"},
		A(V("NOT"), A(V("ISODD"), V("n")))))

	ctx.Def(MustNewFunction("LT", []Identifier{"m", "n"},
		A(V("NOT"), A(A(V("LTE"), V("n")), V("m")))))
	ctx.Def(MustNewFunction("MAX", []Identifier{"a", "b"},
		A(A(A(V("IF"), A(A(V("LTE"), V("a")), V("b"))), V("b")), V("a"))))
	ctx.Def(MustNewFunction("MIN", []Identifier{"a", "b"},
		A(A(A(V("IF"), A(A(V("LTE"), V("a")), V("b"))), V("a")), V("b"))))

	gcdBody := L(
		A(A(A(V("IF"), A(V("IS_ZERO"), V("b"))), V("a")),
			A(A(V("rec"), V("b")), A(A(V("MOD"), V("a")), V("b")))),
		"rec", "a", "b")
	ctx.Def(MustNewFunction("GCD", nil, A(V("Y"), gcdBody)))

	isZeroN := A(V("IS_ZERO"), V("n"))
	ltMN := A(A(V("LT"), V("m")), V("n"))
	subMN := A(A(V("SUB"), V("m")), V("n"))
	modRecCall := A(A(V("rec"), subMN), V("n"))
	modElse := A(A(ltMN, V("m")), modRecCall)
	modBody := L(A(A(isZeroN, V("0")), modElse), "rec", "m", "n")
	ctx.Def(MustNewFunction("MOD", nil, A(V("Y"), modBody)))

	maa := A(A(V("MUL"), V("a")), V("a"))
	modMaaM := A(A(V("MOD"), maa), V("m"))
	div2E := A(V("DIV2"), V("e"))
	powmodRecCall := A(A(A(V("rec"), modMaaM), div2E), V("m"))
	powmodThen := A(A(A(V("IF"), A(V("IS_ZERO"), V("m"))), V("1")), A(A(V("MOD"), V("1")), V("m")))
	powmodOdd := A(A(V("MOD"), A(A(V("MUL"), V("a")), powmodRecCall)), V("m"))
	powmodElse := A(A(A(V("IF"), A(V("ISEVEN"), V("e"))), powmodRecCall), powmodOdd)
	powmodBody := L(A(A(A(V("IF"), A(V("IS_ZERO"), V("e"))), powmodThen), powmodElse), "rec", "a", "e", "m")
	ctx.Def(MustNewFunction("POWMOD", nil, A(V("Y"), powmodBody)))

	facBody := L(
		A(A(A(V("IS_ZERO"), V("n")), V("1")),
			A(A(V("MUL"), V("n")), A(V("f"), A(V("PRED"), V("n"))))),
		"f", "n")
	ctx.Def(MustNewFunction("FACTORIAL", nil, A(V("Y"), facBody)))

	return ctx
}
