package lambda

import "fmt"

// Expr is the interface implemented by every lambda-calculus term variant:
// Variable, Symbol, Apply and Lambda. Expr values are immutable after
// construction; every constructor produces an independent tree.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Variable is a bound or free name occurrence.
type Variable struct {
	Name Identifier
}

// Symbol is an opaque literal that never reduces; printed with a leading
// ':' marker. Symbols are inert under every reduction rule and live in a
// namespace disjoint from function names.
type Symbol struct {
	Name Identifier
}

// Apply is a binary application, left-associative on input.
type Apply struct {
	Lhs, Rhs Expr
}

// Lambda is a single-parameter abstraction. Multi-parameter surface syntax
// desugars to nested Lambdas before reaching this type.
type Lambda struct {
	Param Identifier
	Body  Expr
}

func (Variable) exprNode() {}
func (Symbol) exprNode()   {}
func (Apply) exprNode()    {}
func (Lambda) exprNode()   {}

func (v Variable) String() string {
	return string(v.Name)
}

func (s Symbol) String() string {
	return ":" + string(s.Name)
}

func (a Apply) String() string {
	lhs := a.Lhs.String()
	if _, ok := a.Lhs.(Lambda); ok {
		lhs = "(" + lhs + ")"
	}

	rhs := a.Rhs.String()
	switch a.Rhs.(type) {
	case Apply, Lambda:
		rhs = "(" + rhs + ")"
	}

	return lhs + " " + rhs
}

func (l Lambda) String() string {
	return fmt.Sprintf("λ%s.%s", l.Param, l.Body.String())
}

// V is a shorthand constructor for Variable, mirroring how the teacher and
// the original implementation build ASTs tersely in tests and defaults.
func V(name Identifier) Expr { return Variable{Name: name} }

// Sym is a shorthand constructor for Symbol.
func Sym(name Identifier) Expr { return Symbol{Name: name} }

// A is a shorthand constructor for Apply, associating left to right over
// more than two arguments: A(f, x, y, z) == Apply{Apply{Apply{f,x},y},z}.
func A(lhs, rhs Expr, rest ...Expr) Expr {
	e := Apply{Lhs: lhs, Rhs: rhs}
	for _, r := range rest {
		e = Apply{Lhs: e, Rhs: r}
	}
	return e
}

// L is a shorthand constructor for Lambda, desugaring multiple parameters
// into nested single-parameter Lambdas: L(body, "x", "y") == λx.λy.body.
func L(body Expr, param Identifier, rest ...Identifier) Expr {
	params := append([]Identifier{param}, rest...)
	e := body
	for i := len(params) - 1; i >= 0; i-- {
		e = Lambda{Param: params[i], Body: e}
	}
	return e
}
