package syntax

import (
	"fmt"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/opencalc/lambda"
)

// cExpr is the combinator-calculus expression grammar: a lambda binder, a
// prefix application, or an atom.
type cExpr struct {
	Lambda *cLambda `  @@`
	Apply  *cApply  `| @@`
	Atom   *cAtom   `| @@`
}

// cLambda is `^x.body` or `\x.body`.
type cLambda struct {
	Param string `( "^" | Backslash ) @Ident "."`
	Body  *cExpr `@@`
}

// cApply is prefix application: `` `e1 e2 `` applies e1 to e2. Chained
// n-ary application nests the backtick, e.g. ``` ``x y z ``` is
// Apply(Apply(x, y), z).
type cApply struct {
	Lhs *cExpr `Tick @@`
	Rhs *cExpr `@@`
}

type cAtom struct {
	Symbol *string `  ":" @Ident`
	Group  *cExpr  `| "(" @@ ")"`
	Number *string `| @Number`
	Ident  *string `| @Ident`
}

var cParserOnce = sync.OnceValues(func() (*participle.Parser[cExpr], error) {
	return participle.Build[cExpr](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
	)
})

// parseCombinator parses src as the combinator-calculus surface syntax.
func parseCombinator(src string) (lambda.Expr, error) {
	p, err := cParserOnce()
	if err != nil {
		return nil, fmt.Errorf("syntax: building combinator parser: %w", err)
	}
	ast, err := p.ParseString("", src)
	if err != nil {
		return nil, err
	}
	return ast.toExpr()
}

func (e *cExpr) toExpr() (lambda.Expr, error) {
	switch {
	case e.Lambda != nil:
		return e.Lambda.toExpr()
	case e.Apply != nil:
		return e.Apply.toExpr()
	case e.Atom != nil:
		return e.Atom.toExpr()
	default:
		return nil, fmt.Errorf("syntax: empty combinator expression")
	}
}

func (l *cLambda) toExpr() (lambda.Expr, error) {
	body, err := l.Body.toExpr()
	if err != nil {
		return nil, err
	}
	return lambda.L(body, lambda.Identifier(l.Param)), nil
}

func (a *cApply) toExpr() (lambda.Expr, error) {
	lhs, err := a.Lhs.toExpr()
	if err != nil {
		return nil, err
	}
	rhs, err := a.Rhs.toExpr()
	if err != nil {
		return nil, err
	}
	return lambda.A(lhs, rhs), nil
}

func (a *cAtom) toExpr() (lambda.Expr, error) {
	switch {
	case a.Symbol != nil:
		return lambda.Sym(lambda.Identifier(*a.Symbol)), nil
	case a.Group != nil:
		return a.Group.toExpr()
	case a.Number != nil:
		return lambda.V(lambda.Identifier(*a.Number)), nil
	case a.Ident != nil:
		return lambda.V(lambda.Identifier(*a.Ident)), nil
	default:
		return nil, fmt.Errorf("syntax: empty combinator atom")
	}
}
