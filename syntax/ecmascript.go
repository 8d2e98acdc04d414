package syntax

import (
	"fmt"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/opencalc/lambda"
)

// esExpr is the ECMAScript-like expression grammar: an arrow function or
// an application chain (an atom followed by zero or more call-argument
// lists, e.g. x(z, y(z))).
type esExpr struct {
	Arrow *esArrow `  @@`
	Apply *esApply `| @@`
}

// esArrow is `ident => body` or `(ident, ...) => body`; multi-param arrows
// desugar to nested lambda.Lambda in toExpr.
type esArrow struct {
	Params esArrowParams `@@`
	Body   *esExpr       `"=>" @@`
}

// esArrowParams is the parameter list on the left of "=>": a single bare
// identifier, or a parenthesized, comma-separated list (possibly empty).
type esArrowParams struct {
	Single *string  `  @Ident`
	Multi  []string `| "(" ( @Ident ( "," @Ident )* )? ")"`
}

// esApply is an atom applied to zero or more parenthesized argument
// lists; each list's entries desugar to nested left-associative Apply,
// e.g. x(z, y(z)) == Apply(Apply(x, z), y(z)).
type esApply struct {
	Head esAtom    `@@`
	Args []*esArgs `@@*`
}

type esArgs struct {
	Exprs []*esExpr `"(" ( @@ ( "," @@ )* )? ")"`
}

type esAtom struct {
	Symbol *string `  ":" @Ident`
	Group  *esExpr `| "(" @@ ")"`
	Number *string `| @Number`
	Ident  *string `| @Ident`
}

var esParserOnce = sync.OnceValues(func() (*participle.Parser[esExpr], error) {
	return participle.Build[esExpr](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(4),
	)
})

// parseES parses src as the ECMAScript-like surface syntax.
func parseES(src string) (lambda.Expr, error) {
	p, err := esParserOnce()
	if err != nil {
		return nil, fmt.Errorf("syntax: building ecmascript parser: %w", err)
	}
	ast, err := p.ParseString("", src)
	if err != nil {
		return nil, err
	}
	return ast.toExpr()
}

func (e *esExpr) toExpr() (lambda.Expr, error) {
	switch {
	case e.Arrow != nil:
		return e.Arrow.toExpr()
	case e.Apply != nil:
		return e.Apply.toExpr()
	default:
		return nil, fmt.Errorf("syntax: empty ecmascript expression")
	}
}

func (a *esArrow) toExpr() (lambda.Expr, error) {
	body, err := a.Body.toExpr()
	if err != nil {
		return nil, err
	}

	var params []lambda.Identifier
	if a.Params.Single != nil {
		params = append(params, lambda.Identifier(*a.Params.Single))
	}
	for _, p := range a.Params.Multi {
		params = append(params, lambda.Identifier(p))
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("syntax: arrow function needs at least one parameter")
	}

	return lambda.L(body, params[0], params[1:]...), nil
}

func (app *esApply) toExpr() (lambda.Expr, error) {
	e, err := app.Head.toExpr()
	if err != nil {
		return nil, err
	}
	for _, args := range app.Args {
		for _, argNode := range args.Exprs {
			arg, err := argNode.toExpr()
			if err != nil {
				return nil, err
			}
			e = lambda.A(e, arg)
		}
	}
	return e, nil
}

func (a *esAtom) toExpr() (lambda.Expr, error) {
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
		return nil, fmt.Errorf("syntax: empty ecmascript atom")
	}
}
