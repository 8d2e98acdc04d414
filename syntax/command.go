package syntax

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/opencalc/lambda"
	"github.com/opencalc/lambda/engine"
)

// defLHS is the left-hand side of an Update command: a name, optionally
// followed by a parenthesized parameter list.
type defLHS struct {
	Name   string   `@Ident`
	Params []string `( "(" ( @Ident ( "," @Ident )* )? ")" )?`
}

var lhsParserOnce = sync.OnceValues(func() (*participle.Parser[defLHS], error) {
	return participle.Build[defLHS](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
	)
})

// ParseCommand parses src as one line of the command surface: an Update
// (`name(p1,...) = expr` or `name = expr`), an Eval (bare expr), an
// EvalLast (`!expr`), an EvalHead (`!n expr`), an EvalTail (`!-n expr`),
// an Info (`?id`), a Global (`?`), or an Unlambda (`??expr`). Each
// variant's expression operand is parsed by Parse, which already tries
// both concrete expression syntaxes.
func ParseCommand(src string) (engine.Command, error) {
	s := strings.TrimSpace(src)
	if s == "" {
		return nil, errEmptyCommand
	}

	switch {
	case strings.HasPrefix(s, "??"):
		e, err := Parse(strings.TrimSpace(s[2:]))
		if err != nil {
			return nil, err
		}
		return engine.Unlambda{Expr: e}, nil

	case strings.HasPrefix(s, "?"):
		rest := strings.TrimSpace(s[1:])
		if rest == "" {
			return engine.Global{}, nil
		}
		if !isIdentifier(rest) {
			return nil, fmt.Errorf("syntax: %q is not a bare identifier", rest)
		}
		return engine.Info{Name: lambda.Identifier(rest)}, nil

	case strings.HasPrefix(s, "!-"):
		n, rest, err := splitCount(s[2:])
		if err != nil {
			return nil, err
		}
		e, err := Parse(rest)
		if err != nil {
			return nil, err
		}
		return engine.EvalTail{N: n, Expr: e}, nil

	case strings.HasPrefix(s, "!"):
		rest := s[1:]
		if n, tail, ok := tryCount(rest); ok {
			e, err := Parse(tail)
			if err != nil {
				return nil, err
			}
			return engine.EvalHead{N: n, Expr: e}, nil
		}
		e, err := Parse(rest)
		if err != nil {
			return nil, err
		}
		return engine.EvalLast{Expr: e}, nil

	default:
		if lhs, rhsSrc, ok := splitAssignment(s); ok {
			rhs, err := Parse(rhsSrc)
			if err != nil {
				return nil, err
			}
			f, err := lambda.NewFunction(lambda.Identifier(lhs.Name), toIdentifiers(lhs.Params), rhs)
			if err != nil {
				return nil, err
			}
			return engine.Update{Func: f}, nil
		}

		e, err := Parse(s)
		if err != nil {
			return nil, err
		}
		return engine.Eval{Expr: e}, nil
	}
}

// splitAssignment recognizes `lhs = rhs` at the top level of s, where lhs
// is a bare name or name(params). It deliberately looks for the first "="
// not immediately followed by ">" so an arrow function on the right-hand
// side (`f = x => x`) isn't mistaken for the assignment operator itself.
func splitAssignment(s string) (defLHS, string, bool) {
	idx := findAssignIndex(s)
	if idx < 0 {
		return defLHS{}, "", false
	}

	p, err := lhsParserOnce()
	if err != nil {
		return defLHS{}, "", false
	}
	lhs, err := p.ParseString("", s[:idx])
	if err != nil {
		return defLHS{}, "", false
	}
	return *lhs, s[idx+1:], true
}

func findAssignIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '=' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '>' {
			continue
		}
		return i
	}
	return -1
}

// tryCount consumes a leading run of decimal digits from s, returning the
// parsed count and the remainder trimmed of leading space. ok is false if
// s doesn't start with a digit.
func tryCount(s string) (n int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s, false
	}
	v, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, s, false
	}
	return v, strings.TrimSpace(s[i:]), true
}

func splitCount(s string) (int, string, error) {
	n, rest, ok := tryCount(s)
	if !ok {
		return 0, "", fmt.Errorf(`syntax: expected a step count after "!-"`)
	}
	return n, rest, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func toIdentifiers(ss []string) []lambda.Identifier {
	if len(ss) == 0 {
		return nil
	}
	out := make([]lambda.Identifier, len(ss))
	for i, s := range ss {
		out[i] = lambda.Identifier(s)
	}
	return out
}
