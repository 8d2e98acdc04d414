package history

import (
	"fmt"

	"github.com/opencalc/lambda"
)

// exprDTO is the on-disk shape of a lambda.Expr: a plain tree of YAML
// scalars and nested DTOs, independent of either surface syntax in the
// syntax package (those are for user input, not for round-tripping a
// journal record byte for byte).
type exprDTO struct {
	Kind  string   `yaml:"kind"`
	Name  string   `yaml:"name,omitempty"`
	Param string   `yaml:"param,omitempty"`
	Lhs   *exprDTO `yaml:"lhs,omitempty"`
	Rhs   *exprDTO `yaml:"rhs,omitempty"`
	Body  *exprDTO `yaml:"body,omitempty"`
}

func toDTO(e lambda.Expr) *exprDTO {
	switch t := e.(type) {
	case lambda.Variable:
		return &exprDTO{Kind: "var", Name: string(t.Name)}
	case lambda.Symbol:
		return &exprDTO{Kind: "sym", Name: string(t.Name)}
	case lambda.Apply:
		return &exprDTO{Kind: "apply", Lhs: toDTO(t.Lhs), Rhs: toDTO(t.Rhs)}
	case lambda.Lambda:
		return &exprDTO{Kind: "lambda", Param: string(t.Param), Body: toDTO(t.Body)}
	default:
		panic(fmt.Sprintf("history: unreachable Expr variant %T", e))
	}
}

func fromDTO(d *exprDTO) (lambda.Expr, error) {
	if d == nil {
		return nil, fmt.Errorf("history: nil expression in journal record")
	}
	switch d.Kind {
	case "var":
		return lambda.V(lambda.Identifier(d.Name)), nil
	case "sym":
		return lambda.Sym(lambda.Identifier(d.Name)), nil
	case "apply":
		lhs, err := fromDTO(d.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := fromDTO(d.Rhs)
		if err != nil {
			return nil, err
		}
		return lambda.A(lhs, rhs), nil
	case "lambda":
		body, err := fromDTO(d.Body)
		if err != nil {
			return nil, err
		}
		return lambda.L(body, lambda.Identifier(d.Param)), nil
	default:
		return nil, fmt.Errorf("history: unknown journal expression kind %q", d.Kind)
	}
}

func identifiersToStrings(ids []lambda.Identifier) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func stringsToIdentifiers(ss []string) []lambda.Identifier {
	if len(ss) == 0 {
		return nil
	}
	out := make([]lambda.Identifier, len(ss))
	for i, s := range ss {
		out[i] = lambda.Identifier(s)
	}
	return out
}
