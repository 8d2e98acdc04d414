package syntax

import (
	"errors"
	"fmt"

	"github.com/opencalc/lambda"
)

// Parse parses src as an expression, trying the ECMAScript-like surface
// first and falling back to the combinator-calculus surface — the same
// "try the first syntax, then the other" shape as the command grammar's
// choice/attempt chain.
func Parse(src string) (lambda.Expr, error) {
	e, esErr := parseES(src)
	if esErr == nil {
		return e, nil
	}

	e, cErr := parseCombinator(src)
	if cErr == nil {
		return e, nil
	}

	return nil, fmt.Errorf("syntax: no grammar matched %q: ecmascript: %w; combinator: %s", src, esErr, cErr)
}

// errEmptyCommand is returned for blank input; there is no command for it.
var errEmptyCommand = errors.New("syntax: empty command")
