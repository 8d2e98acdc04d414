package engine

import "github.com/opencalc/lambda"

// Result is the sum type Engine.Apply produces, one variant per Command
// variant's outcome.
type Result interface {
	resultNode()
}

// Defined reports that Name now holds a new or replaced definition.
type Defined struct {
	Name lambda.Identifier
}

// Removed reports that Name's definition was deleted.
type Removed struct {
	Name lambda.Identifier
}

// Steps carries an ordered sequence of intermediate terms, produced by
// Eval, EvalHead or EvalTail.
type Steps struct {
	Terms []lambda.Expr
}

// Final carries the last term reached by a bounded reduction (EvalLast)
// and whether the step limit cut it off before normal form.
type Final struct {
	Expr lambda.Expr
	More bool
}

// Definition carries a single stored Function, the answer to Info.
type Definition struct {
	Func lambda.Function
}

// Listing carries every stored Function, in Context iteration order, the
// answer to Global.
type Listing struct {
	Funcs []lambda.Function
}

// Translated carries the Lambda-free term produced by Unlambda.
type Translated struct {
	Expr lambda.Expr
}

func (Defined) resultNode()    {}
func (Removed) resultNode()    {}
func (Steps) resultNode()      {}
func (Final) resultNode()      {}
func (Definition) resultNode() {}
func (Listing) resultNode()    {}
func (Translated) resultNode() {}
