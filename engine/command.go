// Package engine dispatches already-classified Commands against a
// lambda.Context, journaling mutations through a lambda.History and
// bounding reductions by a step limit. It is the layer a parser or REPL
// sits on top of; it never parses raw input itself.
package engine

import "github.com/opencalc/lambda"

// Command is the sum type of every operation the engine can apply, one
// variant per row of the command surface table: Update, Del, Eval,
// EvalLast, EvalHead, EvalTail, Info, Global, Unlambda.
type Command interface {
	commandNode()
}

// Update inserts or replaces a function definition. An Update whose Func
// has no params and a body of Variable(Func.Name) is rewritten to Del by
// Apply, not by this type.
type Update struct {
	Func lambda.Function
}

// Del removes a definition by name.
type Del struct {
	Name lambda.Identifier
}

// Eval requests the full reduction step stream of Expr.
type Eval struct {
	Expr lambda.Expr
}

// EvalLast requests only the final term of a bounded reduction.
type EvalLast struct {
	Expr lambda.Expr
}

// EvalHead requests the first N reduction steps.
type EvalHead struct {
	N    int
	Expr lambda.Expr
}

// EvalTail requests the last N reduction steps of a (assumed-finite)
// reduction.
type EvalTail struct {
	N    int
	Expr lambda.Expr
}

// Info requests the stored Function for an identifier.
type Info struct {
	Name lambda.Identifier
}

// Global requests a listing of the whole Context.
type Global struct{}

// Unlambda requests the SKI translation of Expr under the engine's
// configured combinator names.
type Unlambda struct {
	Expr lambda.Expr
}

func (Update) commandNode()   {}
func (Del) commandNode()      {}
func (Eval) commandNode()     {}
func (EvalLast) commandNode() {}
func (EvalHead) commandNode() {}
func (EvalTail) commandNode() {}
func (Info) commandNode()     {}
func (Global) commandNode()   {}
func (Unlambda) commandNode() {}
