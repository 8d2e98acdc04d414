// Package lambda implements an untyped lambda-calculus / combinator
// language: an expression algebra over variables, symbols, applications and
// lambdas; a Context of named function definitions; a leftmost-outermost,
// resumable reduction step generator; and a lambda-to-SKI translator.
//
// Sibling packages build the rest of a runnable system on top of this
// core: syntax parses the two concrete surface syntaxes into Expr and
// Command values, engine dispatches Commands against a Context, history
// implements the journal hooks this package only declares an interface
// for, diagram renders a Tromp diagram of an Expr, and cmd/lambdarun ties
// all of them into a terminal front end.
package lambda
