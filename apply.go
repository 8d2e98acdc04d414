package lambda

import "fmt"

// arity returns the number of arguments head needs before it reduces at the
// head position:
//
//   - (_, false) if head is not a redex candidate (Apply, Symbol, or a free
//     Variable not in ctx).
//   - (1, true) if head is a Lambda.
//   - (len(f.Params), true) if head is a Variable bound to a Function f in
//     ctx. An alias (len==0) still returns (0, true): it reduces
//     unconditionally at the head.
func arity(ctx *Context, head Expr) (int, bool) {
	switch h := head.(type) {
	case Lambda:
		return 1, true
	case Variable:
		f, ok := ctx.Get(h.Name)
		if !ok {
			return 0, false
		}
		return f.Arity(), true
	default:
		return 0, false
	}
}

// apply mutates *head in place to its one-step reduct given exactly
// arity(ctx, *head) arguments, already detached from the spine and supplied
// in application order (args[0] is the first/innermost argument applied).
//
//   - Lambda: one beta-step, body with param substituted by args[0].
//   - Context function: substitute every formal parameter in the body with
//     its corresponding argument simultaneously (not one at a time — see
//     SubstituteSimultaneous), then replace head with the resulting body.
//     An alias (no params) replaces head with its body verbatim.
//
// apply is a precondition-checked operation: len(args) must equal
// arity(ctx, *head). A mismatch is an ErrInvariantViolation.
func apply(ctx *Context, head *Expr, args []Expr) error {
	switch h := (*head).(type) {
	case Lambda:
		if len(args) != 1 {
			return fmt.Errorf("%w: lambda expects 1 argument, got %d", ErrInvariantViolation, len(args))
		}
		*head = Substitute(h.Body, h.Param, args[0])
		return nil
	case Variable:
		f, ok := ctx.Get(h.Name)
		if !ok {
			return fmt.Errorf("%w: %q is not a known function", ErrInvariantViolation, h.Name)
		}
		if len(args) != f.Arity() {
			return fmt.Errorf("%w: %q expects %d arguments, got %d", ErrInvariantViolation, h.Name, f.Arity(), len(args))
		}
		*head = SubstituteSimultaneous(f.Body, f.Params, args)
		return nil
	default:
		return fmt.Errorf("%w: %T is not applicable", ErrInvariantViolation, *head)
	}
}
