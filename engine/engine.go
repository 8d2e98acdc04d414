package engine

import (
	"fmt"

	"github.com/opencalc/lambda"
)

// DefaultStepLimit bounds EvalLast/EvalHead/EvalTail when a caller (a REPL
// reading one line at a time, say) has no better bound of its own.
const DefaultStepLimit = 10_000

// DefaultSKI names the combinators Unlambda commands rewrite Lambda binders
// into, matching the identifiers DefaultContext defines I/K/S under.
var DefaultSKI = lambda.SKINames{S: "s", K: "k", I: "i"}

// Engine dispatches Commands against a Context, journaling every mutation
// through a History and never letting a Context and its journal diverge:
// if the journal rejects a mutation, the Context change is rolled back
// before Apply returns.
type Engine struct {
	ctx       *lambda.Context
	history   lambda.History
	stepLimit int
	ski       lambda.SKINames
}

// New builds an Engine over ctx. A nil history is replaced with
// lambda.NopHistory. A non-positive stepLimit is replaced with
// DefaultStepLimit.
func New(ctx *lambda.Context, history lambda.History, stepLimit int) *Engine {
	if history == nil {
		history = lambda.NopHistory{}
	}
	if stepLimit <= 0 {
		stepLimit = DefaultStepLimit
	}
	return &Engine{ctx: ctx, history: history, stepLimit: stepLimit, ski: DefaultSKI}
}

// Context returns the Engine's underlying Context. Callers must not mutate
// it directly; go through Apply so the History stays in sync.
func (e *Engine) Context() *lambda.Context {
	return e.ctx
}

// SetSKI overrides the combinator names Unlambda commands translate into.
func (e *Engine) SetSKI(ski lambda.SKINames) {
	e.ski = ski
}

// Apply dispatches cmd against the Engine's Context, per the command
// surface table: Update/Del mutate the Context and journal the mutation;
// Eval/EvalLast/EvalHead/EvalTail run a bounded or unbounded reduction;
// Info/Global read the Context; Unlambda runs the SKI translation.
func (e *Engine) Apply(cmd Command) (Result, error) {
	switch c := cmd.(type) {
	case Update:
		return e.applyUpdate(c.Func)
	case Del:
		return e.applyDel(c.Name)
	case Eval:
		r := lambda.NewReducer(c.Expr, e.ctx)
		var terms []lambda.Expr
		for {
			t, ok := r.Next()
			if !ok {
				break
			}
			terms = append(terms, t)
		}
		return Steps{Terms: terms}, nil
	case EvalLast:
		r := lambda.NewReducer(c.Expr, e.ctx)
		t, more := r.EvalLast(e.stepLimit)
		if t == nil {
			t = c.Expr
		}
		return Final{Expr: t, More: more}, nil
	case EvalHead:
		r := lambda.NewReducer(c.Expr, e.ctx)
		return Steps{Terms: r.EvalHead(c.N)}, nil
	case EvalTail:
		r := lambda.NewReducer(c.Expr, e.ctx)
		terms := r.EvalHead(e.stepLimit)
		if len(terms) > c.N {
			terms = terms[len(terms)-c.N:]
		}
		return Steps{Terms: terms}, nil
	case Info:
		f, ok := e.ctx.Get(c.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", lambda.ErrUnknownIdentifier, c.Name)
		}
		return Definition{Func: f}, nil
	case Global:
		var funcs []lambda.Function
		for _, f := range e.ctx.All() {
			funcs = append(funcs, f)
		}
		return Listing{Funcs: funcs}, nil
	case Unlambda:
		return Translated{Expr: lambda.Unlambda(c.Expr, e.ski)}, nil
	default:
		return nil, fmt.Errorf("engine: unhandled command %T", cmd)
	}
}

// applyUpdate rewrites a self-referential, parameterless Update to a Del
// (spec Open Questions: `f = f` deletes f for compatibility), then defines
// the function, journals it, and rolls back the Context on journal failure.
func (e *Engine) applyUpdate(f lambda.Function) (Result, error) {
	if len(f.Params) == 0 {
		if v, ok := f.Body.(lambda.Variable); ok && v.Name == f.Name {
			return e.applyDel(f.Name)
		}
	}

	prev, existed := e.ctx.Get(f.Name)
	e.ctx.Def(f)
	if err := e.history.PushDef(f); err != nil {
		if existed {
			e.ctx.Def(prev)
		} else {
			e.ctx.Del(f.Name)
		}
		return nil, fmt.Errorf("engine: history rejected definition of %q: %w", f.Name, err)
	}
	return Defined{Name: f.Name}, nil
}

// applyDel removes name, journals the removal, and restores it on journal
// failure.
func (e *Engine) applyDel(name lambda.Identifier) (Result, error) {
	prev, existed := e.ctx.Get(name)
	if !existed {
		return nil, fmt.Errorf("%w: %q", lambda.ErrUnknownIdentifier, name)
	}

	e.ctx.Del(name)
	if err := e.history.PushDel(name); err != nil {
		e.ctx.Def(prev)
		return nil, fmt.Errorf("engine: history rejected deletion of %q: %w", name, err)
	}
	return Removed{Name: name}, nil
}
