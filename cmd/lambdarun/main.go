// Command lambdarun is a terminal front end for the lambda package: it
// parses expressions through the syntax package, dispatches commands
// through the engine package, and journals definitions through the
// history package.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/opencalc/lambda"
	"github.com/opencalc/lambda/diagram"
	"github.com/opencalc/lambda/engine"
	"github.com/opencalc/lambda/history"
	"github.com/opencalc/lambda/syntax"
)

var version = "v0.1.0"

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	cmd := &cli.Command{
		Name:    "lambdarun",
		Usage:   "evaluate and inspect untyped lambda-calculus / combinator expressions",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:      "eval",
				Usage:     "print the full reduction step stream of an expression",
				ArgsUsage: "<expr>",
				Flags:     []cli.Flag{stepsFlag()},
				Action:    evalAction,
			},
			{
				Name:      "run",
				Usage:     "reduce an expression to (at most) its normal form and print the result",
				ArgsUsage: "<expr>",
				Flags: []cli.Flag{
					stepsFlag(),
					&cli.StringFlag{Name: "type", Value: "auto", Usage: "output type: auto, int, bool, lambda"},
				},
				Action: runAction,
			},
			{
				Name:      "unlambda",
				Usage:     "translate an expression's lambdas into S, K, I combinators",
				ArgsUsage: "<expr>",
				Action:    unlambdaAction,
			},
			{
				Name:      "diagram",
				Usage:     "render an expression as a Tromp diagram",
				ArgsUsage: "<expr>",
				Flags:     []cli.Flag{&cli.BoolFlag{Name: "svg", Usage: "emit SVG instead of ASCII"}},
				Action:    diagramAction,
			},
			{
				Name:   "repl",
				Usage:  "interactive read-eval-print loop over a journaled Context",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "journal", Value: "lambdarun.journal.yaml", Usage: "path to the append-only definition journal"}},
				Action: replAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "lambdarun: %v\n", err)
		os.Exit(1)
	}
}

func stepsFlag() cli.Flag {
	return &cli.IntFlag{Name: "steps", Value: engine.DefaultStepLimit, Usage: "maximum number of reduction steps"}
}

func parseArg(cmd *cli.Command) (lambda.Expr, error) {
	if cmd.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one expression argument")
	}
	return syntax.Parse(cmd.Args().First())
}

func evalAction(ctx context.Context, cmd *cli.Command) error {
	e, err := parseArg(cmd)
	if err != nil {
		return err
	}

	r := lambda.NewReducer(e, lambda.DefaultContext())
	fmt.Println(e)
	for i := 0; i < int(cmd.Int("steps")); i++ {
		step, ok := r.Next()
		if !ok {
			break
		}
		fmt.Println(step)
	}
	return nil
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	e, err := parseArg(cmd)
	if err != nil {
		return err
	}

	r := lambda.NewReducer(e, lambda.DefaultContext())
	result, more := r.EvalLast(int(cmd.Int("steps")))
	if result == nil {
		// No step was taken: the input is already in normal form.
		result = e
	}
	if more {
		color.New(color.FgYellow).Fprintf(os.Stderr, "warning: reached step limit (%d); result may be partially reduced\n", cmd.Int("steps"))
	}

	switch outputType := cmd.String("type"); outputType {
	case "bool":
		b, ok := tryToBool(result)
		if !ok {
			return fmt.Errorf("result is not a Church boolean: %s", result)
		}
		fmt.Println(b)
	case "int":
		n, ok := tryToInt(result)
		if !ok {
			return fmt.Errorf("result is not a Church numeral: %s", result)
		}
		fmt.Println(n)
	case "lambda":
		fmt.Println(result)
	case "auto":
		if n, ok := tryToInt(result); ok {
			fmt.Println(n)
		} else if b, ok := tryToBool(result); ok {
			fmt.Println(b)
		} else {
			fmt.Println(result)
		}
	default:
		return fmt.Errorf("invalid -type %q (must be: auto, int, bool, lambda)", outputType)
	}
	return nil
}

func unlambdaAction(ctx context.Context, cmd *cli.Command) error {
	e, err := parseArg(cmd)
	if err != nil {
		return err
	}
	fmt.Println(lambda.Unlambda(e, engine.DefaultSKI))
	return nil
}

func diagramAction(ctx context.Context, cmd *cli.Command) error {
	e, err := parseArg(cmd)
	if err != nil {
		return err
	}
	d := diagram.Of(e)
	if cmd.Bool("svg") {
		fmt.Println(d.SVG())
	} else {
		fmt.Println(d.ASCII())
	}
	return nil
}

// tryToInt interprets e as a Church numeral λf.λx. f (f ( ... (f x) ...)),
// returning the count of nested f-applications.
func tryToInt(e lambda.Expr) (int, bool) {
	outer, ok := e.(lambda.Lambda)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(lambda.Lambda)
	if !ok {
		return 0, false
	}

	count := 0
	current := inner.Body
	for {
		app, ok := current.(lambda.Apply)
		if !ok {
			if v, ok := current.(lambda.Variable); ok && v.Name == inner.Param {
				return count, true
			}
			return 0, false
		}
		v, ok := app.Lhs.(lambda.Variable)
		if !ok || v.Name != outer.Param {
			return 0, false
		}
		count++
		current = app.Rhs
	}
}

// tryToBool interprets e as a Church boolean λx.λy.x (true) or λx.λy.y
// (false).
func tryToBool(e lambda.Expr) (bool, bool) {
	outer, ok := e.(lambda.Lambda)
	if !ok {
		return false, false
	}
	inner, ok := outer.Body.(lambda.Lambda)
	if !ok {
		return false, false
	}
	v, ok := inner.Body.(lambda.Variable)
	if !ok {
		return false, false
	}
	switch v.Name {
	case outer.Param:
		return true, true
	case inner.Param:
		return false, true
	default:
		return false, false
	}
}

func replAction(ctx context.Context, cmd *cli.Command) error {
	journalPath := cmd.String("journal")
	base := lambda.DefaultContext()

	lctx, err := history.Replay(journalPath, base)
	if err != nil {
		return fmt.Errorf("replaying journal: %w", err)
	}

	j, err := history.Open(journalPath)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer j.Close()

	eng := engine.New(lctx, j, engine.DefaultStepLimit)

	prompt := color.New(color.FgCyan)
	scanner := bufio.NewScanner(os.Stdin)
	prompt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			runCommandLine(eng, line)
		}
		prompt.Print("> ")
	}
	fmt.Println()
	return scanner.Err()
}

func runCommandLine(eng *engine.Engine, line string) {
	cmd, err := syntax.ParseCommand(line)
	if err != nil {
		color.New(color.FgRed).Printf("parse error: %v\n", err)
		return
	}

	result, err := eng.Apply(cmd)
	if err != nil {
		color.New(color.FgRed).Printf("error: %v\n", err)
		return
	}

	switch r := result.(type) {
	case engine.Defined:
		fmt.Printf("defined %s\n", r.Name)
	case engine.Removed:
		fmt.Printf("removed %s\n", r.Name)
	case engine.Steps:
		for _, t := range r.Terms {
			fmt.Println(t)
		}
	case engine.Final:
		fmt.Println(r.Expr)
		if r.More {
			color.New(color.FgYellow).Println("(step limit reached; result may be partially reduced)")
		}
	case engine.Definition:
		fmt.Println(r.Func)
	case engine.Listing:
		for _, f := range r.Funcs {
			fmt.Println(f)
		}
	case engine.Translated:
		fmt.Println(r.Expr)
	}
}
