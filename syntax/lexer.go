// Package syntax parses the two concrete surface syntaxes named in the
// command surface: an ECMAScript-like form (f(x, y), x => body, :sym) and a
// combinator-calculus form (`` `f x ``, ^x.body, :sym). Parse tries the
// former then the latter; ParseCommand additionally recognizes the
// update/eval/info/global/unlambda command prefixes built around them.
package syntax

import "github.com/alecthomas/participle/v2/lexer"

// lex tokenizes both surface syntaxes; neither reuses a token value the
// other needs to tell apart, so one lexer serves both grammars.
var lex = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Whitespace", `[ \t\r\n]+`, nil},
		{"Arrow", `=>`, nil},
		{"Number", `[0-9]+`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Tick", "`", nil},
		{"Backslash", `\\`, nil},
		{"Punct", `[(),.:=!?^-]`, nil},
	},
})
