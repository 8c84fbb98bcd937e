package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var LayerLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments run to end of line
		{"Comment", `#[^\n]*`, nil},

		// String literals have no escapes and cannot span lines
		{"String", `"[^"\n]*"`, nil},

		{"Number", `[0-9]+(\.[0-9]+)?`, nil},

		// Keywords are reserved and never lex as identifiers
		{"Keyword", `(cvar|ivar|fwrite|write|loop|for|times|while|if|true|false)\b`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Operators (longest first so "->" wins over "-")
		{"Operator", `->|==|!=|<=|>=|[-+*/^=<>]`, nil},

		{"Punctuation", `[(){},]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
