package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer splits a cast formula into tokens. Item keywords are case-insensitive.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(?:ingredient|incantation)\b`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[:+]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// Build creates the formula parser from the struct tags in ast.go.
func Build() *participle.Parser[Formula] {
	return participle.MustBuild[Formula](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
}
