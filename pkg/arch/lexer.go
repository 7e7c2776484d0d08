package arch

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// fabricLexer defines the lexical structure of fabric description files:
// a small brace-structured language declaring modules, their ports, their
// configurable children, and leaf configuration bits.
var fabricLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line.
	{Name: "Comment", Pattern: `//[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

	// Keywords (must come before Ident)
	{Name: "KwModule", Pattern: `\bmodule\b`},
	{Name: "KwTop", Pattern: `\btop\b`},
	{Name: "KwChild", Pattern: `\bchild\b`},
	{Name: "KwPort", Pattern: `\bport\b`},
	{Name: "KwWidth", Pattern: `\bwidth\b`},
	{Name: "KwBits", Pattern: `\bbits\b`},
	{Name: "KwAs", Pattern: `\bas\b`},

	// Quoted binary literal for leaf bit values, e.g. "1011"
	{Name: "BinaryLit", Pattern: `"[01]*"`},

	// Numbers
	{Name: "Integer", Pattern: `[0-9]+`},

	// Identifiers
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	// Punctuation
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
})
