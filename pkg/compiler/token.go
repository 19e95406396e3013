package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF     TokenType = iota // sentinel: end of input
	UNKNOWN                  // byte the lexer could not classify

	// Literals
	INTEGER    // decimal integer literal
	IDENTIFIER // variable / function name

	// Keywords
	INT    // "int"
	RETURN // "return"
	IF     // "if"
	WHILE  // "while"

	// Paired delimiters
	LBRACE // {
	RBRACE // }
	LPAREN // (
	RPAREN // )

	// Punctuation
	SEMICOLON // ;
	COMMA     // ,

	// Single-character operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	ASSIGN  // =
	LESS    // <
	GREATER // >
	NOT     // !

	// Two-character operators (matched before the single-character ones)
	EQUALS      // ==
	NOT_EQ      // !=
	AND_LOGICAL // &&
	OR_LOGICAL  // ||
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:         "EOF",
	UNKNOWN:     "UNKNOWN",
	INTEGER:     "INTEGER",
	IDENTIFIER:  "IDENTIFIER",
	INT:         "INT",
	RETURN:      "RETURN",
	IF:          "IF",
	WHILE:       "WHILE",
	LBRACE:      "LBRACE",
	RBRACE:      "RBRACE",
	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	SEMICOLON:   "SEMICOLON",
	COMMA:       "COMMA",
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	STAR:        "STAR",
	SLASH:       "SLASH",
	ASSIGN:      "ASSIGN",
	LESS:        "LESS",
	GREATER:     "GREATER",
	NOT:         "NOT",
	EQUALS:      "EQUALS",
	NOT_EQ:      "NOT_EQ",
	AND_LOGICAL: "AND_LOGICAL",
	OR_LOGICAL:  "OR_LOGICAL",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
// Lexeme is a view into the source buffer (the source must outlive the token
// slice); Line and Col locate the token's first character, 1-based.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched; empty for EOF
	Line   int
	Col    int
}

func (t Token) String() string {
	return fmt.Sprintf("%-11s %-14q  %d:%d", t.Type, t.Lexeme, t.Line, t.Col)
}
