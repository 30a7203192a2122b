package vrmlparser

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// TokenKind identifies the type of a lexical token.
//
// Keywords (DEF, USE, PROTO, TRUE, ...) are not distinguished here: the same
// word can be a keyword in one position and a node type or field name in
// another, so the grammar decides by context.
type TokenKind int

const (
	TokenEOF        TokenKind = iota
	TokenIdentifier           // bare word: node types, field names, keywords
	TokenString               // "..." with escape processing
	TokenNumber               // integer (decimal or hex), float, scientific notation
	TokenLBrace               // {
	TokenRBrace               // }
	TokenLBracket             // [
	TokenRBracket             // ]
	TokenComma                // ,
	TokenPeriod               // . (ROUTE endpoint separator)
)

var tokenNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenIdentifier: "identifier",
	TokenString:     "string",
	TokenNumber:     "number",
	TokenLBrace:     "'{'",
	TokenRBrace:     "'}'",
	TokenLBracket:   "'['",
	TokenRBracket:   "']'",
	TokenComma:      "','",
	TokenPeriod:     "'.'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical token. Immutable once produced.
type Token struct {
	Kind    TokenKind
	Literal string
	Pos     Position
}
