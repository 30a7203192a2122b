package vrmlparser

import (
	"fmt"
	"strings"
)

// reservedWords may not be used as DEF names, node type names, or
// field/event identifiers.
var reservedWords = map[string]bool{
	"DEF":          true,
	"USE":          true,
	"PROTO":        true,
	"EXTERNPROTO":  true,
	"ROUTE":        true,
	"TO":           true,
	"IS":           true,
	"NULL":         true,
	"TRUE":         true,
	"FALSE":        true,
	"eventIn":      true,
	"eventOut":     true,
	"field":        true,
	"exposedField": true,
}

// ParserContext is a stateful cursor over the token stream. It owns the
// per-document symbol table and PROTO interface tables exclusively; it is not
// reentrant and must not be shared across concurrent parses.
type ParserContext struct {
	lex  *Lexer
	opts Options

	defs     map[string]*Node // DEF name -> node; re-DEF rebinds
	defOrder []string
	usedDefs map[string]bool // DEF names resolved by USE or ROUTE

	protos     map[string]*ProtoDecl
	protoOrder []string

	routes []*Route

	depth int // current node-statement nesting
}

func newParserContext(src []byte, opts Options) *ParserContext {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &ParserContext{
		lex:      NewLexer(src),
		opts:     opts,
		defs:     make(map[string]*Node),
		usedDefs: make(map[string]bool),
		protos:   make(map[string]*ProtoDecl),
	}
}

// Peek returns the next token without consuming it. At end of input it
// returns an EOF token, not an error.
func (c *ParserContext) Peek() (Token, error) {
	return c.lex.Peek()
}

// Next consumes and returns the next token. Advancing past end of input
// fails with UnexpectedEOFError.
func (c *ParserContext) Next() (Token, error) {
	tok, err := c.lex.Peek()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind == TokenEOF {
		return Token{}, &UnexpectedEOFError{ParseError{
			Message: "unexpected end of input",
			Pos:     tok.Pos,
		}}
	}
	return c.lex.Next()
}

func (c *ParserContext) expect(kind TokenKind) (Token, error) {
	tok, err := c.Next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   kind.String(),
			Got:        describeToken(tok),
		}
	}
	return tok, nil
}

// readKeyword consumes the next token and exact-matches it against the given
// keyword.
func (c *ParserContext) readKeyword(word string) error {
	tok, err := c.Next()
	if err != nil {
		return err
	}
	if tok.Kind != TokenIdentifier || tok.Literal != word {
		return &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   fmt.Sprintf("%q", word),
			Got:        describeToken(tok),
		}
	}
	return nil
}

// parseFieldType consumes an identifier and resolves it to a recognized
// SF*/MF* field-type name.
func (c *ParserContext) parseFieldType() (FieldType, error) {
	tok, err := c.Next()
	if err != nil {
		return "", err
	}
	if tok.Kind != TokenIdentifier || !fieldTypes[FieldType(tok.Literal)] {
		return "", &FieldError{ParseError{
			Message: fmt.Sprintf("unknown field type %s", describeToken(tok)),
			Pos:     tok.Pos,
		}}
	}
	return FieldType(tok.Literal), nil
}

func (c *ParserContext) readIdentifier(what string) (Token, error) {
	tok, err := c.Next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != TokenIdentifier {
		return Token{}, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   what,
			Got:        describeToken(tok),
		}
	}
	return tok, nil
}

// parseFieldID consumes and validates a field identifier.
func (c *ParserContext) parseFieldID() (Token, error) {
	tok, err := c.readIdentifier("field identifier")
	if err != nil {
		return Token{}, err
	}
	if reservedWords[tok.Literal] {
		return Token{}, &FieldError{ParseError{
			Message: fmt.Sprintf("reserved word %q cannot be a field identifier", tok.Literal),
			Pos:     tok.Pos,
		}}
	}
	return tok, nil
}

// parseNodeNameID consumes and validates a DEF/USE node name.
func (c *ParserContext) parseNodeNameID() (Token, error) {
	tok, err := c.readIdentifier("node name")
	if err != nil {
		return Token{}, err
	}
	if reservedWords[tok.Literal] {
		return Token{}, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("reserved word %q cannot be a node name", tok.Literal),
				Pos:     tok.Pos,
			},
			Expected: "node name",
			Got:      fmt.Sprintf("reserved word %q", tok.Literal),
		}
	}
	return tok, nil
}

// parseEventInID consumes and validates an eventIn identifier. eventIn names
// may carry an optional set_ prefix but never a _changed suffix.
func (c *ParserContext) parseEventInID() (Token, error) {
	tok, err := c.readIdentifier("eventIn identifier")
	if err != nil {
		return Token{}, err
	}
	if reservedWords[tok.Literal] || strings.HasSuffix(tok.Literal, "_changed") {
		return Token{}, &EventInError{ParseError{
			Message: fmt.Sprintf("invalid eventIn identifier %q", tok.Literal),
			Pos:     tok.Pos,
		}}
	}
	return tok, nil
}

// parseEventOutID consumes and validates an eventOut identifier. eventOut
// names may carry an optional _changed suffix but never a set_ prefix.
func (c *ParserContext) parseEventOutID() (Token, error) {
	tok, err := c.readIdentifier("eventOut identifier")
	if err != nil {
		return Token{}, err
	}
	if reservedWords[tok.Literal] || strings.HasPrefix(tok.Literal, "set_") {
		return Token{}, &EventOutError{ParseError{
			Message: fmt.Sprintf("invalid eventOut identifier %q", tok.Literal),
			Pos:     tok.Pos,
		}}
	}
	return tok, nil
}

// defineNode registers a DEF name. Re-defining a name rebinds it for
// subsequent lookups unless StrictRedefine is set; earlier USE references
// keep the node they already resolved to.
func (c *ParserContext) defineNode(name string, node *Node, pos Position) error {
	if _, exists := c.defs[name]; exists {
		if c.opts.StrictRedefine {
			return &SyntaxError{
				ParseError: ParseError{
					Message: fmt.Sprintf("node name %q is already defined", name),
					Pos:     pos,
				},
				Expected: "unused node name",
				Got:      fmt.Sprintf("redefinition of %q", name),
			}
		}
	} else {
		c.defOrder = append(c.defOrder, name)
	}
	c.defs[name] = node
	return nil
}

// resolveUse looks up a DEF name. The name must already be present in the
// table at the point of use.
func (c *ParserContext) resolveUse(name string, pos Position) (*Node, error) {
	node, ok := c.defs[name]
	if !ok {
		return nil, &UndefinedNodeError{
			ParseError: ParseError{
				Message: fmt.Sprintf("USE of undefined node name %q", name),
				Pos:     pos,
			},
			Name: name,
		}
	}
	c.usedDefs[name] = true
	return node, nil
}

func (c *ParserContext) defineProto(p *ProtoDecl) {
	if _, exists := c.protos[p.Name]; !exists {
		c.protoOrder = append(c.protoOrder, p.Name)
	}
	c.protos[p.Name] = p
}

// enterNode bumps the node-statement nesting depth, failing once the
// configured bound is exceeded. Malformed or adversarial input must not be
// able to exhaust the call stack.
func (c *ParserContext) enterNode(pos Position) error {
	c.depth++
	if c.depth > c.opts.MaxDepth {
		return &DepthError{ParseError{
			Message: fmt.Sprintf("node statements nested deeper than %d", c.opts.MaxDepth),
			Pos:     pos,
		}}
	}
	return nil
}

func (c *ParserContext) leaveNode() {
	c.depth--
}

func describeToken(tok Token) string {
	if tok.Kind == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal)
}

