package vrmlparser

import (
	"bytes"
	"fmt"
)

// DefaultMaxDepth bounds node-statement nesting when Options.MaxDepth is
// unset. The format itself imposes no limit; the bound keeps adversarial
// input from exhausting the call stack.
const DefaultMaxDepth = 256

// header is the required first line of a VRML 2.0 document.
var header = []byte("#VRML V2.0 utf8")

// Options configures a parse.
type Options struct {
	// StrictRedefine rejects a DEF statement that re-defines an existing
	// name instead of silently rebinding it.
	StrictRedefine bool

	// MaxDepth bounds node-statement nesting. Zero means DefaultMaxDepth.
	MaxDepth int

	// RequireHeader rejects documents whose first line is not the
	// '#VRML V2.0 utf8' header.
	RequireHeader bool
}

// Scene is the finished result of a document parse: the top-level node
// sequence plus the symbol and interface tables. Ownership transfers to the
// caller; the ParserContext that built it is discarded.
type Scene struct {
	Nodes  []*Node
	Defs   map[string]*Node      // DEF name -> node (final binding)
	Protos map[string]*ProtoDecl // PROTO/EXTERNPROTO name -> interface
	Routes []*Route

	defOrder   []string
	protoOrder []string
	usedDefs   map[string]bool
}

// DefNames returns the DEF names in first-definition order.
func (s *Scene) DefNames() []string {
	out := make([]string, len(s.defOrder))
	copy(out, s.defOrder)
	return out
}

// ProtoNames returns the PROTO/EXTERNPROTO names in declaration order.
func (s *Scene) ProtoNames() []string {
	out := make([]string, len(s.protoOrder))
	copy(out, s.protoOrder)
	return out
}

// DefUsed reports whether the DEF name was resolved by any USE or ROUTE
// statement.
func (s *Scene) DefUsed(name string) bool {
	return s.usedDefs[name]
}

// Parse parses a complete VRML document and returns the scene graph. On
// failure it returns nil and one of the package's positioned error types;
// there is no partial best-effort result.
func Parse(src []byte) (*Scene, error) {
	return ParseWithOptions(src, Options{})
}

// ParseWithOptions parses a complete VRML document with explicit options.
func ParseWithOptions(src []byte, opts Options) (*Scene, error) {
	if opts.RequireHeader && !hasHeader(src) {
		return nil, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("missing %q header", header),
				Pos:     Position{Line: 1, Column: 1},
			},
			Expected: fmt.Sprintf("%q", header),
			Got:      "first line without header",
		}
	}

	c := newParserContext(src, opts)
	var nodes []*Node

	for {
		tok, err := c.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			break
		}
		if tok.Kind != TokenIdentifier {
			return nil, &SyntaxError{
				ParseError: ParseError{Pos: tok.Pos},
				Expected:   "statement (node, DEF, USE, PROTO, EXTERNPROTO, or ROUTE)",
				Got:        describeToken(tok),
			}
		}

		switch tok.Literal {
		case "PROTO":
			_, _ = c.Next()
			if _, err := c.parseProto(false, tok.Pos); err != nil {
				return nil, err
			}
		case "EXTERNPROTO":
			_, _ = c.Next()
			if _, err := c.parseProto(true, tok.Pos); err != nil {
				return nil, err
			}
		case "ROUTE":
			_, _ = c.Next()
			route, err := c.parseRoute(tok.Pos)
			if err != nil {
				return nil, err
			}
			c.routes = append(c.routes, route)
		default:
			node, err := c.parseNodeStatement()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
	}

	return &Scene{
		Nodes:      nodes,
		Defs:       c.defs,
		Protos:     c.protos,
		Routes:     c.routes,
		defOrder:   c.defOrder,
		protoOrder: c.protoOrder,
		usedDefs:   c.usedDefs,
	}, nil
}

// ParseFieldLiteral parses a single field literal of the given type from
// src. Node-valued literals may not contain USE references, since no symbol
// table surrounds a standalone literal.
func ParseFieldLiteral(src []byte, ft FieldType) (Field, error) {
	if !fieldTypes[ft] {
		return nil, &FieldError{ParseError{
			Message: fmt.Sprintf("unknown field type %q", ft),
			Pos:     Position{Line: 1, Column: 1},
		}}
	}
	c := newParserContext(src, Options{})
	f, err := parseFieldValue(c, ft)
	if err != nil {
		return nil, err
	}
	tok, err := c.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "EOF",
			Got:        describeToken(tok),
		}
	}
	return f, nil
}

func hasHeader(src []byte) bool {
	end := bytes.IndexByte(src, '\n')
	if end < 0 {
		end = len(src)
	}
	return bytes.Equal(bytes.TrimRight(src[:end], " \t\r"), header)
}
