package vrmlparser

import "fmt"

// Route is a parsed ROUTE statement. Routing semantics are not executed; the
// statement is recorded with its endpoints resolved against the symbol table.
type Route struct {
	FromNode  string
	FromEvent string
	ToNode    string
	ToEvent   string
	Pos       Position
}

// parseNodeStatement parses 'DEF name Type { ... }', 'USE name', or
// 'Type { ... }'. A USE short-circuits construction by resolving the symbol
// table instead of parsing a body.
func (c *ParserContext) parseNodeStatement() (*Node, error) {
	tok, err := c.readIdentifier("node statement")
	if err != nil {
		return nil, err
	}

	switch tok.Literal {
	case "DEF":
		nameTok, err := c.parseNodeNameID()
		if err != nil {
			return nil, err
		}
		typeTok, err := c.readIdentifier("node type")
		if err != nil {
			return nil, err
		}
		node, err := c.parseNode(typeTok)
		if err != nil {
			return nil, err
		}
		node.Name = nameTok.Literal
		if err := c.defineNode(nameTok.Literal, node, nameTok.Pos); err != nil {
			return nil, err
		}
		return node, nil

	case "USE":
		nameTok, err := c.parseNodeNameID()
		if err != nil {
			return nil, err
		}
		return c.resolveUse(nameTok.Literal, nameTok.Pos)

	default:
		return c.parseNode(tok)
	}
}

// parseNode parses '{ fieldStatement* }' after the type identifier. The
// enclosing type selects the known field set: built-in types use the fixed
// table, PROTO types their interface declaration.
func (c *ParserContext) parseNode(typeTok Token) (*Node, error) {
	fieldTypeFor, err := c.nodeFieldSet(typeTok)
	if err != nil {
		return nil, err
	}

	if err := c.enterNode(typeTok.Pos); err != nil {
		return nil, err
	}
	defer c.leaveNode()

	if _, err := c.expect(TokenLBrace); err != nil {
		return nil, err
	}

	node := &Node{Type: typeTok.Literal, Pos: typeTok.Pos}
	for {
		tok, err := c.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenRBrace {
			_, _ = c.Next()
			return node, nil
		}
		if err := c.parseFieldStatement(node, fieldTypeFor); err != nil {
			return nil, err
		}
	}
}

// nodeFieldSet resolves a node type name to its field-name -> field-type
// lookup. Unknown node types are rejected.
func (c *ParserContext) nodeFieldSet(typeTok Token) (func(string) (FieldType, bool), error) {
	if m, ok := builtinNodeFields[typeTok.Literal]; ok {
		return func(name string) (FieldType, bool) {
			t, ok := m[name]
			return t, ok
		}, nil
	}
	if p, ok := c.protos[typeTok.Literal]; ok {
		return p.FieldType, nil
	}
	return nil, &SyntaxError{
		ParseError: ParseError{
			Message: fmt.Sprintf("unknown node type %q", typeTok.Literal),
			Pos:     typeTok.Pos,
		},
		Expected: "node type",
		Got:      fmt.Sprintf("unknown type %q", typeTok.Literal),
	}
}

// parseFieldStatement parses '<fieldId> <literal>' inside a node body.
func (c *ParserContext) parseFieldStatement(node *Node, fieldTypeFor func(string) (FieldType, bool)) error {
	nameTok, err := c.parseFieldID()
	if err != nil {
		return err
	}

	ft, known := fieldTypeFor(nameTok.Literal)
	if !known {
		return &FieldError{ParseError{
			Message: fmt.Sprintf("unknown field %q on node type %q", nameTok.Literal, node.Type),
			Pos:     nameTok.Pos,
		}}
	}
	if node.hasField(nameTok.Literal) {
		return &FieldError{ParseError{
			Message: fmt.Sprintf("duplicate field %q on node type %q", nameTok.Literal, node.Type),
			Pos:     nameTok.Pos,
		}}
	}

	value, err := parseFieldValue(c, ft)
	if err != nil {
		return err
	}
	node.Fields = append(node.Fields, &NodeField{
		Name:  nameTok.Literal,
		Value: value,
		Pos:   nameTok.Pos,
	})
	return nil
}

// parseProto parses a PROTO or EXTERNPROTO statement after its keyword has
// been consumed. PROTO carries a default body of statements; EXTERNPROTO
// carries the URL list locating the external definition.
func (c *ParserContext) parseProto(external bool, kwPos Position) (*ProtoDecl, error) {
	nameTok, err := c.parseNodeNameID()
	if err != nil {
		return nil, err
	}
	decl := &ProtoDecl{Name: nameTok.Literal, External: external, Pos: kwPos}

	if _, err := c.expect(TokenLBracket); err != nil {
		return nil, err
	}
	for {
		tok, err := c.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenRBracket {
			_, _ = c.Next()
			break
		}
		if err := c.parseInterfaceDecl(decl); err != nil {
			return nil, err
		}
	}

	if external {
		url, err := parseFieldValue(c, TypeMFString)
		if err != nil {
			return nil, err
		}
		decl.URL = url.(*MFString)
	} else {
		if _, err := c.expect(TokenLBrace); err != nil {
			return nil, err
		}
		for {
			tok, err := c.Peek()
			if err != nil {
				return nil, err
			}
			if tok.Kind == TokenRBrace {
				_, _ = c.Next()
				break
			}
			if tok.Kind == TokenIdentifier && tok.Literal == "ROUTE" {
				_, _ = c.Next()
				route, err := c.parseRoute(tok.Pos)
				if err != nil {
					return nil, err
				}
				c.routes = append(c.routes, route)
				continue
			}
			node, err := c.parseNodeStatement()
			if err != nil {
				return nil, err
			}
			decl.Body = append(decl.Body, node)
		}
	}

	c.defineProto(decl)
	return decl, nil
}

// parseInterfaceDecl parses one 'field'/'exposedField'/'eventIn'/'eventOut'
// declaration. PROTO field declarations carry a default literal; EXTERNPROTO
// declarations do not.
func (c *ParserContext) parseInterfaceDecl(decl *ProtoDecl) error {
	kindTok, err := c.Next()
	if err != nil {
		return err
	}
	if kindTok.Kind != TokenIdentifier {
		return &SyntaxError{
			ParseError: ParseError{Pos: kindTok.Pos},
			Expected:   "interface declaration (field, exposedField, eventIn, or eventOut)",
			Got:        describeToken(kindTok),
		}
	}

	switch kindTok.Literal {
	case "field", "exposedField":
		ft, err := c.parseFieldType()
		if err != nil {
			return err
		}
		idTok, err := c.parseFieldID()
		if err != nil {
			return err
		}
		if _, dup := decl.FieldType(idTok.Literal); dup {
			return &FieldError{ParseError{
				Message: fmt.Sprintf("duplicate interface field %q in %s", idTok.Literal, decl.Name),
				Pos:     idTok.Pos,
			}}
		}
		f := &InterfaceField{
			Name:    idTok.Literal,
			Type:    ft,
			Exposed: kindTok.Literal == "exposedField",
			Pos:     idTok.Pos,
		}
		if !decl.External {
			def, err := parseFieldValue(c, ft)
			if err != nil {
				return err
			}
			f.Default = def
		}
		decl.Fields = append(decl.Fields, f)
		return nil

	case "eventIn":
		ft, err := c.parseFieldType()
		if err != nil {
			return err
		}
		idTok, err := c.parseEventInID()
		if err != nil {
			return err
		}
		decl.EventIns = append(decl.EventIns, &EventDecl{Name: idTok.Literal, Type: ft, Pos: idTok.Pos})
		return nil

	case "eventOut":
		ft, err := c.parseFieldType()
		if err != nil {
			return err
		}
		idTok, err := c.parseEventOutID()
		if err != nil {
			return err
		}
		decl.EventOuts = append(decl.EventOuts, &EventDecl{Name: idTok.Literal, Type: ft, Pos: idTok.Pos})
		return nil
	}

	return &SyntaxError{
		ParseError: ParseError{Pos: kindTok.Pos},
		Expected:   "interface declaration (field, exposedField, eventIn, or eventOut)",
		Got:        fmt.Sprintf("identifier (%q)", kindTok.Literal),
	}
}

// parseRoute parses 'node.eventOut TO node.eventIn' after the ROUTE keyword
// has been consumed. Both node names must resolve in the symbol table.
func (c *ParserContext) parseRoute(kwPos Position) (*Route, error) {
	fromTok, err := c.parseNodeNameID()
	if err != nil {
		return nil, err
	}
	if _, err := c.resolveUse(fromTok.Literal, fromTok.Pos); err != nil {
		return nil, err
	}
	if _, err := c.expect(TokenPeriod); err != nil {
		return nil, err
	}
	fromEvent, err := c.parseEventOutID()
	if err != nil {
		return nil, err
	}

	if err := c.readKeyword("TO"); err != nil {
		return nil, err
	}

	toTok, err := c.parseNodeNameID()
	if err != nil {
		return nil, err
	}
	if _, err := c.resolveUse(toTok.Literal, toTok.Pos); err != nil {
		return nil, err
	}
	if _, err := c.expect(TokenPeriod); err != nil {
		return nil, err
	}
	toEvent, err := c.parseEventInID()
	if err != nil {
		return nil, err
	}

	return &Route{
		FromNode:  fromTok.Literal,
		FromEvent: fromEvent.Literal,
		ToNode:    toTok.Literal,
		ToEvent:   toEvent.Literal,
		Pos:       kwPos,
	}, nil
}
