package vrmlparser

import (
	"fmt"
	"strconv"
	"strings"
)

// parseFieldValue consumes the literal syntax of the given field type and
// returns the parsed value. Multi-field literals accept a bracketed,
// comma-tolerant sequence of the element type, or a single bare element when
// brackets are omitted.
func parseFieldValue(c *ParserContext, ft FieldType) (Field, error) {
	if elem, ok := elementTypes[ft]; ok {
		return parseMultiField(c, ft, elem)
	}

	switch ft {
	case TypeSFBool:
		return parseSFBool(c)
	case TypeSFColor:
		v, err := parseFloats32(c, ft, 3)
		if err != nil {
			return nil, err
		}
		return &SFColor{R: v[0], G: v[1], B: v[2]}, nil
	case TypeSFColorRGBA:
		v, err := parseFloats32(c, ft, 4)
		if err != nil {
			return nil, err
		}
		return &SFColorRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
	case TypeSFDouble:
		v, err := parseFloat64(c, ft)
		if err != nil {
			return nil, err
		}
		return &SFDouble{Value: v}, nil
	case TypeSFFloat:
		v, err := parseFloat32(c, ft)
		if err != nil {
			return nil, err
		}
		return &SFFloat{Value: v}, nil
	case TypeSFImage:
		return parseSFImage(c)
	case TypeSFInt32:
		v, err := parseInt32(c, ft)
		if err != nil {
			return nil, err
		}
		return &SFInt32{Value: v}, nil
	case TypeSFNode:
		return parseSFNode(c)
	case TypeSFRotation:
		v, err := parseFloats32(c, ft, 4)
		if err != nil {
			return nil, err
		}
		return &SFRotation{X: v[0], Y: v[1], Z: v[2], Angle: v[3]}, nil
	case TypeSFString:
		return parseSFString(c)
	case TypeSFTime:
		v, err := parseFloat64(c, ft)
		if err != nil {
			return nil, err
		}
		return &SFTime{Value: v}, nil
	case TypeSFVec2d:
		v, err := parseFloats64(c, ft, 2)
		if err != nil {
			return nil, err
		}
		return &SFVec2d{X: v[0], Y: v[1]}, nil
	case TypeSFVec2f:
		v, err := parseFloats32(c, ft, 2)
		if err != nil {
			return nil, err
		}
		return &SFVec2f{X: v[0], Y: v[1]}, nil
	case TypeSFVec3d:
		v, err := parseFloats64(c, ft, 3)
		if err != nil {
			return nil, err
		}
		return &SFVec3d{X: v[0], Y: v[1], Z: v[2]}, nil
	case TypeSFVec3f:
		v, err := parseFloats32(c, ft, 3)
		if err != nil {
			return nil, err
		}
		return &SFVec3f{X: v[0], Y: v[1], Z: v[2]}, nil
	case TypeSFVec4d:
		v, err := parseFloats64(c, ft, 4)
		if err != nil {
			return nil, err
		}
		return &SFVec4d{X: v[0], Y: v[1], Z: v[2], W: v[3]}, nil
	case TypeSFVec4f:
		v, err := parseFloats32(c, ft, 4)
		if err != nil {
			return nil, err
		}
		return &SFVec4f{X: v[0], Y: v[1], Z: v[2], W: v[3]}, nil
	}

	tok, _ := c.Peek()
	return nil, &FieldError{ParseError{
		Message: fmt.Sprintf("unknown field type %q", ft),
		Pos:     tok.Pos,
	}}
}

// nextNumber consumes the next token, which must be a number. A non-number
// token is reported at its own position and left unconsumed, so a truncated
// literal never swallows a token belonging to the next field.
func nextNumber(c *ParserContext, want FieldType) (Token, error) {
	tok, err := c.Peek()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind == TokenEOF {
		_, err := c.Next() // surfaces UnexpectedEOFError
		return Token{}, err
	}
	if tok.Kind != TokenNumber {
		return Token{}, &FieldError{ParseError{
			Message: fmt.Sprintf("%s literal: expected number, got %s", want, describeToken(tok)),
			Pos:     tok.Pos,
		}}
	}
	return c.Next()
}

func numberAsFloat64(tok Token, want FieldType) (float64, error) {
	lit := tok.Literal
	if isHexLiteral(lit) {
		n, err := strconv.ParseInt(lit, 0, 64)
		if err != nil {
			return 0, &FieldError{ParseError{
				Message: fmt.Sprintf("%s literal: invalid number %q", want, lit),
				Pos:     tok.Pos,
				Cause:   err,
			}}
		}
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, &FieldError{ParseError{
			Message: fmt.Sprintf("%s literal: invalid number %q", want, lit),
			Pos:     tok.Pos,
			Cause:   err,
		}}
	}
	return f, nil
}

func isHexLiteral(lit string) bool {
	s := strings.TrimLeft(lit, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

func parseFloat64(c *ParserContext, want FieldType) (float64, error) {
	tok, err := nextNumber(c, want)
	if err != nil {
		return 0, err
	}
	return numberAsFloat64(tok, want)
}

func parseFloat32(c *ParserContext, want FieldType) (float32, error) {
	f, err := parseFloat64(c, want)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

func parseFloats32(c *ParserContext, want FieldType, n int) ([]float32, error) {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := parseFloat32(c, want)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func parseFloats64(c *ParserContext, want FieldType, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		f, err := parseFloat64(c, want)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func parseInt32(c *ParserContext, want FieldType) (int32, error) {
	tok, err := nextNumber(c, want)
	if err != nil {
		return 0, err
	}
	// Base 10 unless explicitly hex: a leading zero is not octal here.
	base := 10
	if isHexLiteral(tok.Literal) {
		base = 0
	}
	n, err := strconv.ParseInt(tok.Literal, base, 32)
	if err != nil {
		return 0, &FieldError{ParseError{
			Message: fmt.Sprintf("%s literal: invalid integer %q", want, tok.Literal),
			Pos:     tok.Pos,
			Cause:   err,
		}}
	}
	return int32(n), nil
}

func parseSFBool(c *ParserContext) (Field, error) {
	tok, err := c.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenIdentifier {
		switch tok.Literal {
		case "TRUE":
			return &SFBool{Value: true}, nil
		case "FALSE":
			return &SFBool{Value: false}, nil
		}
	}
	return nil, &FieldError{ParseError{
		Message: fmt.Sprintf("SFBool literal: expected TRUE or FALSE, got %s", describeToken(tok)),
		Pos:     tok.Pos,
	}}
}

func parseSFString(c *ParserContext) (Field, error) {
	tok, err := c.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenString {
		return nil, &FieldError{ParseError{
			Message: fmt.Sprintf("SFString literal: expected quoted string, got %s", describeToken(tok)),
			Pos:     tok.Pos,
		}}
	}
	return &SFString{Value: tok.Literal}, nil
}

func parseSFImage(c *ParserContext) (Field, error) {
	width, err := parseInt32(c, TypeSFImage)
	if err != nil {
		return nil, err
	}
	height, err := parseInt32(c, TypeSFImage)
	if err != nil {
		return nil, err
	}
	components, err := parseInt32(c, TypeSFImage)
	if err != nil {
		return nil, err
	}
	if width < 0 || height < 0 || components < 0 || components > 4 {
		tok, _ := c.Peek()
		return nil, &FieldError{ParseError{
			Message: fmt.Sprintf("SFImage literal: invalid dimensions %d %d %d", width, height, components),
			Pos:     tok.Pos,
		}}
	}
	img := &SFImage{Width: width, Height: height, Components: components}
	total := int64(width) * int64(height)
	for i := int64(0); i < total; i++ {
		px, err := parseInt32(c, TypeSFImage)
		if err != nil {
			return nil, err
		}
		img.Pixels = append(img.Pixels, px)
	}
	return img, nil
}

func parseSFNode(c *ParserContext) (Field, error) {
	tok, err := c.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenIdentifier && tok.Literal == "NULL" {
		_, _ = c.Next()
		return &SFNode{}, nil
	}
	node, err := c.parseNodeStatement()
	if err != nil {
		return nil, err
	}
	return &SFNode{Node: node}, nil
}

// parseMultiField parses a bracketed sequence of elemType literals. Commas
// between elements are tolerated anywhere, including trailing; [] yields a
// zero-length sequence. Without brackets exactly one bare element is parsed.
func parseMultiField(c *ParserContext, ft, elemType FieldType) (Field, error) {
	var elems []Field

	tok, err := c.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenLBracket {
		_, _ = c.Next()
		for {
			tok, err := c.Peek()
			if err != nil {
				return nil, err
			}
			if tok.Kind == TokenComma {
				_, _ = c.Next()
				continue
			}
			if tok.Kind == TokenRBracket {
				_, _ = c.Next()
				break
			}
			if tok.Kind == TokenEOF {
				_, err := c.Next() // surfaces UnexpectedEOFError
				return nil, err
			}
			e, err := parseFieldValue(c, elemType)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
	} else {
		e, err := parseFieldValue(c, elemType)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}

	return newMultiField(ft, elems), nil
}

// newMultiField wraps parsed elements in the concrete multi-field type.
// Elements are guaranteed homogeneous: parseMultiField produced each one with
// the element type's own parser.
func newMultiField(ft FieldType, elems []Field) Field {
	switch ft {
	case TypeMFBool:
		f := &MFBool{Values: make([]*SFBool, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFBool)
		}
		return f
	case TypeMFColor:
		f := &MFColor{Values: make([]*SFColor, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFColor)
		}
		return f
	case TypeMFColorRGBA:
		f := &MFColorRGBA{Values: make([]*SFColorRGBA, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFColorRGBA)
		}
		return f
	case TypeMFDouble:
		f := &MFDouble{Values: make([]*SFDouble, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFDouble)
		}
		return f
	case TypeMFFloat:
		f := &MFFloat{Values: make([]*SFFloat, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFFloat)
		}
		return f
	case TypeMFImage:
		f := &MFImage{Values: make([]*SFImage, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFImage)
		}
		return f
	case TypeMFInt32:
		f := &MFInt32{Values: make([]*SFInt32, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFInt32)
		}
		return f
	case TypeMFNode:
		f := &MFNode{Values: make([]*SFNode, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFNode)
		}
		return f
	case TypeMFRotation:
		f := &MFRotation{Values: make([]*SFRotation, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFRotation)
		}
		return f
	case TypeMFString:
		f := &MFString{Values: make([]*SFString, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFString)
		}
		return f
	case TypeMFTime:
		f := &MFTime{Values: make([]*SFTime, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFTime)
		}
		return f
	case TypeMFVec2d:
		f := &MFVec2d{Values: make([]*SFVec2d, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFVec2d)
		}
		return f
	case TypeMFVec2f:
		f := &MFVec2f{Values: make([]*SFVec2f, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFVec2f)
		}
		return f
	case TypeMFVec3d:
		f := &MFVec3d{Values: make([]*SFVec3d, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFVec3d)
		}
		return f
	case TypeMFVec3f:
		f := &MFVec3f{Values: make([]*SFVec3f, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFVec3f)
		}
		return f
	case TypeMFVec4d:
		f := &MFVec4d{Values: make([]*SFVec4d, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFVec4d)
		}
		return f
	case TypeMFVec4f:
		f := &MFVec4f{Values: make([]*SFVec4f, len(elems))}
		for i, e := range elems {
			f.Values[i] = e.(*SFVec4f)
		}
		return f
	}
	return nil
}
