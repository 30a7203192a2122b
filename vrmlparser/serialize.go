package vrmlparser

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Serializer emits the literal text of field values and nodes. It is a
// FieldVisitor: every variant serializes through double dispatch, so the
// writer never inspects concrete field types.
//
// A DEF-named node is written in full once; later references to the same
// node emit a USE statement, preserving the document's instance sharing.
type Serializer struct {
	sb     strings.Builder
	indent int
	seen   map[*Node]bool
}

// NewSerializer creates an empty Serializer.
func NewSerializer() *Serializer {
	return &Serializer{seen: make(map[*Node]bool)}
}

// FormatField returns the literal text of a single field value.
func FormatField(f Field) string {
	s := NewSerializer()
	f.Accept(s)
	return s.String()
}

// WriteScene writes a complete document: header, PROTO/EXTERNPROTO
// declarations, top-level nodes, then ROUTE statements.
func WriteScene(w io.Writer, scene *Scene) error {
	s := NewSerializer()
	s.sb.WriteString("#VRML V2.0 utf8\n")
	for _, name := range scene.ProtoNames() {
		s.writeProto(scene.Protos[name])
		s.sb.WriteByte('\n')
	}
	for _, n := range scene.Nodes {
		s.writeNode(n)
		s.sb.WriteByte('\n')
	}
	for _, r := range scene.Routes {
		fmt.Fprintf(&s.sb, "ROUTE %s.%s TO %s.%s\n", r.FromNode, r.FromEvent, r.ToNode, r.ToEvent)
	}
	_, err := io.WriteString(w, s.String())
	return err
}

// String returns everything written so far.
func (s *Serializer) String() string { return s.sb.String() }

func (s *Serializer) writeIndent() {
	for i := 0; i < s.indent; i++ {
		s.sb.WriteString("  ")
	}
}

func (s *Serializer) writeNode(n *Node) {
	if n == nil {
		s.sb.WriteString("NULL")
		return
	}
	if n.Name != "" {
		if s.seen[n] {
			s.sb.WriteString("USE ")
			s.sb.WriteString(n.Name)
			return
		}
		s.seen[n] = true
		s.sb.WriteString("DEF ")
		s.sb.WriteString(n.Name)
		s.sb.WriteByte(' ')
	}
	s.sb.WriteString(n.Type)
	s.sb.WriteString(" {")
	if len(n.Fields) == 0 {
		s.sb.WriteByte('}')
		return
	}
	s.sb.WriteByte('\n')
	s.indent++
	for _, f := range n.Fields {
		s.writeIndent()
		s.sb.WriteString(f.Name)
		s.sb.WriteByte(' ')
		f.Value.Accept(s)
		s.sb.WriteByte('\n')
	}
	s.indent--
	s.writeIndent()
	s.sb.WriteByte('}')
}

func (s *Serializer) writeProto(p *ProtoDecl) {
	if p.External {
		s.sb.WriteString("EXTERNPROTO ")
	} else {
		s.sb.WriteString("PROTO ")
	}
	s.sb.WriteString(p.Name)
	s.sb.WriteString(" [\n")
	s.indent++
	for _, f := range p.Fields {
		s.writeIndent()
		if f.Exposed {
			s.sb.WriteString("exposedField ")
		} else {
			s.sb.WriteString("field ")
		}
		s.sb.WriteString(string(f.Type))
		s.sb.WriteByte(' ')
		s.sb.WriteString(f.Name)
		if f.Default != nil {
			s.sb.WriteByte(' ')
			f.Default.Accept(s)
		}
		s.sb.WriteByte('\n')
	}
	for _, e := range p.EventIns {
		s.writeIndent()
		fmt.Fprintf(&s.sb, "eventIn %s %s\n", e.Type, e.Name)
	}
	for _, e := range p.EventOuts {
		s.writeIndent()
		fmt.Fprintf(&s.sb, "eventOut %s %s\n", e.Type, e.Name)
	}
	s.indent--
	s.writeIndent()
	s.sb.WriteByte(']')
	if p.External {
		s.sb.WriteByte(' ')
		p.URL.Accept(s)
		return
	}
	s.sb.WriteString(" {\n")
	s.indent++
	for _, n := range p.Body {
		s.writeIndent()
		s.writeNode(n)
		s.sb.WriteByte('\n')
	}
	s.indent--
	s.writeIndent()
	s.sb.WriteByte('}')
}

func (s *Serializer) writeFloat32(f float32) {
	s.sb.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
}

func (s *Serializer) writeFloat64(f float64) {
	s.sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}

func (s *Serializer) writeFloats32(vs ...float32) {
	for i, f := range vs {
		if i > 0 {
			s.sb.WriteByte(' ')
		}
		s.writeFloat32(f)
	}
}

func (s *Serializer) writeFloats64(vs ...float64) {
	for i, f := range vs {
		if i > 0 {
			s.sb.WriteByte(' ')
		}
		s.writeFloat64(f)
	}
}

func (s *Serializer) writeString(v string) {
	s.sb.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"':
			s.sb.WriteString(`\"`)
		case '\\':
			s.sb.WriteString(`\\`)
		case '\n':
			s.sb.WriteString(`\n`)
		case '\t':
			s.sb.WriteString(`\t`)
		default:
			s.sb.WriteByte(v[i])
		}
	}
	s.sb.WriteByte('"')
}

func (s *Serializer) VisitSFBool(f *SFBool) {
	if f.Value {
		s.sb.WriteString("TRUE")
	} else {
		s.sb.WriteString("FALSE")
	}
}

func (s *Serializer) VisitSFColor(f *SFColor)         { s.writeFloats32(f.R, f.G, f.B) }
func (s *Serializer) VisitSFColorRGBA(f *SFColorRGBA) { s.writeFloats32(f.R, f.G, f.B, f.A) }
func (s *Serializer) VisitSFDouble(f *SFDouble)       { s.writeFloat64(f.Value) }
func (s *Serializer) VisitSFFloat(f *SFFloat)         { s.writeFloat32(f.Value) }

func (s *Serializer) VisitSFImage(f *SFImage) {
	fmt.Fprintf(&s.sb, "%d %d %d", f.Width, f.Height, f.Components)
	for _, px := range f.Pixels {
		fmt.Fprintf(&s.sb, " %d", px)
	}
}

func (s *Serializer) VisitSFInt32(f *SFInt32) {
	s.sb.WriteString(strconv.FormatInt(int64(f.Value), 10))
}

func (s *Serializer) VisitSFNode(f *SFNode) { s.writeNode(f.Node) }

func (s *Serializer) VisitSFRotation(f *SFRotation) {
	s.writeFloats32(f.X, f.Y, f.Z, f.Angle)
}

func (s *Serializer) VisitSFString(f *SFString) { s.writeString(f.Value) }
func (s *Serializer) VisitSFTime(f *SFTime)     { s.writeFloat64(f.Value) }
func (s *Serializer) VisitSFVec2d(f *SFVec2d)   { s.writeFloats64(f.X, f.Y) }
func (s *Serializer) VisitSFVec2f(f *SFVec2f)   { s.writeFloats32(f.X, f.Y) }
func (s *Serializer) VisitSFVec3d(f *SFVec3d)   { s.writeFloats64(f.X, f.Y, f.Z) }
func (s *Serializer) VisitSFVec3f(f *SFVec3f)   { s.writeFloats32(f.X, f.Y, f.Z) }
func (s *Serializer) VisitSFVec4d(f *SFVec4d)   { s.writeFloats64(f.X, f.Y, f.Z, f.W) }
func (s *Serializer) VisitSFVec4f(f *SFVec4f)   { s.writeFloats32(f.X, f.Y, f.Z, f.W) }

// writeElements writes a bracketed, comma-separated element list.
func (s *Serializer) writeElements(n int, write func(i int)) {
	if n == 0 {
		s.sb.WriteString("[]")
		return
	}
	s.sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			s.sb.WriteString(", ")
		}
		write(i)
	}
	s.sb.WriteByte(']')
}

func (s *Serializer) VisitMFBool(f *MFBool) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFBool(f.Values[i]) })
}

func (s *Serializer) VisitMFColor(f *MFColor) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFColor(f.Values[i]) })
}

func (s *Serializer) VisitMFColorRGBA(f *MFColorRGBA) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFColorRGBA(f.Values[i]) })
}

func (s *Serializer) VisitMFDouble(f *MFDouble) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFDouble(f.Values[i]) })
}

func (s *Serializer) VisitMFFloat(f *MFFloat) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFFloat(f.Values[i]) })
}

func (s *Serializer) VisitMFImage(f *MFImage) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFImage(f.Values[i]) })
}

func (s *Serializer) VisitMFInt32(f *MFInt32) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFInt32(f.Values[i]) })
}

func (s *Serializer) VisitMFNode(f *MFNode) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFNode(f.Values[i]) })
}

func (s *Serializer) VisitMFRotation(f *MFRotation) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFRotation(f.Values[i]) })
}

func (s *Serializer) VisitMFString(f *MFString) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFString(f.Values[i]) })
}

func (s *Serializer) VisitMFTime(f *MFTime) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFTime(f.Values[i]) })
}

func (s *Serializer) VisitMFVec2d(f *MFVec2d) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFVec2d(f.Values[i]) })
}

func (s *Serializer) VisitMFVec2f(f *MFVec2f) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFVec2f(f.Values[i]) })
}

func (s *Serializer) VisitMFVec3d(f *MFVec3d) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFVec3d(f.Values[i]) })
}

func (s *Serializer) VisitMFVec3f(f *MFVec3f) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFVec3f(f.Values[i]) })
}

func (s *Serializer) VisitMFVec4d(f *MFVec4d) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFVec4d(f.Values[i]) })
}

func (s *Serializer) VisitMFVec4f(f *MFVec4f) {
	s.writeElements(len(f.Values), func(i int) { s.VisitSFVec4f(f.Values[i]) })
}
