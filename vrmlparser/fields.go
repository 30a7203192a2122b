package vrmlparser

import "github.com/chewxy/math32"

// FieldType names one of the fixed field-value kinds of the format.
type FieldType string

const (
	TypeSFBool      FieldType = "SFBool"
	TypeSFColor     FieldType = "SFColor"
	TypeSFColorRGBA FieldType = "SFColorRGBA"
	TypeSFDouble    FieldType = "SFDouble"
	TypeSFFloat     FieldType = "SFFloat"
	TypeSFImage     FieldType = "SFImage"
	TypeSFInt32     FieldType = "SFInt32"
	TypeSFNode      FieldType = "SFNode"
	TypeSFRotation  FieldType = "SFRotation"
	TypeSFString    FieldType = "SFString"
	TypeSFTime      FieldType = "SFTime"
	TypeSFVec2d     FieldType = "SFVec2d"
	TypeSFVec2f     FieldType = "SFVec2f"
	TypeSFVec3d     FieldType = "SFVec3d"
	TypeSFVec3f     FieldType = "SFVec3f"
	TypeSFVec4d     FieldType = "SFVec4d"
	TypeSFVec4f     FieldType = "SFVec4f"

	TypeMFBool      FieldType = "MFBool"
	TypeMFColor     FieldType = "MFColor"
	TypeMFColorRGBA FieldType = "MFColorRGBA"
	TypeMFDouble    FieldType = "MFDouble"
	TypeMFFloat     FieldType = "MFFloat"
	TypeMFImage     FieldType = "MFImage"
	TypeMFInt32     FieldType = "MFInt32"
	TypeMFNode      FieldType = "MFNode"
	TypeMFRotation  FieldType = "MFRotation"
	TypeMFString    FieldType = "MFString"
	TypeMFTime      FieldType = "MFTime"
	TypeMFVec2d     FieldType = "MFVec2d"
	TypeMFVec2f     FieldType = "MFVec2f"
	TypeMFVec3d     FieldType = "MFVec3d"
	TypeMFVec3f     FieldType = "MFVec3f"
	TypeMFVec4d     FieldType = "MFVec4d"
	TypeMFVec4f     FieldType = "MFVec4f"
)

// elementTypes maps each multi-field kind to its element kind.
var elementTypes = map[FieldType]FieldType{
	TypeMFBool:      TypeSFBool,
	TypeMFColor:     TypeSFColor,
	TypeMFColorRGBA: TypeSFColorRGBA,
	TypeMFDouble:    TypeSFDouble,
	TypeMFFloat:     TypeSFFloat,
	TypeMFImage:     TypeSFImage,
	TypeMFInt32:     TypeSFInt32,
	TypeMFNode:      TypeSFNode,
	TypeMFRotation:  TypeSFRotation,
	TypeMFString:    TypeSFString,
	TypeMFTime:      TypeSFTime,
	TypeMFVec2d:     TypeSFVec2d,
	TypeMFVec2f:     TypeSFVec2f,
	TypeMFVec3d:     TypeSFVec3d,
	TypeMFVec3f:     TypeSFVec3f,
	TypeMFVec4d:     TypeSFVec4d,
	TypeMFVec4f:     TypeSFVec4f,
}

// fieldTypes is the set of recognized field-type identifiers.
var fieldTypes = func() map[FieldType]bool {
	m := make(map[FieldType]bool, len(elementTypes)*2)
	for mf, sf := range elementTypes {
		m[mf] = true
		m[sf] = true
	}
	return m
}()

// IsMultiField reports whether t names a multi-field (MF*) kind.
func (t FieldType) IsMultiField() bool {
	_, ok := elementTypes[t]
	return ok
}

// ElementType returns the element kind of a multi-field kind, or t itself for
// a single-field kind.
func (t FieldType) ElementType() FieldType {
	if sf, ok := elementTypes[t]; ok {
		return sf
	}
	return t
}

// Field is a parsed field value. The variant set is closed: each concrete
// type knows its own literal grammar (see fieldparse.go), supports deep
// structural clone, and dispatches to the matching FieldVisitor method.
type Field interface {
	Type() FieldType
	Clone() Field
	Accept(v FieldVisitor)
}

// --- Single-field variants ---

// SFBool holds a boolean written as TRUE or FALSE.
type SFBool struct {
	Value bool
}

func (f *SFBool) Type() FieldType { return TypeSFBool }
func (f *SFBool) Clone() Field { c := *f; return &c }
func (f *SFBool) Accept(v FieldVisitor) { v.VisitSFBool(f) }

// SFColor holds an RGB color. Components are stored exactly as parsed, even
// outside [0,1]; clamping is a rendering concern.
type SFColor struct {
	R, G, B float32
}

func (f *SFColor) Type() FieldType { return TypeSFColor }
func (f *SFColor) Clone() Field { c := *f; return &c }
func (f *SFColor) Accept(v FieldVisitor) { v.VisitSFColor(f) }

// SFColorRGBA holds an RGBA color.
type SFColorRGBA struct {
	R, G, B, A float32
}

func (f *SFColorRGBA) Type() FieldType { return TypeSFColorRGBA }
func (f *SFColorRGBA) Clone() Field { c := *f; return &c }
func (f *SFColorRGBA) Accept(v FieldVisitor) { v.VisitSFColorRGBA(f) }

// SFDouble holds a double-precision float.
type SFDouble struct {
	Value float64
}

func (f *SFDouble) Type() FieldType { return TypeSFDouble }
func (f *SFDouble) Clone() Field { c := *f; return &c }
func (f *SFDouble) Accept(v FieldVisitor) { v.VisitSFDouble(f) }

// SFFloat holds a single-precision float.
type SFFloat struct {
	Value float32
}

func (f *SFFloat) Type() FieldType { return TypeSFFloat }
func (f *SFFloat) Clone() Field { c := *f; return &c }
func (f *SFFloat) Accept(v FieldVisitor) { v.VisitSFFloat(f) }

// SFImage holds an uncompressed pixel image: width, height, component count,
// then width*height pixel values in row order.
type SFImage struct {
	Width      int32
	Height     int32
	Components int32
	Pixels     []int32
}

func (f *SFImage) Type() FieldType { return TypeSFImage }

func (f *SFImage) Clone() Field {
	c := *f
	c.Pixels = make([]int32, len(f.Pixels))
	copy(c.Pixels, f.Pixels)
	return &c
}

func (f *SFImage) Accept(v FieldVisitor) { v.VisitSFImage(f) }

// SFInt32 holds a 32-bit signed integer, written in decimal or hex.
type SFInt32 struct {
	Value int32
}

func (f *SFInt32) Type() FieldType { return TypeSFInt32 }
func (f *SFInt32) Clone() Field { c := *f; return &c }
func (f *SFInt32) Accept(v FieldVisitor) { v.VisitSFInt32(f) }

// SFNode holds a reference to a node, or nil for the NULL literal.
//
// Clone copies the holder but aliases the referenced node: DEF/USE sharing is
// the format's intent, so node references are never deep-copied.
type SFNode struct {
	Node *Node
}

func (f *SFNode) Type() FieldType { return TypeSFNode }
func (f *SFNode) Clone() Field { c := *f; return &c }
func (f *SFNode) Accept(v FieldVisitor) { v.VisitSFNode(f) }

// SFRotation holds an axis-angle rotation: axis x, y, z then angle in
// radians. The axis is stored exactly as parsed, not auto-normalized, so a
// document round-trips byte-faithfully even with unnormalized input.
type SFRotation struct {
	X, Y, Z float32
	Angle   float32
}

func (f *SFRotation) Type() FieldType { return TypeSFRotation }
func (f *SFRotation) Clone() Field { c := *f; return &c }
func (f *SFRotation) Accept(v FieldVisitor) { v.VisitSFRotation(f) }

// Normalized returns a copy whose axis has unit length. A zero axis is
// returned unchanged.
func (f *SFRotation) Normalized() SFRotation {
	len := math32.Sqrt(f.X*f.X + f.Y*f.Y + f.Z*f.Z)
	if len == 0 {
		return *f
	}
	return SFRotation{X: f.X / len, Y: f.Y / len, Z: f.Z / len, Angle: f.Angle}
}

// SFString holds a quoted string (escape sequences already processed).
type SFString struct {
	Value string
}

func (f *SFString) Type() FieldType { return TypeSFString }
func (f *SFString) Clone() Field { c := *f; return &c }
func (f *SFString) Accept(v FieldVisitor) { v.VisitSFString(f) }

// SFTime holds an absolute or relative time in seconds.
type SFTime struct {
	Value float64
}

func (f *SFTime) Type() FieldType { return TypeSFTime }
func (f *SFTime) Clone() Field { c := *f; return &c }
func (f *SFTime) Accept(v FieldVisitor) { v.VisitSFTime(f) }

// SFVec2d holds a double-precision 2-component vector.
type SFVec2d struct {
	X, Y float64
}

func (f *SFVec2d) Type() FieldType { return TypeSFVec2d }
func (f *SFVec2d) Clone() Field { c := *f; return &c }
func (f *SFVec2d) Accept(v FieldVisitor) { v.VisitSFVec2d(f) }

// SFVec2f holds a single-precision 2-component vector.
type SFVec2f struct {
	X, Y float32
}

func (f *SFVec2f) Type() FieldType { return TypeSFVec2f }
func (f *SFVec2f) Clone() Field { c := *f; return &c }
func (f *SFVec2f) Accept(v FieldVisitor) { v.VisitSFVec2f(f) }

// Length returns the Euclidean length of the vector.
func (f *SFVec2f) Length() float32 {
	return math32.Hypot(f.X, f.Y)
}

// SFVec3d holds a double-precision 3-component vector.
type SFVec3d struct {
	X, Y, Z float64
}

func (f *SFVec3d) Type() FieldType { return TypeSFVec3d }
func (f *SFVec3d) Clone() Field { c := *f; return &c }
func (f *SFVec3d) Accept(v FieldVisitor) { v.VisitSFVec3d(f) }

// SFVec3f holds a single-precision 3-component vector.
type SFVec3f struct {
	X, Y, Z float32
}

func (f *SFVec3f) Type() FieldType { return TypeSFVec3f }
func (f *SFVec3f) Clone() Field { c := *f; return &c }
func (f *SFVec3f) Accept(v FieldVisitor) { v.VisitSFVec3f(f) }

// Length returns the Euclidean length of the vector.
func (f *SFVec3f) Length() float32 {
	return math32.Sqrt(f.X*f.X + f.Y*f.Y + f.Z*f.Z)
}

// SFVec4d holds a double-precision 4-component vector.
type SFVec4d struct {
	X, Y, Z, W float64
}

func (f *SFVec4d) Type() FieldType { return TypeSFVec4d }
func (f *SFVec4d) Clone() Field { c := *f; return &c }
func (f *SFVec4d) Accept(v FieldVisitor) { v.VisitSFVec4d(f) }

// SFVec4f holds a single-precision 4-component vector.
type SFVec4f struct {
	X, Y, Z, W float32
}

func (f *SFVec4f) Type() FieldType { return TypeSFVec4f }
func (f *SFVec4f) Clone() Field { c := *f; return &c }
func (f *SFVec4f) Accept(v FieldVisitor) { v.VisitSFVec4f(f) }

// --- Multi-field variants ---
//
// A multi-field is an ordered, possibly-empty, homogeneous sequence of one
// single-field kind. Insertion order is significant and duplicates are
// allowed. Clone recursively clones every element, so original and clone
// share no mutable state (except node references, see SFNode).

// MFBool is an ordered sequence of SFBool values.
type MFBool struct {
	Values []*SFBool
}

func (f *MFBool) Type() FieldType { return TypeMFBool }

func (f *MFBool) Clone() Field {
	c := &MFBool{Values: make([]*SFBool, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFBool)
	}
	return c
}

func (f *MFBool) Accept(v FieldVisitor) { v.VisitMFBool(f) }

// MFColor is an ordered sequence of SFColor values.
type MFColor struct {
	Values []*SFColor
}

func (f *MFColor) Type() FieldType { return TypeMFColor }

func (f *MFColor) Clone() Field {
	c := &MFColor{Values: make([]*SFColor, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFColor)
	}
	return c
}

func (f *MFColor) Accept(v FieldVisitor) { v.VisitMFColor(f) }

// MFColorRGBA is an ordered sequence of SFColorRGBA values.
type MFColorRGBA struct {
	Values []*SFColorRGBA
}

func (f *MFColorRGBA) Type() FieldType { return TypeMFColorRGBA }

func (f *MFColorRGBA) Clone() Field {
	c := &MFColorRGBA{Values: make([]*SFColorRGBA, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFColorRGBA)
	}
	return c
}

func (f *MFColorRGBA) Accept(v FieldVisitor) { v.VisitMFColorRGBA(f) }

// MFDouble is an ordered sequence of SFDouble values.
type MFDouble struct {
	Values []*SFDouble
}

func (f *MFDouble) Type() FieldType { return TypeMFDouble }

func (f *MFDouble) Clone() Field {
	c := &MFDouble{Values: make([]*SFDouble, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFDouble)
	}
	return c
}

func (f *MFDouble) Accept(v FieldVisitor) { v.VisitMFDouble(f) }

// MFFloat is an ordered sequence of SFFloat values.
type MFFloat struct {
	Values []*SFFloat
}

func (f *MFFloat) Type() FieldType { return TypeMFFloat }

func (f *MFFloat) Clone() Field {
	c := &MFFloat{Values: make([]*SFFloat, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFFloat)
	}
	return c
}

func (f *MFFloat) Accept(v FieldVisitor) { v.VisitMFFloat(f) }

// MFImage is an ordered sequence of SFImage values.
type MFImage struct {
	Values []*SFImage
}

func (f *MFImage) Type() FieldType { return TypeMFImage }

func (f *MFImage) Clone() Field {
	c := &MFImage{Values: make([]*SFImage, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFImage)
	}
	return c
}

func (f *MFImage) Accept(v FieldVisitor) { v.VisitMFImage(f) }

// MFInt32 is an ordered sequence of SFInt32 values.
type MFInt32 struct {
	Values []*SFInt32
}

func (f *MFInt32) Type() FieldType { return TypeMFInt32 }

func (f *MFInt32) Clone() Field {
	c := &MFInt32{Values: make([]*SFInt32, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFInt32)
	}
	return c
}

func (f *MFInt32) Accept(v FieldVisitor) { v.VisitMFInt32(f) }

// MFNode is an ordered sequence of SFNode references.
type MFNode struct {
	Values []*SFNode
}

func (f *MFNode) Type() FieldType { return TypeMFNode }

func (f *MFNode) Clone() Field {
	c := &MFNode{Values: make([]*SFNode, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFNode)
	}
	return c
}

func (f *MFNode) Accept(v FieldVisitor) { v.VisitMFNode(f) }

// MFRotation is an ordered sequence of SFRotation values.
type MFRotation struct {
	Values []*SFRotation
}

func (f *MFRotation) Type() FieldType { return TypeMFRotation }

func (f *MFRotation) Clone() Field {
	c := &MFRotation{Values: make([]*SFRotation, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFRotation)
	}
	return c
}

func (f *MFRotation) Accept(v FieldVisitor) { v.VisitMFRotation(f) }

// MFString is an ordered sequence of SFString values.
type MFString struct {
	Values []*SFString
}

func (f *MFString) Type() FieldType { return TypeMFString }

func (f *MFString) Clone() Field {
	c := &MFString{Values: make([]*SFString, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFString)
	}
	return c
}

func (f *MFString) Accept(v FieldVisitor) { v.VisitMFString(f) }

// Strings returns the sequence as a plain string slice.
func (f *MFString) Strings() []string {
	out := make([]string, len(f.Values))
	for i, e := range f.Values {
		out[i] = e.Value
	}
	return out
}

// MFTime is an ordered sequence of SFTime values.
type MFTime struct {
	Values []*SFTime
}

func (f *MFTime) Type() FieldType { return TypeMFTime }

func (f *MFTime) Clone() Field {
	c := &MFTime{Values: make([]*SFTime, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFTime)
	}
	return c
}

func (f *MFTime) Accept(v FieldVisitor) { v.VisitMFTime(f) }

// MFVec2d is an ordered sequence of SFVec2d values.
type MFVec2d struct {
	Values []*SFVec2d
}

func (f *MFVec2d) Type() FieldType { return TypeMFVec2d }

func (f *MFVec2d) Clone() Field {
	c := &MFVec2d{Values: make([]*SFVec2d, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFVec2d)
	}
	return c
}

func (f *MFVec2d) Accept(v FieldVisitor) { v.VisitMFVec2d(f) }

// MFVec2f is an ordered sequence of SFVec2f values.
type MFVec2f struct {
	Values []*SFVec2f
}

func (f *MFVec2f) Type() FieldType { return TypeMFVec2f }

func (f *MFVec2f) Clone() Field {
	c := &MFVec2f{Values: make([]*SFVec2f, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFVec2f)
	}
	return c
}

func (f *MFVec2f) Accept(v FieldVisitor) { v.VisitMFVec2f(f) }

// MFVec3d is an ordered sequence of SFVec3d values.
type MFVec3d struct {
	Values []*SFVec3d
}

func (f *MFVec3d) Type() FieldType { return TypeMFVec3d }

func (f *MFVec3d) Clone() Field {
	c := &MFVec3d{Values: make([]*SFVec3d, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFVec3d)
	}
	return c
}

func (f *MFVec3d) Accept(v FieldVisitor) { v.VisitMFVec3d(f) }

// MFVec3f is an ordered sequence of SFVec3f values.
type MFVec3f struct {
	Values []*SFVec3f
}

func (f *MFVec3f) Type() FieldType { return TypeMFVec3f }

func (f *MFVec3f) Clone() Field {
	c := &MFVec3f{Values: make([]*SFVec3f, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFVec3f)
	}
	return c
}

func (f *MFVec3f) Accept(v FieldVisitor) { v.VisitMFVec3f(f) }

// MFVec4d is an ordered sequence of SFVec4d values.
type MFVec4d struct {
	Values []*SFVec4d
}

func (f *MFVec4d) Type() FieldType { return TypeMFVec4d }

func (f *MFVec4d) Clone() Field {
	c := &MFVec4d{Values: make([]*SFVec4d, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFVec4d)
	}
	return c
}

func (f *MFVec4d) Accept(v FieldVisitor) { v.VisitMFVec4d(f) }

// MFVec4f is an ordered sequence of SFVec4f values.
type MFVec4f struct {
	Values []*SFVec4f
}

func (f *MFVec4f) Type() FieldType { return TypeMFVec4f }

func (f *MFVec4f) Clone() Field {
	c := &MFVec4f{Values: make([]*SFVec4f, len(f.Values))}
	for i, e := range f.Values {
		c.Values[i] = e.Clone().(*SFVec4f)
	}
	return c
}

func (f *MFVec4f) Accept(v FieldVisitor) { v.VisitMFVec4f(f) }
