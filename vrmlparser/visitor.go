package vrmlparser

// FieldVisitor receives double-dispatch callbacks from Field.Accept, one
// method per concrete field variant. It is the sole mechanism for
// type-specific external behavior (serialization, validation, scene-graph
// import): consumers never need runtime type inspection, and adding a
// consumer never touches the variant set.
type FieldVisitor interface {
	VisitSFBool(*SFBool)
	VisitSFColor(*SFColor)
	VisitSFColorRGBA(*SFColorRGBA)
	VisitSFDouble(*SFDouble)
	VisitSFFloat(*SFFloat)
	VisitSFImage(*SFImage)
	VisitSFInt32(*SFInt32)
	VisitSFNode(*SFNode)
	VisitSFRotation(*SFRotation)
	VisitSFString(*SFString)
	VisitSFTime(*SFTime)
	VisitSFVec2d(*SFVec2d)
	VisitSFVec2f(*SFVec2f)
	VisitSFVec3d(*SFVec3d)
	VisitSFVec3f(*SFVec3f)
	VisitSFVec4d(*SFVec4d)
	VisitSFVec4f(*SFVec4f)

	VisitMFBool(*MFBool)
	VisitMFColor(*MFColor)
	VisitMFColorRGBA(*MFColorRGBA)
	VisitMFDouble(*MFDouble)
	VisitMFFloat(*MFFloat)
	VisitMFImage(*MFImage)
	VisitMFInt32(*MFInt32)
	VisitMFNode(*MFNode)
	VisitMFRotation(*MFRotation)
	VisitMFString(*MFString)
	VisitMFTime(*MFTime)
	VisitMFVec2d(*MFVec2d)
	VisitMFVec2f(*MFVec2f)
	VisitMFVec3d(*MFVec3d)
	VisitMFVec3f(*MFVec3f)
	VisitMFVec4d(*MFVec4d)
	VisitMFVec4f(*MFVec4f)
}

// NopFieldVisitor implements FieldVisitor with empty methods. Embed it to
// write visitors that only care about a few variants.
type NopFieldVisitor struct{}

func (NopFieldVisitor) VisitSFBool(*SFBool)           {}
func (NopFieldVisitor) VisitSFColor(*SFColor)         {}
func (NopFieldVisitor) VisitSFColorRGBA(*SFColorRGBA) {}
func (NopFieldVisitor) VisitSFDouble(*SFDouble)       {}
func (NopFieldVisitor) VisitSFFloat(*SFFloat)         {}
func (NopFieldVisitor) VisitSFImage(*SFImage)         {}
func (NopFieldVisitor) VisitSFInt32(*SFInt32)         {}
func (NopFieldVisitor) VisitSFNode(*SFNode)           {}
func (NopFieldVisitor) VisitSFRotation(*SFRotation)   {}
func (NopFieldVisitor) VisitSFString(*SFString)       {}
func (NopFieldVisitor) VisitSFTime(*SFTime)           {}
func (NopFieldVisitor) VisitSFVec2d(*SFVec2d)         {}
func (NopFieldVisitor) VisitSFVec2f(*SFVec2f)         {}
func (NopFieldVisitor) VisitSFVec3d(*SFVec3d)         {}
func (NopFieldVisitor) VisitSFVec3f(*SFVec3f)         {}
func (NopFieldVisitor) VisitSFVec4d(*SFVec4d)         {}
func (NopFieldVisitor) VisitSFVec4f(*SFVec4f)         {}
func (NopFieldVisitor) VisitMFBool(*MFBool)           {}
func (NopFieldVisitor) VisitMFColor(*MFColor)         {}
func (NopFieldVisitor) VisitMFColorRGBA(*MFColorRGBA) {}
func (NopFieldVisitor) VisitMFDouble(*MFDouble)       {}
func (NopFieldVisitor) VisitMFFloat(*MFFloat)         {}
func (NopFieldVisitor) VisitMFImage(*MFImage)         {}
func (NopFieldVisitor) VisitMFInt32(*MFInt32)         {}
func (NopFieldVisitor) VisitMFNode(*MFNode)           {}
func (NopFieldVisitor) VisitMFRotation(*MFRotation)   {}
func (NopFieldVisitor) VisitMFString(*MFString)       {}
func (NopFieldVisitor) VisitMFTime(*MFTime)           {}
func (NopFieldVisitor) VisitMFVec2d(*MFVec2d)         {}
func (NopFieldVisitor) VisitMFVec2f(*MFVec2f)         {}
func (NopFieldVisitor) VisitMFVec3d(*MFVec3d)         {}
func (NopFieldVisitor) VisitMFVec3f(*MFVec3f)         {}
func (NopFieldVisitor) VisitMFVec4d(*MFVec4d)         {}
func (NopFieldVisitor) VisitMFVec4f(*MFVec4f)         {}

// WalkNodes calls fn once for every node reachable from the scene's
// top-level statements and PROTO bodies. A node shared via DEF/USE is
// visited once.
func WalkNodes(s *Scene, fn func(*Node)) {
	w := &nodeWalker{fn: fn, seen: make(map[*Node]bool)}
	for _, n := range s.Nodes {
		w.visit(n)
	}
	for _, name := range s.ProtoNames() {
		for _, n := range s.Protos[name].Body {
			w.visit(n)
		}
	}
}

type nodeWalker struct {
	NopFieldVisitor
	fn   func(*Node)
	seen map[*Node]bool
}

func (w *nodeWalker) VisitSFNode(f *SFNode) { w.visit(f.Node) }

func (w *nodeWalker) VisitMFNode(f *MFNode) {
	for _, e := range f.Values {
		w.visit(e.Node)
	}
}

func (w *nodeWalker) visit(n *Node) {
	if n == nil || w.seen[n] {
		return
	}
	w.seen[n] = true
	w.fn(n)
	for _, f := range n.Fields {
		f.Value.Accept(w)
	}
}
