package vrmlparser

// Node is a parsed node statement: a type name, an ordered mapping from
// field name to value (keys unique, declaration order preserved), and an
// optional DEF name. A DEF-named node may be referenced, never copied, by any
// number of later USE statements.
type Node struct {
	Type   string
	Name   string // DEF name, empty if anonymous
	Fields []*NodeField
	Pos    Position
}

// NodeField is one field statement inside a node body.
type NodeField struct {
	Name  string
	Value Field
	Pos   Position
}

// Field looks up a field value by name. Returns the value and true if set.
func (n *Node) Field(name string) (Field, bool) {
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func (n *Node) hasField(name string) bool {
	_, ok := n.Field(name)
	return ok
}

// InterfaceField is a field or exposedField declaration in a PROTO or
// EXTERNPROTO interface.
type InterfaceField struct {
	Name    string
	Type    FieldType
	Default Field // nil for EXTERNPROTO declarations
	Exposed bool
	Pos     Position
}

// EventDecl is an eventIn or eventOut declaration.
type EventDecl struct {
	Name string
	Type FieldType
	Pos  Position
}

// ProtoDecl is the interface contract of a custom node type introduced by a
// PROTO or EXTERNPROTO statement. Field statements on instances of the type
// are validated against it.
type ProtoDecl struct {
	Name      string
	External  bool
	Fields    []*InterfaceField
	EventIns  []*EventDecl
	EventOuts []*EventDecl
	Body      []*Node   // PROTO default body; nil for EXTERNPROTO
	URL       *MFString // EXTERNPROTO locations; nil for PROTO
	Pos       Position
}

// FieldType returns the declared type of an interface field.
func (p *ProtoDecl) FieldType(name string) (FieldType, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return "", false
}

// EventIn returns the declared eventIn with the given name.
func (p *ProtoDecl) EventIn(name string) (*EventDecl, bool) {
	for _, e := range p.EventIns {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// EventOut returns the declared eventOut with the given name.
func (p *ProtoDecl) EventOut(name string) (*EventDecl, bool) {
	for _, e := range p.EventOuts {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// builtinNodeFields is the fixed table of built-in node types and the fields
// (including exposedFields) a file may set on them. eventIn/eventOut-only
// members are omitted: they cannot appear as field statements.
var builtinNodeFields = map[string]map[string]FieldType{
	"Anchor": {
		"children":    TypeMFNode,
		"description": TypeSFString,
		"parameter":   TypeMFString,
		"url":         TypeMFString,
		"bboxCenter":  TypeSFVec3f,
		"bboxSize":    TypeSFVec3f,
	},
	"Appearance": {
		"material":         TypeSFNode,
		"texture":          TypeSFNode,
		"textureTransform": TypeSFNode,
	},
	"Background": {
		"groundAngle": TypeMFFloat,
		"groundColor": TypeMFColor,
		"backUrl":     TypeMFString,
		"bottomUrl":   TypeMFString,
		"frontUrl":    TypeMFString,
		"leftUrl":     TypeMFString,
		"rightUrl":    TypeMFString,
		"topUrl":      TypeMFString,
		"skyAngle":    TypeMFFloat,
		"skyColor":    TypeMFColor,
	},
	"Billboard": {
		"axisOfRotation": TypeSFVec3f,
		"children":       TypeMFNode,
		"bboxCenter":     TypeSFVec3f,
		"bboxSize":       TypeSFVec3f,
	},
	"Box": {
		"size": TypeSFVec3f,
	},
	"Collision": {
		"children":   TypeMFNode,
		"collide":    TypeSFBool,
		"bboxCenter": TypeSFVec3f,
		"bboxSize":   TypeSFVec3f,
		"proxy":      TypeSFNode,
	},
	"Color": {
		"color": TypeMFColor,
	},
	"ColorInterpolator": {
		"key":      TypeMFFloat,
		"keyValue": TypeMFColor,
	},
	"Cone": {
		"bottomRadius": TypeSFFloat,
		"height":       TypeSFFloat,
		"side":         TypeSFBool,
		"bottom":       TypeSFBool,
	},
	"Coordinate": {
		"point": TypeMFVec3f,
	},
	"CoordinateInterpolator": {
		"key":      TypeMFFloat,
		"keyValue": TypeMFVec3f,
	},
	"Cylinder": {
		"bottom": TypeSFBool,
		"height": TypeSFFloat,
		"radius": TypeSFFloat,
		"side":   TypeSFBool,
		"top":    TypeSFBool,
	},
	"CylinderSensor": {
		"autoOffset": TypeSFBool,
		"diskAngle":  TypeSFFloat,
		"enabled":    TypeSFBool,
		"maxAngle":   TypeSFFloat,
		"minAngle":   TypeSFFloat,
		"offset":     TypeSFFloat,
	},
	"DirectionalLight": {
		"ambientIntensity": TypeSFFloat,
		"color":            TypeSFColor,
		"direction":        TypeSFVec3f,
		"intensity":        TypeSFFloat,
		"on":               TypeSFBool,
	},
	"ElevationGrid": {
		"height":          TypeMFFloat,
		"color":           TypeSFNode,
		"normal":          TypeSFNode,
		"texCoord":        TypeSFNode,
		"ccw":             TypeSFBool,
		"colorPerVertex":  TypeSFBool,
		"creaseAngle":     TypeSFFloat,
		"normalPerVertex": TypeSFBool,
		"solid":           TypeSFBool,
		"xDimension":      TypeSFInt32,
		"xSpacing":        TypeSFFloat,
		"zDimension":      TypeSFInt32,
		"zSpacing":        TypeSFFloat,
	},
	"Extrusion": {
		"beginCap":     TypeSFBool,
		"ccw":          TypeSFBool,
		"convex":       TypeSFBool,
		"creaseAngle":  TypeSFFloat,
		"crossSection": TypeMFVec2f,
		"endCap":       TypeSFBool,
		"orientation":  TypeMFRotation,
		"scale":        TypeMFVec2f,
		"solid":        TypeSFBool,
		"spine":        TypeMFVec3f,
	},
	"Fog": {
		"color":           TypeSFColor,
		"fogType":         TypeSFString,
		"visibilityRange": TypeSFFloat,
	},
	"FontStyle": {
		"family":      TypeMFString,
		"horizontal":  TypeSFBool,
		"justify":     TypeMFString,
		"language":    TypeSFString,
		"leftToRight": TypeSFBool,
		"size":        TypeSFFloat,
		"spacing":     TypeSFFloat,
		"style":       TypeSFString,
		"topToBottom": TypeSFBool,
	},
	"Group": {
		"children":   TypeMFNode,
		"bboxCenter": TypeSFVec3f,
		"bboxSize":   TypeSFVec3f,
	},
	"ImageTexture": {
		"url":     TypeMFString,
		"repeatS": TypeSFBool,
		"repeatT": TypeSFBool,
	},
	"IndexedFaceSet": {
		"color":           TypeSFNode,
		"coord":           TypeSFNode,
		"normal":          TypeSFNode,
		"texCoord":        TypeSFNode,
		"ccw":             TypeSFBool,
		"colorIndex":      TypeMFInt32,
		"colorPerVertex":  TypeSFBool,
		"convex":          TypeSFBool,
		"coordIndex":      TypeMFInt32,
		"creaseAngle":     TypeSFFloat,
		"normalIndex":     TypeMFInt32,
		"normalPerVertex": TypeSFBool,
		"solid":           TypeSFBool,
		"texCoordIndex":   TypeMFInt32,
	},
	"IndexedLineSet": {
		"color":          TypeSFNode,
		"coord":          TypeSFNode,
		"colorIndex":     TypeMFInt32,
		"colorPerVertex": TypeSFBool,
		"coordIndex":     TypeMFInt32,
	},
	"Inline": {
		"url":        TypeMFString,
		"bboxCenter": TypeSFVec3f,
		"bboxSize":   TypeSFVec3f,
	},
	"LOD": {
		"level":  TypeMFNode,
		"center": TypeSFVec3f,
		"range":  TypeMFFloat,
	},
	"Material": {
		"ambientIntensity": TypeSFFloat,
		"diffuseColor":     TypeSFColor,
		"emissiveColor":    TypeSFColor,
		"shininess":        TypeSFFloat,
		"specularColor":    TypeSFColor,
		"transparency":     TypeSFFloat,
	},
	"NavigationInfo": {
		"avatarSize":      TypeMFFloat,
		"headlight":       TypeSFBool,
		"speed":           TypeSFFloat,
		"type":            TypeMFString,
		"visibilityLimit": TypeSFFloat,
	},
	"Normal": {
		"vector": TypeMFVec3f,
	},
	"NormalInterpolator": {
		"key":      TypeMFFloat,
		"keyValue": TypeMFVec3f,
	},
	"OrientationInterpolator": {
		"key":      TypeMFFloat,
		"keyValue": TypeMFRotation,
	},
	"PixelTexture": {
		"image":   TypeSFImage,
		"repeatS": TypeSFBool,
		"repeatT": TypeSFBool,
	},
	"PlaneSensor": {
		"autoOffset":  TypeSFBool,
		"enabled":     TypeSFBool,
		"maxPosition": TypeSFVec2f,
		"minPosition": TypeSFVec2f,
		"offset":      TypeSFVec3f,
	},
	"PointLight": {
		"ambientIntensity": TypeSFFloat,
		"attenuation":      TypeSFVec3f,
		"color":            TypeSFColor,
		"intensity":        TypeSFFloat,
		"location":         TypeSFVec3f,
		"on":               TypeSFBool,
		"radius":           TypeSFFloat,
	},
	"PointSet": {
		"color": TypeSFNode,
		"coord": TypeSFNode,
	},
	"PositionInterpolator": {
		"key":      TypeMFFloat,
		"keyValue": TypeMFVec3f,
	},
	"ProximitySensor": {
		"center":  TypeSFVec3f,
		"size":    TypeSFVec3f,
		"enabled": TypeSFBool,
	},
	"ScalarInterpolator": {
		"key":      TypeMFFloat,
		"keyValue": TypeMFFloat,
	},
	"Shape": {
		"appearance": TypeSFNode,
		"geometry":   TypeSFNode,
	},
	"Sound": {
		"direction":  TypeSFVec3f,
		"intensity":  TypeSFFloat,
		"location":   TypeSFVec3f,
		"maxBack":    TypeSFFloat,
		"maxFront":   TypeSFFloat,
		"minBack":    TypeSFFloat,
		"minFront":   TypeSFFloat,
		"priority":   TypeSFFloat,
		"source":     TypeSFNode,
		"spatialize": TypeSFBool,
	},
	"Sphere": {
		"radius": TypeSFFloat,
	},
	"SphereSensor": {
		"autoOffset": TypeSFBool,
		"enabled":    TypeSFBool,
		"offset":     TypeSFRotation,
	},
	"SpotLight": {
		"ambientIntensity": TypeSFFloat,
		"attenuation":      TypeSFVec3f,
		"beamWidth":        TypeSFFloat,
		"color":            TypeSFColor,
		"cutOffAngle":      TypeSFFloat,
		"direction":        TypeSFVec3f,
		"intensity":        TypeSFFloat,
		"location":         TypeSFVec3f,
		"on":               TypeSFBool,
		"radius":           TypeSFFloat,
	},
	"Switch": {
		"choice":      TypeMFNode,
		"whichChoice": TypeSFInt32,
	},
	"Text": {
		"string":    TypeMFString,
		"fontStyle": TypeSFNode,
		"length":    TypeMFFloat,
		"maxExtent": TypeSFFloat,
	},
	"TextureCoordinate": {
		"point": TypeMFVec2f,
	},
	"TextureTransform": {
		"center":      TypeSFVec2f,
		"rotation":    TypeSFFloat,
		"scale":       TypeSFVec2f,
		"translation": TypeSFVec2f,
	},
	"TimeSensor": {
		"cycleInterval": TypeSFTime,
		"enabled":       TypeSFBool,
		"loop":          TypeSFBool,
		"startTime":     TypeSFTime,
		"stopTime":      TypeSFTime,
	},
	"TouchSensor": {
		"enabled": TypeSFBool,
	},
	"Transform": {
		"center":           TypeSFVec3f,
		"children":         TypeMFNode,
		"rotation":         TypeSFRotation,
		"scale":            TypeSFVec3f,
		"scaleOrientation": TypeSFRotation,
		"translation":      TypeSFVec3f,
		"bboxCenter":       TypeSFVec3f,
		"bboxSize":         TypeSFVec3f,
	},
	"Viewpoint": {
		"fieldOfView": TypeSFFloat,
		"jump":        TypeSFBool,
		"orientation": TypeSFRotation,
		"position":    TypeSFVec3f,
		"description": TypeSFString,
	},
	"VisibilitySensor": {
		"center":  TypeSFVec3f,
		"enabled": TypeSFBool,
		"size":    TypeSFVec3f,
	},
	"WorldInfo": {
		"info":  TypeMFString,
		"title": TypeSFString,
	},
}
