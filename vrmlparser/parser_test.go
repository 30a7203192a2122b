package vrmlparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimalScene(t *testing.T) {
	scene, err := Parse([]byte(`Box { }`))
	require.NoError(t, err)
	require.Len(t, scene.Nodes, 1)
	assert.Equal(t, "Box", scene.Nodes[0].Type)
	assert.Empty(t, scene.Nodes[0].Fields)
	assert.Empty(t, scene.Defs)
}

func TestParseSceneWithHeader(t *testing.T) {
	src := `#VRML V2.0 utf8
# a red box under a transform
Transform {
  translation 0 1.5 0
  rotation 0 1 0 0.785
  children [
    Shape {
      appearance Appearance {
        material Material { diffuseColor 1 0 0 }
      }
      geometry Box { size 2 2 2 }
    }
  ]
}
`
	scene, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, scene.Nodes, 1)

	transform := scene.Nodes[0]
	assert.Equal(t, "Transform", transform.Type)

	trans, ok := transform.Field("translation")
	require.True(t, ok)
	assert.Equal(t, &SFVec3f{X: 0, Y: 1.5, Z: 0}, trans)

	rot, ok := transform.Field("rotation")
	require.True(t, ok)
	assert.Equal(t, &SFRotation{X: 0, Y: 1, Z: 0, Angle: 0.785}, rot)

	children, ok := transform.Field("children")
	require.True(t, ok)
	mf := children.(*MFNode)
	require.Len(t, mf.Values, 1)

	shape := mf.Values[0].Node
	assert.Equal(t, "Shape", shape.Type)
	geom, ok := shape.Field("geometry")
	require.True(t, ok)
	assert.Equal(t, "Box", geom.(*SFNode).Node.Type)
}

func TestHeaderRequiredOption(t *testing.T) {
	src := []byte("Box { }")
	_, err := ParseWithOptions(src, Options{RequireHeader: true})
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)

	withHeader := []byte("#VRML V2.0 utf8\nBox { }")
	scene, err := ParseWithOptions(withHeader, Options{RequireHeader: true})
	require.NoError(t, err)
	assert.Len(t, scene.Nodes, 1)
}

func TestDefUseSharesIdentity(t *testing.T) {
	scene, err := Parse([]byte(`DEF B Box { size 1 1 1 } USE B`))
	require.NoError(t, err)
	require.Len(t, scene.Nodes, 2)
	assert.Same(t, scene.Nodes[0], scene.Nodes[1])
	assert.Same(t, scene.Nodes[0], scene.Defs["B"])
	assert.Equal(t, "B", scene.Nodes[0].Name)
	assert.True(t, scene.DefUsed("B"))
	assert.Equal(t, []string{"B"}, scene.DefNames())
}

func TestNestedDefVisibleToSiblings(t *testing.T) {
	src := `
Group { children [ DEF C Box { } ] }
Shape { geometry USE C }
`
	scene, err := Parse([]byte(src))
	require.NoError(t, err)

	children, _ := scene.Nodes[0].Field("children")
	inner := children.(*MFNode).Values[0].Node

	geom, _ := scene.Nodes[1].Field("geometry")
	assert.Same(t, inner, geom.(*SFNode).Node)
}

func TestUseBeforeDefFails(t *testing.T) {
	_, err := Parse([]byte(`USE Nothing`))
	var undef *UndefinedNodeError
	require.ErrorAs(t, err, &undef)
	assert.Equal(t, "Nothing", undef.Name)
}

func TestDefNameNotVisibleInsideOwnBody(t *testing.T) {
	_, err := Parse([]byte(`DEF G Group { children USE G }`))
	var undef *UndefinedNodeError
	require.ErrorAs(t, err, &undef)
	assert.Equal(t, "G", undef.Name)
}

func TestRedefineRebindsForLaterUses(t *testing.T) {
	src := `
DEF A Box { }
Group { children USE A }
DEF A Sphere { }
Group { children USE A }
`
	scene, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, scene.Nodes, 4)

	first, _ := scene.Nodes[1].Field("children")
	assert.Equal(t, "Box", first.(*MFNode).Values[0].Node.Type)

	second, _ := scene.Nodes[3].Field("children")
	assert.Equal(t, "Sphere", second.(*MFNode).Values[0].Node.Type)

	assert.Equal(t, "Sphere", scene.Defs["A"].Type)
	assert.Equal(t, []string{"A"}, scene.DefNames())
}

func TestStrictRedefineRejected(t *testing.T) {
	src := []byte(`DEF A Box { } DEF A Sphere { }`)
	_, err := ParseWithOptions(src, Options{StrictRedefine: true})
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Contains(t, synErr.Error(), "already defined")
}

func TestReservedWordAsDefNameRejected(t *testing.T) {
	_, err := Parse([]byte(`DEF PROTO Box { }`))
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestUnknownNodeType(t *testing.T) {
	_, err := Parse([]byte(`Bogus { }`))
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Contains(t, synErr.Error(), `unknown node type "Bogus"`)
}

func TestUnknownFieldReportedAtFieldName(t *testing.T) {
	_, err := Parse([]byte(`Box { radius 1 }`))
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, fieldErr.Error(), `unknown field "radius" on node type "Box"`)
	assert.Equal(t, 1, fieldErr.Pos.Line)
	assert.Equal(t, 7, fieldErr.Pos.Column)
}

func TestDuplicateFieldRejected(t *testing.T) {
	_, err := Parse([]byte(`Box { size 1 1 1 size 2 2 2 }`))
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, fieldErr.Error(), "duplicate field")
}

func TestTruncatedLiteralDoesNotSwallowNextField(t *testing.T) {
	_, err := Parse([]byte(`Transform { rotation 0 0 1 translation 0 0 0 }`))
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, fieldErr.Error(), "expected number")
	assert.Equal(t, 28, fieldErr.Pos.Column) // position of "translation"
}

func TestEmptyBracketedMultiField(t *testing.T) {
	scene, err := Parse([]byte(`Group { children [] }`))
	require.NoError(t, err)
	children, _ := scene.Nodes[0].Field("children")
	assert.Empty(t, children.(*MFNode).Values)
}

func TestBareMultiFieldElement(t *testing.T) {
	scene, err := Parse([]byte(`Background { skyColor 0.1 0.2 0.3 }`))
	require.NoError(t, err)
	sky, _ := scene.Nodes[0].Field("skyColor")
	mf := sky.(*MFColor)
	require.Len(t, mf.Values, 1)
	assert.Equal(t, &SFColor{R: 0.1, G: 0.2, B: 0.3}, mf.Values[0])
}

func TestTrailingAndRepeatedCommasTolerated(t *testing.T) {
	src := `Coordinate { point [ 1 0 0, , 0 1 0, ] }`
	scene, err := Parse([]byte(src))
	require.NoError(t, err)
	point, _ := scene.Nodes[0].Field("point")
	assert.Len(t, point.(*MFVec3f).Values, 2)
}

func TestNullNodeLiteral(t *testing.T) {
	scene, err := Parse([]byte(`Shape { appearance NULL geometry Box { } }`))
	require.NoError(t, err)
	app, _ := scene.Nodes[0].Field("appearance")
	assert.Nil(t, app.(*SFNode).Node)
}

func TestBoolAndStringFields(t *testing.T) {
	src := `
Cylinder { top FALSE side TRUE }
WorldInfo { title "scene \"one\"" info ["a", "b"] }
`
	scene, err := Parse([]byte(src))
	require.NoError(t, err)

	top, _ := scene.Nodes[0].Field("top")
	assert.False(t, top.(*SFBool).Value)
	side, _ := scene.Nodes[0].Field("side")
	assert.True(t, side.(*SFBool).Value)

	title, _ := scene.Nodes[1].Field("title")
	assert.Equal(t, `scene "one"`, title.(*SFString).Value)
	info, _ := scene.Nodes[1].Field("info")
	assert.Equal(t, []string{"a", "b"}, info.(*MFString).Strings())
}

func TestIntegerLiterals(t *testing.T) {
	scene, err := Parse([]byte(`Switch { whichChoice 0x0A }`))
	require.NoError(t, err)
	which, _ := scene.Nodes[0].Field("whichChoice")
	assert.Equal(t, int32(10), which.(*SFInt32).Value)

	// A leading zero reads as decimal, not octal.
	scene, err = Parse([]byte(`Switch { whichChoice 010 }`))
	require.NoError(t, err)
	which, _ = scene.Nodes[0].Field("whichChoice")
	assert.Equal(t, int32(10), which.(*SFInt32).Value)
}

func TestScientificNotationFloats(t *testing.T) {
	scene, err := Parse([]byte(`Material { transparency 2.5e-1 }`))
	require.NoError(t, err)
	tr, _ := scene.Nodes[0].Field("transparency")
	assert.Equal(t, float32(0.25), tr.(*SFFloat).Value)
}

func TestPixelImageField(t *testing.T) {
	scene, err := Parse([]byte(`PixelTexture { image 2 1 1 0xFF 0x00 }`))
	require.NoError(t, err)
	image, _ := scene.Nodes[0].Field("image")
	img := image.(*SFImage)
	assert.Equal(t, int32(2), img.Width)
	assert.Equal(t, int32(1), img.Height)
	assert.Equal(t, int32(1), img.Components)
	assert.Equal(t, []int32{255, 0}, img.Pixels)
}

func TestPixelImageInvalidDimensions(t *testing.T) {
	_, err := Parse([]byte(`PixelTexture { image 1 1 5 0 }`))
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, fieldErr.Error(), "invalid dimensions")
}

func TestUnexpectedEOFInNodeBody(t *testing.T) {
	_, err := Parse([]byte(`Box {`))
	var eofErr *UnexpectedEOFError
	require.ErrorAs(t, err, &eofErr)
}

func TestUnexpectedEOFInMultiField(t *testing.T) {
	_, err := Parse([]byte(`Group { children [ Box { }`))
	var eofErr *UnexpectedEOFError
	require.ErrorAs(t, err, &eofErr)
}

func TestNonIdentifierTopLevelStatement(t *testing.T) {
	_, err := Parse([]byte(`{ }`))
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestNestingDepthBound(t *testing.T) {
	deep := strings.Repeat("Group { children ", 10) + "Box { }" + strings.Repeat(" }", 10)

	_, err := ParseWithOptions([]byte(deep), Options{MaxDepth: 5})
	var depthErr *DepthError
	require.ErrorAs(t, err, &depthErr)

	scene, err := ParseWithOptions([]byte(deep), Options{MaxDepth: 64})
	require.NoError(t, err)
	assert.Len(t, scene.Nodes, 1)
}

func TestDepthIsPerBranchNotCumulative(t *testing.T) {
	// Many siblings at the same depth must not trip the bound.
	src := `Group { children [ ` + strings.Repeat("Box { }, ", 8) + `] }`
	_, err := ParseWithOptions([]byte(src), Options{MaxDepth: 3})
	require.NoError(t, err)
}

func TestLexErrorSurfacesFromParse(t *testing.T) {
	_, err := Parse([]byte(`WorldInfo { title "unclosed }`))
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestParserErrorsCarryPositions(t *testing.T) {
	sources := []string{
		`Bogus { }`,
		`Box { radius 1 }`,
		`USE Nothing`,
		`Box {`,
		`WorldInfo { title "unclosed }`,
	}
	for _, src := range sources {
		_, err := Parse([]byte(src))
		require.Error(t, err, src)
		assert.Contains(t, err.Error(), "line 1", src)
	}
}
