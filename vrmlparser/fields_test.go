package vrmlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldTypeClassification(t *testing.T) {
	assert.False(t, TypeSFColor.IsMultiField())
	assert.True(t, TypeMFColor.IsMultiField())
	assert.Equal(t, TypeSFColor, TypeMFColor.ElementType())
	assert.Equal(t, TypeSFColor, TypeSFColor.ElementType())
	assert.Equal(t, TypeSFNode, TypeMFNode.ElementType())
}

// Every variant must survive parse -> format -> parse. Node-valued variants
// are compared on their formatted text since reparsing assigns fresh
// positions.
func TestFieldLiteralRoundTrip(t *testing.T) {
	tests := []struct {
		ft  FieldType
		lit string
	}{
		{TypeSFBool, "TRUE"},
		{TypeSFColor, "0.5 0.25 1"},
		{TypeSFColorRGBA, "1 0 0 0.5"},
		{TypeSFDouble, "3.141592653589793"},
		{TypeSFFloat, "-1.5"},
		{TypeSFImage, "2 2 1 0xFF 0x00 0x80 0x40"},
		{TypeSFInt32, "-17"},
		{TypeSFNode, "Box { size 1 2 3 }"},
		{TypeSFRotation, "0 0 1 1.5708"},
		{TypeSFString, `"hello \"world\""`},
		{TypeSFTime, "1234.5"},
		{TypeSFVec2d, "0.25 -4"},
		{TypeSFVec2f, "0.25 -4"},
		{TypeSFVec3d, "1 2 3"},
		{TypeSFVec3f, "1 2 3"},
		{TypeSFVec4d, "1 2 3 4"},
		{TypeSFVec4f, "1 2 3 4"},
		{TypeMFBool, "[TRUE, FALSE]"},
		{TypeMFColor, "[1 0 0, 0 1 0]"},
		{TypeMFColorRGBA, "[0 0 0 1]"},
		{TypeMFDouble, "[0.5, 1.5]"},
		{TypeMFFloat, "[1, 2, 3]"},
		{TypeMFImage, "[1 1 1 0]"},
		{TypeMFInt32, "[0, 1, -2]"},
		{TypeMFNode, "[Shape { geometry Box { } }, Sphere { }]"},
		{TypeMFRotation, "[0 1 0 0.5]"},
		{TypeMFString, `["a", "b"]`},
		{TypeMFTime, "[0]"},
		{TypeMFVec2d, "[1 2, 3 4]"},
		{TypeMFVec2f, "[1 2]"},
		{TypeMFVec3d, "[1 2 3]"},
		{TypeMFVec3f, "[1 2 3, 4 5 6]"},
		{TypeMFVec4d, "[1 2 3 4]"},
		{TypeMFVec4f, "[1 2 3 4]"},
	}
	for _, tt := range tests {
		t.Run(string(tt.ft), func(t *testing.T) {
			parsed, err := ParseFieldLiteral([]byte(tt.lit), tt.ft)
			require.NoError(t, err)
			assert.Equal(t, tt.ft, parsed.Type())

			out := FormatField(parsed)
			reparsed, err := ParseFieldLiteral([]byte(out), tt.ft)
			require.NoError(t, err)

			if tt.ft.ElementType() == TypeSFNode {
				assert.Equal(t, out, FormatField(reparsed))
			} else {
				assert.Equal(t, parsed, reparsed)
			}
		})
	}
}

func TestRotationAxisIsNotNormalized(t *testing.T) {
	f, err := ParseFieldLiteral([]byte("0 0 2 1"), TypeSFRotation)
	require.NoError(t, err)
	rot := f.(*SFRotation)
	assert.Equal(t, float32(2), rot.Z)
	assert.Equal(t, "0 0 2 1", FormatField(rot))

	unit := rot.Normalized()
	assert.Equal(t, float32(1), unit.Z)
	assert.Equal(t, float32(1), unit.Angle)
	assert.Equal(t, float32(2), rot.Z) // original untouched
}

func TestRotationNormalizedZeroAxis(t *testing.T) {
	rot := &SFRotation{Angle: 0.5}
	assert.Equal(t, *rot, rot.Normalized())
}

func TestColorComponentsAreNotClamped(t *testing.T) {
	f, err := ParseFieldLiteral([]byte("1.5 -0.25 2"), TypeSFColor)
	require.NoError(t, err)
	c := f.(*SFColor)
	assert.Equal(t, float32(1.5), c.R)
	assert.Equal(t, float32(-0.25), c.G)
	assert.Equal(t, float32(2), c.B)
}

func TestCloneIsIndependentForValueVariants(t *testing.T) {
	f, err := ParseFieldLiteral([]byte("[1 2 3, 4 5 6]"), TypeMFVec3f)
	require.NoError(t, err)
	orig := f.(*MFVec3f)

	clone := orig.Clone().(*MFVec3f)
	require.Equal(t, orig, clone)

	clone.Values[0].X = 99
	assert.Equal(t, float32(1), orig.Values[0].X)
	assert.Equal(t, float32(99), clone.Values[0].X)
}

func TestCloneCopiesImagePixels(t *testing.T) {
	img := &SFImage{Width: 2, Height: 1, Components: 1, Pixels: []int32{255, 0}}
	clone := img.Clone().(*SFImage)
	clone.Pixels[0] = 7
	assert.Equal(t, int32(255), img.Pixels[0])
}

func TestCloneAliasesNodeReferences(t *testing.T) {
	scene, err := Parse([]byte(`Shape { geometry Box { } }`))
	require.NoError(t, err)

	geom, ok := scene.Nodes[0].Field("geometry")
	require.True(t, ok)
	sf := geom.(*SFNode)

	clone := sf.Clone().(*SFNode)
	assert.NotSame(t, sf, clone)
	assert.Same(t, sf.Node, clone.Node)
}

func TestCloneMFNodeCopiesHoldersNotNodes(t *testing.T) {
	scene, err := Parse([]byte(`Group { children [ Box { }, Sphere { } ] }`))
	require.NoError(t, err)

	children, ok := scene.Nodes[0].Field("children")
	require.True(t, ok)
	mf := children.(*MFNode)

	clone := mf.Clone().(*MFNode)
	require.Len(t, clone.Values, 2)
	for i := range mf.Values {
		assert.NotSame(t, mf.Values[i], clone.Values[i])
		assert.Same(t, mf.Values[i].Node, clone.Values[i].Node)
	}
}

func TestMFStringStrings(t *testing.T) {
	f, err := ParseFieldLiteral([]byte(`["a", "b", "c"]`), TypeMFString)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, f.(*MFString).Strings())
}

func TestParseFieldLiteralRejectsTrailingInput(t *testing.T) {
	_, err := ParseFieldLiteral([]byte("1 2 3 4"), TypeSFVec3f)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseFieldLiteralUnknownType(t *testing.T) {
	_, err := ParseFieldLiteral([]byte("1"), FieldType("SFQuaternion"))
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
}
