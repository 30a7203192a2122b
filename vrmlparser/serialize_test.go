package vrmlparser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T, scene *Scene) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteScene(&buf, scene))
	return buf.String()
}

func TestWriteSceneDefThenUse(t *testing.T) {
	scene, err := Parse([]byte(`DEF B Box { size 1 2 3 } USE B`))
	require.NoError(t, err)

	want := `#VRML V2.0 utf8
DEF B Box {
  size 1 2 3
}
USE B
`
	assert.Equal(t, want, writeScene(t, scene))
}

func TestWriteSceneEmptyNodeAndNull(t *testing.T) {
	scene, err := Parse([]byte(`Shape { appearance NULL geometry Sphere { } }`))
	require.NoError(t, err)

	want := `#VRML V2.0 utf8
Shape {
  appearance NULL
  geometry Sphere {}
}
`
	assert.Equal(t, want, writeScene(t, scene))
}

func TestWriteSceneSharedNodeInsideField(t *testing.T) {
	src := `
Group { children [ DEF C Box { }, USE C ] }
`
	scene, err := Parse([]byte(src))
	require.NoError(t, err)

	out := writeScene(t, scene)
	assert.Contains(t, out, "DEF C Box {}")
	assert.Contains(t, out, "USE C")
	// The full body is written exactly once.
	assert.Equal(t, 1, bytes.Count([]byte(out), []byte("DEF C")))
}

func TestWriteSceneRoutes(t *testing.T) {
	src := `
DEF Clock TimeSensor { }
DEF Opener Switch { }
ROUTE Clock.cycleTime TO Opener.set_whichChoice
`
	scene, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.Contains(t, writeScene(t, scene), "ROUTE Clock.cycleTime TO Opener.set_whichChoice\n")
}

func TestWriteSceneProtos(t *testing.T) {
	src := postProto + `
EXTERNPROTO Tree [ field SFFloat height ] ["tree.wrl"]
Post { height 5 }
`
	scene, err := Parse([]byte(src))
	require.NoError(t, err)

	out := writeScene(t, scene)
	assert.Contains(t, out, "PROTO Post [")
	assert.Contains(t, out, "field SFFloat height 2")
	assert.Contains(t, out, "exposedField SFColor postColor 1 0 0")
	assert.Contains(t, out, "eventIn SFBool set_active")
	assert.Contains(t, out, "eventOut SFTime touchTime")
	assert.Contains(t, out, `EXTERNPROTO Tree [`)
	assert.Contains(t, out, `] ["tree.wrl"]`)
}

// Serialization must be a fixed point: writing a scene, reparsing it, and
// writing again yields identical text.
func TestWriteSceneIsStableUnderReparse(t *testing.T) {
	src := `
#VRML V2.0 utf8
PROTO Post [ field SFFloat height 2 ] { Cylinder { radius 0.1 } }
DEF Root Transform {
  translation 0 1.5 0
  rotation 0 1 0 0.785
  children [
    Shape {
      appearance Appearance { material DEF M Material { diffuseColor 1 0 0 } }
      geometry Box { size 2 2 2 }
    }
    Post { height 4 }
    DEF Touch TouchSensor { }
  ]
}
DEF Clock TimeSensor { loop TRUE }
ROUTE Touch.touchTime TO Clock.startTime
`
	scene, err := Parse([]byte(src))
	require.NoError(t, err)

	first := writeScene(t, scene)
	reparsed, err := Parse([]byte(first))
	require.NoError(t, err)
	assert.Equal(t, first, writeScene(t, reparsed))
}

func TestFormatFieldStringEscaping(t *testing.T) {
	f := &SFString{Value: "say \"hi\"\n\tdone\\"}
	assert.Equal(t, `"say \"hi\"\n\tdone\\"`, FormatField(f))

	back, err := ParseFieldLiteral([]byte(FormatField(f)), TypeSFString)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestFormatFieldEmptySequence(t *testing.T) {
	assert.Equal(t, "[]", FormatField(&MFInt32{}))
}

func TestFormatFieldBool(t *testing.T) {
	assert.Equal(t, "TRUE", FormatField(&SFBool{Value: true}))
	assert.Equal(t, "FALSE", FormatField(&SFBool{}))
}
