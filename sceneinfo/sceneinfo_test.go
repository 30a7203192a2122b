package sceneinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyril12/Tr3Smoothing/vrmlparser"
)

func TestSummarizeCountsSharedNodesOnce(t *testing.T) {
	src := `
DEF B Box { size 1 1 1 }
Transform {
  translation 0 1 0
  children [ Shape { geometry USE B }, USE B ]
}
`
	scene, err := vrmlparser.Parse([]byte(src))
	require.NoError(t, err)

	sum := Summarize(scene)
	assert.Equal(t, 3, sum.NodeCount) // Box, Transform, Shape
	assert.Equal(t, 2, sum.UseCount)
	assert.Equal(t, 4, sum.FieldCount)
	assert.Equal(t, 1, sum.DefCount)
	assert.Equal(t, 0, sum.ProtoCount)
	assert.Equal(t, 0, sum.RouteCount)

	assert.Equal(t, map[string]int{"Box": 1, "Transform": 1, "Shape": 1}, sum.NodesByType)
	assert.Equal(t, 2, sum.FieldKinds[vrmlparser.TypeSFVec3f])
	assert.Equal(t, 1, sum.FieldKinds[vrmlparser.TypeMFNode])
	assert.Equal(t, 1, sum.FieldKinds[vrmlparser.TypeSFNode])
}

func TestSummarizeIncludesProtoBodiesAndRoutes(t *testing.T) {
	src := `
PROTO Post [ field SFFloat height 2 ] {
  Cylinder { radius 0.1 }
}
Post { height 4 }
DEF Clock TimeSensor { }
DEF Opener Switch { }
ROUTE Clock.cycleTime TO Opener.set_whichChoice
`
	scene, err := vrmlparser.Parse([]byte(src))
	require.NoError(t, err)

	sum := Summarize(scene)
	assert.Equal(t, 1, sum.ProtoCount)
	assert.Equal(t, 1, sum.RouteCount)
	assert.Equal(t, 2, sum.DefCount)
	assert.Equal(t, 1, sum.NodesByType["Cylinder"])
	assert.Equal(t, 1, sum.NodesByType["Post"])
}

func TestSummaryString(t *testing.T) {
	scene, err := vrmlparser.Parse([]byte(`Box { } Sphere { }`))
	require.NoError(t, err)

	out := Summarize(scene).String()
	assert.Contains(t, out, "2 nodes (0 shared references)")
	assert.Contains(t, out, "Box")
	assert.Contains(t, out, "Sphere")
}
