package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalScene = `
camera:
  position: {x: 0, y: 0, z: 10}
  look_at: {x: 0, y: 0, z: 0}
  up: {x: 0, y: 1, z: 0}
  fov_degrees: 40
  width: 64
  height: 64
objects:
  - type: sphere
    radius: 1
    position: {x: 0, y: 0, z: 0}
    medium:
      diffuse: {r: 0.8, g: 0.2, b: 0.2}
      smoothness: 0.5
      refractive_index: 1
  - type: plane
    position: {x: 0, y: 0, z: -1}
lights:
  - type: directional
    direction: {x: 0, y: -1, z: -1}
    color: {r: 1, g: 1, b: 1}
render:
  recursion_depth: 3
  samples: 2
`

func TestParseAndBuildMinimalScene(t *testing.T) {
	doc, err := Parse([]byte(minimalScene))
	require.NoError(t, err)
	require.Len(t, doc.Objects, 2)
	require.Len(t, doc.Lights, 1)

	scene, cam, err := doc.Build()
	require.NoError(t, err)
	assert.Len(t, scene.Objects, 2)
	assert.Len(t, scene.Lights, 1)
	assert.Equal(t, 3, scene.Config.RecursionDepth)
	assert.Equal(t, 2, scene.Config.Samples)
	assert.Equal(t, 64, cam.WidthPx)
	assert.Equal(t, 64, cam.HeightPx)
}

func TestBuildRejectsUnknownObjectType(t *testing.T) {
	doc, err := Parse([]byte("objects:\n  - type: dodecahedron\n"))
	require.NoError(t, err)
	_, _, err = doc.Build()
	assert.Error(t, err)
}

func TestBuildRejectsUnknownLightType(t *testing.T) {
	doc, err := Parse([]byte("lights:\n  - type: laser\n"))
	require.NoError(t, err)
	_, _, err = doc.Build()
	assert.Error(t, err)
}

func TestLoadWrapsMissingFile(t *testing.T) {
	_, _, err := Load("/nonexistent/scene.yaml")
	assert.Error(t, err)
}

func TestParseWrapsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("objects: [this is not: valid: yaml"))
	assert.Error(t, err)
}
