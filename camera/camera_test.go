package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/prim"
)

func TestNewRejectsNonPositiveResolution(t *testing.T) {
	_, err := New(prim.Origin3, prim.P3(0, 0, 1), prim.V3(0, 1, 0), 90, 0, 10)
	assert.Error(t, err)
}

func TestNewRejectsDegenerateFov(t *testing.T) {
	_, err := New(prim.Origin3, prim.P3(0, 0, 1), prim.V3(0, 1, 0), 0, 10, 10)
	assert.Error(t, err)
}

func TestNewRejectsCoincidentLookAt(t *testing.T) {
	_, err := New(prim.Origin3, prim.Origin3, prim.V3(0, 1, 0), 90, 10, 10)
	assert.Error(t, err)
}

func TestCastCenterPixelPointsAtLookAt(t *testing.T) {
	cam, err := New(prim.Origin3, prim.P3(0, 0, 1), prim.V3(0, 1, 0), 90, 100, 100)
	require.NoError(t, err)

	ray := cam.Cast(0, 0)
	assert.InDelta(t, 0, ray.Direction.X, 1e-9)
	assert.InDelta(t, 0, ray.Direction.Y, 1e-9)
	assert.InDelta(t, 1, ray.Direction.Z, 1e-9)
}

func TestCastEdgesStraddleForwardSymmetrically(t *testing.T) {
	cam, err := New(prim.Origin3, prim.P3(0, 0, 1), prim.V3(0, 1, 0), 90, 100, 100)
	require.NoError(t, err)

	left := cam.Cast(-1, 0)
	right := cam.Cast(1, 0)
	assert.InDelta(t, 0, left.Direction.X+right.Direction.X, 1e-9)
	assert.Greater(t, right.Direction.X, left.Direction.X)
}

func TestImagePointCenterIsOrigin(t *testing.T) {
	cam, err := New(prim.Origin3, prim.P3(0, 0, 1), prim.V3(0, 1, 0), 90, 100, 50)
	require.NoError(t, err)

	u, v := cam.ImagePoint(50, 25, 0, 0)
	assert.InDelta(t, 0, u, 1e-9)
	assert.InDelta(t, 0, v, 1e-9)
}

func TestAspectMatchesHeightOverWidth(t *testing.T) {
	cam, err := New(prim.Origin3, prim.P3(0, 0, 1), prim.V3(0, 1, 0), 90, 200, 100)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cam.Aspect(), 1e-9)
}

func TestSetPixelWritesImageAndMask(t *testing.T) {
	cam, err := New(prim.Origin3, prim.P3(0, 0, 1), prim.V3(0, 1, 0), 90, 4, 4)
	require.NoError(t, err)

	col := color.New(0.5, 0.25, 0.1)
	require.NoError(t, cam.SetPixel(1, 1, col))

	got, err := cam.Image.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, col, got)
}

func TestCastDirectionIsAlwaysUnit(t *testing.T) {
	cam, err := New(prim.P3(1, 2, 3), prim.P3(5, 2, 3), prim.V3(0, 1, 0), 60, 64, 64)
	require.NoError(t, err)
	ray := cam.Cast(0.3, -0.4)
	assert.InDelta(t, 1, math.Hypot(math.Hypot(ray.Direction.X, ray.Direction.Y), ray.Direction.Z), 1e-9)
}
