package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/prim"
)

func TestPointIncidentPointsTowardLight(t *testing.T) {
	l := Point{Position: prim.P3(0, 5, 0), PowerVal: color.White}
	ray := l.Incident(prim.Origin3, 0)
	assert.InDelta(t, 5.0, ray.Direction.Magnitude(), 1e-9)
}

func TestPointFallsOffWithInverseSquare(t *testing.T) {
	l := Point{Position: prim.Origin3, PowerVal: color.New(4, 4, 4)}
	near := l.ColorAt(prim.P3(1, 0, 0))
	far := l.ColorAt(prim.P3(2, 0, 0))
	assert.InDelta(t, 4.0, near.R, 1e-9)
	assert.InDelta(t, 1.0, far.R, 1e-9)
}

func TestDirectionalIsConstant(t *testing.T) {
	l := Directional{Direction: prim.V3(0, 0, -1), ColorVal: color.White}
	a := l.ColorAt(prim.P3(10, 10, 10))
	b := l.ColorAt(prim.Origin3)
	assert.Equal(t, a, b)
}

func TestDirectionalIncidentPointsAwayFromDirection(t *testing.T) {
	l := Directional{Direction: prim.V3(0, 0, -1), ColorVal: color.White}
	ray := l.Incident(prim.Origin3, 0)
	assert.Greater(t, ray.Direction.Z, 0.0)
}

func TestSpotOutsideConeIsBlack(t *testing.T) {
	l := Spot{
		Position:      prim.P3(0, 5, 0),
		Direction:     prim.V3(0, -1, 0),
		ConeHalfAngle: prim.Degrees(10).ToRadians(),
		ColorVal:      color.White,
	}
	c := l.ColorAt(prim.P3(100, 0, 0))
	assert.True(t, c.IsBlack())
}

func TestSpotInsideConeIsLit(t *testing.T) {
	l := Spot{
		Position:      prim.P3(0, 5, 0),
		Direction:     prim.V3(0, -1, 0),
		ConeHalfAngle: prim.Degrees(45).ToRadians(),
		ColorVal:      color.White,
	}
	c := l.ColorAt(prim.P3(0, 0, 0))
	assert.False(t, c.IsBlack())
}

func TestAreaHasMultipleSamples(t *testing.T) {
	l := Area{
		Center:  prim.P3(0, 5, 0),
		Edge1:   prim.V3(2, 0, 0),
		Edge2:   prim.V3(0, 0, 2),
		Samples: 4,
	}
	assert.Equal(t, 4, l.NumberOfSamples())
	r0 := l.Incident(prim.Origin3, 0)
	r1 := l.Incident(prim.Origin3, 1)
	assert.NotEqual(t, r0.Direction, r1.Direction)
}
