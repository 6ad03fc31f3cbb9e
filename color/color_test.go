package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGammaRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.0031308, 0.18, 0.5, 1.0} {
		c := Gray(v)
		back := FromGamma(c.ToGamma())
		assert.InDelta(t, v, back.R, 1e-6, "round trip of %v", v)
	}
}

func TestGammaEncodeMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 20; i++ {
		v := float64(i) / 20.0
		enc := encodeChannel(v)
		assert.GreaterOrEqual(t, enc, prev)
		prev = enc
	}
}

func TestBlendIsAffine(t *testing.T) {
	a := New(1, 0, 0)
	b := New(0, 1, 0)
	mid := Blend(a, b, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)
	assert.InDelta(t, 0.5, mid.G, 1e-9)
}

func TestLerpEndpoints(t *testing.T) {
	a := New(0, 0, 0)
	b := New(1, 1, 1)
	assert.Equal(t, a.Clamp(), a.Lerp(b, 0).Clamp())
	assert.Equal(t, b.Clamp(), a.Lerp(b, 1).Clamp())
}

func TestClampRestrictsToUnit(t *testing.T) {
	c := New(-0.5, 1.5, 0.5).Clamp()
	assert.Equal(t, 0.0, c.R)
	assert.Equal(t, 1.0, c.G)
	assert.Equal(t, 0.5, c.B)
}

func TestIntensityScalesChannels(t *testing.T) {
	c := New(0.5, 0.5, 0.5).WithIntensity(2)
	r, g, b := c.rgb()
	assert.InDelta(t, 1.0, r, 1e-9)
	assert.InDelta(t, 1.0, g, 1e-9)
	assert.InDelta(t, 1.0, b, 1e-9)
}

func TestBytesRoundTripApprox(t *testing.T) {
	c := New(0.2, 0.5, 0.8)
	r, g, b := c.Bytes()
	back := FromBytes(r, g, b)
	assert.InDelta(t, c.R, back.R, 0.01)
	assert.InDelta(t, c.G, back.G, 0.01)
	assert.InDelta(t, c.B, back.B, 0.01)
}

func TestValidateRejectsNaN(t *testing.T) {
	c := New(1, 2, 3)
	require.NoError(t, c.Validate())
	assert.Error(t, New(math.NaN(), 0, 0).Validate())
}

func TestIsBlack(t *testing.T) {
	assert.True(t, Black.IsBlack())
	assert.False(t, White.IsBlack())
}
