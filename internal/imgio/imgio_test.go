package imgio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenray/raytrace/color"
)

func sampleImage(t *testing.T) *Image {
	t.Helper()
	img, err := New(2, 2, RGB8)
	require.NoError(t, err)
	require.NoError(t, img.Set(0, 0, color.New(1, 0, 0)))
	require.NoError(t, img.Set(1, 0, color.New(0, 1, 0)))
	require.NoError(t, img.Set(0, 1, color.New(0, 0, 1)))
	require.NoError(t, img.Set(1, 1, color.New(1, 1, 1)))
	return img
}

func TestPPMRoundTrip(t *testing.T) {
	img := sampleImage(t)
	var buf bytes.Buffer
	require.NoError(t, SavePPM(&buf, img))

	loaded, err := LoadPPM(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Width, loaded.Width)
	assert.Equal(t, img.Height, loaded.Height)

	want, _ := img.At(0, 0)
	got, _ := loaded.At(0, 0)
	assert.InDelta(t, want.R, got.R, 0.02)
}

func TestPFMRoundTripPreservesHDR(t *testing.T) {
	img, err := New(1, 1, RGBf)
	require.NoError(t, err)
	require.NoError(t, img.Set(0, 0, color.New(2.5, -0.3, 10.0)))

	var buf bytes.Buffer
	require.NoError(t, SavePFM(&buf, img))

	loaded, err := LoadPFM(&buf)
	require.NoError(t, err)
	got, _ := loaded.At(0, 0)
	assert.InDelta(t, 2.5, got.R, 1e-5)
	assert.InDelta(t, -0.3, got.G, 1e-5)
	assert.InDelta(t, 10.0, got.B, 1e-5)
}

func TestTGAHeaderDimensions(t *testing.T) {
	img := sampleImage(t)
	var buf bytes.Buffer
	require.NoError(t, SaveTGA(&buf, img))
	header := buf.Bytes()[:18]
	width := int(header[12]) | int(header[13])<<8
	height := int(header[14]) | int(header[15])<<8
	assert.Equal(t, 2, width)
	assert.Equal(t, 2, height)
}

func TestSampleWrapsAndInterpolates(t *testing.T) {
	img := sampleImage(t)
	c := img.Sample(0, 0)
	want, _ := img.At(0, 0)
	assert.InDelta(t, want.R, c.R, 1e-9)

	wrapped := img.Sample(1, 1)
	assert.InDelta(t, want.R, wrapped.R, 1e-9)

	mid := img.Sample(0.25, 0)
	assert.InDelta(t, 0.5, mid.R, 1e-9)
	assert.InDelta(t, 0.5, mid.G, 1e-9)
}

func TestEXRWritesNonEmpty(t *testing.T) {
	img := sampleImage(t)
	var buf bytes.Buffer
	require.NoError(t, SaveEXR(&buf, img))
	assert.Greater(t, buf.Len(), 0)
	assert.Equal(t, byte(0x76), buf.Bytes()[0])
}
