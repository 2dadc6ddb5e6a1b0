package imageprocessor_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"accura_backend/internal/imageprocessor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDimensions(t *testing.T) {
	w, h, format, err := imageprocessor.Dimensions(bytes.NewReader(createTestPNG(t, 64, 32)))
	require.NoError(t, err)

	assert.Equal(t, 64, w)
	assert.Equal(t, 32, h)
	assert.Equal(t, "png", format)
}

func TestDimensionsNotAnImage(t *testing.T) {
	_, _, _, err := imageprocessor.Dimensions(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}

func TestThumbnailKeepsAspectRatio(t *testing.T) {
	p := imageprocessor.NewProcessor(0)

	out, format, err := p.Thumbnail(bytes.NewReader(createTestPNG(t, 200, 100)), 50)
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	img, err := png.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 25, img.Bounds().Dy())
}

func TestThumbnailJPEGStaysJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 80, 120))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	out, format, err := imageprocessor.NewProcessor(90).Thumbnail(&buf, 60)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)

	img, err := jpeg.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestThumbnailSmallImageNotUpscaled(t *testing.T) {
	out, _, err := imageprocessor.NewProcessor(85).Thumbnail(bytes.NewReader(createTestPNG(t, 10, 20)), 100)
	require.NoError(t, err)

	img, err := png.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 20), img.Bounds())
}

func TestThumbnailPath(t *testing.T) {
	tests := []struct {
		path, format, want string
	}{
		{"cat.jpg", "jpeg", "cat_thumbnail.jpg"},
		{"cat.JPEG", "jpeg", "cat_thumbnail.JPEG"},
		{"cat.png", "png", "cat_thumbnail.png"},
		{"anim.gif", "png", "anim_thumbnail.png"},
		{"noext", "jpeg", "noext_thumbnail.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, imageprocessor.ThumbnailPath(tt.path, tt.format))
		})
	}
}
