package util

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestResizeImage(t *testing.T) {
	t.Run("large image is scaled down", func(t *testing.T) {
		data, contentType, err := ResizeImage(encodePNG(t, 400, 200), 100)
		require.NoError(t, err)
		assert.Equal(t, "image/png", contentType)

		out, _, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 100, out.Bounds().Dx())
		assert.Equal(t, 50, out.Bounds().Dy())
	})

	t.Run("small image keeps size", func(t *testing.T) {
		data, _, err := ResizeImage(encodePNG(t, 40, 20), 100)
		require.NoError(t, err)

		out, _, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 40, out.Bounds().Dx())
	})

	t.Run("not an image", func(t *testing.T) {
		_, _, err := ResizeImage(strings.NewReader("plain text"), 100)
		assert.ErrorIs(t, err, ErrUnsupportedImage)
	})
}

func TestStrToUint64(t *testing.T) {
	v, err := StrToUint64(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	_, err = StrToUint64("-1")
	assert.Error(t, err)
}
