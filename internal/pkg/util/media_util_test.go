package util

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectContentType(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	r := bytes.NewReader(buf.Bytes())

	ct, err := DetectContentType(r)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.True(t, IsImage(ct))

	// reader 已复位，可以完整读取
	all, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, buf.Len(), len(all))

	ct, err = DetectContentType(bytes.NewReader([]byte("just text")))
	require.NoError(t, err)
	assert.False(t, IsImage(ct))
}
