package util

import (
	"bytes"
	"errors"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// ResizeImage 解码图片并等比缩放到 maxSide 以内，输出 JPEG（PNG 保留为 PNG）
func ResizeImage(r io.Reader, maxSide int) ([]byte, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", ErrUnsupportedImage
	}

	b := img.Bounds()
	if b.Dx() > maxSide || b.Dy() > maxSide {
		img = imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
	}

	outFormat := imaging.JPEG
	contentType := "image/jpeg"
	if format == "png" {
		outFormat = imaging.PNG
		contentType = "image/png"
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, outFormat, imaging.JPEGQuality(85)); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), contentType, nil
}
