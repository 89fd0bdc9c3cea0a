package suggestion

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 120, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, sampleImage()))
	return buf.Bytes()
}

func TestDecodeImagePNGPassthrough(t *testing.T) {
	data := encodePNG(t)
	img, err := DecodeImage(data)
	require.NoError(t, err)
	require.Equal(t, "image/png", img.MIMEType)
	require.Equal(t, data, img.Data)
}

func TestDecodeImageJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, sampleImage(), nil))
	img, err := DecodeImage(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", img.MIMEType)
}

func TestDecodeImageGIFReencoded(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, sampleImage(), nil))
	img, err := DecodeImage(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "image/png", img.MIMEType)

	_, format, err := image.Decode(bytes.NewReader(img.Data))
	require.NoError(t, err)
	require.Equal(t, "png", format)
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := DecodeImage([]byte("definitely not an image"))
	require.ErrorIs(t, err, ErrImageDecode)

	_, err = DecodeImage(nil)
	require.ErrorIs(t, err, ErrImageDecode)
}

func TestDecodeImageTruncated(t *testing.T) {
	data := encodePNG(t)
	_, err := DecodeImage(data[:len(data)/2])
	require.ErrorIs(t, err, ErrImageDecode)
}
