package suggestion

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"travelagent/internal/ai"
)

// Formats the model accepts as uploaded; anything else is re-encoded as PNG.
var passthroughFormats = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// DecodeImage validates data as an image and returns it in a form every
// backend accepts. Errors wrap ErrImageDecode.
func DecodeImage(data []byte) (*ai.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrImageDecode)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	if mime, ok := passthroughFormats[format]; ok {
		return &ai.Image{MIMEType: mime, Data: data}, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: re-encode %s as png: %v", ErrImageDecode, format, err)
	}
	return &ai.Image{MIMEType: "image/png", Data: buf.Bytes()}, nil
}
