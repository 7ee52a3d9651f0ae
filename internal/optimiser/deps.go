package optimiser

import (
	"image"
	"io"

	"github.com/chai2010/webp"
)

type WebPEncoder interface {
	Encode(img image.Image, quality int, w io.Writer) error
	Decode(r io.Reader) (image.Image, string, error)
}

// chaiWebP encodes with libwebp and decodes through the registered image formats.
type chaiWebP struct{}

func NewWebPEncoder() WebPEncoder {
	return chaiWebP{}
}

func (chaiWebP) Encode(img image.Image, quality int, w io.Writer) error {
	return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
}

func (chaiWebP) Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
