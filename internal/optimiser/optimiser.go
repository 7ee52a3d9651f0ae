package optimiser

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const webpQuality = 80

type Optimiser struct {
	webpEnc WebPEncoder
}

// compile-time check: *Optimiser must satisfy port.ImageOptimiser
var _ port.ImageOptimiser = (*Optimiser)(nil)

func NewOptimiser(webpEnc WebPEncoder) *Optimiser {
	logger.Info(context.Background(), "initialising optimiser...")
	return &Optimiser{webpEnc: webpEnc}
}

// OptimiseThumbnail decodes a JPEG, PNG or WebP image, scales it down to maxWidth keeping its
// aspect ratio, and re-encodes it as lossy WebP. Narrower images keep their size.
func (o *Optimiser) OptimiseThumbnail(r io.Reader, maxWidth int) ([]byte, error) {
	img, _, err := o.webpEnc.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("optimiser: failed to decode image: %w", err)
	}

	img = fitWidth(img, maxWidth)

	buf := &bytes.Buffer{}
	if err := o.webpEnc.Encode(img, webpQuality, buf); err != nil {
		return nil, fmt.Errorf("optimiser: failed to encode WebP: %w", err)
	}
	return buf.Bytes(), nil
}

func fitWidth(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}
	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
