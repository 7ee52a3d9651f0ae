package port

import "io"

// ImageOptimiser re-encodes an image as a smaller WebP.
type ImageOptimiser interface {
	OptimiseThumbnail(r io.Reader, maxWidth int) ([]byte, error)
}
