package mock

import "io"

type ImageOptimiser struct {
	Out      []byte
	Err      error
	Called   bool
	MaxWidth int
	Input    []byte
}

func (m *ImageOptimiser) OptimiseThumbnail(r io.Reader, maxWidth int) ([]byte, error) {
	m.Called = true
	m.MaxWidth = maxWidth
	m.Input, _ = io.ReadAll(r)
	return m.Out, m.Err
}
