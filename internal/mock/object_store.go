package mock

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/fhuszti/videotube-ms-go/internal/port"
)

// DeletedObject is one Delete call seen by ObjectStore.
type DeletedObject struct {
	PublicID string
	Kind     port.MediaKind
}

// ObjectStore implements port.ObjectStore for tests. Upload removes the staged file like the real
// gateway does.
type ObjectStore struct {
	Log *CallLog

	UploadOut map[port.MediaKind]port.UploadResult
	UploadErr map[port.MediaKind]error
	PutOut    port.UploadResult
	PutErr    error
	DeleteErr error
	OpenBody  string
	OpenErr   error

	Uploaded   []port.MediaKind
	PutCalled  bool
	PutBody    []byte
	Deleted    []DeletedObject
	OpenedRefs []string
}

func (m *ObjectStore) Upload(ctx context.Context, file *port.StagedFile, kind port.MediaKind) (port.UploadResult, error) {
	m.Log.Record("upload:" + string(kind))
	m.Uploaded = append(m.Uploaded, kind)
	_ = file.Remove()
	if err := m.UploadErr[kind]; err != nil {
		return port.UploadResult{}, err
	}
	return m.UploadOut[kind], nil
}

func (m *ObjectStore) Put(ctx context.Context, kind port.MediaKind, r io.Reader, size int64, contentType string) (port.UploadResult, error) {
	m.Log.Record("put:" + string(kind))
	m.PutCalled = true
	m.PutBody, _ = io.ReadAll(r)
	return m.PutOut, m.PutErr
}

func (m *ObjectStore) Delete(ctx context.Context, publicID string, kind port.MediaKind) error {
	m.Log.Record("delete:" + string(kind))
	m.Deleted = append(m.Deleted, DeletedObject{PublicID: publicID, Kind: kind})
	return m.DeleteErr
}

func (m *ObjectStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	m.OpenedRefs = append(m.OpenedRefs, ref)
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return io.NopCloser(strings.NewReader(m.OpenBody)), nil
}

// PublicIDFromRef returns the last path segment of ref without its extension.
func (m *ObjectStore) PublicIDFromRef(ref string, kind port.MediaKind) (string, error) {
	if ref == "" {
		return "", errors.New("empty ref")
	}
	base := path.Base(ref)
	return strings.TrimSuffix(base, path.Ext(base)), nil
}
