package video

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fhuszti/videotube-ms-go/internal/mock"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

const (
	thumbRef = "http://media.test/videotube/image/upload/thumb1.png"
	videoRef = "http://media.test/videotube/video/upload/vid1.mp4"
)

var (
	ownerID = uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	otherID = uuid.MustParse("11111111-2222-3333-4444-555555555555")
	videoID = uuid.MustParse("99999999-8888-7777-6666-555555555555")
)

// stage writes a throwaway file standing in for a staged upload.
func stage(t *testing.T, name string) *port.StagedFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("payload"), 0o600); err != nil {
		t.Fatalf("could not write staged file: %v", err)
	}
	return &port.StagedFile{Path: path, Filename: name, Size: 7}
}

func newStore(log *mock.CallLog) *mock.ObjectStore {
	return &mock.ObjectStore{
		Log: log,
		UploadOut: map[port.MediaKind]port.UploadResult{
			port.MediaKindImage: {ExternalRef: thumbRef, PublicID: "thumb1"},
			port.MediaKindVideo: {ExternalRef: videoRef, PublicID: "vid1", DurationSeconds: 12.5},
		},
	}
}

func storedVideo() *model.Video {
	return &model.Video{
		ID:          videoID,
		VideoFile:   videoRef,
		Thumbnail:   "http://media.test/videotube/image/upload/old.jpg",
		Title:       "old title",
		Description: "old description",
		Owner:       ownerID,
		Duration:    30,
		IsPublished: true,
	}
}

func assertRemoved(t *testing.T, files ...*port.StagedFile) {
	t.Helper()
	for _, f := range files {
		if f.Exists() {
			t.Errorf("staged file %q still on disk", f.Filename)
		}
	}
}
