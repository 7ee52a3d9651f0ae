package thumbnail

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/videotube-ms-go/internal/mock"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

var videoID = uuid.MustParse("99999999-8888-7777-6666-555555555555")

const (
	oldRef = "http://m/videotube/image/upload/orig.jpg"
	newRef = "http://m/videotube/image/upload/small.webp"
)

func newFixture() (*mock.VideoRepo, *mock.ObjectStore, *mock.ImageOptimiser) {
	repo := &mock.VideoRepo{Record: &model.Video{ID: videoID, Thumbnail: oldRef, Title: "t"}}
	strg := &mock.ObjectStore{
		OpenBody: "original-bytes",
		PutOut:   port.UploadResult{ExternalRef: newRef, PublicID: "small"},
	}
	opt := &mock.ImageOptimiser{Out: []byte("webp-bytes")}
	return repo, strg, opt
}

func TestOptimiseThumbnail_Success(t *testing.T) {
	repo, strg, opt := newFixture()

	if err := NewThumbnailOptimiser(repo, strg, opt, 640).OptimiseThumbnail(context.Background(), videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(strg.OpenedRefs) != 1 || strg.OpenedRefs[0] != oldRef {
		t.Errorf("opened %v; want %q", strg.OpenedRefs, oldRef)
	}
	if string(opt.Input) != "original-bytes" || opt.MaxWidth != 640 {
		t.Errorf("optimiser got %q at width %d", opt.Input, opt.MaxWidth)
	}
	if string(strg.PutBody) != "webp-bytes" {
		t.Errorf("stored %q; want the optimised bytes", strg.PutBody)
	}
	want := mock.ThumbnailSwap{ID: videoID, From: oldRef, To: newRef}
	if repo.Swapped == nil || *repo.Swapped != want {
		t.Errorf("swapped = %+v; want %+v", repo.Swapped, want)
	}
	if repo.Updated != nil {
		t.Error("the full record must not be rewritten")
	}
	if len(strg.Deleted) != 1 || strg.Deleted[0].PublicID != "orig" {
		t.Errorf("deleted = %v; want the original thumbnail", strg.Deleted)
	}
}

func TestOptimiseThumbnail_AlreadyOptimised(t *testing.T) {
	repo, strg, opt := newFixture()
	repo.Record.ThumbnailOptimised = true

	if err := NewThumbnailOptimiser(repo, strg, opt, 640).OptimiseThumbnail(context.Background(), videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Called || strg.PutCalled || repo.Swapped != nil {
		t.Error("nothing should happen for an optimised thumbnail")
	}
}

func TestOptimiseThumbnail_Failures(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(repo *mock.VideoRepo, strg *mock.ObjectStore, opt *mock.ImageOptimiser)
		wantErr     error
		wantDeleted int
	}{
		{
			name:    "video missing",
			setup:   func(repo *mock.VideoRepo, _ *mock.ObjectStore, _ *mock.ImageOptimiser) { repo.Record = nil },
			wantErr: usecase.ErrNotFound,
		},
		{
			name: "original unreadable",
			setup: func(_ *mock.VideoRepo, strg *mock.ObjectStore, _ *mock.ImageOptimiser) {
				strg.OpenErr = usecase.ErrNotFound
			},
			wantErr: usecase.ErrNotFound,
		},
		{
			name:    "not an image",
			setup:   func(_ *mock.VideoRepo, _ *mock.ObjectStore, opt *mock.ImageOptimiser) { opt.Err = errors.New("decode") },
			wantErr: usecase.ErrUpstream,
		},
		{
			name: "record update fails",
			setup: func(repo *mock.VideoRepo, _ *mock.ObjectStore, _ *mock.ImageOptimiser) {
				repo.SwapErr = usecase.ErrUpstream
			},
			wantErr:     usecase.ErrUpstream,
			wantDeleted: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, strg, opt := newFixture()
			tc.setup(repo, strg, opt)

			err := NewThumbnailOptimiser(repo, strg, opt, 640).OptimiseThumbnail(context.Background(), videoID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v; want %v", err, tc.wantErr)
			}
			if len(strg.Deleted) != tc.wantDeleted {
				t.Errorf("deleted = %v; want %d deletions", strg.Deleted, tc.wantDeleted)
			}
			if tc.wantDeleted == 1 && strg.Deleted[0].PublicID != "small" {
				t.Errorf("deleted %q; want the new copy", strg.Deleted[0].PublicID)
			}
		})
	}
}

func TestOptimiseThumbnail_ThumbnailReplacedMeanwhile(t *testing.T) {
	repo, strg, opt := newFixture()
	repo.SwapStale = true

	if err := NewThumbnailOptimiser(repo, strg, opt, 640).OptimiseThumbnail(context.Background(), videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(strg.Deleted) != 1 || strg.Deleted[0].PublicID != "small" {
		t.Errorf("deleted = %v; want only the optimised copy", strg.Deleted)
	}
}
