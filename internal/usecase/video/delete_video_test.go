package video

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/fhuszti/videotube-ms-go/internal/mock"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
)

func newDeleteFixture() (*mock.CallLog, *mock.VideoRepo, *mock.ObjectStore, *mock.StatsCache, port.VideoDeleter) {
	log := &mock.CallLog{}
	repo := &mock.VideoRepo{Log: log, Record: storedVideo()}
	strg := newStore(log)
	cache := &mock.StatsCache{}
	return log, repo, strg, cache, NewVideoDeleter(repo, strg, cache)
}

func TestDeleteVideo_Success(t *testing.T) {
	log, repo, strg, cache, svc := newDeleteFixture()

	if err := svc.DeleteVideo(context.Background(), videoID, ownerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Index("delete:video") > log.Index("repo:delete") {
		t.Errorf("calls = %v; remote delete must come before the record removal", log.Calls)
	}
	want := []mock.DeletedObject{
		{PublicID: "vid1", Kind: port.MediaKindVideo},
		{PublicID: "old", Kind: port.MediaKindImage},
	}
	if !reflect.DeepEqual(strg.Deleted, want) {
		t.Errorf("deleted = %v; want %v", strg.Deleted, want)
	}
	if !repo.DeleteCalled || repo.DeletedID != videoID {
		t.Error("expected the record to be deleted")
	}
	if !cache.DelCalled {
		t.Error("expected stats to be invalidated")
	}
}

func TestDeleteVideo_RemoteFailureKeepsRecord(t *testing.T) {
	_, repo, strg, _, svc := newDeleteFixture()
	remoteErr := fmt.Errorf("%w: remote object not found", usecase.ErrUpstream)
	strg.DeleteErr = remoteErr

	err := svc.DeleteVideo(context.Background(), videoID, ownerID)
	if !errors.Is(err, remoteErr) {
		t.Fatalf("got %v; want %v", err, remoteErr)
	}
	if repo.DeleteCalled {
		t.Error("record must survive a failed remote delete")
	}
}

func TestDeleteVideo_RecordDeleteFails(t *testing.T) {
	_, repo, strg, _, svc := newDeleteFixture()
	repo.DeleteErr = errors.New("db fail")

	if err := svc.DeleteVideo(context.Background(), videoID, ownerID); err == nil || err.Error() != "db fail" {
		t.Fatalf("got %v; want db fail", err)
	}
	if len(strg.Deleted) != 1 {
		t.Errorf("thumbnail must not be removed when the record stays, got %v", strg.Deleted)
	}
}

func TestDeleteVideo_Forbidden(t *testing.T) {
	_, repo, strg, _, svc := newDeleteFixture()

	err := svc.DeleteVideo(context.Background(), videoID, otherID)
	if !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("got %v; want ErrForbidden", err)
	}
	if len(strg.Deleted) != 0 || repo.DeleteCalled {
		t.Error("no mutation expected for a non-owner")
	}
}

func TestDeleteVideo_NotFound(t *testing.T) {
	_, repo, strg, _, svc := newDeleteFixture()
	repo.Record = nil

	if err := svc.DeleteVideo(context.Background(), videoID, ownerID); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
	if len(strg.Deleted) != 0 {
		t.Error("nothing should be deleted")
	}
}

func TestDeleteVideo_UnresolvableRef(t *testing.T) {
	_, repo, strg, _, svc := newDeleteFixture()
	repo.Record.VideoFile = ""

	if err := svc.DeleteVideo(context.Background(), videoID, ownerID); err == nil {
		t.Fatal("expected an error")
	}
	if len(strg.Deleted) != 0 || repo.DeleteCalled {
		t.Error("nothing should be deleted")
	}
}
