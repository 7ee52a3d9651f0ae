package task

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/hibiken/asynq"
)

func TestOptimiseThumbnailTask_Payload(t *testing.T) {
	id := uuid.NewUUID().String()
	tk, err := NewOptimiseThumbnailTask(id)
	if err != nil {
		t.Fatalf("NewOptimiseThumbnailTask() err = %v", err)
	}
	if tk.Type() != TypeOptimiseThumbnail {
		t.Errorf("type = %q; want %q", tk.Type(), TypeOptimiseThumbnail)
	}
	p, err := ParseOptimiseThumbnailPayload(tk)
	if err != nil {
		t.Fatalf("ParseOptimiseThumbnailPayload() err = %v", err)
	}
	if p.VideoID != id {
		t.Errorf("got %q; want %q", p.VideoID, id)
	}

	if _, err := ParseOptimiseThumbnailPayload(asynq.NewTask(TypeOptimiseThumbnail, []byte("{"))); err == nil {
		t.Error("expected error on malformed payload")
	}
}

func TestDispatcher_EnqueueOptimiseThumbnail(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	defer mr.Close()

	d := NewDispatcher(mr.Addr(), "")
	defer func() { _ = d.Close() }()

	if err := d.EnqueueOptimiseThumbnail(context.Background(), uuid.NewUUID()); err != nil {
		t.Fatalf("EnqueueOptimiseThumbnail() err = %v", err)
	}

	pending, err := mr.List("asynq:{default}:pending")
	if err != nil {
		t.Fatalf("pending list: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending tasks = %d; want 1", len(pending))
	}
}
