package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fhuszti/videotube-ms-go/internal/api_context"
	"github.com/fhuszti/videotube-ms-go/internal/staging"
)

func multipartBody(t *testing.T, size int) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	_ = mw.WriteField("title", "t")
	fw, err := mw.CreateFormFile("thumbnail", "thumb.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fw.Write(bytes.Repeat([]byte("p"), size))
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestWithStagedFiles_RemovesLeftoversAfterHandler(t *testing.T) {
	stager := staging.New(t.TempDir(), 1<<20)
	body, ct := multipartBody(t, 16)

	var stagedPath string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f := api_context.StagedFile(r.Context(), "thumbnail")
		if f == nil || !f.Exists() {
			t.Fatal("thumbnail should be staged while the handler runs")
		}
		if r.FormValue("title") != "t" {
			t.Errorf("title = %q; want %q", r.FormValue("title"), "t")
		}
		stagedPath = f.Path
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	WithStagedFiles(stager, "thumbnail")(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusNoContent)
	}
	if _, err := os.Stat(stagedPath); !os.IsNotExist(err) {
		t.Errorf("staged file still on disk after request: %v", err)
	}
}

func TestWithStagedFiles_TooLarge(t *testing.T) {
	stager := staging.New(t.TempDir(), 32)
	body, ct := multipartBody(t, 4096)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	WithStagedFiles(stager, "thumbnail")(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
	if nextCalled {
		t.Fatal("next should not run")
	}
}

func TestWithStagedFiles_PassesThroughJSON(t *testing.T) {
	stager := staging.New(t.TempDir(), 32)
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if api_context.StagedFilesFromContext(r.Context()) != nil {
			t.Error("no files expected")
		}
	})

	req := httptest.NewRequest(http.MethodPatch, "/videos/x", bytes.NewBufferString(`{"title":"t"}`))
	req.Header.Set("Content-Type", "application/json")
	WithStagedFiles(stager, "thumbnail")(next).ServeHTTP(httptest.NewRecorder(), req)

	if !nextCalled {
		t.Fatal("next should run")
	}
}
