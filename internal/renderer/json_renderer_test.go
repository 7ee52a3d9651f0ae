package renderer

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON_SetsETag(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)

	if err := JSON(rec, req, http.StatusOK, map[string]int{"totalVideos": 3}); err != nil {
		t.Fatalf("JSON() err = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	want := ETag([]byte(`{"totalVideos":3}`))
	if got := rec.Header().Get("ETag"); got != want {
		t.Errorf("ETag = %q; want %q", got, want)
	}
	if got := rec.Body.String(); got != "{\"totalVideos\":3}\n" {
		t.Errorf("body = %q", got)
	}
}

func TestJSON_NotModified(t *testing.T) {
	v := map[string]string{"channelName": "bob"}

	first := httptest.NewRecorder()
	if err := JSON(first, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, v); err != nil {
		t.Fatalf("JSON() err = %v", err)
	}
	etag := first.Header().Get("ETag")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	if err := JSON(rec, req, http.StatusOK, v); err != nil {
		t.Fatalf("JSON() err = %v", err)
	}
	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d; want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}

	stale := httptest.NewRequest(http.MethodGet, "/", nil)
	stale.Header.Set("If-None-Match", `"deadbeef"`)
	rec = httptest.NewRecorder()
	if err := JSON(rec, stale, http.StatusOK, v); err != nil {
		t.Fatalf("JSON() err = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d; want 200 for a stale ETag", rec.Code)
	}
}

func TestJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := JSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, make(chan int)); err == nil {
		t.Fatal("expected an error for an unencodable value")
	}
}
