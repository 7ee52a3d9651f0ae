package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/videotube-ms-go/internal/mock"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

func TestChannelStatsHandler(t *testing.T) {
	svc := &mock.DashboardService{Stats: &model.ChannelStats{TotalVideos: 2, TotalViews: 40, ChannelName: "bob"}}
	rec := httptest.NewRecorder()
	ChannelStatsHandler(svc)(rec, withCtx(httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil), uuid.Nil, uuid.Nil, userID))

	env := assertResponse(t, rec, http.StatusOK, "Info fetched successfully")
	if svc.GotChannel != userID {
		t.Errorf("channel = %s; want %s", svc.GotChannel, userID)
	}
	var stats model.ChannelStats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalVideos != 2 || stats.TotalViews != 40 || stats.ChannelName != "bob" || stats.MostViewedVideo != nil {
		t.Errorf("stats = %+v", stats)
	}
}

func TestChannelVideosHandler_Unauthenticated(t *testing.T) {
	svc := &mock.DashboardService{}
	rec := httptest.NewRecorder()
	ChannelVideosHandler(svc)(rec, httptest.NewRequest(http.MethodGet, "/dashboard/videos", nil))

	assertResponse(t, rec, http.StatusUnauthorized, "Unauthorized request")
	if svc.Called {
		t.Error("service should not be called")
	}
}

func TestChannelStatsHandler_NotModified(t *testing.T) {
	svc := &mock.DashboardService{Stats: &model.ChannelStats{TotalVideos: 1}}
	req := withCtx(httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil), uuid.Nil, uuid.Nil, userID)

	first := httptest.NewRecorder()
	ChannelStatsHandler(svc)(first, req)
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag header")
	}

	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	ChannelStatsHandler(svc)(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d; want 304", rec.Code)
	}
}
