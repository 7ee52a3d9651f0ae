package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fhuszti/videotube-ms-go/internal/mock"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

func TestCreatePlaylistHandler(t *testing.T) {
	svc := &mock.PlaylistService{Out: &model.Playlist{ID: subID, Name: "mix", Videos: []uuid.UUID{}}}
	req := httptest.NewRequest(http.MethodPost, "/playlist", strings.NewReader(`{"name":"mix","description":"songs"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	CreatePlaylistHandler(svc)(rec, withCtx(req, uuid.Nil, uuid.Nil, userID))

	env := assertResponse(t, rec, http.StatusCreated, "Playlist created successfully")
	if want := (port.PlaylistInput{Name: "mix", Description: "songs", Principal: userID}); svc.GotIn != want {
		t.Errorf("service input = %+v; want %+v", svc.GotIn, want)
	}
	var p model.Playlist
	if err := json.Unmarshal(env.Data, &p); err != nil || p.Name != "mix" {
		t.Errorf("data = %s (err %v)", env.Data, err)
	}
}

func TestUpdatePlaylistHandler_NothingToUpdate(t *testing.T) {
	svc := &mock.PlaylistService{Err: fmt.Errorf("%w: name or description is required", usecase.ErrValidation)}
	req := httptest.NewRequest(http.MethodPatch, "/playlist/x", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	UpdatePlaylistHandler(svc)(rec, withCtx(req, subID, uuid.Nil, userID))

	assertResponse(t, rec, http.StatusBadRequest, "Name or description is required")
	if svc.GotID != subID {
		t.Errorf("playlist id = %s; want %s", svc.GotID, subID)
	}
}

func TestPlaylistVideoHandlers_RouteParams(t *testing.T) {
	playlistID := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	tests := []struct {
		name    string
		handler func(port.PlaylistService) http.HandlerFunc
		wantMsg string
	}{
		{"add", AddPlaylistVideoHandler, "Video added to playlist successfully"},
		{"remove", RemovePlaylistVideoHandler, "Video removed from playlist successfully"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.PlaylistService{Out: &model.Playlist{ID: playlistID}}
			rec := httptest.NewRecorder()
			tc.handler(svc)(rec, withCtx(httptest.NewRequest(http.MethodPatch, "/playlist/x/y/z", nil), playlistID, subID, userID))

			assertResponse(t, rec, http.StatusOK, tc.wantMsg)
			if svc.GotID != playlistID || svc.GotVideo != subID || svc.GotPrincipal != userID {
				t.Errorf("service got (playlist %s, video %s, principal %s)", svc.GotID, svc.GotVideo, svc.GotPrincipal)
			}
		})
	}

	t.Run("missing video id", func(t *testing.T) {
		svc := &mock.PlaylistService{}
		rec := httptest.NewRecorder()
		AddPlaylistVideoHandler(svc)(rec, withCtx(httptest.NewRequest(http.MethodPatch, "/playlist/add", nil), playlistID, uuid.Nil, userID))
		assertResponse(t, rec, http.StatusBadRequest, "Sub ID is required")
		if svc.Called {
			t.Error("service should not be called")
		}
	})
}

func TestDeletePlaylistHandler_Forbidden(t *testing.T) {
	svc := &mock.PlaylistService{Err: fmt.Errorf("%w: you are not allowed to modify this playlist", usecase.ErrForbidden)}
	rec := httptest.NewRecorder()
	DeletePlaylistHandler(svc)(rec, withCtx(httptest.NewRequest(http.MethodDelete, "/playlist/x", nil), subID, uuid.Nil, otherID))

	assertResponse(t, rec, http.StatusForbidden, "You are not allowed to modify this playlist")
}

func TestUserPlaylistsHandler(t *testing.T) {
	svc := &mock.PlaylistService{List: []*model.Playlist{{ID: subID}, {ID: otherID}}}
	rec := httptest.NewRecorder()
	UserPlaylistsHandler(svc)(rec, withCtx(httptest.NewRequest(http.MethodGet, "/playlist/user/x", nil), userID, uuid.Nil, uuid.Nil))

	env := assertResponse(t, rec, http.StatusOK, "User playlists retrieved successfully")
	var got []model.Playlist
	if err := json.Unmarshal(env.Data, &got); err != nil || len(got) != 2 {
		t.Errorf("data = %s (err %v)", env.Data, err)
	}
	if svc.GotID != userID {
		t.Errorf("owner = %s; want %s", svc.GotID, userID)
	}
}
