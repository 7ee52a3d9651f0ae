package video

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/videotube-ms-go/internal/mock"
	"github.com/fhuszti/videotube-ms-go/internal/port"
)

func TestListVideos_NormalisesInput(t *testing.T) {
	tests := []struct {
		name      string
		in        port.ListVideosInput
		wantPage  port.Page
		wantSort  port.Sort
		wantQuery string
		wantOwner bool
	}{
		{
			name:     "defaults",
			in:       port.ListVideosInput{},
			wantPage: port.Page{Page: 1, Limit: 10},
			wantSort: port.Sort{Field: "createdAt", Desc: true},
		},
		{
			name:     "limit clamped, ascending views",
			in:       port.ListVideosInput{Page: 3, Limit: 500, SortBy: "views", SortType: "ASC"},
			wantPage: port.Page{Page: 3, Limit: 100},
			wantSort: port.Sort{Field: "views", Desc: false},
		},
		{
			name:     "unknown sort field",
			in:       port.ListVideosInput{Page: -2, Limit: 5, SortBy: "password", SortType: "sideways"},
			wantPage: port.Page{Page: 1, Limit: 5},
			wantSort: port.Sort{Field: "createdAt", Desc: true},
		},
		{
			name:      "owner and query",
			in:        port.ListVideosInput{Query: "  cats ", UserID: ownerID.String()},
			wantPage:  port.Page{Page: 1, Limit: 10},
			wantSort:  port.Sort{Field: "createdAt", Desc: true},
			wantQuery: "cats",
			wantOwner: true,
		},
		{
			name:     "invalid owner ignored",
			in:       port.ListVideosInput{UserID: "not-a-uuid"},
			wantPage: port.Page{Page: 1, Limit: 10},
			wantSort: port.Sort{Field: "createdAt", Desc: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mock.VideoRepo{}
			videos, err := NewVideoLister(repo).ListVideos(context.Background(), tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if videos == nil {
				t.Error("expected an empty slice, got nil")
			}
			if repo.ListPage != tc.wantPage {
				t.Errorf("page = %+v; want %+v", repo.ListPage, tc.wantPage)
			}
			if repo.ListFilter.Sort != tc.wantSort {
				t.Errorf("sort = %+v; want %+v", repo.ListFilter.Sort, tc.wantSort)
			}
			if repo.ListFilter.Query != tc.wantQuery {
				t.Errorf("query = %q; want %q", repo.ListFilter.Query, tc.wantQuery)
			}
			if got := repo.ListFilter.OwnerID != nil; got != tc.wantOwner {
				t.Errorf("owner filter set = %v; want %v", got, tc.wantOwner)
			}
			if tc.wantOwner && *repo.ListFilter.OwnerID != ownerID {
				t.Errorf("owner = %s; want %s", repo.ListFilter.OwnerID, ownerID)
			}
		})
	}
}

func TestListVideos_RepoError(t *testing.T) {
	repo := &mock.VideoRepo{ListErr: errors.New("db fail")}
	if _, err := NewVideoLister(repo).ListVideos(context.Background(), port.ListVideosInput{}); err == nil {
		t.Fatal("expected an error")
	}
}
