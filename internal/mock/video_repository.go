package mock

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// VideoRepo implements port.VideoRepository for tests.
type VideoRepo struct {
	Log *CallLog

	Record       *model.Video
	ExistsOut    bool
	ListOut      []*model.Video
	IDsOut       []uuid.UUID
	TotalVideos  int64
	TotalViews   int64
	MostViewedTo *model.Video

	GetErr       error
	CreateErr    error
	UpdateErr    error
	DeleteErr    error
	ExistsErr    error
	IncrementErr error
	ListErr      error
	TotalsErr    error
	SwapErr      error
	SwapStale    bool

	Created         *model.Video
	Updated         *model.Video
	DeletedID       uuid.UUID
	DeleteCalled    bool
	IncrementCalled bool
	ListFilter      port.VideoFilter
	ListPage        port.Page
	Swapped         *ThumbnailSwap
}

type ThumbnailSwap struct {
	ID       uuid.UUID
	From, To string
}

func (m *VideoRepo) Create(ctx context.Context, v *model.Video) error {
	m.Log.Record("repo:create")
	m.Created = v
	return m.CreateErr
}

func (m *VideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	m.Log.Record("repo:get")
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Record == nil {
		return nil, notFound("video")
	}
	cp := *m.Record
	return &cp, nil
}

func (m *VideoRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.ExistsOut, m.ExistsErr
}

func (m *VideoRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	m.Log.Record("repo:increment")
	m.IncrementCalled = true
	if m.IncrementErr == nil && m.Record != nil {
		m.Record.Views++
	}
	return m.IncrementErr
}

func (m *VideoRepo) Update(ctx context.Context, v *model.Video) error {
	m.Log.Record("repo:update")
	m.Updated = v
	return m.UpdateErr
}

func (m *VideoRepo) SwapThumbnail(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	m.Log.Record("repo:swap-thumbnail")
	if m.SwapErr != nil {
		return false, m.SwapErr
	}
	if m.SwapStale {
		return false, nil
	}
	m.Swapped = &ThumbnailSwap{ID: id, From: from, To: to}
	return true, nil
}

func (m *VideoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.Log.Record("repo:delete")
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *VideoRepo) List(ctx context.Context, filter port.VideoFilter, page port.Page) ([]*model.Video, error) {
	m.ListFilter = filter
	m.ListPage = page
	return m.ListOut, m.ListErr
}

func (m *VideoRepo) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Video, error) {
	return m.ListOut, m.ListErr
}

func (m *VideoRepo) ListUnoptimisedThumbnails(ctx context.Context) ([]uuid.UUID, error) {
	return m.IDsOut, m.ListErr
}

func (m *VideoRepo) ChannelTotals(ctx context.Context, owner uuid.UUID) (int64, int64, error) {
	return m.TotalVideos, m.TotalViews, m.TotalsErr
}

func (m *VideoRepo) MostViewed(ctx context.Context, owner uuid.UUID) (*model.Video, error) {
	return m.MostViewedTo, m.TotalsErr
}
