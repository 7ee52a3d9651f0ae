package mariadb

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

var (
	ownerID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	videoID = uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	fixedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
		_ = sqlDB.Close()
	})
	return sqlDB, mock
}

func raw(id uuid.UUID) []byte {
	b, _ := id.Value()
	return b.([]byte)
}

func videoRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "video_file", "thumbnail", "title", "description", "owner_id",
		"duration", "views", "is_published", "thumbnail_optimised", "created_at", "updated_at",
	})
}

func addVideoRow(rows *sqlmock.Rows, id uuid.UUID, views int64) *sqlmock.Rows {
	return rows.AddRow(
		raw(id), "http://cdn/videotube/video/upload/v.mp4", "http://cdn/videotube/image/upload/t.png",
		"title", "description", raw(ownerID),
		12.5, views, true, false, fixedAt, fixedAt,
	)
}
