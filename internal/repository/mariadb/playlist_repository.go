package mariadb

import (
	"context"
	"database/sql"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type PlaylistRepository struct {
	db *sql.DB
}

// compile-time check: *PlaylistRepository must satisfy port.PlaylistRepository
var _ port.PlaylistRepository = (*PlaylistRepository)(nil)

func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

const playlistColumns = `id, name, description, owner_id, created_at, updated_at`

func scanPlaylist(row rowScanner) (*model.Playlist, error) {
	p := model.Playlist{Videos: []uuid.UUID{}}
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Owner, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlaylistRepository) Create(ctx context.Context, p *model.Playlist) error {
	logger.Infof(ctx, "creating playlist #%s...", p.ID)

	const query = `
      INSERT INTO playlists (id, name, description, owner_id, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.Owner, p.CreatedAt, p.UpdatedAt)
	return mapSQLErr(err, "playlist")
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE id = ?`
	p, err := scanPlaylist(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapSQLErr(err, "playlist")
	}
	if err := r.loadVideos(ctx, []*model.Playlist{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, p *model.Playlist) error {
	const query = `UPDATE playlists SET name = ?, description = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.UpdatedAt, p.ID)
	return mapSQLErr(err, "playlist")
}

func (r *PlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Infof(ctx, "deleting playlist #%s...", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = ?`, id)
	if err != nil {
		return mapSQLErr(err, "playlist")
	}
	return affectedOrNotFound(res, "playlist")
}

// AddVideo is idempotent: adding a video already in the playlist is a no-op.
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlist, video uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO playlist_videos (playlist_id, video_id) VALUES (?, ?)`, playlist, video)
	if isDuplicate(err) {
		return nil
	}
	return mapSQLErr(err, "video")
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlist, video uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM playlist_videos WHERE playlist_id = ? AND video_id = ?`, playlist, video)
	return mapSQLErr(err, "playlist")
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Playlist, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE owner_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, mapSQLErr(err, "playlist")
	}
	defer func() { _ = rows.Close() }()

	playlists := make([]*model.Playlist, 0)
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, mapSQLErr(err, "playlist")
		}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLErr(err, "playlist")
	}

	if err := r.loadVideos(ctx, playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// loadVideos fills the video IDs of every playlist with a single query.
func (r *PlaylistRepository) loadVideos(ctx context.Context, playlists []*model.Playlist) error {
	if len(playlists) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*model.Playlist, len(playlists))
	args := make([]any, 0, len(playlists))
	for _, p := range playlists {
		byID[p.ID] = p
		args = append(args, p.ID)
	}

	query := `SELECT playlist_id, video_id FROM playlist_videos WHERE playlist_id IN (` + placeholders(len(args)) + `) ORDER BY added_at`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return mapSQLErr(err, "playlist")
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var playlistID, videoID uuid.UUID
		if err := rows.Scan(&playlistID, &videoID); err != nil {
			return mapSQLErr(err, "playlist")
		}
		if p := byID[playlistID]; p != nil {
			p.Videos = append(p.Videos, videoID)
		}
	}
	return mapSQLErr(rows.Err(), "playlist")
}
