package mariadb

import (
	"strings"

	"github.com/fhuszti/videotube-ms-go/internal/model"
)

type rowScanner interface {
	Scan(dest ...any) error
}

const videoColumns = `id, video_file, thumbnail, title, description, owner_id, duration, views, is_published, thumbnail_optimised, created_at, updated_at`

func scanVideo(row rowScanner) (*model.Video, error) {
	var v model.Video
	if err := row.Scan(
		&v.ID, &v.VideoFile, &v.Thumbnail,
		&v.Title, &v.Description, &v.Owner,
		&v.Duration, &v.Views, &v.IsPublished,
		&v.ThumbnailOptimised, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
