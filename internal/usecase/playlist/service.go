package playlist

import (
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type playlistSrv struct {
	playlists port.PlaylistRepository
	videos    port.VideoRepository
	newID     port.UUIDGen
}

// compile-time check: *playlistSrv must satisfy port.PlaylistService
var _ port.PlaylistService = (*playlistSrv)(nil)

func NewPlaylistService(playlists port.PlaylistRepository, videos port.VideoRepository, newID port.UUIDGen) port.PlaylistService {
	if newID == nil {
		newID = uuid.NewUUID
	}
	return &playlistSrv{playlists: playlists, videos: videos, newID: newID}
}
