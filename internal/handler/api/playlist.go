package api

import (
	"net/http"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
)

func CreatePlaylistHandler(svc port.PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := principal(w, r)
		if !ok {
			return
		}
		fields, err := readFields(w, r)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not create playlist")
			return
		}

		p, err := svc.CreatePlaylist(r.Context(), port.PlaylistInput{
			Name:        fields["name"],
			Description: fields["description"],
			Principal:   user,
		})
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not create playlist")
			return
		}

		RespondOK(w, http.StatusCreated, p, "Playlist created successfully")
		logger.Infof(r.Context(), "✅  Created playlist #%s", p.ID)
	}
}

func GetPlaylistHandler(svc port.PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		p, err := svc.GetPlaylist(r.Context(), id)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not get playlist")
			return
		}

		RespondOK(w, http.StatusOK, p, "Playlist retrieved successfully")
	}
}

func UpdatePlaylistHandler(svc port.PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}
		fields, err := readFields(w, r)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not update playlist")
			return
		}

		p, err := svc.UpdatePlaylist(r.Context(), id, port.PlaylistInput{
			Name:        fields["name"],
			Description: fields["description"],
			Principal:   user,
		})
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not update playlist")
			return
		}

		RespondOK(w, http.StatusOK, p, "Playlist updated successfully")
		logger.Infof(r.Context(), "✅  Updated playlist #%s", id)
	}
}

func DeletePlaylistHandler(svc port.PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}

		if err := svc.DeletePlaylist(r.Context(), id, user); err != nil {
			WriteUsecaseError(w, r, err, "Could not delete playlist")
			return
		}

		RespondOK(w, http.StatusOK, nil, "Playlist deleted successfully")
		logger.Infof(r.Context(), "✅  Deleted playlist #%s", id)
	}
}

// AddPlaylistVideoHandler adds the {subId} video to the {id} playlist.
func AddPlaylistVideoHandler(svc port.PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlistID, ok := pathID(w, r)
		if !ok {
			return
		}
		videoID, ok := pathSubID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}

		p, err := svc.AddVideo(r.Context(), playlistID, videoID, user)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not add video to playlist")
			return
		}

		RespondOK(w, http.StatusOK, p, "Video added to playlist successfully")
		logger.Infof(r.Context(), "✅  Added video #%s to playlist #%s", videoID, playlistID)
	}
}

func RemovePlaylistVideoHandler(svc port.PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlistID, ok := pathID(w, r)
		if !ok {
			return
		}
		videoID, ok := pathSubID(w, r)
		if !ok {
			return
		}
		user, ok := principal(w, r)
		if !ok {
			return
		}

		p, err := svc.RemoveVideo(r.Context(), playlistID, videoID, user)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not remove video from playlist")
			return
		}

		RespondOK(w, http.StatusOK, p, "Video removed from playlist successfully")
		logger.Infof(r.Context(), "✅  Removed video #%s from playlist #%s", videoID, playlistID)
	}
}

func UserPlaylistsHandler(svc port.PlaylistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := pathID(w, r)
		if !ok {
			return
		}

		playlists, err := svc.UserPlaylists(r.Context(), owner)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not list playlists")
			return
		}

		RespondOK(w, http.StatusOK, playlists, "User playlists retrieved successfully")
	}
}
