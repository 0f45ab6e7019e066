package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"musiccatalog/internal/app/playlists"
	"musiccatalog/internal/models"
	"musiccatalog/internal/store"
)

func (s *Server) handlePlaylists(w http.ResponseWriter, r *http.Request) {
	list, err := s.playlists.List(r.Context())
	if err != nil {
		fail(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// handleCreatePlaylist creates a playlist owned by a random existing user.
func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req models.NewPlaylist
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	created, err := s.playlists.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, playlists.ErrInvalidPlaylist) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		fail(w, r, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// handlePlaylist returns one playlist with its songs and total plays.
func (s *Server) handlePlaylist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Playlist not found"})
		return
	}

	playlist, err := s.playlists.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "Playlist not found"})
			return
		}
		fail(w, r, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

func (s *Server) handleTopPlaylists(w http.ResponseWriter, r *http.Request) {
	top, err := s.playlists.Top(r.Context())
	if err != nil {
		fail(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}
