package httpapi

import (
	"errors"
	"net/http"

	"musiccatalog/internal/store"
)

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		fail(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// handleUser returns a user profile with playlists and listening stats.
func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "User not found"})
		return
	}

	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "User not found"})
			return
		}
		fail(w, r, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleTopUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.Top(r.Context())
	if err != nil {
		fail(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleUserPlaytime(w http.ResponseWriter, r *http.Request) {
	playtime, err := s.users.Playtime(r.Context())
	if err != nil {
		fail(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, playtime)
}
