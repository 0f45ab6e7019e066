package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"musiccatalog/internal/models"
	"musiccatalog/internal/store"
)

// handleSongs lists one page of songs, optionally filtered by search.
func (s *Server) handleSongs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Unparseable paging values fall back to the service defaults.
	page, _ := strconv.Atoi(query.Get("page"))
	perPage, _ := strconv.Atoi(query.Get("per_page"))

	songs, err := s.songs.List(r.Context(), models.SongQuery{
		Page:    page,
		PerPage: perPage,
		Search:  query.Get("search"),
	})
	if err != nil {
		fail(w, r, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, songs)
}

// handleSong returns one song with its artist and play count.
func (s *Server) handleSong(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Song not found"})
		return
	}

	song, err := s.songs.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "Song not found"})
			return
		}
		fail(w, r, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, song)
}

func (s *Server) handleTopSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := s.songs.Top(r.Context())
	if err != nil {
		fail(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, songs)
}
