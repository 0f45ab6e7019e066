package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"musiccatalog/internal/app/activity"
	"musiccatalog/internal/logging"
	"musiccatalog/internal/models"
	"musiccatalog/internal/store"
)

func (s *Server) handleRecordPlay(w http.ResponseWriter, r *http.Request) {
	var ev models.PlayEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	id, err := s.activity.RecordPlay(r.Context(), ev)
	if err != nil {
		eventFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	var ev models.FollowEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	if err := s.activity.Follow(r.Context(), ev); err != nil {
		eventFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "Playlist followed"})
}

// eventFailed answers 400 for every failure, store errors included. Only
// errors that are not the client's fault are logged at error level.
func eventFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, activity.ErrInvalidEvent) || store.IsConstraintViolation(err) {
		fail(w, r, http.StatusBadRequest, err)
		return
	}

	logging.FromContext(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("event write failed")
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}
