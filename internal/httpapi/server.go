package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"musiccatalog/internal/logging"
	"musiccatalog/internal/models"
)

// SongService coordinates track-level operations.
type SongService interface {
	List(ctx context.Context, q models.SongQuery) ([]models.Song, error)
	Get(ctx context.Context, id int64) (models.SongDetail, error)
	Top(ctx context.Context) ([]models.TopSong, error)
}

// UserService exposes user listings and listening statistics.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.UserDetail, error)
	Top(ctx context.Context) ([]models.TopUser, error)
	Playtime(ctx context.Context) ([]models.UserPlaytime, error)
}

// PlaylistService coordinates playlist-related operations.
type PlaylistService interface {
	List(ctx context.Context) ([]models.Playlist, error)
	Get(ctx context.Context, id int64) (models.PlaylistDetail, error)
	Top(ctx context.Context) ([]models.RankedPlaylist, error)
	Create(ctx context.Context, in models.NewPlaylist) (models.CreatedPlaylist, error)
}

// ActivityService records listening events.
type ActivityService interface {
	RecordPlay(ctx context.Context, ev models.PlayEvent) (int64, error)
	Follow(ctx context.Context, ev models.FollowEvent) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	songs     SongService
	users     UserService
	playlists PlaylistService
	activity  ActivityService
}

// New configures a Server with the given services.
func New(songs SongService, users UserService, playlists PlaylistService, activity ActivityService) *Server {
	return &Server{
		songs:     songs,
		users:     users,
		playlists: playlists,
		activity:  activity,
	}
}

// Routes exposes the catalog HTTP handlers.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /songs", s.handleSongs)
	mux.HandleFunc("GET /songs/{id}", s.handleSong)
	mux.HandleFunc("GET /top-songs", s.handleTopSongs)

	mux.HandleFunc("GET /users", s.handleUsers)
	mux.HandleFunc("GET /users/{id}", s.handleUser)
	mux.HandleFunc("GET /top-users", s.handleTopUsers)
	mux.HandleFunc("GET /user-playtime", s.handleUserPlaytime)

	mux.HandleFunc("GET /playlists", s.handlePlaylists)
	mux.HandleFunc("POST /playlists", s.handleCreatePlaylist)
	mux.HandleFunc("GET /playlists/{id}", s.handlePlaylist)
	mux.HandleFunc("GET /top-playlists", s.handleTopPlaylists)

	mux.HandleFunc("POST /plays", s.handleRecordPlay)
	mux.HandleFunc("POST /follows", s.handleFollow)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

// pathID parses the {id} wildcard. Ids that are not integers match no
// resource, so callers answer 404.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// fail writes err verbatim as the error body.
func fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger := logging.FromContext(r.Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status_code", status).
		Msg("request failed")

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
