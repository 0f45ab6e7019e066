package playlists

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"musiccatalog/internal/models"
)

// ErrInvalidPlaylist reports a create request that fails validation.
var ErrInvalidPlaylist = errors.New("invalid playlist")

// Store captures the persistence needs for playlist workflows.
type Store interface {
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
	GetPlaylist(ctx context.Context, id int64) (models.PlaylistDetail, error)
	TopPlaylists(ctx context.Context) ([]models.RankedPlaylist, error)
	CreatePlaylist(ctx context.Context, in models.NewPlaylist) (models.CreatedPlaylist, error)
}

// Service coordinates playlist-related operations.
type Service interface {
	List(ctx context.Context) ([]models.Playlist, error)
	Get(ctx context.Context, id int64) (models.PlaylistDetail, error)
	Top(ctx context.Context) ([]models.RankedPlaylist, error)
	Create(ctx context.Context, in models.NewPlaylist) (models.CreatedPlaylist, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlaylists(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (models.PlaylistDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.PlaylistDetail{}, err
	}
	return s.store.GetPlaylist(ctx, id)
}

func (s *service) Top(ctx context.Context) ([]models.RankedPlaylist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.TopPlaylists(ctx)
}

func (s *service) Create(ctx context.Context, in models.NewPlaylist) (models.CreatedPlaylist, error) {
	if err := ctx.Err(); err != nil {
		return models.CreatedPlaylist{}, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return models.CreatedPlaylist{}, fmt.Errorf("%w: playlist name cannot be empty", ErrInvalidPlaylist)
	}
	in.Description = strings.TrimSpace(in.Description)

	return s.store.CreatePlaylist(ctx, in)
}
