package songs

import (
	"context"

	"musiccatalog/internal/models"
)

// Paging defaults applied when the client omits or mangles the values.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
)

// Store captures the persistence needs for song workflows.
type Store interface {
	ListSongs(ctx context.Context, q models.SongQuery) ([]models.Song, error)
	GetSong(ctx context.Context, id int64) (models.SongDetail, error)
	TopSongs(ctx context.Context) ([]models.TopSong, error)
}

// Service exposes song-centric operations.
type Service interface {
	List(ctx context.Context, q models.SongQuery) ([]models.Song, error)
	Get(ctx context.Context, id int64) (models.SongDetail, error)
	Top(ctx context.Context) ([]models.TopSong, error)
}

type service struct {
	store Store
}

// New constructs a song Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context, q models.SongQuery) ([]models.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	return s.store.ListSongs(ctx, q)
}

func (s *service) Get(ctx context.Context, id int64) (models.SongDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.SongDetail{}, err
	}
	return s.store.GetSong(ctx, id)
}

func (s *service) Top(ctx context.Context) ([]models.TopSong, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.TopSongs(ctx)
}
