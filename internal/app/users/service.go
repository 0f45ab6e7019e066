package users

import (
	"context"

	"musiccatalog/internal/models"
)

// TopListeners is the size of the top users chart.
const TopListeners = 3

// Store captures the persistence needs for user workflows.
type Store interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.UserDetail, error)
	RankUsers(ctx context.Context, limit int) ([]models.TopUser, error)
}

// Service exposes user-centric operations.
type Service interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.UserDetail, error)
	Top(ctx context.Context) ([]models.TopUser, error)
	Playtime(ctx context.Context) ([]models.UserPlaytime, error)
}

type service struct {
	store Store
}

// New constructs a user Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListUsers(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (models.UserDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.UserDetail{}, err
	}
	return s.store.GetUser(ctx, id)
}

func (s *service) Top(ctx context.Context) ([]models.TopUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.RankUsers(ctx, TopListeners)
}

func (s *service) Playtime(ctx context.Context) ([]models.UserPlaytime, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked, err := s.store.RankUsers(ctx, 0)
	if err != nil {
		return nil, err
	}

	out := make([]models.UserPlaytime, 0, len(ranked))
	for _, u := range ranked {
		out = append(out, models.UserPlaytime{User: u.User, TotalPlaytime: u.TotalPlaytime})
	}
	return out, nil
}
