package users

import (
	"context"
	"testing"

	"musiccatalog/internal/models"
)

type rankingStore struct {
	limits []int
	ranked []models.TopUser
}

func (r *rankingStore) ListUsers(context.Context) ([]models.User, error) { return nil, nil }

func (r *rankingStore) GetUser(context.Context, int64) (models.UserDetail, error) {
	return models.UserDetail{}, nil
}

func (r *rankingStore) RankUsers(_ context.Context, limit int) ([]models.TopUser, error) {
	r.limits = append(r.limits, limit)
	return r.ranked, nil
}

func TestTopAsksForThree(t *testing.T) {
	store := &rankingStore{}
	if _, err := New(store).Top(context.Background()); err != nil {
		t.Fatalf("Top error: %v", err)
	}
	if len(store.limits) != 1 || store.limits[0] != TopListeners {
		t.Fatalf("expected limit %d, got %v", TopListeners, store.limits)
	}
}

func TestPlaytimeNestsUsers(t *testing.T) {
	store := &rankingStore{ranked: []models.TopUser{
		{User: models.User{ID: 1, Username: "ana"}, TotalPlaytime: 300},
		{User: models.User{ID: 2, Username: "ben"}, TotalPlaytime: 0},
	}}

	got, err := New(store).Playtime(context.Background())
	if err != nil {
		t.Fatalf("Playtime error: %v", err)
	}

	if store.limits[0] != 0 {
		t.Fatalf("expected unlimited ranking, got limit %d", store.limits[0])
	}
	if len(got) != 2 || got[0].User.Username != "ana" || got[0].TotalPlaytime != 300 {
		t.Fatalf("unexpected playtime rows: %+v", got)
	}
	if got[1].TotalPlaytime != 0 {
		t.Fatalf("expected zero playtime, got %d", got[1].TotalPlaytime)
	}
}
