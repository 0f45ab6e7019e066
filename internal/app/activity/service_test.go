package activity

import (
	"context"
	"errors"
	"testing"

	"musiccatalog/internal/models"
)

type eventStore struct {
	plays   [][2]int64
	follows [][2]int64
}

func (e *eventStore) RecordPlay(_ context.Context, userID, songID int64) (int64, error) {
	e.plays = append(e.plays, [2]int64{userID, songID})
	return int64(len(e.plays)), nil
}

func (e *eventStore) FollowPlaylist(_ context.Context, userID, playlistID int64) error {
	e.follows = append(e.follows, [2]int64{userID, playlistID})
	return nil
}

func ptr(v int64) *int64 { return &v }

func TestRecordPlay(t *testing.T) {
	store := &eventStore{}
	svc := New(store)

	id, err := svc.RecordPlay(context.Background(), models.PlayEvent{UserID: ptr(3), SongID: ptr(9)})
	if err != nil {
		t.Fatalf("RecordPlay error: %v", err)
	}
	if id != 1 || store.plays[0] != [2]int64{3, 9} {
		t.Fatalf("unexpected play: id=%d plays=%v", id, store.plays)
	}

	_, err = svc.RecordPlay(context.Background(), models.PlayEvent{UserID: ptr(3)})
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
}

func TestFollowRequiresBothIDs(t *testing.T) {
	store := &eventStore{}
	svc := New(store)

	if err := svc.Follow(context.Background(), models.FollowEvent{PlaylistID: ptr(2)}); !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
	if err := svc.Follow(context.Background(), models.FollowEvent{UserID: ptr(1), PlaylistID: ptr(2)}); err != nil {
		t.Fatalf("Follow error: %v", err)
	}
	if len(store.follows) != 1 || store.follows[0] != [2]int64{1, 2} {
		t.Fatalf("unexpected follows: %v", store.follows)
	}
}
