package activity

import (
	"context"
	"errors"
	"fmt"

	"musiccatalog/internal/models"
)

// ErrInvalidEvent reports an event body missing a required reference.
var ErrInvalidEvent = errors.New("invalid event")

// Store captures the persistence needs for listening events.
type Store interface {
	RecordPlay(ctx context.Context, userID, songID int64) (int64, error)
	FollowPlaylist(ctx context.Context, userID, playlistID int64) error
}

// Service records plays and follows.
type Service interface {
	RecordPlay(ctx context.Context, ev models.PlayEvent) (int64, error)
	Follow(ctx context.Context, ev models.FollowEvent) error
}

type service struct {
	store Store
}

// New constructs an activity Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) RecordPlay(ctx context.Context, ev models.PlayEvent) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := required("user_id", ev.UserID); err != nil {
		return 0, err
	}
	if err := required("song_id", ev.SongID); err != nil {
		return 0, err
	}
	return s.store.RecordPlay(ctx, *ev.UserID, *ev.SongID)
}

func (s *service) Follow(ctx context.Context, ev models.FollowEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := required("user_id", ev.UserID); err != nil {
		return err
	}
	if err := required("playlist_id", ev.PlaylistID); err != nil {
		return err
	}
	return s.store.FollowPlaylist(ctx, *ev.UserID, *ev.PlaylistID)
}

func required(field string, v *int64) error {
	if v == nil {
		return fmt.Errorf("%w: missing required field: %s", ErrInvalidEvent, field)
	}
	return nil
}
