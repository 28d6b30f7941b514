package repository

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/httperr"
	"github.com/pontolago/ponto-api/internal/models"
)

// RedisStore holds the snapshot as one JSON blob per fixed key, the
// closest server-side analogue of the browser storage this system
// replaces: GET on load, SET of the whole document on save.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context) (*timesheet.Snapshot, error) {
	snap := timesheet.NewSnapshot()

	raw, err := s.client.Get(ctx, timesheet.StorageKeyEntries).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	if err == nil {
		var entries []models.Entry
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			return nil, httperr.ErrBusiness("corrupt_store_data")
		}
		snap.Entries = entries
	}

	raw, err = s.client.Get(ctx, timesheet.StorageKeyProfiles).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	if err == nil {
		var profiles map[string]models.ProfileOverride
		if err := json.Unmarshal([]byte(raw), &profiles); err != nil {
			return nil, httperr.ErrBusiness("corrupt_store_data")
		}
		snap.Profiles = profiles
	}

	return snap, nil
}

func (s *RedisStore) Save(ctx context.Context, snap *timesheet.Snapshot) error {
	entries, err := json.Marshal(snap.Entries)
	if err != nil {
		return err
	}
	profiles, err := json.Marshal(snap.Profiles)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, timesheet.StorageKeyEntries, entries, 0).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, timesheet.StorageKeyProfiles, profiles, 0).Err()
}

// Compile-time check
var _ timesheet.Store = (*RedisStore)(nil)
