package repository

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/httperr"
	"github.com/pontolago/ponto-api/internal/models"
)

// GormStore persists the snapshot as one storage_records row per fixed
// key. The value is the full JSON document; save replaces it
// wholesale, keeping the read-modify-write semantics of the other
// drivers.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context) (*timesheet.Snapshot, error) {
	snap := timesheet.NewSnapshot()

	var records []models.StorageRecord
	if err := s.db.WithContext(ctx).
		Where("key IN ?", []string{timesheet.StorageKeyEntries, timesheet.StorageKeyProfiles}).
		Find(&records).Error; err != nil {
		return nil, err
	}

	for _, rec := range records {
		switch rec.Key {
		case timesheet.StorageKeyEntries:
			var entries []models.Entry
			if err := json.Unmarshal([]byte(rec.Value), &entries); err != nil {
				return nil, httperr.ErrBusiness("corrupt_store_data")
			}
			snap.Entries = entries

		case timesheet.StorageKeyProfiles:
			var profiles map[string]models.ProfileOverride
			if err := json.Unmarshal([]byte(rec.Value), &profiles); err != nil {
				return nil, httperr.ErrBusiness("corrupt_store_data")
			}
			snap.Profiles = profiles
		}
	}

	if snap.Profiles == nil {
		snap.Profiles = map[string]models.ProfileOverride{}
	}

	return snap, nil
}

func (s *GormStore) Save(ctx context.Context, snap *timesheet.Snapshot) error {
	entries, err := json.Marshal(snap.Entries)
	if err != nil {
		return err
	}
	profiles, err := json.Marshal(snap.Profiles)
	if err != nil {
		return err
	}

	records := []models.StorageRecord{
		{Key: timesheet.StorageKeyEntries, Value: string(entries)},
		{Key: timesheet.StorageKeyProfiles, Value: string(profiles)},
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&records).Error
}

// Compile-time check
var _ timesheet.Store = (*GormStore)(nil)
