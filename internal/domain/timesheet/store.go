package timesheet

import (
	"context"

	"github.com/pontolago/ponto-api/internal/models"
)

// Fixed top-level keys of the persisted state.
const (
	StorageKeyEntries  = "entries"
	StorageKeyProfiles = "profile_overrides"
)

// Snapshot is the entire dataset: the ordered entry sequence and the
// per-identifier profile overrides. Overrides are replaced wholesale
// on write; merging onto the derived employee happens only at read
// time, in the roster functions.
type Snapshot struct {
	Entries  []models.Entry
	Profiles map[string]models.ProfileOverride
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Profiles: map[string]models.ProfileOverride{},
	}
}

// Store holds the snapshot. Every mutation is load the full snapshot,
// change it in memory, save the full snapshot back. Two concurrent
// writers can clobber each other's save; single-writer use is assumed,
// matching the system this one replaces.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// Clone deep-copies the snapshot so callers can hand it out without
// sharing backing arrays with the store.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Entries:  make([]models.Entry, len(s.Entries)),
		Profiles: make(map[string]models.ProfileOverride, len(s.Profiles)),
	}
	copy(out.Entries, s.Entries)
	for email, ov := range s.Profiles {
		out.Profiles[email] = ov
	}
	return out
}
