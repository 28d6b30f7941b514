package timesheet

import (
	"context"

	"github.com/pontolago/ponto-api/internal/audit"
	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/models"
)

type UpdateEntryInput struct {
	ActorEmail string

	ID     string
	Fields domain.EntryUpdate
}

// UpdateEntry shallow-merges the edit onto the entry with the given
// id. An unknown id is a quiet no-op: nothing is written back and a
// nil entry is returned, so the caller decides whether that deserves
// a 404. Kind and id never change.
type UpdateEntry struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewUpdateEntry(
	store domain.Store,
	audit *audit.Dispatcher,
) *UpdateEntry {
	return &UpdateEntry{
		store: store,
		audit: audit,
	}
}

func (uc *UpdateEntry) Execute(
	ctx context.Context,
	in UpdateEntryInput,
) (*models.Entry, error) {

	snap, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated := domain.ApplyEntryUpdate(snap.Entries, in.ID, in.Fields)
	if updated == nil {
		return nil, nil
	}

	if err := uc.store.Save(ctx, snap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.ActorEmail,
		Action:     "entry_updated",
		Entity:     "entry",
		EntityID:   in.ID,
	})

	return updated, nil
}
