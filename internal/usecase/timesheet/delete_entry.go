package timesheet

import (
	"context"

	"github.com/pontolago/ponto-api/internal/audit"
	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/httperr"
)

type DeleteEntryInput struct {
	ActorEmail string

	ID string

	// When set, the entry must belong to this employee. The employee
	// surface passes its own email; admins leave it empty.
	OwnerEmail string
}

// DeleteEntry removes the entry with the given id. Idempotent: an
// absent id leaves the store untouched and reports deleted=false
// without an error.
type DeleteEntry struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewDeleteEntry(
	store domain.Store,
	audit *audit.Dispatcher,
) *DeleteEntry {
	return &DeleteEntry{
		store: store,
		audit: audit,
	}
}

func (uc *DeleteEntry) Execute(
	ctx context.Context,
	in DeleteEntryInput,
) (bool, error) {

	snap, err := uc.store.Load(ctx)
	if err != nil {
		return false, err
	}

	existing := domain.FindEntry(snap.Entries, in.ID)
	if existing == nil {
		return false, nil
	}

	if in.OwnerEmail != "" && existing.EmployeeEmail != in.OwnerEmail {
		return false, httperr.ErrBusiness("entry_not_found")
	}

	snap.Entries = domain.DeleteEntry(snap.Entries, in.ID)

	if err := uc.store.Save(ctx, snap); err != nil {
		return false, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.ActorEmail,
		Action:     "entry_deleted",
		Entity:     "entry",
		EntityID:   in.ID,
	})

	return true, nil
}
