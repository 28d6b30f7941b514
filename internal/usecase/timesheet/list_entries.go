package timesheet

import (
	"context"

	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/models"
)

// ListEmployeeEntries returns one employee's entries in the order they
// were punched.
type ListEmployeeEntries struct {
	store domain.Store
}

func NewListEmployeeEntries(store domain.Store) *ListEmployeeEntries {
	return &ListEmployeeEntries{store: store}
}

func (uc *ListEmployeeEntries) Execute(
	ctx context.Context,
	email string,
) ([]models.Entry, error) {

	snap, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0)
	for _, e := range snap.Entries {
		if e.EmployeeEmail == email {
			entries = append(entries, e)
		}
	}

	return entries, nil
}
