package timesheet

import (
	"context"

	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/models"
)

type RosterResult struct {
	Employees []models.Employee
	Grouped   map[string][]models.Entry
}

// ListRoster derives the employee roster purely from who has entries,
// with stored profile overrides merged on top, plus the per-employee
// entry buckets for the admin views.
type ListRoster struct {
	store domain.Store
}

func NewListRoster(store domain.Store) *ListRoster {
	return &ListRoster{store: store}
}

func (uc *ListRoster) Execute(ctx context.Context) (*RosterResult, error) {
	snap, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &RosterResult{
		Employees: domain.DeriveRoster(snap.Entries, snap.Profiles),
		Grouped:   domain.GroupByEmployee(snap.Entries),
	}, nil
}
