package timesheet

import (
	"context"

	"github.com/pontolago/ponto-api/internal/audit"
	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/httperr"
	"github.com/pontolago/ponto-api/internal/models"
)

type SaveProfileInput struct {
	ActorEmail string

	Email    string
	Override models.ProfileOverride
}

// SaveProfile stores the admin-supplied override for an identifier.
// Whole-record replacement, last write wins; the merge onto the
// derived employee happens at read time in the roster.
type SaveProfile struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewSaveProfile(
	store domain.Store,
	audit *audit.Dispatcher,
) *SaveProfile {
	return &SaveProfile{
		store: store,
		audit: audit,
	}
}

func (uc *SaveProfile) Execute(
	ctx context.Context,
	in SaveProfileInput,
) error {

	if in.Email == "" {
		return httperr.ErrBusiness("missing_required_fields")
	}

	snap, err := uc.store.Load(ctx)
	if err != nil {
		return err
	}

	snap.Profiles[in.Email] = in.Override

	if err := uc.store.Save(ctx, snap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.ActorEmail,
		Action:     "profile_updated",
		Entity:     "employee",
		EntityID:   in.Email,
	})

	return nil
}
