package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pontolago/ponto-api/internal/models"
)

func entryFor(email, id string) models.Entry {
	return models.Entry{
		ID:            id,
		EmployeeEmail: email,
		Date:          "2025-03-10",
		Kind:          models.KindNormal,
	}
}

func TestGroupByEmployeePreservesInsertionOrder(t *testing.T) {
	entries := []models.Entry{
		entryFor("ana@x.com", "1"),
		entryFor("bob@x.com", "2"),
		entryFor("ana@x.com", "3"),
		entryFor("bob@x.com", "4"),
		entryFor("ana@x.com", "5"),
	}

	grouped := GroupByEmployee(entries)

	assert.Len(t, grouped, 2)

	ids := func(es []models.Entry) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "3", "5"}, ids(grouped["ana@x.com"]))
	assert.Equal(t, []string{"2", "4"}, ids(grouped["bob@x.com"]))
}

func TestGroupByEmployeeEmpty(t *testing.T) {
	assert.Empty(t, GroupByEmployee(nil))
}

func TestDeriveRosterDefaultsNamesFromLocalPart(t *testing.T) {
	entries := []models.Entry{
		entryFor("ana@x.com", "1"),
		entryFor("ana@x.com", "2"),
		entryFor("bob@x.com", "3"),
	}

	roster := DeriveRoster(entries, nil)

	assert.Len(t, roster, 2)
	assert.Equal(t, "ana", roster[0].Name)
	assert.Equal(t, "ana@x.com", roster[0].Email)
	assert.Equal(t, "bob", roster[1].Name)
}

func TestDeriveRosterIdentifierWithoutAt(t *testing.T) {
	roster := DeriveRoster([]models.Entry{entryFor("carla", "1")}, nil)

	assert.Len(t, roster, 1)
	assert.Equal(t, "carla", roster[0].Name)
	assert.Equal(t, "carla", roster[0].Email)
}

func TestDeriveRosterMergesOverrides(t *testing.T) {
	name := "Ana Silva"
	cc := "CC-12"

	entries := []models.Entry{
		entryFor("ana@x.com", "1"),
		entryFor("bob@x.com", "2"),
	}
	overrides := map[string]models.ProfileOverride{
		"ana@x.com": {Name: &name, CostCenter: &cc},
	}

	roster := DeriveRoster(entries, overrides)

	assert.Equal(t, "Ana Silva", roster[0].Name)
	assert.Equal(t, "CC-12", *roster[0].CostCenter)
	assert.Nil(t, roster[0].Role)

	// bob has no override, keeps the default
	assert.Equal(t, "bob", roster[1].Name)
	assert.Nil(t, roster[1].CostCenter)
}

func TestApplyProfileOverride(t *testing.T) {
	emp := models.Employee{Email: "ana@x.com", Name: "ana"}

	name := "Ana Silva"
	out := ApplyProfileOverride(emp, &models.ProfileOverride{Name: &name})

	assert.Equal(t, "ana@x.com", out.Email)
	assert.Equal(t, "Ana Silva", out.Name)
	assert.Nil(t, out.Role)
	assert.Nil(t, out.LaborCard)
	assert.Nil(t, out.AdmissionDate)
}

func TestApplyProfileOverrideNilIsNoop(t *testing.T) {
	emp := models.Employee{Email: "ana@x.com", Name: "ana"}
	assert.Equal(t, emp, ApplyProfileOverride(emp, nil))
}

func TestApplyProfileOverrideEmptyNameKeepsDefault(t *testing.T) {
	emp := models.Employee{Email: "ana@x.com", Name: "ana"}

	empty := ""
	out := ApplyProfileOverride(emp, &models.ProfileOverride{Name: &empty})

	assert.Equal(t, "ana", out.Name)
}
