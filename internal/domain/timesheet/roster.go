package timesheet

import (
	"strings"

	"github.com/pontolago/ponto-api/internal/models"
)

// GroupByEmployee buckets entries by employee identifier, preserving
// the insertion order within each bucket. No sorting by date: the
// sequence reads exactly as it was punched. Employees with no entries
// never appear.
func GroupByEmployee(entries []models.Entry) map[string][]models.Entry {
	grouped := make(map[string][]models.Entry)
	for _, e := range entries {
		grouped[e.EmployeeEmail] = append(grouped[e.EmployeeEmail], e)
	}
	return grouped
}

// DeriveRoster builds the employee set from the entries alone: one
// default employee per distinct identifier, in order of first
// appearance, with any stored override merged on top.
func DeriveRoster(entries []models.Entry, overrides map[string]models.ProfileOverride) []models.Employee {
	seen := make(map[string]bool)
	var roster []models.Employee

	for _, e := range entries {
		if seen[e.EmployeeEmail] {
			continue
		}
		seen[e.EmployeeEmail] = true

		emp := models.Employee{
			Email: e.EmployeeEmail,
			Name:  DefaultName(e.EmployeeEmail),
		}

		if ov, ok := overrides[e.EmployeeEmail]; ok {
			emp = ApplyProfileOverride(emp, &ov)
		}

		roster = append(roster, emp)
	}

	return roster
}

// DefaultName is the identifier's local part: everything before the
// first "@", or the whole identifier when there is none.
func DefaultName(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

// ApplyProfileOverride merges an override onto an employee, field by
// field: the override wins wherever it has a value, the employee keeps
// the rest. A nil override returns the employee untouched.
func ApplyProfileOverride(emp models.Employee, ov *models.ProfileOverride) models.Employee {
	if ov == nil {
		return emp
	}

	if ov.Name != nil && *ov.Name != "" {
		emp.Name = *ov.Name
	}
	emp.Role = pick(emp.Role, ov.Role)
	emp.LaborCard = pick(emp.LaborCard, ov.LaborCard)
	emp.Enrollment = pick(emp.Enrollment, ov.Enrollment)
	emp.Registration = pick(emp.Registration, ov.Registration)
	emp.PIS = pick(emp.PIS, ov.PIS)
	emp.AdmissionDate = pick(emp.AdmissionDate, ov.AdmissionDate)
	emp.WorkSchedule = pick(emp.WorkSchedule, ov.WorkSchedule)
	emp.CostCenter = pick(emp.CostCenter, ov.CostCenter)
	emp.WeeklyRestDay = pick(emp.WeeklyRestDay, ov.WeeklyRestDay)

	return emp
}

func pick(current, override *string) *string {
	if override != nil {
		return override
	}
	return current
}
