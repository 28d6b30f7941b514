package models

// Employee is the roster-facing view of a worker. Only Email and Name
// are always present: employees come into existence the first time an
// entry references their identifier, with the name defaulted from the
// email local-part. Everything else is filled in later by an admin via
// a profile override and stays nil until then.
type Employee struct {
	Email string `json:"email"`
	Name  string `json:"name"`

	Role          *string `json:"role,omitempty"`
	LaborCard     *string `json:"labor_card,omitempty"`
	Enrollment    *string `json:"enrollment,omitempty"`
	Registration  *string `json:"registration,omitempty"`
	PIS           *string `json:"pis,omitempty"`
	AdmissionDate *string `json:"admission_date,omitempty"`
	WorkSchedule  *string `json:"work_schedule,omitempty"`
	CostCenter    *string `json:"cost_center,omitempty"`
	WeeklyRestDay *string `json:"weekly_rest_day,omitempty"`
}

// ProfileOverride is the admin-supplied partial record merged onto the
// derived employee at read time. Name is optional here, unlike on
// Employee, so an override can touch any subset of fields.
type ProfileOverride struct {
	Name          *string `json:"name,omitempty"`
	Role          *string `json:"role,omitempty"`
	LaborCard     *string `json:"labor_card,omitempty"`
	Enrollment    *string `json:"enrollment,omitempty"`
	Registration  *string `json:"registration,omitempty"`
	PIS           *string `json:"pis,omitempty"`
	AdmissionDate *string `json:"admission_date,omitempty"`
	WorkSchedule  *string `json:"work_schedule,omitempty"`
	CostCenter    *string `json:"cost_center,omitempty"`
	WeeklyRestDay *string `json:"weekly_rest_day,omitempty"`
}
