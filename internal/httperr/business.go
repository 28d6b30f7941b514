package httperr

import "errors"

// Business error codes used across the timesheet core:
//
//	missing_date             create/update without the mandatory date
//	missing_required_fields  self-registration without role/location/break
//	entry_not_found          lookup by unknown id
//	corrupt_store_data       stored snapshot that does not parse
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
