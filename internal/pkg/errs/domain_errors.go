package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Lookup errors
	ErrSalonNotFound       = errors.New("salon not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// Availability / validation errors
	ErrClosedDay            = errors.New("salon is closed on this day")
	ErrOutsideWorkingHours  = errors.New("requested time is outside working hours")
	ErrDuringBreak          = errors.New("requested time falls into the break")
	ErrReservationConflict  = errors.New("reservation conflict")
	ErrPastStartTime        = errors.New("start time is in the past")
	ErrInvalidDuration      = errors.New("invalid service duration")
	ErrCrossSalonReference  = errors.New("referenced rows belong to different salons")
	ErrEmployeeNotQualified = errors.New("employee is not qualified for this service")
	ErrNoSlotsInHorizon     = errors.New("no available slot within the search horizon")

	// Status errors
	ErrInvalidStatusTransition = errors.New("invalid reservation status transition")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrMissingActor            = errors.New("actor missing from request context")
)
