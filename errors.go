package caseforge

import "errors"

var (
	// ErrUnknownScenario is returned when a scenario matches no domain in the
	// scenario library and no explicit field lists were provided.
	ErrUnknownScenario = errors.New("scenario does not match any known domain")
	// ErrInvalidFieldSpec is returned when field lists contain empty or
	// duplicate names.
	ErrInvalidFieldSpec = errors.New("invalid field spec")
	// ErrIndexOutOfRange is returned by Decode for indices outside [0, size).
	ErrIndexOutOfRange = errors.New("combination index out of range")
	// ErrInvalidPageSize is returned when page size is zero or negative.
	ErrInvalidPageSize = errors.New("page size must be a positive integer")
	// ErrInvalidMaxCases is returned when the max cases cap is negative.
	ErrInvalidMaxCases = errors.New("max cases cannot be negative")
	// ErrFieldMismatch indicates an assignment that does not cover the field
	// spec it is rendered against.
	ErrFieldMismatch = errors.New("assignment does not match field spec")
)
