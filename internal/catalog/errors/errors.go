package errors

import "errors"

var (
	ErrFacilityNotFound = errors.New("facility not found")

	ErrMediaNotFound = errors.New("media resource not found")

	ErrInvalidID = errors.New("invalid catalog ID format")
)
