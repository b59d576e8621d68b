package errors

import "errors"

var (
	ErrMissingColumns = errors.New("required columns missing from reservation data")

	ErrNoHeader = errors.New("reservation data has no header row")

	ErrUnknownAttribute = errors.New("unknown reservation attribute")
)
