package backup

import "errors"

var (
	ErrMissingVersion       = errors.New("backup has no version")
	ErrMissingData          = errors.New("backup has no data")
	ErrInvalidData          = errors.New("backup data must be a JSON object")
	ErrUnsupportedVersion   = errors.New("backup version is not supported")
	ErrConfirmationRequired = errors.New("restore replaces all data and must be confirmed")
)
