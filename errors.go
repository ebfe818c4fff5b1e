package country

import "errors"

var (
	ErrEmptyLocale     = errors.New("country: locale cannot be empty")
	ErrEmptyDirectory  = errors.New("country: dataset directory cannot be empty")
	ErrNilFS           = errors.New("country: dataset filesystem cannot be nil")
	ErrInvalidDataset  = errors.New("country: invalid dataset file")
	ErrDatasetNotFound = errors.New("country: dataset not found")
	ErrUnknownField    = errors.New("country: unknown field")
)
