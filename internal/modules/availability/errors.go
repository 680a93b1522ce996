package availability

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrInvalidRule = errors.New("invalid rule set")
)
