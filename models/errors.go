package models

import "errors"

// Service error taxonomy. Services wrap these with detail via
// fmt.Errorf("%w: ...") and handlers map them to HTTP statuses with
// helper.HTTPHelper.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("user does not have access")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
