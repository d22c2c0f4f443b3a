package social

import "errors"

var (
	ErrMissingField = errors.New("social: required field missing")
	ErrEmailExists  = errors.New("social: email exists")
	ErrInvalidLogin = errors.New("social: invalid login")
	ErrNotFound     = errors.New("social: not found")
)
