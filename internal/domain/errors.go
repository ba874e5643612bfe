package domain

import "errors"

var (
	ErrUnauthorized = errors.New("upstream rejected token")
	ErrUnreachable  = errors.New("upstream unreachable")
	ErrMalformed    = errors.New("malformed upstream response")
)
