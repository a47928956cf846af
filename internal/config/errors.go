package config

import "errors"

var (
	ErrSourceRequired     = errors.New("source is required: pass a file path, URL or - for stdin")
	ErrInvalidFormat      = errors.New("invalid output format")
	ErrInvalidCollision   = errors.New("invalid collision policy")
	ErrInvalidServerIndex = errors.New("server index must not be negative")
	ErrInvalidIndent      = errors.New("indent must not be negative")
)
