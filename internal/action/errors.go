package action

import "errors"

var (
	ErrInvalidFormat = errors.New("invalid format string")
	ErrCommandFailed = errors.New("command failed")
)
