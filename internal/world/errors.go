package world

import "errors"

var (
	// ErrConfiguration reports build parameters that cannot produce a dungeon.
	ErrConfiguration = errors.New("invalid dungeon configuration")
	// ErrInvalidArgument reports a malformed query or action argument.
	ErrInvalidArgument = errors.New("invalid argument")
)
