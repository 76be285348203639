package hbswitch

import "errors"

var (
	// ErrMissingArgument is returned when a helper is invoked without a
	// positional argument it requires, such as {{#switch}} with no value.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrUnknownHelper is returned when a block references a helper that is
	// not registered in any visible scope. In particular, {{#case}} and
	// {{#default}} are only bound inside a {{#switch}} body; using them
	// anywhere else fails the render with this error.
	ErrUnknownHelper = errors.New("unknown helper")
)
