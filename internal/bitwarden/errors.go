package bitwarden

import "errors"

var (
	// ErrCommandFailed indicates that the bw process exited with a non-zero
	// status or could not be started at all.
	ErrCommandFailed = errors.New("bitwarden-cli command failed")

	// ErrInvalidJSON indicates that the bw process produced output that is
	// not valid JSON for the expected record shape.
	ErrInvalidJSON = errors.New("bitwarden-cli returned malformed json")
)
