package chatmd

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a config value or argument failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnknownParser indicates the requested parser does not exist.
	ErrUnknownParser = errors.New("unknown parser")

	// ErrUnsupportedVersion indicates a block document has an unknown
	// envelope version.
	ErrUnsupportedVersion = errors.New("unsupported version")
)
