package core

import "errors"

// Error kinds reported by the engine. Callers match them with errors.Is;
// the returned errors wrap them with the offending values.
var (
	// ErrConfiguration is returned for a game configuration that cannot be played.
	ErrConfiguration = errors.New("configuration error")

	// ErrIndexOutOfRange is returned when a slot or attempt index does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidWave is returned when a slot edit carries an impossible component.
	ErrInvalidWave = errors.New("invalid wave")

	// ErrInvariantViolation is returned when generated data breaks a checked invariant.
	ErrInvariantViolation = errors.New("invariant violation")
)
