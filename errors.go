package lambda

import "errors"

// Error kinds from spec §7. Only UnknownIdentifier and InvariantViolation
// have sentinels. Parse errors from the syntax package and history failures
// reported by the engine package are plain errors with no sentinel of their
// own.
var (
	// ErrUnknownIdentifier is returned when Info is requested for an
	// undefined name. Reported to the caller; no state change.
	ErrUnknownIdentifier = errors.New("unknown identifier")

	// ErrInvariantViolation marks a defect: an apply precondition failed
	// (arity mismatch, missing argument, duplicate parameter name). The
	// current reduction must abort; the Context is left unchanged.
	ErrInvariantViolation = errors.New("internal invariant violation")
)
