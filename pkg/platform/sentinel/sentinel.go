package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Lower layers return these
// (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states, not validation failures:
// - ErrInvalidState: entity or workflow in wrong state for requested operation
// - ErrInputClosed: the interactive input stream reached end of file
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrInvalidState = errors.New("invalid state")
	ErrInputClosed  = errors.New("input closed")
)
