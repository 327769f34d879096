package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and the token collaborator
// return these (optionally wrapped) so services can translate them into domain
// errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in store
// - ErrInsufficientBalance: a withdrawal exceeds the available balance
// - ErrSupplyExhausted: a mint would exceed the fixed total supply
// - ErrInvalidState: entity in wrong state for requested operation
// - ErrUnavailable: service or resource temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors
// directly.
var (
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrSupplyExhausted     = errors.New("supply exhausted")
	ErrInvalidState        = errors.New("invalid state")
	ErrUnavailable         = errors.New("unavailable")
)
