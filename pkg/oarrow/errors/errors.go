package errors

import "errors"

var (
	// Lookup errors 🔎
	ErrUnknownID   = errors.New("❌ unknown parameter id")
	ErrUnknownName = errors.New("❌ unknown parameter name")

	// Registry integrity errors 🧱
	ErrDuplicateID = errors.New("❌ duplicate parameter id")
	ErrOutOfBand   = errors.New("❌ parameter id outside its group band")
	ErrRoundTrip   = errors.New("❌ name/id round-trip mismatch")

	// Value errors 🎛️
	ErrKindMismatch  = errors.New("❌ value kind does not match parameter")
	ErrNotAssignable = errors.New("❌ parameter does not hold a value")
	ErrInvalidValue  = errors.New("❌ invalid parameter value")
)
