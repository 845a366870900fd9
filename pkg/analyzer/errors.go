package analyzer

import "errors"

var (
	// ErrEmptyPassword is returned when an operation that requires a
	// password receives an empty string.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrNoClassSelected is returned by Generate when every character
	// class is disabled.
	ErrNoClassSelected = errors.New("at least one character class must be selected")

	// ErrLengthOutOfRange is returned by Generate for lengths outside
	// the supported range.
	ErrLengthOutOfRange = errors.New("length must be between 8 and 128")

	// ErrBackendUnavailable signals that an optional hashing backend
	// failed at runtime. The demonstrator degrades by omitting the entry.
	ErrBackendUnavailable = errors.New("hashing backend unavailable")
)
