package b64

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlphabet is returned by New when the alphabet is not 64
	// distinct symbols free of line breaks and the padding byte.
	ErrInvalidAlphabet = errors.New("b64: invalid alphabet")

	// ErrInvalidPadding is returned by New for a padding value that is a line
	// break or does not fit in a byte.
	ErrInvalidPadding = errors.New("b64: invalid padding")

	// ErrCorruptInput is the sentinel every *CorruptInputError unwraps to.
	ErrCorruptInput = errors.New("b64: illegal base64 data")
)

// CorruptInputError reports malformed decode input.
type CorruptInputError struct {
	Offset int64  // input byte offset that triggered the failure
	Reason string // human-readable explanation
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("b64: illegal base64 data at input byte %d: %s", e.Offset, e.Reason)
}

func (e *CorruptInputError) Unwrap() error {
	return ErrCorruptInput
}

func corrupt(off int, format string, args ...any) error {
	return &CorruptInputError{Offset: int64(off), Reason: fmt.Sprintf(format, args...)}
}
