package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable means the backing file could not be created, read or written.
	ErrStoreUnavailable = errors.New("ledger store unavailable")
	// ErrInvalidAmount means an amount was not a decimal literal.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMalformedRecord means a ledger line could not be decoded.
	ErrMalformedRecord = errors.New("malformed record")
)

// MalformedRecordError describes a ledger line that was skipped while loading.
type MalformedRecordError struct {
	Line   int // 1-based, header included
	Text   string
	Reason error
}

func (e MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Reason)
}

// Unwrap exposes both ErrMalformedRecord and the underlying parse error.
func (e MalformedRecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Reason}
}

func unavailable(action, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrStoreUnavailable, action, path, err)
}
