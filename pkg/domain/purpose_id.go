package domain

import (
	"strconv"
	"strings"

	dErrors "credo-tcf/pkg/domain-errors"
)

// MaxPurposeID is the largest Purpose ID a publisher restriction entry can
// carry (the purpose field is six bits wide).
const MaxPurposeID = 63

// PurposeID identifies a TCF processing purpose.
// Invariant: 0 <= id <= MaxPurposeID when constructed via ParsePurposeID or
// NewPurposeID.
//
// Usage: construct via the parse functions at trust boundaries; a direct
// conversion bypasses validation and is only appropriate for trusted values.
type PurposeID int

// NewPurposeID validates an integer Purpose ID.
//
// Errors: returns CodeInvalidInput when n is negative or above MaxPurposeID.
func NewPurposeID(n int) (PurposeID, error) {
	if n < 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "purpose id must be non-negative")
	}
	if n > MaxPurposeID {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "purpose id must be at most "+strconv.Itoa(MaxPurposeID))
	}
	return PurposeID(n), nil
}

// ParsePurposeID constructs a PurposeID from external input such as a URL
// path segment.
//
// Errors: returns CodeInvalidInput when the value is empty, not a decimal
// integer, or out of range.
func ParsePurposeID(s string) (PurposeID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "purpose id cannot be empty")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "purpose id must be an integer")
	}
	return NewPurposeID(n)
}

// IsValid reports whether the id lies in the representable range.
func (p PurposeID) IsValid() bool {
	return p >= 0 && p <= MaxPurposeID
}

// String returns the decimal representation of the id.
func (p PurposeID) String() string {
	return strconv.Itoa(int(p))
}
