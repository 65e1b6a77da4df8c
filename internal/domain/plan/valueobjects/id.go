package valueobjects

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when a value cannot be used as an identifier.
var ErrInvalidID = errors.New("invalid identifier")

// ID is a validated positive integer identity used as primary and foreign key.
// The zero value means "not assigned yet" and never passes validation.
type ID uint64

// NewID validates an integer identifier.
func NewID(v int64) (ID, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%w: %d must be a positive integer", ErrInvalidID, v)
	}
	return ID(v), nil
}

// IDFromFloat validates a numeric identifier coming from loosely typed input
// such as JSON numbers. NaN, infinities, fractions and non-positive values are rejected.
func IDFromFloat(f float64) (ID, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not a number", ErrInvalidID, f)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidID, f)
	}
	if f <= 0 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v must be a positive integer", ErrInvalidID, f)
	}
	return ID(f), nil
}

// ParseID validates a decimal string identifier.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidID, s)
	}
	return NewID(v)
}

func (id ID) Uint64() uint64 {
	return uint64(id)
}

func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// OptionalID converts a nullable database value into *ID.
func OptionalID(v *uint64) *ID {
	if v == nil || *v == 0 {
		return nil
	}
	id := ID(*v)
	return &id
}

// OptionalUint64 is the inverse of OptionalID.
func OptionalUint64(id *ID) *uint64 {
	if id == nil {
		return nil
	}
	v := uint64(*id)
	return &v
}
