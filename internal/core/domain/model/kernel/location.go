package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// LocationMaxLength bounds the stored length of a location code.
const LocationMaxLength = 120

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is the place a product physically sits: a dock, a storage slot
// ("A-03-12"), a vehicle plate or a customer address. It is an immutable value
// object; surrounding whitespace is dropped and the result must be non-empty.
//
// Example:
//
//	loc, err := kernel.NewLocation("DOCK-2")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(loc) // DOCK-2
type Location struct { //nolint:recvcheck //using for validation
	code  string
	guard guard.ConstructorGuard
}

// NewLocation validates and normalises a location code.
func NewLocation(code string) (Location, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Location{}, errs.NewValueIsRequiredError("location")
	}
	if n := utf8.RuneCountInString(code); n > LocationMaxLength {
		return Location{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"location length", n, 1, LocationMaxLength,
			fmt.Errorf("location %q is too long", code[:32]),
		)
	}

	return Location{code: code, guard: guard.NewConstructorGuard()}, nil
}

// String returns the location code.
func (l Location) String() string {
	return l.code
}

// IsEqual reports whether both locations carry the same code.
func (l Location) IsEqual(other Location) bool {
	return l.code == other.code
}

// Validate rejects zero-value locations.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}
