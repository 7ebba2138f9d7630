package models

import (
	"fmt"
	"slices"
	"strings"

	namesdomain "github.com/ghuser/namesort/services/names/domain"
)

// Name is a value object holding a person's given names and surname.
// Encapsulates arity rules: 1 <= len(givenNames) <= 3, every part non-empty.
// The zero value is not a valid Name; build one with ParseName or NewName.
type Name struct {
	givenNames []string
	lastName   string
}

const (
	minNameParts  = 2
	maxNameParts  = 4
	namePartDelim = " "
)

// ParseName splits line on single spaces. The final token becomes the
// surname and all preceding tokens the given names, in order.
// Returns an error wrapping ErrInvalidFormat when the line has fewer than 2
// or more than 4 tokens, or when any token is empty (repeated, leading or
// trailing spaces).
func ParseName(line string) (Name, error) {
	parts := strings.Split(line, namePartDelim)
	if len(parts) < minNameParts || len(parts) > maxNameParts {
		return Name{}, fmt.Errorf(
			"%w: a name must have between %d and %d parts (1 to 3 given names and 1 last name), got %d in %q",
			namesdomain.ErrInvalidFormat, minNameParts, maxNameParts, len(parts), line,
		)
	}
	return NewName(parts[:len(parts)-1], parts[len(parts)-1])
}

// NewName constructs a Name from already separated parts.
func NewName(givenNames []string, lastName string) (Name, error) {
	if n := len(givenNames) + 1; n < minNameParts || n > maxNameParts {
		return Name{}, fmt.Errorf("%w: a name must have between %d and %d parts, got %d",
			namesdomain.ErrInvalidFormat, minNameParts, maxNameParts, n)
	}
	for i, g := range givenNames {
		if g == "" {
			return Name{}, fmt.Errorf("%w: given name %d is empty in %q",
				namesdomain.ErrInvalidFormat, i+1, join(givenNames, lastName))
		}
	}
	if lastName == "" {
		return Name{}, fmt.Errorf("%w: last name is empty in %q",
			namesdomain.ErrInvalidFormat, join(givenNames, lastName))
	}
	return Name{givenNames: slices.Clone(givenNames), lastName: lastName}, nil
}

// MustParseName is like ParseName but panics on error. Intended for tests and
// package-level fixtures.
func MustParseName(line string) Name {
	n, err := ParseName(line)
	if err != nil {
		panic(err)
	}
	return n
}

// GivenNames returns a copy of the given names in their original order.
func (n Name) GivenNames() []string {
	return slices.Clone(n.givenNames)
}

// GivenNameCount returns the number of given names (1 to 3 for a valid Name).
func (n Name) GivenNameCount() int {
	return len(n.givenNames)
}

// GivenNameAt returns the given name at position i. ok is false when i is
// beyond this name's given names.
func (n Name) GivenNameAt(i int) (name string, ok bool) {
	if i < 0 || i >= len(n.givenNames) {
		return "", false
	}
	return n.givenNames[i], true
}

// LastName returns the surname.
func (n Name) LastName() string {
	return n.lastName
}

// String renders the canonical "given [given [given]] surname" layout.
func (n Name) String() string {
	return join(n.givenNames, n.lastName)
}

func join(givenNames []string, lastName string) string {
	return strings.Join(givenNames, namePartDelim) + namePartDelim + lastName
}
