// Package services contains stateless domain services for the names bounded
// context: the name ordering rules and business validation of parsed names.
package services

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ghuser/namesort/services/names/domain/models"
)

// Comparator is a three-way comparison over Names. Only the sign of the
// result is meaningful.
type Comparator func(a, b models.Name) int

// CompareAscending orders by surname first, then by given names in position
// order. Strings are compared case-insensitively and ordinally (no locale
// rules). When one name runs out of given names first, the missing position
// sorts before any present one, so "Jane Archer" < "Jane Anne Archer".
func CompareAscending(a, b models.Name) int {
	if c := compareFold(a.LastName(), b.LastName()); c != 0 {
		return c
	}

	n := max(a.GivenNameCount(), b.GivenNameCount())
	for i := range n {
		x, okA := a.GivenNameAt(i)
		y, okB := b.GivenNameAt(i)
		switch {
		case !okA:
			return -1
		case !okB:
			return 1
		}
		if c := compareFold(x, y); c != 0 {
			return c
		}
	}
	return 0
}

// CompareDescending flips the sign of CompareAscending. The arguments are not
// swapped.
func CompareDescending(a, b models.Name) int {
	return -CompareAscending(a, b)
}

// ComparatorFor returns the comparison function for order.
func ComparatorFor(order models.Order) Comparator {
	if order == models.Descending {
		return CompareDescending
	}
	return CompareAscending
}

// Compare compares a and b in the given direction.
func Compare(a, b models.Name, order models.Order) int {
	return ComparatorFor(order)(a, b)
}

// SortNames reorders names in place. The sort is stable: names that compare
// equal keep their relative input order.
func SortNames(names []models.Name, order models.Order) {
	slices.SortStableFunc(names, ComparatorFor(order))
}

func compareFold(a, b string) int {
	return cmp.Compare(foldUpper(a), foldUpper(b))
}

// foldUpper upper-cases s rune by rune. Bytes that are not valid UTF-8 are
// kept as they are, so distinct malformed strings never fold to the same
// value.
func foldUpper(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		i += size
	}
	return b.String()
}
