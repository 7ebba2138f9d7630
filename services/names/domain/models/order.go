package models

import "strings"

// Order selects the sort direction. The zero value is Ascending.
type Order int

const (
	Ascending Order = iota
	Descending
)

// ParseOrder maps the single-letter choice "A" or "D" (case-insensitive,
// surrounding whitespace ignored) to an Order. ok is false for anything else.
func ParseOrder(s string) (order Order, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return Ascending, true
	case "D":
		return Descending, true
	default:
		return Ascending, false
	}
}

func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}
