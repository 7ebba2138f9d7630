package services

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghuser/namesort/services/names/domain/models"
)

func parseAll(t *testing.T, lines ...string) []models.Name {
	t.Helper()
	names := make([]models.Name, 0, len(lines))
	for _, l := range lines {
		n, err := models.ParseName(l)
		if err != nil {
			t.Fatalf("ParseName(%q): %v", l, err)
		}
		names = append(names, n)
	}
	return names
}

func render(names []models.Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func TestCompareAscending(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"surname decides", "Frank Zhang", "Jingwei Zhao", -1},
		{"surname beats given names", "Aaron Zhao", "Zed Archer", 1},
		{"surname is case-insensitive", "Janet nolan", "Janet NOLAN", 0},
		{"first given name breaks tie", "Adonis Jane Archer", "Adonis Julius Archer", -1},
		{"absent given name sorts first", "Adonis Archer", "Adonis Jane Archer", -1},
		{"present given name sorts last", "Adonis Jane Archer", "Adonis Archer", 1},
		{"second position decides", "Hunter Uriah Mathew Clarke", "Hunter Uriah Clarke", 1},
		{"identical", "Jingwei Zhao", "Jingwei Zhao", 0},
		{"identical ignoring case", "jingwei zhao", "JINGWEI ZHAO", 0},
		{"ordinal not locale", "Ann Zed", "Ann apple", 1},
		{"non-ascii letters fold", "zo\u00eb Smith", "ZO\u00cb Smith", 0},
		{"invalid bytes compare by value", "Jo\xff Smith", "Jo\xfe Smith", 1},
		{"invalid byte is not the replacement rune", "Jo\xff Smith", "Jo\ufffd Smith", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := models.MustParseName(tt.a), models.MustParseName(tt.b)
			if got := sign(CompareAscending(a, b)); got != tt.want {
				t.Fatalf("CompareAscending(%q, %q) sign = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareDescending_FlipsSignOnly(t *testing.T) {
	names := parseAll(t,
		"Jingwei Zhao", "Janet Parsons", "Adonis Archer", "Adonis Jane Archer", "adonis jane archer",
	)
	for _, a := range names {
		for _, b := range names {
			asc := sign(CompareAscending(a, b))
			desc := sign(CompareDescending(a, b))
			if desc != -asc {
				t.Fatalf("CompareDescending(%v, %v) = %d, want %d", a, b, desc, -asc)
			}
			if got := sign(Compare(a, b, models.Descending)); got != desc {
				t.Fatalf("Compare(..., Descending) = %d, want %d", got, desc)
			}
			if got := sign(Compare(a, b, models.Ascending)); got != asc {
				t.Fatalf("Compare(..., Ascending) = %d, want %d", got, asc)
			}
		}
	}
}

func TestCompare_AntiSymmetricAndReflexive(t *testing.T) {
	names := parseAll(t,
		"Jingwei Zhao", "Janet Parsons", "Vaughn Lewis", "Adonis Julius Archer",
		"Adonis Jane Archer", "Janet Nolan", "Adonis Archer", "ADONIS JANE ARCHER",
		"Hunter Uriah Mathew Clarke", "Leo Gardner",
	)
	for _, a := range names {
		if got := CompareAscending(a, a); got != 0 {
			t.Fatalf("CompareAscending(%v, %v) = %d, want 0", a, a, got)
		}
		for _, b := range names {
			if sign(CompareAscending(a, b)) != -sign(CompareAscending(b, a)) {
				t.Fatalf("anti-symmetry violated for %v and %v", a, b)
			}
		}
	}
}

func TestSortNames_Ascending(t *testing.T) {
	names := parseAll(t,
		"Jingwei Zhao",
		"Janet Parsons",
		"Vaughn Lewis",
		"Adonis Julius Archer",
		"Adonis Jane Archer",
		"Janet Nolan",
	)

	SortNames(names, models.Ascending)

	want := []string{
		"Adonis Jane Archer",
		"Adonis Julius Archer",
		"Vaughn Lewis",
		"Janet Nolan",
		"Janet Parsons",
		"Jingwei Zhao",
	}
	if diff := cmp.Diff(want, render(names)); diff != "" {
		t.Fatalf("sorted order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortNames_DescendingReversesAscending(t *testing.T) {
	lines := []string{
		"Jingwei Zhao", "Janet Parsons", "Vaughn Lewis",
		"Adonis Julius Archer", "Adonis Jane Archer", "Janet Nolan",
	}
	asc := parseAll(t, lines...)
	desc := parseAll(t, lines...)

	SortNames(asc, models.Ascending)
	SortNames(desc, models.Descending)

	reversed := render(asc)
	slices.Reverse(reversed)
	if diff := cmp.Diff(reversed, render(desc)); diff != "" {
		t.Fatalf("descending is not the reverse of ascending (-want +got):\n%s", diff)
	}
}

func TestSortNames_Stable(t *testing.T) {
	// Equal under the comparator, distinguishable by casing.
	names := parseAll(t,
		"janet nolan",
		"Vaughn Lewis",
		"Janet Nolan",
		"JANET NOLAN",
		"Adonis Archer",
	)

	for _, order := range []models.Order{models.Ascending, models.Descending} {
		t.Run(order.String(), func(t *testing.T) {
			got := slices.Clone(names)
			SortNames(got, order)

			var nolans []string
			for _, n := range got {
				if n.LastName() != "Lewis" && n.LastName() != "Archer" {
					nolans = append(nolans, n.String())
				}
			}
			want := []string{"janet nolan", "Janet Nolan", "JANET NOLAN"}
			if diff := cmp.Diff(want, nolans); diff != "" {
				t.Fatalf("equal names changed relative order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortNames_EmptyAndSingle(t *testing.T) {
	SortNames(nil, models.Ascending)

	one := parseAll(t, "John Smith")
	SortNames(one, models.Descending)
	if one[0].String() != "John Smith" {
		t.Fatalf("unexpected single element: %v", one[0])
	}
}
