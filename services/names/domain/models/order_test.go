package models

import "testing"

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input  string
		want   Order
		wantOK bool
	}{
		{"A", Ascending, true},
		{"a", Ascending, true},
		{"D", Descending, true},
		{"d", Descending, true},
		{" D\r\n", Descending, true},
		{"", Ascending, false},
		{"X", Ascending, false},
		{"desc", Ascending, false},
		{"AD", Ascending, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseOrder(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("ParseOrder(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOrder_ZeroValueIsAscending(t *testing.T) {
	var o Order
	if o != Ascending {
		t.Fatalf("expected zero Order to be Ascending, got %v", o)
	}
	if o.String() != "ascending" || Descending.String() != "descending" {
		t.Fatalf("unexpected String values: %q, %q", o.String(), Descending.String())
	}
}
