package parse

import "testing"

func TestQuantity(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "single number", input: "we need 50 shirts", want: 50, wantOK: true},
		{name: "range averages", input: "somewhere between 20 and 30", want: 25, wantOK: true},
		{name: "rounding up", input: "20 or 25", want: 23, wantOK: true},
		{name: "no number", input: "not sure yet", want: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Quantity(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Quantity(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Quantity(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestApparel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"I'd like some t-shirts", "t-shirt"},
		{"hoodies please", "hoodie"},
		{"baseball caps", "cap"},
		{"polo shirts", "polo"},
		{"mugs", ""},
	}
	for _, tt := range tests {
		if got := Apparel(tt.input); got != tt.want {
			t.Errorf("Apparel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestColor(t *testing.T) {
	if got := Color("navy blue please", "hoodie"); got != "navy" {
		t.Errorf("Color = %q, want navy", got)
	}
	if got := Color("red", "hoodie"); got != "" {
		t.Errorf("Color = %q, want empty for color not in palette", got)
	}
}

func TestChoice(t *testing.T) {
	options := []string{"Corporate hiring", "School/spirit wear", "Sports team"}
	tests := []struct {
		input string
		want  string
	}{
		{"3", "Sports team"},
		{"sports team", "Sports team"},
		{"it's for our corporate team", "Corporate hiring"},
		{"something else entirely", ""},
	}
	for _, tt := range tests {
		if got := Choice(tt.input, options); got != tt.want {
			t.Errorf("Choice(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
