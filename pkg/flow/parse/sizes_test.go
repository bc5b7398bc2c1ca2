package parse

import (
	"reflect"
	"testing"
)

func TestSizes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]int
	}{
		{
			name:  "colon separated breakdown",
			input: "S:10, M:15, L:5, XL:2",
			want:  map[string]int{"s": 10, "m": 15, "l": 5, "xl": 2},
		},
		{
			name:  "counts before sizes",
			input: "10 small and 15 large",
			want:  map[string]int{"s": 10, "l": 15},
		},
		{
			name:  "alias normalization",
			input: "5 medium, 3 xxl, 2 xlarge",
			want:  map[string]int{"m": 5, "2xl": 3, "xl": 2},
		},
		{
			name:  "no sizes present",
			input: "around 25 total",
			want:  nil,
		},
		{
			name:  "duplicate sizes accumulate",
			input: "10 small plus 5 more small",
			want:  map[string]int{"s": 15},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sizes(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sizes(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSizesTotal(t *testing.T) {
	got := SizesTotal(map[string]int{"s": 10, "m": 15, "l": 5, "xl": 2})
	if got != 32 {
		t.Errorf("SizesTotal = %d, want 32", got)
	}
}

func TestFormatSizes(t *testing.T) {
	got := FormatSizes(map[string]int{"l": 5, "s": 10, "m": 15})
	want := "S: 10, M: 15, L: 5"
	if got != want {
		t.Errorf("FormatSizes = %q, want %q", got, want)
	}
}
