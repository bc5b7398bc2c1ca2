package intent

import "testing"

func TestPatternChange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ChangeRequest
	}{
		{
			name:  "single field",
			input: "change the color to navy",
			want:  []ChangeRequest{{Field: "color", NewValue: "navy"}},
		},
		{
			name:  "alias resolves",
			input: "update my company to Acme Corp",
			want:  []ChangeRequest{{Field: "organization", NewValue: "Acme Corp"}},
		},
		{
			name:  "two fields joined with and",
			input: "change color to black and quantity to 50",
			want: []ChangeRequest{
				{Field: "color", NewValue: "black"},
				{Field: "quantity", NewValue: "50"},
			},
		},
		{
			name:  "comma chain with repeated verb",
			input: "change the email to jo@acme.com, and set the phone to 4253033381",
			want: []ChangeRequest{
				{Field: "email", NewValue: "jo@acme.com"},
				{Field: "phone", NewValue: "4253033381"},
			},
		},
		{
			name:  "and inside a value stays whole",
			input: "change decoration colors to black and white",
			want:  []ChangeRequest{{Field: "decoration_colors", NewValue: "black and white"}},
		},
		{
			name:  "unknown field",
			input: "change the weather to sunny",
			want:  nil,
		},
		{
			name:  "not a change request",
			input: "looks good to me",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PatternChange(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("PatternChange(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pair %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
