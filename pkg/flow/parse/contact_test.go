package parse

import "testing"

func TestContactDetails(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Contact
	}{
		{
			name:  "full details in one message",
			input: "John Doe, john@example.com, +1-206-555-0100",
			want:  Contact{FirstName: "John", LastName: "Doe", Email: "john@example.com", Phone: "+12065550100"},
		},
		{
			name:  "name only",
			input: "my name is Jane Smith",
			want:  Contact{FirstName: "Jane", LastName: "Smith"},
		},
		{
			name:  "email only",
			input: "jane.smith+orders@company.co.uk",
			want:  Contact{Email: "jane.smith+orders@company.co.uk"},
		},
		{
			name:  "phone with parens normalizes to digits",
			input: "(425) 303-3381",
			want:  Contact{Phone: "4253033381"},
		},
		{
			name:  "dotted run under eight digits is not a phone",
			input: "1.2.3.4.5",
			want:  Contact{},
		},
		{
			name:  "single first name",
			input: "Bob",
			want:  Contact{FirstName: "Bob"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContactDetails(tt.input)
			if got.FirstName != tt.want.FirstName {
				t.Errorf("FirstName = %q, want %q", got.FirstName, tt.want.FirstName)
			}
			if got.LastName != tt.want.LastName {
				t.Errorf("LastName = %q, want %q", got.LastName, tt.want.LastName)
			}
			if got.Email != tt.want.Email {
				t.Errorf("Email = %q, want %q", got.Email, tt.want.Email)
			}
			if got.Phone != tt.want.Phone {
				t.Errorf("Phone = %q, want %q", got.Phone, tt.want.Phone)
			}
		})
	}
}
