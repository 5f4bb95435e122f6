package validate

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"simple", "john@example.com", false},
		{"subdomain", "j.doe+tag@mail.clinic.org", false},
		{"uppercase", "John.Doe@Example.COM", false},
		{"surrounding whitespace", "  john@example.com  ", false},

		{"empty", "", true},
		{"missing at", "john.example.com", true},
		{"missing tld", "john@example", true},
		{"spaces inside", "john doe@example.com", true},
		{"double at", "john@@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.addr)
			if (err != nil) != tt.wantErr {
				t.Errorf("Email(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	got := NormalizeEmail("  John.Doe@Example.COM ")
	want := "john.doe@example.com"
	if got != want {
		t.Errorf("NormalizeEmail() = %q, want %q", got, want)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		wantErr bool
	}{
		{"e164 US", "+14155552671", false},
		{"e164 UK", "+442071838750", false},
		{"local with separators", "(415) 555-2671", false},
		{"local plain digits", "4155552671", false},

		{"empty", "", true},
		{"too short", "12345", true},
		{"letters", "call-me-maybe", true},
		{"invalid e164", "+1234", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Phone(tt.number)
			if (err != nil) != tt.wantErr {
				t.Errorf("Phone(%q) error = %v, wantErr %v", tt.number, err, tt.wantErr)
			}
		})
	}
}
