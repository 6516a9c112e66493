package listing

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		address     string
		dates       string
		wantTitle   string
		wantAddress string
		wantDates   string
	}{
		{
			name:        "all fields present",
			title:       "Fantastic Mid-Century Estate Sale",
			address:     "1204 Bluebonnet Ln, Austin, TX 78704",
			dates:       "Aug 14 - 16",
			wantTitle:   "Fantastic Mid-Century Estate Sale",
			wantAddress: "1204 Bluebonnet Ln, Austin, TX 78704",
			wantDates:   "Aug 14 - 16",
		},
		{
			name:        "empty fields get defaults",
			wantTitle:   DefaultTitle,
			wantAddress: DefaultAddress,
			wantDates:   DefaultDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := New(tt.title, tt.address, tt.dates, "https://www.estatesales.net/TX/Austin/78704/1234567")

			if ls.Title != tt.wantTitle {
				t.Errorf("expected title %q, got %q", tt.wantTitle, ls.Title)
			}
			if ls.Address != tt.wantAddress {
				t.Errorf("expected address %q, got %q", tt.wantAddress, ls.Address)
			}
			if ls.Dates != tt.wantDates {
				t.Errorf("expected dates %q, got %q", tt.wantDates, ls.Dates)
			}
			if ls.Link == "" {
				t.Error("expected link to be preserved")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses whitespace runs",
			input:    "Estate   Sale\n\t by  Blue Moon",
			expected: "Estate Sale by Blue Moon",
		},
		{
			name:     "decodes entities",
			input:    "Antiques &amp; Collectibles &quot;Everything Goes&quot;",
			expected: `Antiques & Collectibles "Everything Goes"`,
		},
		{
			name:     "decodes angle brackets",
			input:    "Tools &lt;new&gt;",
			expected: "Tools <new>",
		},
		{
			name:     "trims",
			input:    "  Moving Sale  ",
			expected: "Moving Sale",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
