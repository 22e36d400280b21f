package ffmpeg

import "testing"

func TestParseDurationOutput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		seconds float64
		ok      bool
	}{
		{"plain", "123.456\n", 123.456, true},
		{"integer", "90\n", 90, true},
		{"trailing spaces", "  42.5  \n", 42.5, true},
		{"empty", "", 0, false},
		{"whitespace only", "\n", 0, false},
		{"not a number", "N/A\n", 0, false},
		{"negative", "-1\n", 0, false},
		{"zero", "0\n", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, ok := ParseDurationOutput([]byte(tt.input))
			if ok != tt.ok {
				t.Fatalf("ParseDurationOutput(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && seconds != tt.seconds {
				t.Errorf("ParseDurationOutput(%q) = %v, want %v", tt.input, seconds, tt.seconds)
			}
		})
	}
}
