package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"#000000", ColorBackground, false},
		{"#5dd8e4", ColorBorder, false},
		{"#FF0000", ColorFood, false},
		{"#00ff00", ColorSnake, false},
		{"green", Color{}, true},
		{"", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && c != tc.expected {
				t.Errorf("ParseColor(%q) = %+v, expected %+v", tc.in, c, tc.expected)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorBorder.Hex(); got != "#5dd8e4" {
		t.Errorf("Hex() = %q, expected #5dd8e4", got)
	}
	back, err := ParseColor(ColorFood.Hex())
	if err != nil || back != ColorFood {
		t.Errorf("Hex round trip = %+v, %v", back, err)
	}
}
