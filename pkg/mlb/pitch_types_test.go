package mlb_test

import (
	"testing"

	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/pkg/mlb"
)

func TestPitchTypeName(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"Four-seam", "FF", "Four-Seam Fastball"},
		{"Slider", "SL", "Slider"},
		{"Changeup", "CH", "Changeup"},
		{"Sinker", "SI", "Sinker"},
		{"Sweeper", "ST", "Sweeper"},
		{"Knuckle curve", "KC", "Knuckle Curve"},
		{"Eephus", "EP", "Eephus"},
		{"Unknown code passes through", "XX", "XX"},
		{"Unknown bucket passes through", "Unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mlb.PitchTypeName(tt.code); got != tt.want {
				t.Errorf("PitchTypeName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestFormatPlayerName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Last comma first", "Cole, Gerrit", "Gerrit Cole"},
		{"No extra space after comma", "Ohtani,Shohei", "Shohei Ohtani"},
		{"Suffix stays with last name", "Guerrero Jr., Vladimir", "Vladimir Guerrero Jr."},
		{"No comma passes through", "Ichiro Suzuki", "Ichiro Suzuki"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mlb.FormatPlayerName(tt.input); got != tt.want {
				t.Errorf("FormatPlayerName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
