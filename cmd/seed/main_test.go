package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty selects defaults", "", nil},
		{"blank selects defaults", "   ", nil},
		{"only separators selects defaults", ", ,", nil},
		{"single", "Kenjeran", []string{"Kenjeran"}},
		{"trims and skips blanks", " Keputih , ,Gebang ", []string{"Keputih", "Gebang"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseNames(tt.raw))
		})
	}
}
