package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "punctuation dropped", input: "Keputih Baru!", expected: "keputih-baru"},
		{name: "single word", input: "Manyar", expected: "manyar"},
		{name: "surrounding whitespace", input: "  Gebang  ", expected: "gebang"},
		{name: "whitespace run", input: "Mulyosari \t\n Tengah", expected: "mulyosari-tengah"},
		{name: "repeated hyphens", input: "a -- b", expected: "a-b"},
		{name: "already canonical", input: "keputih-baru", expected: "keputih-baru"},
		{name: "digits kept", input: "Blok 5A", expected: "blok-5a"},
		{name: "non ascii dropped", input: "Café Ñam", expected: "caf-am"},
		{name: "non breaking space", input: "Jl.\u00a0Kertajaya", expected: "jl-kertajaya"},
		{name: "vertical tab", input: "a\vb", expected: "a-b"},
		{name: "next line", input: "a\u0085b", expected: "a-b"},
		{name: "byte order mark", input: "a\ufeffb", expected: "a-b"},
		{name: "empty", input: "", expected: ""},
		{name: "only punctuation", input: "!!! ???", expected: ""},
		{name: "only hyphens", input: "- -", expected: ""},
		{name: "edge hyphens kept", input: "-pasar-", expected: "-pasar-"},
		{name: "only symbols", input: "@#$%", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Keputih Baru!",
		"  --Weird__Name--  ",
		"ÀÉÎ õü",
		"a  b",
		"-",
		"",
		"Kelvin \u212a",
		"100% Halal",
		"Warung   Bu  Sri (Gebang)",
	}

	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
		assert.Regexp(t, `^[a-z0-9-]*$`, once)
		assert.NotContains(t, once, "--")
	}
}
