package numbers_test

import (
	"testing"

	"github.com/admiralbulldogtv/splicer/src/textparser/numbers"
	"github.com/admiralbulldogtv/splicer/src/textparser/parts"
	"github.com/stretchr/testify/assert"
)

func TestRead(t *testing.T) {
	cases := map[string]string{
		"0":       "zero",
		"7":       "seven",
		"14":      "fourteen",
		"45":      "forty five",
		"100":     "one hundred",
		"104":     "one hundred and four",
		"120":     "one hundred and twenty",
		"1204":    "one thousand two hundred and four",
		"1000000": "one million",
		"2000010": "two million ten",
	}
	for in, want := range cases {
		assert.Equal(t, want, numbers.Read(in), in)
	}
}

func TestNormalizeNumbers(t *testing.T) {
	cases := map[string]string{
		"i have 3 cats":   "i have three cats",
		"-12.5 degrees":   "minus twelve point five degrees",
		"agent 007":       "agent zero zero seven",
		"1,000,000 years": "one million years",
		"no numbers":      "no numbers",
	}
	for in, want := range cases {
		got := numbers.NormalizeNumbers([]parts.Part{{Value: in}})
		assert.Equal(t, want, got[0].Value, in)
	}

	override := numbers.NormalizeNumbers([]parts.Part{{Value: "ah0", Type: parts.PartTypeOverride}})
	assert.Equal(t, "ah0", override[0].Value)
}
