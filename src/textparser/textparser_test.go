package textparser_test

import (
	"errors"
	"testing"

	"github.com/admiralbulldogtv/splicer/src/textparser"
	"github.com/admiralbulldogtv/splicer/src/textparser/parts"
	"github.com/admiralbulldogtv/splicer/src/textparser/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(pts []parts.Part) []string {
	out := make([]string, len(pts))
	for i, p := range pts {
		out[i] = p.Value
	}
	return out
}

func TestProcess(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Hello, World!", []string{"hello world"}},
		{"I have 3 cats", []string{"i have three cats"}},
		{"Dr. Smith", []string{"doctor smith"}},
		{"it costs $3.50 today", []string{"it costs", "three dollars and fifty cents", "today"}},
		{"say `HH AH0 L OW1` now", []string{"say", "hh ah0 l ow1", "now"}},
		{"well-known", []string{"well known"}},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, values(textparser.Process(tc.in)))
		})
	}
}

func TestPhonemize(t *testing.T) {
	got, err := textparser.Phonemize("Hello world")
	require.NoError(t, err)
	assert.Equal(t, []string{"HH", "AH", "L", "OW", "W", "ER", "L", "D"}, got)

	got, err = textparser.Phonemize("say `T IY1` 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "EY", "T", "IY", "T", "UW"}, got)
}

func TestPhonemizeLexiconOrder(t *testing.T) {
	own := words.Dict{"hello": {"HH", "EH", "L", "OW"}}
	got, err := textparser.Phonemize("hello", own, words.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"HH", "EH", "L", "OW"}, got)

	// unknown words are spelled
	got, err = textparser.Phonemize("zq", words.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "IY", "K", "Y", "UW"}, got)
}

func TestPhonemizeUnknownOverride(t *testing.T) {
	_, err := textparser.Phonemize("`HH QQ`")
	var us *textparser.UnknownSymbolError
	require.True(t, errors.As(err, &us))
	assert.Equal(t, "QQ", us.Symbol)
}

func TestParsePhonemes(t *testing.T) {
	got, err := textparser.ParsePhonemes(" hh ah0  L OW1 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"HH", "AH", "L", "OW"}, got)

	_, err = textparser.ParsePhonemes("HH XX")
	var us *textparser.UnknownSymbolError
	assert.True(t, errors.As(err, &us))
}
