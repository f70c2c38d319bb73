package words_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/admiralbulldogtv/splicer/src/textparser/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDict(t *testing.T) {
	d, err := words.ParseDict(strings.NewReader(`;;; comment
TOMATO  T AH0 M EY1 T OW2
TOMATO(1)  T AH0 M AA1 T OW2

READ  R IY1 D
`))
	require.NoError(t, err)
	assert.Len(t, d, 2)

	p, ok := d.Pronounce("Tomato")
	require.True(t, ok)
	assert.Equal(t, []string{"T", "AH", "M", "EY", "T", "OW"}, p)

	_, err = words.ParseDict(strings.NewReader("LONELY\n"))
	assert.Error(t, err)
}

func TestDefaultDict(t *testing.T) {
	p, ok := words.Default().Pronounce("hello")
	require.True(t, ok)
	assert.Equal(t, []string{"HH", "AH", "L", "OW"}, p)

	// every number word the normalizer emits is known
	for _, w := range []string{"zero", "one", "twelve", "forty", "hundred", "thousand", "million", "point", "minus", "and"} {
		_, ok := words.Default().Pronounce(w)
		assert.True(t, ok, w)
	}
}

func TestLookup(t *testing.T) {
	own := words.Dict{"cat": {"K", "AE", "T", "T"}}

	p, err := words.Lookup("CAT", own, words.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"K", "AE", "T", "T"}, p)

	p, err = words.Lookup("cat", nil, words.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"K", "AE", "T"}, p)

	p, err = words.Lookup("tts", words.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"T", "IY", "T", "IY", "EH", "S"}, p)

	p, err = words.Lookup("xkcd")
	require.NoError(t, err)
	assert.Equal(t, []string{"EH", "K", "S", "K", "EY", "S", "IY", "D", "IY"}, p)
}

func TestSpellUnknown(t *testing.T) {
	_, err := words.Spell("naïve")
	var uw *words.UnknownWordError
	require.True(t, errors.As(err, &uw))
	assert.Equal(t, "naïve", uw.Word)

	_, err = words.Spell("'")
	assert.True(t, errors.As(err, &uw))
}
