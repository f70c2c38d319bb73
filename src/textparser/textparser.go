package textparser

import (
	"strings"

	"github.com/admiralbulldogtv/splicer/src/phoneme"
	"github.com/admiralbulldogtv/splicer/src/textparser/currency"
	"github.com/admiralbulldogtv/splicer/src/textparser/numbers"
	"github.com/admiralbulldogtv/splicer/src/textparser/override"
	"github.com/admiralbulldogtv/splicer/src/textparser/parts"
	"github.com/admiralbulldogtv/splicer/src/textparser/sentance"
	"github.com/admiralbulldogtv/splicer/src/textparser/strip"
	"github.com/admiralbulldogtv/splicer/src/textparser/words"
	"github.com/sirupsen/logrus"
)

// UnknownSymbolError is a backtick override naming something that is not a
// phoneme.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return "unknown phoneme " + e.Symbol
}

// Process normalizes a sentence into readable parts.
func Process(text string) []parts.Part {
	text = strings.ToLower(text)

	stat := override.NormalizeOverride([]parts.Part{{Type: parts.PartTypeRaw, Value: text}})
	stat = currency.NormalizeCurrency(stat)
	stat = numbers.NormalizeNumbers(stat)
	stat = sentance.FixAbbreviations(stat)
	stat = strip.NormalizeCharacters(stat)

	return stat
}

// Phonemize converts a sentence to phoneme symbols. Words are looked up in the
// given lexicons in order, then the built in dictionary, then spelled out.
func Phonemize(text string, lexicons ...words.Lexicon) ([]string, error) {
	h := phoneme.Default()
	lexicons = append(append([]words.Lexicon{}, lexicons...), words.Default())
	out := []string{}
	for _, p := range Process(text) {
		if p.Type == parts.PartTypeOverride {
			for _, s := range strings.Fields(p.Value) {
				if !h.IsSymbol(s) {
					return nil, &UnknownSymbolError{Symbol: phoneme.Normalize(s)}
				}
				out = append(out, phoneme.Normalize(s))
			}
			continue
		}

		for _, w := range sentance.Words(p.Value) {
			pron, err := words.Lookup(w, lexicons...)
			if err != nil {
				return nil, err
			}
			logrus.WithFields(logrus.Fields{
				"word":     w,
				"phonemes": strings.Join(pron, " "),
			}).Debug("phonemized")
			out = append(out, pron...)
		}
	}
	return out, nil
}

// ParsePhonemes splits a space separated symbol list, e.g. "HH AH0 L OW1".
func ParsePhonemes(s string) ([]string, error) {
	h := phoneme.Default()
	out := []string{}
	for _, f := range strings.Fields(s) {
		if !h.IsSymbol(f) {
			return nil, &UnknownSymbolError{Symbol: phoneme.Normalize(f)}
		}
		out = append(out, phoneme.Normalize(f))
	}
	return out, nil
}
