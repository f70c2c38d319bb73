package words

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/admiralbulldogtv/splicer/src/phoneme"
	"github.com/gobuffalo/packr/v2"
)

// Lexicon maps a lowercased word to its phoneme symbols.
type Lexicon interface {
	Pronounce(word string) ([]string, bool)
}

// Dict is an in-memory pronunciation dictionary.
type Dict map[string][]string

func (d Dict) Pronounce(word string) ([]string, bool) {
	p, ok := d[strings.ToLower(word)]
	return p, ok
}

type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("no pronunciation for %q", e.Word)
}

var defaultDict Dict

func init() {
	box := packr.New("textparser-static", "./static")
	data, err := box.Find("lexicon.dict")
	if err != nil {
		panic(err)
	}

	if defaultDict, err = ParseDict(bytes.NewReader(data)); err != nil {
		panic(err)
	}
}

// Default is the pronunciation dictionary shipped with the binary.
func Default() Dict {
	return defaultDict
}

// ParseDict reads a CMU style dictionary. Alternate pronunciations, written
// WORD(1), are skipped and stress digits are dropped.
func ParseDict(r io.Reader) (Dict, error) {
	d := Dict{}
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: %q has no phonemes", n, fields[0])
		}
		word := strings.ToLower(fields[0])
		if strings.HasSuffix(word, ")") && strings.Contains(word, "(") {
			continue
		}
		if _, ok := d[word]; ok {
			continue
		}

		phones := make([]string, len(fields)-1)
		for i, f := range fields[1:] {
			phones[i] = phoneme.Normalize(f)
		}
		d[word] = phones
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

var letters = map[rune][]string{
	'a': {"EY"},
	'b': {"B", "IY"},
	'c': {"S", "IY"},
	'd': {"D", "IY"},
	'e': {"IY"},
	'f': {"EH", "F"},
	'g': {"JH", "IY"},
	'h': {"EY", "CH"},
	'i': {"AY"},
	'j': {"JH", "EY"},
	'k': {"K", "EY"},
	'l': {"EH", "L"},
	'm': {"EH", "M"},
	'n': {"EH", "N"},
	'o': {"OW"},
	'p': {"P", "IY"},
	'q': {"K", "Y", "UW"},
	'r': {"AA", "R"},
	's': {"EH", "S"},
	't': {"T", "IY"},
	'u': {"Y", "UW"},
	'v': {"V", "IY"},
	'w': {"D", "AH", "B", "AH", "L", "Y", "UW"},
	'x': {"EH", "K", "S"},
	'y': {"W", "AY"},
	'z': {"Z", "IY"},
}

// read letter by letter even when a dictionary knows them
var acronyms = map[string]bool{
	"abc": true,
	"xyz": true,
	"tts": true,
	"idk": true,
	"fml": true,
	"bf":  true,
	"og":  true,
	"eg":  true,
	"tv":  true,
	"usa": true,
}

// Spell reads a word out letter by letter. Apostrophes are silent.
func Spell(word string) ([]string, error) {
	out := []string{}
	for _, r := range strings.ToLower(word) {
		if r == '\'' {
			continue
		}
		p, ok := letters[r]
		if !ok {
			return nil, &UnknownWordError{Word: word}
		}
		out = append(out, p...)
	}
	if len(out) == 0 {
		return nil, &UnknownWordError{Word: word}
	}
	return out, nil
}

// Lookup tries each lexicon in order and falls back to spelling the word.
func Lookup(word string, lexicons ...Lexicon) ([]string, error) {
	word = strings.ToLower(word)
	if acronyms[word] {
		return Spell(word)
	}
	for _, lex := range lexicons {
		if lex == nil {
			continue
		}
		if p, ok := lex.Pronounce(word); ok && len(p) != 0 {
			return p, nil
		}
	}
	return Spell(word)
}
