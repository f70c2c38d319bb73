package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"regexp"
	"strconv"
	"strings"
)

// Interval is one labelled span of an interval tier, in seconds.
type Interval struct {
	Start float64
	End   float64
	Label string
}

type Tier struct {
	Name      string
	Intervals []Interval
}

// TextGrid is a parsed Praat annotation. Point tiers are read and dropped.
type TextGrid struct {
	Start float64
	End   float64
	Tiers []Tier
}

var (
	ErrNotTextGrid  = errors.New("not a textgrid")
	ErrTruncated    = errors.New("textgrid truncated")
	ErrTierNotFound = errors.New("tier not found")
	ErrBadCount     = errors.New("textgrid count is not a non-negative integer")
)

// Praat writes the same value sequence in its long and short text formats; the
// long one only adds "key =" labels and "[n]" indices around the values.
var tokenRe = regexp.MustCompile(`"(?:[^"]|"")*"|\[\d*\]|<exists>|<absent>|-?\d+(?:\.\d*)?(?:[eE][-+]?\d+)?`)

type tokens struct {
	list []string
	pos  int
}

func (t *tokens) next() (string, error) {
	if t.pos >= len(t.list) {
		return "", ErrTruncated
	}
	s := t.list[t.pos]
	t.pos++
	return s, nil
}

func (t *tokens) str() (string, error) {
	s, err := t.next()
	if err != nil {
		return "", err
	}
	if len(s) < 2 || s[0] != '"' {
		return "", fmt.Errorf("expected string, got %q", s)
	}
	return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`), nil
}

func (t *tokens) num() (float64, error) {
	s, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}

// count reads an item count where each item takes at least width tokens. A
// count the rest of the file cannot hold is truncation.
func (t *tokens) count(width int) (int, error) {
	s, err := t.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad count %q", ErrBadCount, s)
	}
	if n > (len(t.list)-t.pos)/width {
		return 0, ErrTruncated
	}
	return n, nil
}

func ParseTextGrid(r io.Reader) (*TextGrid, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.TrimPrefix(string(data), "\ufeff")

	t := &tokens{}
	for _, tok := range tokenRe.FindAllString(text, -1) {
		if tok[0] == '[' {
			continue
		}
		t.list = append(t.list, tok)
	}

	fileType, err := t.str()
	// older praat writes "ooTextFile short" for the short format
	if err != nil || !strings.HasPrefix(fileType, "ooTextFile") {
		return nil, ErrNotTextGrid
	}
	if class, err := t.str(); err != nil || class != "TextGrid" {
		return nil, ErrNotTextGrid
	}

	tg := &TextGrid{}
	if tg.Start, err = t.num(); err != nil {
		return nil, err
	}
	if tg.End, err = t.num(); err != nil {
		return nil, err
	}
	flag, err := t.next()
	if err != nil {
		return nil, err
	}
	if flag != "<exists>" {
		return tg, nil
	}
	// class, name, xmin, xmax, size
	count, err := t.count(5)
	if err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		tier, err := readTier(t)
		if err != nil {
			return nil, fmt.Errorf("tier %d: %w", i+1, err)
		}
		if tier != nil {
			tg.Tiers = append(tg.Tiers, *tier)
		}
	}

	return tg, nil
}

func readTier(t *tokens) (*Tier, error) {
	class, err := t.str()
	if err != nil {
		return nil, err
	}
	name, err := t.str()
	if err != nil {
		return nil, err
	}
	// tier xmin, xmax
	if _, err = t.num(); err != nil {
		return nil, err
	}
	if _, err = t.num(); err != nil {
		return nil, err
	}
	switch class {
	case "IntervalTier":
		n, err := t.count(3)
		if err != nil {
			return nil, err
		}
		tier := &Tier{Name: name, Intervals: make([]Interval, 0, n)}
		for i := 0; i < n; i++ {
			var iv Interval
			if iv.Start, err = t.num(); err != nil {
				return nil, err
			}
			if iv.End, err = t.num(); err != nil {
				return nil, err
			}
			if iv.Label, err = t.str(); err != nil {
				return nil, err
			}
			iv.Label = strings.TrimSpace(iv.Label)
			tier.Intervals = append(tier.Intervals, iv)
		}
		return tier, nil
	case "TextTier":
		n, err := t.count(2)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if _, err = t.num(); err != nil {
				return nil, err
			}
			if _, err = t.str(); err != nil {
				return nil, err
			}
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown tier class %q", class)
	}
}

// Tier returns the first tier matching one of names, case-insensitively, in
// the order the names are given.
func (tg *TextGrid) Tier(names ...string) (*Tier, error) {
	for _, name := range names {
		for i := range tg.Tiers {
			if strings.EqualFold(tg.Tiers[i].Name, name) {
				return &tg.Tiers[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTierNotFound, strings.Join(names, ", "))
}
