package currency

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/admiralbulldogtv/splicer/src/textparser/parts"
)

var re = regexp.MustCompile(`([-+])?\s*(?:([€£$])\s*(\d[\d,]*)(?:\.(\d+))?|(\d[\d,]*)(?:\.(\d+))?\s*([€£$]))`)
var digitsRe = regexp.MustCompile(`[^\d]`)

type unit struct {
	one, many, cent, cents string
}

var units = map[string]unit{
	"$": {"dollar", "dollars", "cent", "cents"},
	"€": {"euro", "euros", "cent", "cents"},
	"£": {"pound", "pounds", "penny", "pence"},
}

// NormalizeCurrency spells out amounts like "$3.50" as "3 dollars and 50 cents".
// The numbers are left for the number normalizer.
func NormalizeCurrency(pts []parts.Part) []parts.Part {
	out := []parts.Part{}
	for _, p := range pts {
		if p.Type != parts.PartTypeRaw || p.Value == "" {
			out = append(out, p)
			continue
		}

		text := p.Value
		for {
			loc := re.FindStringSubmatchIndex(text)
			if loc == nil {
				break
			}
			match := func(i int) string {
				if loc[2*i] < 0 {
					return ""
				}
				return text[loc[2*i]:loc[2*i+1]]
			}

			sign, symbol, whole, frac := match(1), match(2), match(3), match(4)
			if symbol == "" {
				whole, frac, symbol = match(5), match(6), match(7)
			}

			if pre := strings.TrimSpace(text[:loc[0]]); pre != "" {
				out = append(out, parts.Part{Value: pre, Type: parts.PartTypeRaw})
			}
			out = append(out, parts.Part{Value: spell(sign, symbol, whole, frac), Type: parts.PartTypeCurrency})
			text = text[loc[1]:]
		}
		if text = strings.TrimSpace(text); text != "" {
			out = append(out, parts.Part{Value: text, Type: parts.PartTypeRaw})
		}
	}
	return out
}

func spell(sign, symbol, whole, frac string) string {
	u := units[symbol]
	whole = strings.TrimLeft(digitsRe.ReplaceAllString(whole, ""), "0")

	var words []string
	if sign == "-" {
		words = append(words, "minus")
	}

	if len(frac) > 2 {
		if whole == "" {
			whole = "0"
		}
		return strings.Join(append(words, fmt.Sprintf("%s.%s %s", whole, frac, u.many)), " ")
	}

	if whole != "" {
		name := u.many
		if whole == "1" {
			name = u.one
		}
		words = append(words, whole, name)
	}

	if len(frac) == 1 {
		frac += "0"
	}
	if frac = strings.TrimLeft(frac, "0"); frac != "" {
		name := u.cents
		if frac == "1" {
			name = u.cent
		}
		if whole != "" {
			words = append(words, "and")
		}
		words = append(words, frac, name)
	}

	if whole == "" && frac == "" {
		words = append(words, "0", u.many)
	}

	return strings.Join(words, " ")
}
