package numbers

import (
	"regexp"
	"strings"

	"github.com/admiralbulldogtv/splicer/src/textparser/parts"
)

var re = regexp.MustCompile(`([-+])?(\d+(?:,\d{3})*)(?:\.(\d+))?`)
var digitsRe = regexp.MustCompile(`[^\d]`)

var tens = []string{"", "ten", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
var units = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}

var dividers = []string{
	"",
	"thousand",
	"million",
	"billion",
	"trillion",
	"quadrillion",
	"quintillion",
}

// NormalizeNumbers reads digits out as words: "-12.5" becomes
// "minus twelve point five". Numbers with a leading zero, or too long to name,
// are read digit by digit.
func NormalizeNumbers(pts []parts.Part) []parts.Part {
	for i, p := range pts {
		if !p.Text() {
			continue
		}

		p.Value = re.ReplaceAllStringFunc(p.Value, func(m string) string {
			sub := re.FindStringSubmatch(m)
			words := []string{}
			if sub[1] == "-" {
				words = append(words, "minus")
			}

			number := digitsRe.ReplaceAllString(sub[2], "")
			if len(number) > 1 && number[0] == '0' {
				words = append(words, digits(number)...)
			} else {
				words = append(words, Read(number))
			}

			if sub[3] != "" {
				words = append(words, "point")
				words = append(words, digits(sub[3])...)
			}

			return " " + strings.Join(words, " ") + " "
		})
		p.Value = strings.Join(strings.Fields(p.Value), " ")
		pts[i] = p
	}

	return pts
}

// Read names a string of digits, e.g. "1204" -> "one thousand two hundred and four".
func Read(number string) string {
	groups := split(number)
	if len(groups) > len(dividers) {
		return strings.Join(digits(number), " ")
	}
	if len(groups) == 1 && groups[0] == 0 {
		return units[0]
	}

	words := []string{}
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		words = append(words, hundreds(groups[i]))
		if dividers[i] != "" {
			words = append(words, dividers[i])
		}
	}
	return strings.Join(words, " ")
}

// split breaks a number into groups of three digits, least significant first.
func split(number string) []int {
	groups := []int{}
	for end := len(number); end > 0; end -= 3 {
		start := end - 3
		if start < 0 {
			start = 0
		}
		n := 0
		for _, r := range number[start:end] {
			n = n*10 + int(r-'0')
		}
		groups = append(groups, n)
	}
	return groups
}

func hundreds(number int) string {
	words := []string{}
	if number >= 100 {
		words = append(words, units[number/100], "hundred")
		number %= 100
	}
	if number >= 20 {
		if len(words) != 0 {
			words = append(words, "and")
		}
		words = append(words, tens[number/10])
		number %= 10
	} else if number != 0 && len(words) != 0 {
		words = append(words, "and")
	}
	if number != 0 {
		words = append(words, units[number])
	}
	return strings.Join(words, " ")
}

func digits(number string) []string {
	out := make([]string, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			out = append(out, units[r-'0'])
		}
	}
	return out
}
