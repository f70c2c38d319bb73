package override

import (
	"regexp"
	"strings"

	"github.com/admiralbulldogtv/splicer/src/textparser/parts"
)

var re = regexp.MustCompile(`[^a-z0-9\s]`)

// NormalizeOverride splits out `quoted` phoneme spellings, e.g. "say `HH AH0 L OW1`".
// A backslash escapes the next character.
func NormalizeOverride(pts []parts.Part) []parts.Part {
	out := []parts.Part{}
	for _, p := range pts {
		if p.Type != parts.PartTypeRaw {
			out = append(out, p)
			continue
		}

		text := p.Value
		open := -1
		for i := 0; i < len(text); i++ {
			switch text[i] {
			case '\\':
				i++
			case '`':
				if open == -1 {
					open = i
					continue
				}
				if pre := strings.TrimSpace(text[:open]); pre != "" {
					out = append(out, parts.Part{Value: pre, Type: parts.PartTypeRaw})
				}
				body := strings.Join(strings.Fields(re.ReplaceAllString(strings.ToLower(text[open+1:i]), " ")), " ")
				if body != "" {
					out = append(out, parts.Part{Value: body, Type: parts.PartTypeOverride})
				}
				text = text[i+1:]
				open = -1
				i = -1
			}
		}
		if text = strings.TrimSpace(text); text != "" {
			out = append(out, parts.Part{Value: text, Type: parts.PartTypeRaw})
		}
	}
	return out
}
