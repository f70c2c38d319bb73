package strip

import (
	"regexp"
	"strings"

	"github.com/admiralbulldogtv/splicer/src/textparser/parts"
)

var re = regexp.MustCompile(`[^a-z' ]`)
var reSpace = regexp.MustCompile(`\s|-`)
var spaceFix = regexp.MustCompile(`\s+`)

// NormalizeCharacters drops everything but letters, apostrophes and single
// spaces from text parts.
func NormalizeCharacters(pts []parts.Part) []parts.Part {
	for i := range pts {
		if !pts[i].Text() {
			continue
		}
		pts[i].Value = strings.TrimSpace(spaceFix.ReplaceAllString(re.ReplaceAllString(reSpace.ReplaceAllString(pts[i].Value, " "), " "), " "))
	}

	return pts
}
