package sentance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/admiralbulldogtv/splicer/src/textparser/parts"
	"github.com/jdkato/prose/v2"
)

var wordRe = regexp.MustCompile(`[a-z]`)

// Words tokenizes text into words, dropping punctuation tokens. Contractions
// come back whole ("don't").
func Words(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return strings.Fields(text)
	}

	out := []string{}
	for _, tok := range doc.Tokens() {
		w := strings.ToLower(tok.Text)
		if !wordRe.MatchString(w) {
			continue
		}
		// prose splits "don't" into "do" + "n't"
		if len(out) != 0 && (strings.HasPrefix(w, "'") || w == "n't") {
			out[len(out)-1] += w
			continue
		}
		out = append(out, w)
	}
	return out
}

var abr = map[*regexp.Regexp]string{}

var rawAbr = map[string]string{
	"mrs":  "misses",
	"mr":   "mister",
	"mt":   "mount",
	"dr":   "doctor",
	"st":   "saint",
	"co":   "company",
	"jr":   "junior",
	"maj":  "major",
	"gen":  "general",
	"drs":  "doctors",
	"rev":  "reverend",
	"lt":   "lieutenant",
	"hon":  "honorable",
	"sgt":  "sergeant",
	"capt": "captain",
	"esq":  "esquire",
	"ltd":  "limited",
	"col":  "colonel",
	"ft":   "fort",
	"vs":   "versus",
	"etc":  "et cetera",
}

func init() {
	for k, v := range rawAbr {
		abr[regexp.MustCompile(fmt.Sprintf(`\b%s\b\.?`, k))] = v
	}
}

// FixAbbreviations expands common abbreviations in lowercased text.
func FixAbbreviations(pts []parts.Part) []parts.Part {
	for i, v := range pts {
		if !v.Text() {
			continue
		}
		txt := v.Value
		for re, repl := range abr {
			txt = re.ReplaceAllString(txt, repl)
		}
		v.Value = txt
		pts[i] = v
	}

	return pts
}
