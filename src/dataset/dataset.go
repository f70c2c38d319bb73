package dataset

import (
	"errors"
	"fmt"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultPhoneTiers are the tier names searched for phone intervals.
var DefaultPhoneTiers = []string{"phonetic", "phones"}

// boundaryTolerance is how far, in seconds, an annotation may run past the end
// of its audio before the pair is rejected.
const boundaryTolerance = 0.01

// sampleEpsilon absorbs float error when a boundary lands exactly on a sample.
const sampleEpsilon = 1e-6

var (
	ErrNoIntervals = errors.New("no phone intervals")
	ErrNoAudio     = errors.New("recording has no audio")
	ErrBoundary    = errors.New("annotation boundaries do not match audio")
)

// Pair is a word recording and its annotation sharing one basename.
type Pair struct {
	Word     string
	Wav      string
	TextGrid string
}

// Recording is a decoded word recording with its phone tier.
type Recording struct {
	Word   string
	Audio  *Audio
	Phones []Interval
}

// Scan lists the paired recordings of a voice directory sorted by word.
// Files without a partner are ignored.
func Scan(dir string) ([]Pair, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	wavs := map[string]string{}
	grids := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		switch strings.ToLower(ext) {
		case ".wav":
			wavs[stem] = filepath.Join(dir, name)
		case ".textgrid":
			grids[stem] = filepath.Join(dir, name)
		}
	}

	pairs := []Pair{}
	for stem, wav := range wavs {
		grid, ok := grids[stem]
		if !ok {
			logrus.WithField("file", wav).Debug("no annotation for recording")
			continue
		}
		pairs = append(pairs, Pair{Word: strings.ToLower(stem), Wav: wav, TextGrid: grid})
	}
	for stem, grid := range grids {
		if _, ok := wavs[stem]; !ok {
			logrus.WithField("file", grid).Debug("no recording for annotation")
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Word == pairs[j].Word {
			return pairs[i].Wav < pairs[j].Wav
		}
		return pairs[i].Word < pairs[j].Word
	})

	return pairs, nil
}

// Load decodes a pair and checks the phone tier against the audio.
func (p Pair) Load(tiers ...string) (*Recording, error) {
	if len(tiers) == 0 {
		tiers = DefaultPhoneTiers
	}

	audio, err := ReadWavFile(p.Wav)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(p.Wav), err)
	}

	f, err := os.Open(p.TextGrid)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tg, err := ParseTextGrid(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(p.TextGrid), err)
	}

	tier, err := tg.Tier(tiers...)
	if err != nil {
		return nil, err
	}

	rec := &Recording{Word: p.Word, Audio: audio, Phones: tier.Intervals}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return rec, nil
}

// Validate checks that the phone intervals are ordered, non-overlapping and
// inside the audio.
func (r *Recording) Validate() error {
	if r.Audio == nil {
		return ErrNoAudio
	}
	if len(r.Phones) == 0 {
		return ErrNoIntervals
	}

	duration := r.Audio.Duration()
	prevEnd := 0.0
	for i, iv := range r.Phones {
		if iv.End < iv.Start {
			return fmt.Errorf("%w: interval %d ends before it starts", ErrBoundary, i)
		}
		if iv.Start < prevEnd-boundaryTolerance {
			return fmt.Errorf("%w: interval %d overlaps interval %d", ErrBoundary, i, i-1)
		}
		if iv.End > duration+boundaryTolerance {
			return fmt.Errorf("%w: interval %d ends at %.3fs, audio is %.3fs", ErrBoundary, i, iv.End, duration)
		}
		prevEnd = iv.End
	}

	return nil
}

// Bounds converts an interval to a sample range clamped to the audio.
func (r *Recording) Bounds(iv Interval) (int, int) {
	sr := float64(r.Audio.SampleRate)
	start := int(math.Floor(sr*iv.Start + sampleEpsilon))
	end := int(math.Floor(sr*iv.End + sampleEpsilon))
	if start < 0 {
		start = 0
	}
	if end > len(r.Audio.Samples) {
		end = len(r.Audio.Samples)
	}
	if start > end {
		start = end
	}
	return start, end
}
