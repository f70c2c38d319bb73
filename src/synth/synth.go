package synth

import (
	"github.com/admiralbulldogtv/splicer/src/concat"
	"github.com/admiralbulldogtv/splicer/src/matcher"
	"github.com/admiralbulldogtv/splicer/src/voice"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Crossfade        bool    `json:"crossfade" mapstructure:"crossfade"`
	CrossfadeOverlap float64 `json:"crossfade_overlap" mapstructure:"crossfade_overlap"`
	DualSimilarity   bool    `json:"dual_similarity" mapstructure:"dual_similarity"`
}

func DefaultOptions() Options {
	return Options{
		Crossfade:        true,
		CrossfadeOverlap: 1,
		DualSimilarity:   true,
	}
}

// Validate rejects an overlap fraction outside [0, 1], whether or not
// crossfade is on.
func (o Options) Validate() error {
	return concat.ValidateFraction(o.CrossfadeOverlap)
}

// Synthesizer renders target sequences with one voice. It holds no per request
// state and may be used concurrently.
type Synthesizer struct {
	index   *voice.Index
	matcher *matcher.Matcher
}

func New(index *voice.Index, opts ...matcher.Option) *Synthesizer {
	return &Synthesizer{
		index:   index,
		matcher: matcher.New(index, opts...),
	}
}

func (s *Synthesizer) Voice() *voice.Index {
	return s.index
}

// Targets gives each symbol its sentence neighbours as the desired context.
// The first and last targets have no preference on their outer side.
func Targets(symbols []string) []matcher.Target {
	out := make([]matcher.Target, len(symbols))
	for i, sym := range symbols {
		out[i].Symbol = sym
		if i > 0 {
			out[i].Previous = symbols[i-1]
		}
		if i < len(symbols)-1 {
			out[i].Next = symbols[i+1]
		}
	}
	return out
}

// Synthesize selects an instance per target and joins their audio. Parameters
// and the target list are checked before any audio is touched.
func (s *Synthesizer) Synthesize(targets []matcher.Target, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, concat.ErrEmptyPlan
	}

	plan, err := s.matcher.Plan(targets, opts.DualSimilarity)
	if err != nil {
		return nil, err
	}

	segments := make([][]float64, len(plan))
	for i, sel := range plan {
		if segments[i], err = s.index.Samples(sel.Instance); err != nil {
			return nil, err
		}
	}

	samples, joins, err := concat.Assemble(segments, opts.Crossfade, opts.CrossfadeOverlap)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"voice":     s.index.Name(),
		"targets":   len(targets),
		"samples":   len(samples),
		"crossfade": opts.Crossfade,
	}).Debug("synthesized")

	return &Result{
		Voice:      s.index.Name(),
		SampleRate: s.index.SampleRate(),
		BitDepth:   s.index.BitDepth(),
		Samples:    samples,
		Plan:       plan,
		Overlaps:   joins,
	}, nil
}
