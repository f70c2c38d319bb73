package matcher

import (
	"errors"
	"fmt"
	"math"

	"github.com/admiralbulldogtv/splicer/src/phoneme"
	"github.com/admiralbulldogtv/splicer/src/voice"
	"github.com/sirupsen/logrus"
)

var ErrNoTargets = errors.New("no target phonemes")

// NoCandidateError is returned when the voice never recorded a symbol.
type NoCandidateError struct {
	Symbol string
}

func (e *NoCandidateError) Error() string {
	return fmt.Sprintf("no recorded instance of phoneme %q", e.Symbol)
}

// Corpus is the part of a voice index the matcher reads.
type Corpus interface {
	InstancesOf(symbol string) []voice.Instance
	Baseline() float64
}

// Target is a phoneme to produce. Previous and Next are the desired
// neighbours, either a symbol or a type name, empty for no preference.
type Target struct {
	Symbol   string `json:"symbol"`
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
}

type Score struct {
	Context  float64 `json:"context"`
	Spectral float64 `json:"spectral"`
}

func (s Score) Total() float64 {
	return s.Context + s.Spectral
}

type Selection struct {
	Target   Target
	Instance voice.Instance
	Score    Score
}

// Plan is one selection per target, in target order.
type Plan []Selection

type Matcher struct {
	corpus         Corpus
	hierarchy      *phoneme.Hierarchy
	spectralWeight float64
}

type Option func(*Matcher)

// WithSpectralWeight scales the spectral term of the score.
func WithSpectralWeight(w float64) Option {
	return func(m *Matcher) {
		if w >= 0 && !math.IsNaN(w) && !math.IsInf(w, 0) {
			m.spectralWeight = w
		}
	}
}

// WithHierarchy replaces the default ARPAbet hierarchy.
func WithHierarchy(h *phoneme.Hierarchy) Option {
	return func(m *Matcher) {
		if h != nil {
			m.hierarchy = h
		}
	}
}

func New(corpus Corpus, opts ...Option) *Matcher {
	m := &Matcher{
		corpus:         corpus,
		hierarchy:      phoneme.Default(),
		spectralWeight: 1,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Context scores how far a candidate's recorded neighbours are from the
// desired ones. A side with no preference, or no recorded neighbour, costs
// nothing.
func (m *Matcher) Context(t Target, inst voice.Instance) float64 {
	return m.side(inst.Prev, t.Previous) + m.side(inst.Next, t.Next)
}

func (m *Matcher) side(have, want string) float64 {
	if have == "" || want == "" {
		return 0
	}
	if m.hierarchy.IsCompatible(have, want) {
		return 0
	}
	return m.hierarchy.Distance(have, want)
}

// Select picks the lowest scoring instance of t.Symbol. Expected is the
// spectral metric the candidate should be close to and only matters when dual
// is set. Ties go to the earliest instance.
func (m *Matcher) Select(t Target, expected float64, dual bool) (Selection, error) {
	candidates := m.corpus.InstancesOf(t.Symbol)
	if len(candidates) == 0 {
		return Selection{}, &NoCandidateError{Symbol: phoneme.Normalize(t.Symbol)}
	}

	best := Selection{Target: t}
	bestTotal := math.Inf(1)
	for _, c := range candidates {
		s := Score{Context: m.Context(t, c)}
		if dual {
			s.Spectral = math.Abs(c.Spectral-expected) * m.spectralWeight
		}
		if total := s.Total(); total < bestTotal {
			bestTotal = total
			best.Instance = c
			best.Score = s
		}
	}

	return best, nil
}

// Plan selects greedily from left to right. Each choice sets the expected
// spectral metric of the next one; the first is compared with the voice
// baseline.
func (m *Matcher) Plan(targets []Target, dual bool) (Plan, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	plan := make(Plan, 0, len(targets))
	expected := m.corpus.Baseline()
	for i, t := range targets {
		sel, err := m.Select(t, expected, dual)
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		logrus.WithFields(logrus.Fields{
			"symbol": sel.Instance.Symbol,
			"word":   sel.Instance.Word,
			"score":  sel.Score.Total(),
		}).Debug("selected instance")

		plan = append(plan, sel)
		expected = sel.Instance.Spectral
	}

	return plan, nil
}
