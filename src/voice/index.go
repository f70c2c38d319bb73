package voice

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/admiralbulldogtv/splicer/src/dataset"
	"github.com/admiralbulldogtv/splicer/src/phoneme"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Instance is one recorded phoneme. Prev and Next are empty at a word edge or
// next to silence.
type Instance struct {
	ID       int
	Symbol   string
	Word     string
	Position int
	Prev     string
	Next     string
	Spectral float64
	Start    int
	End      int

	recording int
}

// Len is the instance length in samples.
func (i Instance) Len() int {
	return i.End - i.Start
}

// Index is the read-only phoneme arena of a single voice. It is safe to share
// across goroutines once built.
type Index struct {
	name       string
	sampleRate int
	bitDepth   int

	recordings []*dataset.Recording
	instances  []Instance
	bySymbol   map[string][]int
	byWord     map[string][]int
	baseline   float64

	warnings *multierror.Error
}

type options struct {
	tiers     []string
	frameSize int
}

type Option func(*options)

// WithPhoneTiers sets the tier names searched for phone intervals.
func WithPhoneTiers(tiers ...string) Option {
	return func(o *options) {
		if len(tiers) != 0 {
			o.tiers = tiers
		}
	}
}

// WithFrameSize sets the FFT frame used for the spectral metric.
func WithFrameSize(n int) Option {
	return func(o *options) {
		if n > 1 {
			o.frameSize = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{tiers: dataset.DefaultPhoneTiers, frameSize: DefaultFrameSize}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

var silence = map[string]bool{
	"":    true,
	"sil": true,
	"sp":  true,
	"spn": true,
}

// IsSilence reports whether an annotation label marks a pause rather than a phone.
func IsSilence(label string) bool {
	return silence[strings.ToLower(strings.TrimSpace(label))]
}

// Load indexes every paired recording in dir. Words that fail to load are
// skipped and reported by Warnings.
func Load(dir string, opts ...Option) (*Index, error) {
	o := newOptions(opts)

	pairs, err := dataset.Scan(dir)
	if err != nil {
		return nil, err
	}

	b := newBuilder(filepath.Base(filepath.Clean(dir)), o)
	for _, p := range pairs {
		rec, err := p.Load(o.tiers...)
		if err != nil {
			b.warn(p.Word, err)
			continue
		}
		b.add(rec)
	}

	return b.finish()
}

// Build indexes recordings that are already in memory.
func Build(name string, recs []*dataset.Recording, opts ...Option) (*Index, error) {
	b := newBuilder(name, newOptions(opts))
	for _, rec := range recs {
		if err := rec.Validate(); err != nil {
			b.warn(rec.Word, err)
			continue
		}
		b.add(rec)
	}
	return b.finish()
}

type builder struct {
	idx  *Index
	spec *spectrum
}

func newBuilder(name string, o options) *builder {
	return &builder{
		idx: &Index{
			name:     name,
			bySymbol: map[string][]int{},
			byWord:   map[string][]int{},
		},
		spec: newSpectrum(o.frameSize),
	}
}

func (b *builder) warn(word string, err error) {
	derr := &DatasetError{Word: word, Err: err}
	logrus.WithError(err).WithFields(logrus.Fields{
		"voice": b.idx.name,
		"word":  word,
	}).Warn("skipping word")
	b.idx.warnings = multierror.Append(b.idx.warnings, derr)
}

func (b *builder) add(rec *dataset.Recording) {
	idx := b.idx
	word := strings.ToLower(rec.Word)

	if _, ok := idx.byWord[word]; ok {
		b.warn(word, ErrDuplicateWord)
		return
	}
	if idx.sampleRate == 0 {
		idx.sampleRate = rec.Audio.SampleRate
		idx.bitDepth = rec.Audio.BitDepth
	} else if rec.Audio.SampleRate != idx.sampleRate {
		b.warn(word, fmt.Errorf("%w: %d, expected %d", ErrSampleRate, rec.Audio.SampleRate, idx.sampleRate))
		return
	}

	recID := len(idx.recordings)
	idx.recordings = append(idx.recordings, rec)

	ids := []int{}
	for pos, iv := range rec.Phones {
		if IsSilence(iv.Label) {
			continue
		}
		start, end := rec.Bounds(iv)
		if end <= start {
			logrus.WithFields(logrus.Fields{
				"voice":    idx.name,
				"word":     word,
				"position": pos,
			}).Debug("empty phone interval")
			continue
		}

		inst := Instance{
			ID:        len(idx.instances),
			Symbol:    phoneme.Normalize(iv.Label),
			Word:      word,
			Position:  pos,
			Prev:      neighbour(rec.Phones, pos-1),
			Next:      neighbour(rec.Phones, pos+1),
			Spectral:  b.spec.metric(rec.Audio.Samples[start:end]),
			Start:     start,
			End:       end,
			recording: recID,
		}
		idx.instances = append(idx.instances, inst)
		idx.bySymbol[inst.Symbol] = append(idx.bySymbol[inst.Symbol], inst.ID)
		ids = append(ids, inst.ID)
	}

	idx.byWord[word] = ids
}

func neighbour(phones []dataset.Interval, i int) string {
	if i < 0 || i >= len(phones) || IsSilence(phones[i].Label) {
		return ""
	}
	return phoneme.Normalize(phones[i].Label)
}

func (b *builder) finish() (*Index, error) {
	idx := b.idx
	if len(idx.instances) == 0 {
		if err := idx.warnings.ErrorOrNil(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrEmptyVoice, idx.name, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrEmptyVoice, idx.name)
	}

	metrics := make([]float64, len(idx.instances))
	for i, inst := range idx.instances {
		metrics[i] = inst.Spectral
	}
	idx.baseline = stat.Mean(metrics, nil)

	logrus.WithFields(logrus.Fields{
		"voice":     idx.name,
		"words":     len(idx.byWord),
		"instances": len(idx.instances),
		"symbols":   len(idx.bySymbol),
	}).Info("voice indexed")

	return idx, nil
}

func (x *Index) Name() string {
	return x.name
}

func (x *Index) SampleRate() int {
	return x.sampleRate
}

func (x *Index) BitDepth() int {
	return x.bitDepth
}

// Len is the number of indexed instances.
func (x *Index) Len() int {
	return len(x.instances)
}

// Baseline is the mean spectral metric of the voice.
func (x *Index) Baseline() float64 {
	return x.baseline
}

// Warnings aggregates the DatasetErrors of skipped words, nil when none.
func (x *Index) Warnings() error {
	return x.warnings.ErrorOrNil()
}

// InstancesOf lists every instance of symbol in load order.
func (x *Index) InstancesOf(symbol string) []Instance {
	return x.collect(x.bySymbol[phoneme.Normalize(symbol)])
}

// Word lists the instances of a recorded word by position.
func (x *Index) Word(word string) []Instance {
	return x.collect(x.byWord[strings.ToLower(word)])
}

// Pronounce returns the annotated symbols of a recorded word.
func (x *Index) Pronounce(word string) ([]string, bool) {
	ids, ok := x.byWord[strings.ToLower(word)]
	if !ok || len(ids) == 0 {
		return nil, false
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = x.instances[id].Symbol
	}
	return out, true
}

func (x *Index) Words() []string {
	out := make([]string, 0, len(x.byWord))
	for _, rec := range x.recordings {
		word := strings.ToLower(rec.Word)
		if _, ok := x.byWord[word]; ok {
			out = append(out, word)
		}
	}
	return out
}

// Symbols lists the distinct symbols the voice can produce.
func (x *Index) Symbols() []string {
	out := []string{}
	seen := map[string]bool{}
	for _, inst := range x.instances {
		if !seen[inst.Symbol] {
			seen[inst.Symbol] = true
			out = append(out, inst.Symbol)
		}
	}
	return out
}

// Samples returns the audio of an instance. The slice aliases the recording
// and must not be modified.
func (x *Index) Samples(inst Instance) ([]float64, error) {
	if inst.ID < 0 || inst.ID >= len(x.instances) || x.instances[inst.ID] != inst {
		return nil, ErrUnknownInstance
	}
	return x.recordings[inst.recording].Audio.Samples[inst.Start:inst.End], nil
}

func (x *Index) collect(ids []int) []Instance {
	out := make([]Instance, len(ids))
	for i, id := range ids {
		out[i] = x.instances[id]
	}
	return out
}
