package voices

import (
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/admiralbulldogtv/splicer/src/datastructures"
	"github.com/admiralbulldogtv/splicer/src/matcher"
	"github.com/admiralbulldogtv/splicer/src/synth"
	"github.com/admiralbulldogtv/splicer/src/voice"
	"github.com/sirupsen/logrus"
)

var ErrUnknownVoice = errors.New("unknown voice")

type Options struct {
	DataDir        string
	PhoneTiers     []string
	FrameSize      int
	SpectralWeight float64
}

type entry struct {
	cfg datastructures.VoiceConfig
	dir string

	mtx   sync.Mutex
	synth *synth.Synthesizer
}

// Registry finds voices under the data dir and loads each one on first use.
// Loaded voices are kept until Reload.
type Registry struct {
	opts   Options
	voices map[string]*entry
	names  []string
}

// New lists the voice directories under opts.DataDir and applies the
// catalogue on top: entries may rename, relocate, add or disable voices.
func New(opts Options, configs []datastructures.VoiceConfig) (*Registry, error) {
	r := &Registry{opts: opts, voices: map[string]*entry{}}

	files, err := ioutil.ReadDir(opts.DataDir)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if !f.IsDir() || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		name := strings.ToLower(f.Name())
		r.voices[name] = &entry{
			cfg: datastructures.VoiceConfig{Name: name, DisplayName: f.Name()},
			dir: filepath.Join(opts.DataDir, f.Name()),
		}
	}

	for _, cfg := range configs {
		name := strings.ToLower(cfg.Name)
		if name == "" {
			continue
		}
		if cfg.Disabled {
			delete(r.voices, name)
			continue
		}

		e, ok := r.voices[name]
		if !ok {
			if cfg.Directory == "" {
				logrus.WithField("voice", name).Warn("catalogue entry has no directory")
				continue
			}
			e = &entry{}
			r.voices[name] = e
		}
		if cfg.Directory != "" {
			e.dir = cfg.Directory
			if !filepath.IsAbs(e.dir) {
				e.dir = filepath.Join(opts.DataDir, e.dir)
			}
		}
		if cfg.DisplayName == "" {
			cfg.DisplayName = name
		}
		cfg.Name = name
		e.cfg = cfg
	}

	for name := range r.voices {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	logrus.WithField("voices", r.names).Info("voices discovered")

	return r, nil
}

func (r *Registry) Names() []string {
	return append([]string{}, r.names...)
}

// Get returns the synthesizer of a voice, loading it if needed.
func (r *Registry) Get(name string) (*synth.Synthesizer, error) {
	e, ok := r.voices[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVoice, name)
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.synth != nil {
		return e.synth, nil
	}

	tiers := r.opts.PhoneTiers
	if len(e.cfg.PhoneTiers) != 0 {
		tiers = e.cfg.PhoneTiers
	}
	weight := r.opts.SpectralWeight
	if e.cfg.SpectralWeight != nil {
		weight = *e.cfg.SpectralWeight
	}

	idx, err := voice.Load(e.dir, voice.WithPhoneTiers(tiers...), voice.WithFrameSize(r.opts.FrameSize))
	if err != nil {
		return nil, fmt.Errorf("failed to load voice %s: %w", e.cfg.Name, err)
	}
	if warnings := idx.Warnings(); warnings != nil {
		logrus.WithError(warnings).WithField("voice", e.cfg.Name).Warn("voice loaded with skipped words")
	}

	e.synth = synth.New(idx, matcher.WithSpectralWeight(weight))
	return e.synth, nil
}

// Reload drops a loaded voice so the next Get reads it from disk again. An
// empty name drops every voice.
func (r *Registry) Reload(name string) {
	for n, e := range r.voices {
		if name != "" && n != strings.ToLower(name) {
			continue
		}
		e.mtx.Lock()
		e.synth = nil
		e.mtx.Unlock()
	}
}

func (r *Registry) List() []datastructures.VoiceInfo {
	out := make([]datastructures.VoiceInfo, 0, len(r.names))
	for _, name := range r.names {
		e := r.voices[name]
		info := datastructures.VoiceInfo{Name: name, DisplayName: e.cfg.DisplayName}

		e.mtx.Lock()
		if e.synth != nil {
			idx := e.synth.Voice()
			info.Loaded = true
			info.Words = len(idx.Words())
			info.Instances = idx.Len()
			info.SampleRate = idx.SampleRate()
			info.Symbols = idx.Symbols()
		}
		e.mtx.Unlock()

		out = append(out, info)
	}
	return out
}
