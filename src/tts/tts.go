package tts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/admiralbulldogtv/splicer/src/datastructures"
	"github.com/admiralbulldogtv/splicer/src/global"
	"github.com/admiralbulldogtv/splicer/src/instances"
	"github.com/admiralbulldogtv/splicer/src/matcher"
	"github.com/admiralbulldogtv/splicer/src/redis"
	"github.com/admiralbulldogtv/splicer/src/synth"
	"github.com/admiralbulldogtv/splicer/src/textparser"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const EventsChannel = "synth:events"

var (
	ErrNotFound = errors.New("synthesis not found")
	ErrNoCache  = errors.New("no redis configured")
)

func CacheKey(id string) string {
	return fmt.Sprintf("generated:synth:%s", id)
}

type ttsInstance struct {
	gCtx global.Context
}

func NewInstance(ctx global.Context) instances.TTS {
	return &ttsInstance{gCtx: ctx}
}

// Options merges per request overrides onto the configured defaults.
func Options(cfg synth.Options, req datastructures.SynthesizeRequest) synth.Options {
	if req.Crossfade != nil {
		cfg.Crossfade = *req.Crossfade
	}
	if req.CrossfadeOverlap != nil {
		cfg.CrossfadeOverlap = *req.CrossfadeOverlap
	}
	if req.DualSimilarity != nil {
		cfg.DualSimilarity = *req.DualSimilarity
	}
	return cfg
}

func (inst *ttsInstance) defaults() synth.Options {
	c := inst.gCtx.Config().Synth
	return synth.Options{
		Crossfade:        c.Crossfade,
		CrossfadeOverlap: c.CrossfadeOverlap,
		DualSimilarity:   c.DualSimilarity,
	}
}

// Synthesize renders a request without storing anything.
func (inst *ttsInstance) Synthesize(ctx context.Context, req datastructures.SynthesizeRequest) (*datastructures.Synthesis, *synth.Result, error) {
	opts := Options(inst.defaults(), req)
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	s, err := inst.gCtx.Inst().Voices.Get(req.Voice)
	if err != nil {
		return nil, nil, err
	}

	var symbols []string
	if strings.TrimSpace(req.Phonemes) != "" {
		symbols, err = textparser.ParsePhonemes(req.Phonemes)
	} else {
		symbols, err = textparser.Phonemize(req.Sentence, s.Voice())
	}
	if err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	res, err := s.Synthesize(synth.Targets(symbols), opts)
	if err != nil {
		return nil, nil, err
	}

	record := &datastructures.Synthesis{
		ID:       uuid.New().String(),
		Voice:    res.Voice,
		Sentence: req.Sentence,
		Phonemes: symbols,
		Options: datastructures.SynthOptions{
			Crossfade:        opts.Crossfade,
			CrossfadeOverlap: opts.CrossfadeOverlap,
			DualSimilarity:   opts.DualSimilarity,
		},
		SampleRate: res.SampleRate,
		Duration:   time.Duration(res.Duration() * float64(time.Second)),
		Segments:   Segments(res.Plan),
		Overlaps:   res.Overlaps,
		CreatedAt:  time.Now(),
	}

	return record, res, nil
}

func Segments(plan matcher.Plan) []datastructures.Segment {
	out := make([]datastructures.Segment, len(plan))
	for i, sel := range plan {
		out[i] = datastructures.Segment{
			Symbol:   sel.Instance.Symbol,
			Word:     sel.Instance.Word,
			Position: sel.Instance.Position,
			Start:    sel.Instance.Start,
			End:      sel.Instance.End,
			Context:  sel.Score.Context,
			Spectral: sel.Score.Spectral,
		}
	}
	return out
}

// Generate renders a request, caches the wav in redis for redis_ttl, records
// it in mongo when configured and announces it on EventsChannel.
func (inst *ttsInstance) Generate(ctx context.Context, req datastructures.SynthesizeRequest) (*datastructures.Synthesis, error) {
	r := inst.gCtx.Inst().Redis
	if r == nil {
		return nil, ErrNoCache
	}

	record, res, err := inst.Synthesize(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := res.Bytes()
	if err != nil {
		return nil, err
	}

	if err := r.Set(ctx, CacheKey(record.ID), string(data), inst.gCtx.Config().RedisTTL); err != nil {
		return nil, err
	}

	if m := inst.gCtx.Inst().Mongo; m != nil {
		if err := m.InsertSynthesis(ctx, *record); err != nil {
			logrus.WithError(err).WithField("id", record.ID).Error("failed to store synthesis")
		}
	}

	event, err := json.MarshalToString(datastructures.Event{
		Event: "synthesis",
		Payload: datastructures.EventSynthesis{
			ID:       record.ID,
			Voice:    record.Voice,
			Duration: res.Duration(),
		},
	})
	if err != nil {
		return nil, err
	}
	if err := r.Publish(ctx, EventsChannel, event); err != nil {
		logrus.WithError(err).Warn("failed to publish synthesis event")
	}

	logrus.WithFields(logrus.Fields{
		"id":       record.ID,
		"voice":    record.Voice,
		"duration": res.Duration(),
	}).Info("generated")

	return record, nil
}

func (inst *ttsInstance) Fetch(ctx context.Context, id string) ([]byte, error) {
	r := inst.gCtx.Inst().Redis
	if r == nil {
		return nil, ErrNoCache
	}

	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	result, err := r.Get(ctx, CacheKey(id))
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return []byte(result), nil
}
