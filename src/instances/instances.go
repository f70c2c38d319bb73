package instances

import (
	"context"
	"time"

	"github.com/admiralbulldogtv/splicer/src/datastructures"
	"github.com/admiralbulldogtv/splicer/src/synth"
)

type Redis interface {
	Ping(ctx context.Context) error
	Subscribe(ctx context.Context, ch chan string, subscribeTo ...string)
	Publish(ctx context.Context, channel string, data string) error
	Set(ctx context.Context, key string, value string, expiry time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

type Mongo interface {
	Ping(ctx context.Context) error
	FetchVoices(ctx context.Context) ([]datastructures.VoiceConfig, error)
	InsertSynthesis(ctx context.Context, s datastructures.Synthesis) error
}

type Voices interface {
	List() []datastructures.VoiceInfo
	Get(name string) (*synth.Synthesizer, error)
	Reload(name string)
}

type TTS interface {
	Synthesize(ctx context.Context, req datastructures.SynthesizeRequest) (*datastructures.Synthesis, *synth.Result, error)
	Generate(ctx context.Context, req datastructures.SynthesizeRequest) (*datastructures.Synthesis, error)
	Fetch(ctx context.Context, id string) ([]byte, error)
}
