// Package instancestest has in-memory stand-ins for the redis and mongo
// instances.
package instancestest

import (
	"context"
	"sync"
	"time"

	"github.com/admiralbulldogtv/splicer/src/datastructures"
	"github.com/admiralbulldogtv/splicer/src/redis"
)

type Message struct {
	Channel string
	Data    string
}

type Redis struct {
	mtx       sync.Mutex
	Values    map[string]string
	Expiry    map[string]time.Duration
	Published []Message
	PingErr   error

	subs map[string][]chan string
}

func NewRedis() *Redis {
	return &Redis{
		Values: map[string]string{},
		Expiry: map[string]time.Duration{},
		subs:   map[string][]chan string{},
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.PingErr
}

func (r *Redis) Subscribe(ctx context.Context, ch chan string, subscribeTo ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for _, name := range subscribeTo {
		r.subs[name] = append(r.subs[name], ch)
	}
}

// Subscribers is the number of channels listening on name.
func (r *Redis) Subscribers(name string) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.subs[name])
}

func (r *Redis) Publish(ctx context.Context, channel string, data string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.Published = append(r.Published, Message{Channel: channel, Data: data})
	for _, ch := range r.subs[channel] {
		select {
		case ch <- data:
		default:
		}
	}
	return nil
}

func (r *Redis) Set(ctx context.Context, key string, value string, expiry time.Duration) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.Values[key] = value
	r.Expiry[key] = expiry
	return nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	v, ok := r.Values[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

type Mongo struct {
	mtx       sync.Mutex
	Voices    []datastructures.VoiceConfig
	Syntheses []datastructures.Synthesis
	PingErr   error
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.PingErr
}

func (m *Mongo) FetchVoices(ctx context.Context) ([]datastructures.VoiceConfig, error) {
	return m.Voices, nil
}

func (m *Mongo) InsertSynthesis(ctx context.Context, s datastructures.Synthesis) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.Syntheses = append(m.Syntheses, s)
	return nil
}
