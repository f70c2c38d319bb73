package redis

import (
	"context"
	"sync"
	"time"

	"github.com/admiralbulldogtv/splicer/src/instances"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Nil is returned by Get for a missing key.
const Nil = redis.Nil

type redisInstance struct {
	c *redis.Client
	p *redis.PubSub

	subs    map[string][]chan string
	subsMtx sync.Mutex
}

// NewInstance connects to a redis:// uri and starts the pubsub fan out.
func NewInstance(ctx context.Context, uri string) (instances.Redis, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}

	return newInstance(ctx, redis.NewClient(opts))
}

func newInstance(ctx context.Context, rc *redis.Client) (*redisInstance, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	i := &redisInstance{
		c:    rc,
		p:    rc.Subscribe(context.Background()),
		subs: map[string][]chan string{},
	}

	if err := i.Ping(ctx); err != nil {
		_ = i.p.Close()
		_ = i.c.Close()
		return nil, err
	}

	go i.fanOut()

	return i, nil
}

func (i *redisInstance) Ping(ctx context.Context) error {
	return i.c.Ping(ctx).Err()
}

func (i *redisInstance) Set(ctx context.Context, key string, value string, expiry time.Duration) error {
	return i.c.Set(ctx, key, value, expiry).Err()
}

func (i *redisInstance) Get(ctx context.Context, key string) (string, error) {
	return i.c.Get(ctx, key).Result()
}

func (i *redisInstance) fanOut() {
	for msg := range i.p.Channel() {
		i.subsMtx.Lock()
		subs := append([]chan string{}, i.subs[msg.Channel]...)
		i.subsMtx.Unlock()

		for _, ch := range subs {
			go func(ch chan string, payload string) {
				defer func() {
					// the subscriber closed its channel
					if err := recover(); err != nil {
						logrus.WithField("err", err).Debug("dropped pubsub message")
					}
				}()
				ch <- payload
			}(ch, msg.Payload)
		}
	}
}
