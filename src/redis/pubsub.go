package redis

import (
	"context"

	"github.com/sirupsen/logrus"
)

func (i *redisInstance) Publish(ctx context.Context, channel string, data string) error {
	return i.c.Publish(ctx, channel, data).Err()
}

// Subscribe delivers messages from the channels to ch until ctx is done.
func (i *redisInstance) Subscribe(ctx context.Context, ch chan string, subscribeTo ...string) {
	i.subsMtx.Lock()
	defer i.subsMtx.Unlock()

	for _, name := range subscribeTo {
		if len(i.subs[name]) == 0 {
			if err := i.p.Subscribe(ctx, name); err != nil {
				logrus.WithError(err).WithField("channel", name).Error("failed to subscribe")
				continue
			}
		}
		i.subs[name] = append(i.subs[name], ch)
	}

	go func() {
		<-ctx.Done()
		i.unsubscribe(ch, subscribeTo)
	}()
}

func (i *redisInstance) unsubscribe(ch chan string, names []string) {
	i.subsMtx.Lock()
	defer i.subsMtx.Unlock()

	for _, name := range names {
		subs := i.subs[name]
		for idx, s := range subs {
			if s != ch {
				continue
			}
			subs = append(subs[:idx], subs[idx+1:]...)
			break
		}
		if len(subs) != 0 {
			i.subs[name] = subs
			continue
		}
		delete(i.subs, name)
		if err := i.p.Unsubscribe(context.Background(), name); err != nil {
			logrus.WithError(err).WithField("channel", name).Error("failed to unsubscribe")
		}
	}
}
