package manager

import (
	"strings"

	"github.com/admiralbulldogtv/splicer/src/global"
	"github.com/admiralbulldogtv/splicer/src/server"
	"github.com/sirupsen/logrus"
)

// ReloadChannel takes a voice name, or "*" for every voice.
const ReloadChannel = "voices:reload"

// New starts the api and, with redis configured, listens for voice reloads.
// The returned channel closes once the server has shut down.
func New(ctx global.Context) <-chan struct{} {
	done := make(chan struct{})

	if ctx.Inst().Redis != nil {
		WatchReloads(ctx)
	}

	serverDone := server.New(ctx)

	go func() {
		<-ctx.Done()
		<-serverDone
		close(done)
	}()

	return done
}

// WatchReloads drops cached voices named on ReloadChannel until ctx is done.
func WatchReloads(ctx global.Context) {
	ch := make(chan string, 10)
	ctx.Inst().Redis.Subscribe(ctx, ch, ReloadChannel)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-ch:
				name := strings.TrimSpace(msg)
				if name == "*" {
					name = ""
				}
				ctx.Inst().Voices.Reload(name)
				logrus.WithField("voice", msg).Info("voice reloaded")
			}
		}
	}()
}
