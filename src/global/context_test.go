package global_test

import (
	"context"
	"testing"
	"time"

	"github.com/admiralbulldogtv/splicer/src/configure"
	"github.com/admiralbulldogtv/splicer/src/global"
	"github.com/stretchr/testify/assert"
)

type key struct{}

func TestDerivedContextsShareConfigAndInstances(t *testing.T) {
	cfg := &configure.Config{DataDir: "voices"}
	root := global.NewCtx(context.Background(), cfg)

	ctx, cancel := global.WithCancel(root)
	valued := global.WithValue(ctx, key{}, "v")
	timed, cancelTimed := global.WithTimeout(valued, time.Hour)
	defer cancelTimed()

	assert.Same(t, cfg, timed.Config())
	assert.Same(t, root.Inst(), timed.Inst())
	assert.Equal(t, "v", timed.Value(key{}))

	cancel()
	<-timed.Done()
	assert.ErrorIs(t, timed.Err(), context.Canceled)
	assert.NoError(t, root.Err())
}
