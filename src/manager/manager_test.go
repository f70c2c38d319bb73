package manager_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/admiralbulldogtv/splicer/src/configure"
	"github.com/admiralbulldogtv/splicer/src/dataset/datasettest"
	"github.com/admiralbulldogtv/splicer/src/global"
	"github.com/admiralbulldogtv/splicer/src/instances/instancestest"
	"github.com/admiralbulldogtv/splicer/src/manager"
	"github.com/admiralbulldogtv/splicer/src/voices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loaded(ctx global.Context) bool {
	return ctx.Inst().Voices.List()[0].Loaded
}

func TestWatchReloads(t *testing.T) {
	data := t.TempDir()
	dir := filepath.Join(data, "bulldog")
	require.NoError(t, os.Mkdir(dir, 0o755))
	datasettest.WriteWord(t, dir, "at", []datasettest.Phone{
		{Label: "AE1", Samples: 400},
		{Label: "T", Samples: 400},
	})

	reg, err := voices.New(voices.Options{DataDir: data}, nil)
	require.NoError(t, err)

	base, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx := global.NewCtx(base, &configure.Config{})
	r := instancestest.NewRedis()
	ctx.Inst().Redis = r
	ctx.Inst().Voices = reg

	manager.WatchReloads(ctx)
	assert.Equal(t, 1, r.Subscribers(manager.ReloadChannel))

	_, err = reg.Get("bulldog")
	require.NoError(t, err)
	require.True(t, loaded(ctx))

	require.NoError(t, r.Publish(ctx, manager.ReloadChannel, "*"))
	assert.Eventually(t, func() bool { return !loaded(ctx) }, time.Second, 10*time.Millisecond)

	_, err = reg.Get("bulldog")
	require.NoError(t, err)
	require.NoError(t, r.Publish(ctx, manager.ReloadChannel, "BULLDOG"))
	assert.Eventually(t, func() bool { return !loaded(ctx) }, time.Second, 10*time.Millisecond)
}
