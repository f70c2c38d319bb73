package global

import (
	"context"
	"time"

	"github.com/admiralbulldogtv/splicer/src/configure"
)

// Context is a context.Context that also carries the process config and the
// shared service instances.
type Context interface {
	context.Context
	Config() *configure.Config
	Inst() *Instance
}

type gCtx struct {
	context.Context
	cfg  *configure.Config
	inst *Instance
}

func (c *gCtx) Config() *configure.Config {
	return c.cfg
}

func (c *gCtx) Inst() *Instance {
	return c.inst
}

func NewCtx(ctx context.Context, config *configure.Config) Context {
	return &gCtx{Context: ctx, cfg: config, inst: &Instance{}}
}

func derive(parent Context, ctx context.Context) Context {
	return &gCtx{Context: ctx, cfg: parent.Config(), inst: parent.Inst()}
}

func WithValue(ctx Context, key interface{}, value interface{}) Context {
	return derive(ctx, context.WithValue(ctx, key, value))
}

func WithCancel(ctx Context) (Context, context.CancelFunc) {
	nCtx, cancel := context.WithCancel(ctx)
	return derive(ctx, nCtx), cancel
}

func WithTimeout(ctx Context, timeout time.Duration) (Context, context.CancelFunc) {
	nCtx, cancel := context.WithTimeout(ctx, timeout)
	return derive(ctx, nCtx), cancel
}
