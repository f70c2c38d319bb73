package server

import (
	"strings"
	"time"

	"github.com/admiralbulldogtv/splicer/src/global"
	"github.com/admiralbulldogtv/splicer/src/server/health"
	"github.com/admiralbulldogtv/splicer/src/server/middleware"
	v1 "github.com/admiralbulldogtv/splicer/src/server/v1"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

// Routes builds the http app without listening on anything.
func Routes(ctx global.Context) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		DisableKeepalive:      true,
	})

	app.Use(recover.New())
	app.Use(middleware.Logger())

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(ctx.Config().Cors, ", "),
	}))

	health.Health(ctx, app.Group("/health"))
	v1.Api(ctx, app.Group("/v1"))

	app.Use("/", func(c *fiber.Ctx) error {
		return c.SendStatus(404)
	})

	return app
}

func New(ctx global.Context) <-chan struct{} {
	done := make(chan struct{})

	app := Routes(ctx)

	go func() {
		if err := app.Listen(ctx.Config().ApiBind); err != nil {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
		close(done)
	}()

	logrus.Infof("api started on %s", ctx.Config().ApiBind)

	return done
}
