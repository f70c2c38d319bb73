package health

import (
	"context"
	"time"

	"github.com/admiralbulldogtv/splicer/src/global"
	"github.com/gofiber/fiber/v2"

	log "github.com/sirupsen/logrus"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Health answers 200 while every configured backend responds to a ping.
func Health(ctx global.Context, app fiber.Router) {
	app.Get("/", func(c *fiber.Ctx) error {
		services := map[string]pinger{}
		if r := ctx.Inst().Redis; r != nil {
			services["redis"] = r
		}
		if m := ctx.Inst().Mongo; m != nil {
			services["mongo"] = m
		}

		isDown := false
		for name, svc := range services {
			pingCtx, cancel := context.WithTimeout(c.Context(), time.Second*10)
			err := svc.Ping(pingCtx)
			cancel()
			if err != nil {
				log.WithError(err).WithField("service", name).Error("health, service is down")
				isDown = true
			}
		}

		if isDown {
			return c.SendStatus(503)
		}

		return c.Status(200).SendString("OK")
	})
}
