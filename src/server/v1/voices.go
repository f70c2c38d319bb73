package v1

import (
	"github.com/admiralbulldogtv/splicer/src/global"
	"github.com/gofiber/fiber/v2"
)

func Voices(ctx global.Context) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		return sendJSON(c, 200, ctx.Inst().Voices.List())
	}
}
