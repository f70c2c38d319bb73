package v1

import (
	"strconv"

	"github.com/admiralbulldogtv/splicer/src/global"
	"github.com/gofiber/fiber/v2"
)

func Wav(ctx global.Context) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		data, err := ctx.Inst().TTS.Fetch(c.Context(), c.Params("id"))
		if err != nil {
			return sendError(c, err)
		}

		c.Set("Content-Type", "audio/wav")
		c.Set("Content-Length", strconv.Itoa(len(data)))

		return c.Status(200).Send(data)
	}
}
