package v1

import (
	"strings"

	"github.com/admiralbulldogtv/splicer/src/datastructures"
	"github.com/admiralbulldogtv/splicer/src/global"
	"github.com/gofiber/fiber/v2"
)

func Synthesize(ctx global.Context) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := datastructures.SynthesizeRequest{}
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return sendJSON(c, 400, datastructures.ErrorResponse{Error: "invalid body"})
		}
		if req.Voice == "" {
			return sendJSON(c, 400, datastructures.ErrorResponse{Error: "voice is required"})
		}
		if strings.TrimSpace(req.Sentence) == "" && strings.TrimSpace(req.Phonemes) == "" {
			return sendJSON(c, 400, datastructures.ErrorResponse{Error: "sentence or phonemes is required"})
		}

		record, err := ctx.Inst().TTS.Generate(c.Context(), req)
		if err != nil {
			return sendError(c, err)
		}

		return sendJSON(c, 201, record)
	}
}
