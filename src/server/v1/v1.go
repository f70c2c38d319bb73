package v1

import (
	"errors"

	"github.com/admiralbulldogtv/splicer/src/concat"
	"github.com/admiralbulldogtv/splicer/src/datastructures"
	"github.com/admiralbulldogtv/splicer/src/global"
	"github.com/admiralbulldogtv/splicer/src/matcher"
	"github.com/admiralbulldogtv/splicer/src/textparser"
	"github.com/admiralbulldogtv/splicer/src/textparser/words"
	"github.com/admiralbulldogtv/splicer/src/tts"
	"github.com/admiralbulldogtv/splicer/src/voices"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Api(ctx global.Context, app fiber.Router) {
	app.Get("/voices", Voices(ctx))

	app.Post("/synthesize", Synthesize(ctx))

	app.Get("/wav/:id.wav", Wav(ctx))
}

// Status maps a synthesis error to the http status it is reported with.
func Status(err error) int {
	var (
		noCandidate  *matcher.NoCandidateError
		invalidParam *concat.InvalidParameterError
		unknownSym   *textparser.UnknownSymbolError
		unknownWord  *words.UnknownWordError
	)

	switch {
	case errors.Is(err, voices.ErrUnknownVoice), errors.Is(err, tts.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &noCandidate):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &invalidParam),
		errors.As(err, &unknownSym),
		errors.As(err, &unknownWord),
		errors.Is(err, concat.ErrEmptyPlan),
		errors.Is(err, matcher.ErrNoTargets):
		return fiber.StatusBadRequest
	case errors.Is(err, tts.ErrNoCache):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

func sendError(c *fiber.Ctx, err error) error {
	status := Status(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		logrus.WithError(err).Error("request failed")
		msg = "internal server error"
	}

	data, _ := json.Marshal(datastructures.ErrorResponse{Error: msg})
	c.Set("Content-Type", "application/json")
	return c.Status(status).Send(data)
}

func sendJSON(c *fiber.Ctx, status int, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return sendError(c, err)
	}
	c.Set("Content-Type", "application/json")
	return c.Status(status).Send(data)
}
