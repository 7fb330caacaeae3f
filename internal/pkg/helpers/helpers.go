package helpers

import (
	"fmt"
	"time"

	"ticketing-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.HttpCode(err)
	if code == fiber.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("internal error: %v", err))
	}
	return ctx.Status(code).JSON(Response{
		Message: "error",
		Error:   err.Error(),
	})
}

// DurationCalculation returns how long from now until the given deadline.
func DurationCalculation(deadline time.Time) time.Duration {
	return time.Until(deadline)
}
