package handler

import (
	"fmt"
	"strconv"

	"ticketing-service/internal/module/queue/models/request"
	"ticketing-service/internal/module/queue/usecases"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type QueueHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *QueueHandler) EnterQueue(ctx *fiber.Ctx) error {
	var req request.EnterQueue
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.Enter(ctx.UserContext(), userID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error enter queue: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success enter queue")
}

func (h *QueueHandler) QueueStatus(ctx *fiber.Ctx) error {
	scheduleID, err := strconv.ParseInt(ctx.Query("schedule_id"), 10, 64)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse schedule id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse schedule id"))
	}

	req := request.QueueStatus{
		ScheduleID: scheduleID,
		Token:      ctx.Query("token"),
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	resp, err := h.Usecase.Status(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error queue status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success queue status")
}
