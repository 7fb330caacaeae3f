package handler

import (
	"context"
	"fmt"
	"strconv"

	"ticketing-service/internal/module/reservation/models/request"
	"ticketing-service/internal/module/reservation/usecases"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"
	"ticketing-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ReservationHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *ReservationHandler) TemporaryReserve(ctx *fiber.Ctx) error {
	var req request.TemporaryReserve
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.TemporaryReserve(ctx.UserContext(), userID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error temporary reserve: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success temporary reserve")
}

func (h *ReservationHandler) ConfirmReservation(ctx *fiber.Ctx) error {
	var req request.ConfirmReservation
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ConfirmReservation(ctx.UserContext(), userID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error confirm reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "payment is being processed")
}

func (h *ReservationHandler) ShowReservations(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ShowReservations(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show reservations: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show reservations")
}

func (h *ReservationHandler) ReservationDetail(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)
	reservationID := ctx.Params("id")

	resp, err := h.Usecase.ReservationDetail(ctx.UserContext(), userID, reservationID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reservation detail: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success reservation detail")
}

func (h *ReservationHandler) ScheduleSeats(ctx *fiber.Ctx) error {
	scheduleID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse schedule id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse schedule id"))
	}

	resp, err := h.Usecase.ScheduleSeats(ctx.UserContext(), scheduleID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error schedule seats: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success schedule seats")
}

func (h *ReservationHandler) SetReservationExpired(ctx context.Context, t *asynq.Task) error {
	var req request.ReservationExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.SetReservationExpired(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error set reservation expired: %v", err))
		return err
	}
	return nil
}

func (h *ReservationHandler) ConsumePaymentSuccess(msg *message.Message) error {
	msg.Ack()
	ctx := context.Background()

	var req request.PaymentResult
	if _, err := messagestream.DecodeEvent(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return h.publishPoisoned(msg, messagestream.TopicPaymentSuccess, err)
	}

	if err := h.Usecase.FinalizePaidReservation(ctx, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error finalize paid reservation: %v", err))
		return h.publishPoisoned(msg, messagestream.TopicPaymentSuccess, err)
	}
	return nil
}

func (h *ReservationHandler) ConsumeReservationFailure(msg *message.Message) error {
	msg.Ack()
	ctx := context.Background()

	var req request.PaymentResult
	if _, err := messagestream.DecodeEvent(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return h.publishPoisoned(msg, messagestream.TopicReservationFailure, err)
	}

	if err := h.Usecase.ReleaseFailedReservation(ctx, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error release failed reservation: %v", err))
		return h.publishPoisoned(msg, messagestream.TopicReservationFailure, err)
	}
	return nil
}

func (h *ReservationHandler) publishPoisoned(msg *message.Message, topic string, cause error) error {
	poisoned := map[string]interface{}{
		"topic_target": topic,
		"error_msg":    cause.Error(),
		"payload":      string(msg.Payload),
	}

	eventMsg, err := messagestream.NewEventMessage(messagestream.TopicPoisonedQueue, poisoned)
	if err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error build poisoned event: %v", err))
		return cause
	}
	if err := h.Publish.Publish(messagestream.TopicPoisonedQueue, eventMsg); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
	return cause
}
