package handler

import (
	"context"
	"fmt"

	"ticketing-service/internal/module/payment/models/request"
	"ticketing-service/internal/module/payment/usecases"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"
	"ticketing-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type PaymentHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *PaymentHandler) ChargePoints(ctx *fiber.Ctx) error {
	var req request.ChargePoints
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ChargePoints(ctx.UserContext(), userID, req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error charge points: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success charge points")
}

func (h *PaymentHandler) ShowPoints(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ShowPoints(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show points: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show points")
}

func (h *PaymentHandler) ConsumePaymentTry(msg *message.Message) error {
	msg.Ack()
	ctx := context.Background()

	var req request.PaymentEvent
	if _, err := messagestream.DecodeEvent(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return h.publishPoisoned(msg, messagestream.TopicPaymentTry, err)
	}

	if err := h.Usecase.ProcessPaymentTry(ctx, req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error process payment try: %v", err))
		return h.publishPoisoned(msg, messagestream.TopicPaymentTry, err)
	}
	return nil
}

func (h *PaymentHandler) ConsumePaymentRetry(msg *message.Message) error {
	msg.Ack()
	ctx := context.Background()

	var req request.PaymentEvent
	if _, err := messagestream.DecodeEvent(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return h.publishPoisoned(msg, messagestream.TopicPaymentRetry, err)
	}

	if err := h.Usecase.ProcessPaymentRetry(ctx, req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error process payment retry: %v", err))
		return h.publishPoisoned(msg, messagestream.TopicPaymentRetry, err)
	}
	return nil
}

func (h *PaymentHandler) ConsumePaymentCancel(msg *message.Message) error {
	msg.Ack()
	ctx := context.Background()

	var req request.PaymentEvent
	if _, err := messagestream.DecodeEvent(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return h.publishPoisoned(msg, messagestream.TopicPaymentCancel, err)
	}

	if err := h.Usecase.ProcessPaymentCancel(ctx, req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error process payment cancel: %v", err))
		return h.publishPoisoned(msg, messagestream.TopicPaymentCancel, err)
	}
	return nil
}

func (h *PaymentHandler) publishPoisoned(msg *message.Message, topic string, cause error) error {
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
