package handler_test

import (
	"testing"

	"ticketing-service/internal/module/reservation/handler"
	"ticketing-service/internal/module/reservation/mocks"
	"ticketing-service/internal/module/reservation/models/request"
	"ticketing-service/internal/module/reservation/models/response"
	logPkg "ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.ReservationHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
	pub           *recordingPublisher
)

type recordingPublisher struct {
	topics []string
}

// Close implements message.Publisher.
func (p *recordingPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (p *recordingPublisher) Publish(topic string, messages ...*message.Message) error {
	p.topics = append(p.topics, topic)
	return nil
}

func setup() {
	ucm = &mocks.Usecase{}
	validatorTest = validator.New()
	pub = &recordingPublisher{}
	h = &handler.ReservationHandler{
		Log:       logPkg.Setup(),
		Validator: validatorTest,
		Usecase:   ucm,
		Publish:   pub,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	pub = nil
	h = nil
	app = nil
}

func TestTemporaryReserve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.TemporaryReserve{SeatID: 10, ScheduleID: 1, QueueToken: "qtoken-1"}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().SetRequestURI("/api/v1/reservation")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(1))

		ucm.On("TemporaryReserve", mock.Anything, int64(1), &payload).Return(response.TemporaryReserve{
			ReservationID: uuid.NewString(),
			PaymentToken:  "token",
			ExpiresAt:     "2026-01-01 00:00:00",
		}, nil)

		err := h.TemporaryReserve(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("missing queue token", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().SetRequestURI("/api/v1/reservation")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody([]byte(`{"seat_id":10,"schedule_id":1}`))
		ctx.Locals("user_id", int64(1))

		err := h.TemporaryReserve(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "TemporaryReserve", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestConsumePaymentSuccess(t *testing.T) {
	t.Run("finalizes the reservation", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.PaymentResult{
			PaymentTxID:   uuid.NewString(),
			ReservationID: uuid.NewString(),
			UserID:        1,
			SeatID:        10,
			Amount:        150000,
		}
		msg, err := messagestream.NewEventMessage(messagestream.TopicPaymentSuccess, payload)
		assert.NoError(t, err)

		ucm.On("FinalizePaidReservation", mock.Anything, &payload).Return(nil)

		err = h.ConsumePaymentSuccess(msg)
		assert.NoError(t, err)
		ucm.AssertCalled(t, "FinalizePaidReservation", mock.Anything, &payload)
		assert.Empty(t, pub.topics)
	})

	t.Run("garbage payload goes to the poison queue", func(t *testing.T) {
		setup()
		defer teardown()

		msg := message.NewMessage(uuid.NewString(), []byte("not json"))

		err := h.ConsumePaymentSuccess(msg)
		assert.Error(t, err)
		assert.Equal(t, []string{messagestream.TopicPoisonedQueue}, pub.topics)
		ucm.AssertNotCalled(t, "FinalizePaidReservation", mock.Anything, mock.Anything)
	})
}

func TestConsumeReservationFailure(t *testing.T) {
	setup()
	defer teardown()

	payload := request.PaymentResult{
		PaymentTxID:   uuid.NewString(),
		ReservationID: uuid.NewString(),
		UserID:        1,
		SeatID:        10,
		Amount:        150000,
		Reason:        "insufficient balance",
	}
	msg, err := messagestream.NewEventMessage(messagestream.TopicReservationFailure, payload)
	assert.NoError(t, err)

	ucm.On("ReleaseFailedReservation", mock.Anything, &payload).Return(nil)

	err = h.ConsumeReservationFailure(msg)
	assert.NoError(t, err)
	ucm.AssertCalled(t, "ReleaseFailedReservation", mock.Anything, &payload)
}
