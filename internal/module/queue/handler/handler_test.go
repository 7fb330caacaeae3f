package handler_test

import (
	"testing"

	"ticketing-service/internal/module/queue/handler"
	"ticketing-service/internal/module/queue/mocks"
	"ticketing-service/internal/module/queue/models/request"
	"ticketing-service/internal/module/queue/models/response"
	logPkg "ticketing-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.QueueHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup() {
	ucm = &mocks.Usecase{}
	validatorTest = validator.New()
	h = &handler.QueueHandler{
		Log:       logPkg.Setup(),
		Validator: validatorTest,
		Usecase:   ucm,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	h = nil
	app = nil
}

func TestEnterQueue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.EnterQueue{ScheduleID: 1}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().SetRequestURI("/api/v1/queue/enter")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(1))

		ucm.On("Enter", mock.Anything, int64(1), &payload).Return(response.EnterQueue{Token: "token-1", Rank: 4}, nil)

		err := h.EnterQueue(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("missing schedule id", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().SetRequestURI("/api/v1/queue/enter")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody([]byte(`{}`))
		ctx.Locals("user_id", int64(1))

		err := h.EnterQueue(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "Enter", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestQueueStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().SetRequestURI("/api/v1/queue/status?schedule_id=1&token=token-1")
		ctx.Request().Header.SetMethod("GET")

		expected := request.QueueStatus{ScheduleID: 1, Token: "token-1"}
		ucm.On("Status", mock.Anything, &expected).Return(response.QueueStatus{Status: "WAITING", Rank: 7}, nil)

		err := h.QueueStatus(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("bad schedule id", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().SetRequestURI("/api/v1/queue/status?schedule_id=abc&token=token-1")
		ctx.Request().Header.SetMethod("GET")

		err := h.QueueStatus(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "Status", mock.Anything, mock.Anything)
	})
}
