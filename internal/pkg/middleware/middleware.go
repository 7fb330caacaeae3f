package middleware

import (
	"fmt"
	"strings"

	"ticketing-service/config"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log        *otelzap.Logger
	HttpClient *circuit.HTTPClient
	Cfg        *config.UserServiceConfig
}

type userServiceValidate struct {
	IsValid bool  `json:"is_valid"`
	UserID  int64 `json:"user_id"`
}

// ValidateToken checks the bearer token against the user service and stores
// user_id in locals for the handlers.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if auth == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	token := strings.TrimPrefix(auth, "Bearer ")

	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", m.Cfg.Host, m.Cfg.Port, token)
	resp, err := m.HttpClient.Get(url)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: status %d", resp.StatusCode))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	var respData userServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error decode validate response: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !respData.IsValid {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", respData.UserID)

	return ctx.Next()
}
