package log

import (
	"log"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Setup builds the service-wide logger. The otelzap wrapper lets handlers log
// with the request context via Log.Ctx(ctx).
func Setup() *otelzap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to setup logger: %v", err)
	}

	return otelzap.New(logger, otelzap.WithMinLevel(zap.InfoLevel))
}
