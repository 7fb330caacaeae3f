package http

import (
	"log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.elastic.co/apm"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	app.Use(apmTransaction)

	return app
}

// apmTransaction wraps every request in an elastic apm transaction.
func apmTransaction(c *fiber.Ctx) error {
	tx := apm.DefaultTracer.StartTransaction(c.Method()+" "+c.Path(), "request")
	defer tx.End()

	err := c.Next()
	tx.Result = fiber.ErrInternalServerError.Message
	if err == nil {
		tx.Result = "HTTP 2xx"
	}
	return err
}

func StartHttpServer(app *fiber.App, port string) {
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("failed to start http server: %v", err)
	}
}
