package router

import (
	paymentHandler "ticketing-service/internal/module/payment/handler"
	queueHandler "ticketing-service/internal/module/queue/handler"
	rankingHandler "ticketing-service/internal/module/ranking/handler"
	reservationHandler "ticketing-service/internal/module/reservation/handler"
	"ticketing-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerQueue *queueHandler.QueueHandler, handlerReservation *reservationHandler.ReservationHandler, handlerPayment *paymentHandler.PaymentHandler, handlerRanking *rankingHandler.RankingHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Post("/queue/enter", m.ValidateToken, handlerQueue.EnterQueue)
	v1.Get("/queue/status", m.ValidateToken, handlerQueue.QueueStatus)

	v1.Post("/reservation", m.ValidateToken, handlerReservation.TemporaryReserve)
	v1.Post("/reservation/confirm", m.ValidateToken, handlerReservation.ConfirmReservation)
	v1.Get("/reservations", m.ValidateToken, handlerReservation.ShowReservations)
	v1.Get("/reservations/:id", m.ValidateToken, handlerReservation.ReservationDetail)
	v1.Get("/schedules/:id/seats", handlerReservation.ScheduleSeats)

	v1.Post("/points/charge", m.ValidateToken, handlerPayment.ChargePoints)
	v1.Get("/points", m.ValidateToken, handlerPayment.ShowPoints)

	v1.Get("/ranking", handlerRanking.GetRanking)

	private := Api.Group("/private")
	private.Post("/schedules/open", handlerRanking.OpenSchedules)

	return app

}
