package main

import (
	"context"
	"log"

	"ticketing-service/config"
	paymentHandler "ticketing-service/internal/module/payment/handler"
	paymentRepositories "ticketing-service/internal/module/payment/repositories"
	paymentUsecases "ticketing-service/internal/module/payment/usecases"
	queueHandler "ticketing-service/internal/module/queue/handler"
	queueRepositories "ticketing-service/internal/module/queue/repositories"
	queueUsecases "ticketing-service/internal/module/queue/usecases"
	rankingHandler "ticketing-service/internal/module/ranking/handler"
	rankingRepositories "ticketing-service/internal/module/ranking/repositories"
	rankingUsecases "ticketing-service/internal/module/ranking/usecases"
	reservationHandler "ticketing-service/internal/module/reservation/handler"
	reservationRepositories "ticketing-service/internal/module/reservation/repositories"
	reservationUsecases "ticketing-service/internal/module/reservation/usecases"
	"ticketing-service/internal/pkg/database"
	"ticketing-service/internal/pkg/http"
	"ticketing-service/internal/pkg/httpclient"
	"ticketing-service/internal/pkg/lock"
	logPkg "ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/messagestream"
	"ticketing-service/internal/pkg/middleware"
	"ticketing-service/internal/pkg/redis"
	"ticketing-service/internal/pkg/scheduler"
	router "ticketing-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, run := initService(cfg)

	ctx := context.Background()
	for _, r := range messageRouters {
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(r)
	}
	run(ctx)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, func(ctx context.Context)) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	zapLog := logPkg.Setup()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		zapLog.Ctx(ctx).Fatal("failed to create subscriber")
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		zapLog.Ctx(ctx).Fatal("failed to create publisher")
	}

	// init delayed task scheduler
	sched := scheduler.Scheduler{Log: zapLog}
	taskClient := sched.InitClient(&cfg.Redis)
	taskInspector := sched.InitInspector(&cfg.Redis)

	locker := lock.New(redisClient, cfg.Reservation.LockRetries, cfg.Reservation.LockRetryWait)

	queueRepo := queueRepositories.New(redisClient, zapLog)
	queueUsecase := queueUsecases.New(queueRepo, zapLog, &cfg.Queue)

	reservationRepo := reservationRepositories.New(db, zapLog, redisClient, taskClient, taskInspector)
	rankingRepo := rankingRepositories.New(redisClient, zapLog)
	rankingUsecase := rankingUsecases.New(rankingRepo, zapLog, reservationRepo, queueRepo)
	reservationUsecase := reservationUsecases.New(reservationRepo, zapLog, publisher, queueUsecase, rankingUsecase, &cfg.Reservation)

	paymentRepo := paymentRepositories.New(db, zapLog)
	paymentUsecase := paymentUsecases.New(paymentRepo, zapLog, publisher, locker, &cfg.Payment)

	m := middleware.Middleware{
		Log:        zapLog,
		HttpClient: httpClient,
		Cfg:        &cfg.UserService,
	}

	valid := validator.New()
	handlerQueue := queueHandler.QueueHandler{
		Log:       zapLog,
		Validator: valid,
		Usecase:   queueUsecase,
	}
	handlerReservation := reservationHandler.ReservationHandler{
		Log:       zapLog,
		Validator: valid,
		Usecase:   reservationUsecase,
		Publish:   publisher,
	}
	handlerPayment := paymentHandler.PaymentHandler{
		Log:       zapLog,
		Validator: valid,
		Usecase:   paymentUsecase,
		Publish:   publisher,
	}
	handlerRanking := rankingHandler.RankingHandler{
		Log:       zapLog,
		Validator: valid,
		Usecase:   rankingUsecase,
	}

	var messageRouters []*message.Router

	routerSpecs := []struct {
		name    string
		topic   string
		handler message.NoPublishHandlerFunc
	}{
		{"payment_try_handler", messagestream.TopicPaymentTry, handlerPayment.ConsumePaymentTry},
		{"payment_retry_handler", messagestream.TopicPaymentRetry, handlerPayment.ConsumePaymentRetry},
		{"payment_cancel_handler", messagestream.TopicPaymentCancel, handlerPayment.ConsumePaymentCancel},
		{"payment_success_handler", messagestream.TopicPaymentSuccess, handlerReservation.ConsumePaymentSuccess},
		{"reservation_failure_handler", messagestream.TopicReservationFailure, handlerReservation.ConsumeReservationFailure},
	}
	for _, spec := range routerSpecs {
		messageRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisonedQueue, spec.name, spec.topic, subscriber, spec.handler)
		if err != nil {
			zapLog.Ctx(ctx).Fatal("failed to create message router")
		}
		messageRouters = append(messageRouters, messageRouter)
	}

	serverHttp := http.SetupHttpEngine()
	app := router.Initialize(serverHttp, &handlerQueue, &handlerReservation, &handlerPayment, &handlerRanking, &m)

	run := func(ctx context.Context) {
		go sched.StartHandler(&cfg.Redis,
			[]string{scheduler.TypeReservationExpire},
			[]func(ctx context.Context, t *asynq.Task) error{handlerReservation.SetReservationExpired})
		go sched.StartMonitoring(&cfg.Redis, cfg.HttpServer.MonitoringPort)
		go queueUsecase.RunPromotionLoop(ctx)
	}

	return app, messageRouters, run
}
