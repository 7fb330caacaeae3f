package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MessageStream MessageStreamConfig
	HttpClient    HttpClientConfig
	UserService   UserServiceConfig
	Queue         QueueConfig
	Reservation   ReservationConfig
	Payment       PaymentConfig
}

type HttpServerConfig struct {
	Port           string `envconfig:"HTTP_PORT" default:"8081"`
	MonitoringPort string `envconfig:"SCHEDULER_MONITORING_PORT" default:"8082"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"DB_HOST" default:"localhost"`
	Port         string `envconfig:"DB_PORT" default:"5432"`
	Username     string `envconfig:"DB_USERNAME" default:"postgres"`
	Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name         string `envconfig:"DB_NAME" default:"ticketing"`
	MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"AMQP_HOST" default:"localhost"`
	Port     string `envconfig:"AMQP_PORT" default:"5672"`
	Username string `envconfig:"AMQP_USERNAME" default:"guest"`
	Password string `envconfig:"AMQP_PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Type      string        `envconfig:"HTTP_CLIENT_CB_TYPE" default:"consecutive"`
	Threshold int64         `envconfig:"HTTP_CLIENT_CB_THRESHOLD" default:"5"`
	Timeout   time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"5s"`
}

type UserServiceConfig struct {
	Host string `envconfig:"USER_SERVICE_HOST" default:"localhost"`
	Port string `envconfig:"USER_SERVICE_PORT" default:"8080"`
}

type QueueConfig struct {
	Capacity        int64         `envconfig:"QUEUE_CAPACITY" default:"100"`
	ActiveWindow    time.Duration `envconfig:"QUEUE_ACTIVE_WINDOW" default:"3m"`
	PromoteInterval time.Duration `envconfig:"QUEUE_PROMOTE_INTERVAL" default:"2s"`
	LeaderTTL       time.Duration `envconfig:"QUEUE_LEADER_TTL" default:"10s"`
	JwtSecret       string        `envconfig:"QUEUE_JWT_SECRET" default:"secret"`
}

type ReservationConfig struct {
	HoldWindow    time.Duration `envconfig:"RESERVATION_HOLD_WINDOW" default:"5m"`
	LockSlack     time.Duration `envconfig:"RESERVATION_LOCK_SLACK" default:"30s"`
	JwtSecret     string        `envconfig:"RESERVATION_JWT_SECRET" default:"secret"`
	SeatCacheTTL  time.Duration `envconfig:"RESERVATION_SEAT_CACHE_TTL" default:"10s"`
	LockRetries   int           `envconfig:"RESERVATION_LOCK_RETRIES" default:"3"`
	LockRetryWait time.Duration `envconfig:"RESERVATION_LOCK_RETRY_WAIT" default:"100ms"`
}

type PaymentConfig struct {
	MaxRetries   int           `envconfig:"PAYMENT_MAX_RETRIES" default:"3"`
	PointLockTTL time.Duration `envconfig:"PAYMENT_POINT_LOCK_TTL" default:"10s"`
}

func InitConfig() *Config {
	// .env is optional, env vars win
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return &cfg
}
