package messagestream

import (
	"fmt"
	"time"

	"ticketing-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/goccy/go-json"
)

// Topics carried on the bus. Handlers consume with at-least-once semantics, so
// every consumer must tolerate redelivery of the same event.
const (
	TopicPaymentTry         = "payment.try"
	TopicPaymentSuccess     = "payment.success"
	TopicPaymentRetry       = "payment.retry"
	TopicPaymentCancel      = "payment.cancel"
	TopicReservationSuccess = "reservation.success"
	TopicReservationFailure = "reservation.failure"
	TopicPoisonedQueue      = "poisoned_queue"
)

// Envelope is the wire format for every event on the bus.
type Envelope struct {
	EventID   string          `json:"eventId"`
	EventName string          `json:"eventName"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// NewEventMessage wraps a payload in an Envelope and returns it as a watermill
// message ready to publish.
func NewEventMessage(eventName string, data interface{}) (*message.Message, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	env := Envelope{
		EventID:   watermill.NewUUID(),
		EventName: eventName,
		Timestamp: time.Now().UTC(),
		Data:      raw,
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}

	return message.NewMessage(env.EventID, payload), nil
}

// DecodeEvent unmarshals the envelope and its data payload in one step.
func DecodeEvent(payload []byte, data interface{}) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Envelope{}, err
	}
	if err := json.Unmarshal(env.Data, data); err != nil {
		return env, err
	}
	return env, nil
}

type MessageStream interface {
	NewSubscriber() (message.Subscriber, error)
	NewPublisher() (message.Publisher, error)
}

type ampq struct {
	cfg *config.MessageStreamConfig
}

func NewAmpq(cfg *config.MessageStreamConfig) MessageStream {
	return &ampq{cfg: cfg}
}

func (a *ampq) uri() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", a.cfg.Username, a.cfg.Password, a.cfg.Host, a.cfg.Port)
}

func (a *ampq) NewSubscriber() (message.Subscriber, error) {
	amqpConfig := amqp.NewDurablePubSubConfig(a.uri(), amqp.GenerateQueueNameTopicNameWithSuffix("_ticketing"))
	return amqp.NewSubscriber(amqpConfig, watermill.NewStdLogger(false, false))
}

func (a *ampq) NewPublisher() (message.Publisher, error) {
	amqpConfig := amqp.NewDurablePubSubConfig(a.uri(), nil)
	return amqp.NewPublisher(amqpConfig, watermill.NewStdLogger(false, false))
}

// NewRouter builds a consumer router for one topic. The recoverer and poison
// queue middlewares keep a failing handler from stalling the consumer loop: a
// message that keeps failing ends up on the poisoned topic instead.
func NewRouter(publisher message.Publisher, poisonedTopic string, handlerName string, topic string, subscriber message.Subscriber, handlerFunc message.NoPublishHandlerFunc) (*message.Router, error) {
	logger := watermill.NewStdLogger(false, false)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonedTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(middleware.Recoverer, poisonQueue)
	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
