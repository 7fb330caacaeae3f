package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"ticketing-service/config"
	"ticketing-service/internal/module/payment/models/entity"
	"ticketing-service/internal/module/payment/models/request"
	"ticketing-service/internal/module/payment/models/response"
	"ticketing-service/internal/module/payment/repositories"
	"ticketing-service/internal/module/payment/saga"
	"ticketing-service/internal/pkg/lock"
	"ticketing-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type usecase struct {
	repo    repositories.Repositories
	log     *otelzap.Logger
	publish message.Publisher
	locker  lock.Locker
	cfg     *config.PaymentConfig
}

type Usecase interface {
	ProcessPaymentTry(ctx context.Context, payload request.PaymentEvent) error
	ProcessPaymentRetry(ctx context.Context, payload request.PaymentEvent) error
	ProcessPaymentCancel(ctx context.Context, payload request.PaymentEvent) error
	ChargePoints(ctx context.Context, userID int64, payload request.ChargePoints) (response.UserPoint, error)
	ShowPoints(ctx context.Context, userID int64) (response.PointBalance, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher, locker lock.Locker, cfg *config.PaymentConfig) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		locker:  locker,
		cfg:     cfg,
	}
}

func pointLockKey(userID int64) string {
	return fmt.Sprintf("point:lock:%d", userID)
}

// ProcessPaymentTry implements Usecase. It pins the transaction row first so a
// redelivered try finds the existing row and, if that row is already terminal,
// does nothing at all.
func (u *usecase) ProcessPaymentTry(ctx context.Context, payload request.PaymentEvent) error {
	transaction := entity.PaymentTransaction{
		PaymentTxID:   payload.PaymentTxID,
		ReservationID: payload.ReservationID,
		UserID:        payload.UserID,
		SeatID:        payload.SeatID,
		Amount:        payload.Amount,
		Status:        saga.StatusPending,
		RetryCount:    payload.RetryCount,
		CreatedAt:     time.Now(),
	}

	inserted, err := u.repo.InsertTransaction(ctx, &transaction)
	if err != nil {
		return err
	}
	if !inserted {
		existing, err := u.repo.FindTransactionByID(ctx, payload.PaymentTxID)
		if err != nil {
			return err
		}
		transaction = existing
	}

	status, effects := saga.Next(transaction.Status, saga.Event{Name: saga.EventTry}, u.cfg.MaxRetries)
	return u.runEffects(ctx, status, effects, &transaction, payload)
}

// ProcessPaymentRetry implements Usecase.
func (u *usecase) ProcessPaymentRetry(ctx context.Context, payload request.PaymentEvent) error {
	transaction, err := u.repo.FindTransactionByID(ctx, payload.PaymentTxID)
	if err != nil {
		return err
	}

	ev := saga.Event{Name: saga.EventRetry, RetryCount: payload.RetryCount, Reason: payload.Reason}
	status, effects := saga.Next(transaction.Status, ev, u.cfg.MaxRetries)
	return u.runEffects(ctx, status, effects, &transaction, payload)
}

// ProcessPaymentCancel implements Usecase.
func (u *usecase) ProcessPaymentCancel(ctx context.Context, payload request.PaymentEvent) error {
	transaction, err := u.repo.FindTransactionByID(ctx, payload.PaymentTxID)
	if err != nil {
		return err
	}

	ev := saga.Event{Name: saga.EventCancel, RetryCount: payload.RetryCount, Reason: payload.Reason}
	status, effects := saga.Next(transaction.Status, ev, u.cfg.MaxRetries)
	return u.runEffects(ctx, status, effects, &transaction, payload)
}

// runEffects executes what the state machine decided. Balance deduction is the
// only effect that feeds a second event back into the machine.
func (u *usecase) runEffects(ctx context.Context, status string, effects []saga.Effect, transaction *entity.PaymentTransaction, payload request.PaymentEvent) error {
	for _, effect := range effects {
		switch effect {
		case saga.EffectAttemptPayment:
			outcome := u.attemptDeduction(ctx, transaction)
			next := payload
			next.Reason = outcome.Reason
			nextStatus, nextEffects := saga.Next(status, outcome, u.cfg.MaxRetries)
			if err := u.runEffects(ctx, nextStatus, nextEffects, transaction, next); err != nil {
				return err
			}

		case saga.EffectFinalizeSuccess:
			if _, err := u.repo.UpdateTransactionStatus(ctx, transaction.PaymentTxID, saga.StatusSuccess, transaction.RetryCount, ""); err != nil {
				return err
			}
			if err := u.publishEvent(messagestream.TopicPaymentSuccess, payload, ""); err != nil {
				return err
			}
			u.log.Ctx(ctx).Info("payment succeeded",
				zap.String("payment_tx_id", transaction.PaymentTxID),
				zap.String("reservation_id", transaction.ReservationID))

		case saga.EffectPublishRetry:
			if _, err := u.repo.UpdateTransactionStatus(ctx, transaction.PaymentTxID, saga.StatusFailure, transaction.RetryCount, payload.Reason); err != nil {
				return err
			}
			retry := payload
			retry.RetryCount = transaction.RetryCount + 1
			if err := u.publishEvent(messagestream.TopicPaymentRetry, retry, retry.Reason); err != nil {
				return err
			}
			u.log.Ctx(ctx).Info("payment attempt failed, retrying",
				zap.String("payment_tx_id", transaction.PaymentTxID),
				zap.Int("retry_count", retry.RetryCount),
				zap.String("reason", retry.Reason))

		case saga.EffectPublishCancel:
			if _, err := u.repo.UpdateTransactionStatus(ctx, transaction.PaymentTxID, status, transaction.RetryCount, payload.Reason); err != nil {
				return err
			}
			if err := u.publishEvent(messagestream.TopicPaymentCancel, payload, payload.Reason); err != nil {
				return err
			}
			u.log.Ctx(ctx).Warn("payment gave up",
				zap.String("payment_tx_id", transaction.PaymentTxID),
				zap.String("reason", payload.Reason))

		case saga.EffectRetryPayment:
			if _, err := u.repo.UpdateTransactionStatus(ctx, transaction.PaymentTxID, saga.StatusRetrying, payload.RetryCount, payload.Reason); err != nil {
				return err
			}
			if err := u.publishEvent(messagestream.TopicPaymentTry, payload, payload.Reason); err != nil {
				return err
			}

		case saga.EffectRefundAndRelease:
			if _, err := u.repo.UpdateTransactionStatus(ctx, transaction.PaymentTxID, saga.StatusCancel, transaction.RetryCount, payload.Reason); err != nil {
				return err
			}
			refunded, err := u.repo.RefundBalance(ctx, transaction.UserID, transaction.Amount, transaction.PaymentTxID)
			if err != nil {
				return err
			}
			if refunded {
				u.log.Ctx(ctx).Info("payment refunded",
					zap.String("payment_tx_id", transaction.PaymentTxID),
					zap.Float64("amount", transaction.Amount))
			}
			if err := u.publishEvent(messagestream.TopicReservationFailure, payload, payload.Reason); err != nil {
				return err
			}
		}
	}
	return nil
}

// attemptDeduction runs the balance deduction under the user's point lock and
// translates the result into the machine's internal event. Infrastructure
// failures are mapped to a retriable failure so the attempt chain, not the
// message redelivery loop, decides what happens next.
func (u *usecase) attemptDeduction(ctx context.Context, transaction *entity.PaymentTransaction) saga.Event {
	err := u.locker.WithLock(ctx, pointLockKey(transaction.UserID), u.cfg.PointLockTTL, func(ctx context.Context) error {
		return u.repo.DeductBalance(ctx, transaction.UserID, transaction.Amount, transaction.PaymentTxID)
	})
	if err == nil {
		return saga.Event{Name: saga.EventDeducted, RetryCount: transaction.RetryCount}
	}

	reason := "payment failed"
	switch {
	case stderrors.Is(err, repositories.ErrInsufficientBalance):
		reason = "insufficient balance"
	case lock.IsLockTimeout(err):
		reason = "point lock busy"
	default:
		u.log.Ctx(ctx).Error("balance deduction error",
			zap.String("payment_tx_id", transaction.PaymentTxID), zap.Error(err))
	}
	return saga.Event{Name: saga.EventDeductFailed, RetryCount: transaction.RetryCount, Reason: reason}
}

func (u *usecase) publishEvent(topic string, payload request.PaymentEvent, reason string) error {
	payload.Reason = reason
	msg, err := messagestream.NewEventMessage(topic, payload)
	if err != nil {
		return err
	}
	return u.publish.Publish(topic, msg)
}

// ChargePoints implements Usecase.
func (u *usecase) ChargePoints(ctx context.Context, userID int64, payload request.ChargePoints) (response.UserPoint, error) {
	point, err := u.repo.ChargeBalance(ctx, userID, payload.Amount)
	if err != nil {
		return response.UserPoint{}, err
	}
	return response.UserPoint{UserID: point.UserID, Balance: point.Balance}, nil
}

// ShowPoints implements Usecase.
func (u *usecase) ShowPoints(ctx context.Context, userID int64) (response.PointBalance, error) {
	point, err := u.repo.FindUserPoint(ctx, userID)
	if err != nil {
		return response.PointBalance{}, err
	}

	histories, err := u.repo.FindPointHistories(ctx, userID)
	if err != nil {
		return response.PointBalance{}, err
	}

	resp := response.PointBalance{
		UserID:    point.UserID,
		Balance:   point.Balance,
		Histories: make([]response.PointHistory, 0, len(histories)),
	}
	for _, history := range histories {
		resp.Histories = append(resp.Histories, response.PointHistory{
			Amount:    history.Amount,
			Type:      history.Type,
			CreatedAt: history.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}
