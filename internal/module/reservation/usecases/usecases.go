package usecases

import (
	"context"
	"fmt"
	"time"

	"ticketing-service/config"
	queueUsecases "ticketing-service/internal/module/queue/usecases"
	"ticketing-service/internal/module/reservation/models/entity"
	"ticketing-service/internal/module/reservation/models/request"
	"ticketing-service/internal/module/reservation/models/response"
	"ticketing-service/internal/module/reservation/repositories"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const timeLayout = "2006-01-02 15:04:05"

// SaleRecorder receives the sale tick that drives sell-out ranking.
type SaleRecorder interface {
	RecordSale(ctx context.Context, scheduleID int64) error
}

type usecase struct {
	repo    repositories.Repositories
	log     *otelzap.Logger
	publish message.Publisher
	queue   queueUsecases.Usecase
	sales   SaleRecorder
	cfg     *config.ReservationConfig
}

type Usecase interface {
	// http
	TemporaryReserve(ctx context.Context, userID int64, payload *request.TemporaryReserve) (response.TemporaryReserve, error)
	ConfirmReservation(ctx context.Context, userID int64, payload *request.ConfirmReservation) (response.ConfirmReservation, error)
	ShowReservations(ctx context.Context, userID int64) ([]response.Reservation, error)
	ReservationDetail(ctx context.Context, userID int64, reservationID string) (response.Reservation, error)
	ScheduleSeats(ctx context.Context, scheduleID int64) ([]response.Seat, error)
	// scheduler
	SetReservationExpired(ctx context.Context, payload *request.ReservationExpiration) error
	// events
	FinalizePaidReservation(ctx context.Context, payload *request.PaymentResult) error
	ReleaseFailedReservation(ctx context.Context, payload *request.PaymentResult) error
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher, queue queueUsecases.Usecase, sales SaleRecorder, cfg *config.ReservationConfig) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		queue:   queue,
		sales:   sales,
		cfg:     cfg,
	}
}

// TemporaryReserve places a TTL-bounded hold on a seat. The seat lock narrows
// the race, the conditional status update in ReserveSeat is what makes it
// airtight against lock-TTL edge cases.
func (u *usecase) TemporaryReserve(ctx context.Context, userID int64, payload *request.TemporaryReserve) (response.TemporaryReserve, error) {
	active, err := u.queue.IsActive(ctx, userID, payload.ScheduleID, payload.QueueToken)
	if err != nil {
		return response.TemporaryReserve{}, err
	}
	if !active {
		return response.TemporaryReserve{}, errors.UnauthorizedError("queue token is not active")
	}

	seat, err := u.repo.FindSeatByID(ctx, payload.SeatID)
	if err != nil {
		return response.TemporaryReserve{}, err
	}
	if seat.ScheduleID != payload.ScheduleID {
		return response.TemporaryReserve{}, errors.UnprocessableEntity("seat does not belong to schedule")
	}

	lockTTL := u.cfg.HoldWindow + u.cfg.LockSlack
	locked, err := u.repo.AcquireSeatLock(ctx, payload.SeatID, payload.QueueToken, lockTTL)
	if err != nil {
		return response.TemporaryReserve{}, err
	}
	if !locked {
		return response.TemporaryReserve{}, errors.Conflict("seat is already held")
	}

	reservation := entity.NewReservation(userID, payload.SeatID, seat.Price)
	if err := u.repo.ReserveSeat(ctx, payload.SeatID, &reservation); err != nil {
		if _, releaseErr := u.repo.ReleaseSeatLock(ctx, payload.SeatID, payload.QueueToken); releaseErr != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error release seat lock: %v", releaseErr))
		}
		return response.TemporaryReserve{}, err
	}

	reservationID := reservation.ID.String()
	expiresAt := time.Now().Add(u.cfg.HoldWindow)

	paymentToken, err := u.issuePaymentToken(userID, payload.SeatID, reservationID, expiresAt)
	if err != nil {
		u.rollbackHold(ctx, reservationID, payload.SeatID, payload.QueueToken)
		return response.TemporaryReserve{}, errors.InternalServerError("error issue payment token")
	}
	if err := u.repo.StorePaymentToken(ctx, reservationID, paymentToken, u.cfg.HoldWindow); err != nil {
		u.rollbackHold(ctx, reservationID, payload.SeatID, payload.QueueToken)
		return response.TemporaryReserve{}, err
	}

	taskID, err := u.repo.ScheduleExpiryTask(ctx, &request.ReservationExpiration{
		ReservationID: reservationID,
		SeatID:        payload.SeatID,
		LockValue:     payload.QueueToken,
	}, u.cfg.HoldWindow)
	if err != nil {
		u.rollbackHold(ctx, reservationID, payload.SeatID, payload.QueueToken)
		return response.TemporaryReserve{}, err
	}

	if err := u.repo.StoreHoldMeta(ctx, reservationID, payload.QueueToken, taskID, lockTTL); err != nil {
		if deleteErr := u.repo.DeleteExpiryTask(ctx, taskID); deleteErr != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error delete expiry task on rollback: %v", deleteErr))
		}
		u.rollbackHold(ctx, reservationID, payload.SeatID, payload.QueueToken)
		return response.TemporaryReserve{}, err
	}

	// the admission token is spent on a successful hold
	if err := u.queue.ConsumeActiveToken(ctx, payload.ScheduleID, payload.QueueToken); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error consume active token: %v", err))
	}

	return response.TemporaryReserve{
		ReservationID: reservationID,
		PaymentToken:  paymentToken,
		ExpiresAt:     expiresAt.Format(timeLayout),
	}, nil
}

// ConfirmReservation consumes the payment token and kicks off the async
// payment saga. The caller gets PAYMENT_PROCESSING immediately; balance
// deduction and finalization happen in the payment consumers. A second confirm
// for the same hold is rejected with a conflict, not a second saga.
func (u *usecase) ConfirmReservation(ctx context.Context, userID int64, payload *request.ConfirmReservation) (response.ConfirmReservation, error) {
	reservation, err := u.repo.FindReservationByID(ctx, payload.ReservationID)
	if err != nil {
		return response.ConfirmReservation{}, err
	}
	if reservation.UserID != userID {
		return response.ConfirmReservation{}, errors.UnauthorizedError("reservation does not belong to user")
	}
	if reservation.Status != entity.ReservationStatusPending {
		return response.ConfirmReservation{}, errors.Conflict("reservation is not payable")
	}

	stored, err := u.repo.GetPaymentToken(ctx, payload.ReservationID)
	if err != nil {
		return response.ConfirmReservation{}, err
	}
	if stored == "" {
		return response.ConfirmReservation{}, errors.UnauthorizedError("payment token is missing or expired")
	}
	if repositories.IsProcessingPaymentToken(stored) {
		return response.ConfirmReservation{}, errors.Conflict("payment is already in progress")
	}
	if stored != payload.PaymentToken {
		return response.ConfirmReservation{}, errors.UnauthorizedError("payment token is missing or expired")
	}

	if err := u.verifyPaymentToken(payload.PaymentToken, userID, payload.ReservationID); err != nil {
		return response.ConfirmReservation{}, errors.UnauthorizedError("payment token is invalid")
	}

	paymentTxID := payload.PaymentTxID
	if paymentTxID == "" {
		paymentTxID = uuid.NewString()
	}

	// the token is single shot: the atomic swap to the processing marker is
	// what keeps a double submit from starting two sagas
	consumed, err := u.repo.MarkPaymentTokenProcessing(ctx, payload.ReservationID, payload.PaymentToken, paymentTxID)
	if err != nil {
		return response.ConfirmReservation{}, err
	}
	if !consumed {
		return response.ConfirmReservation{}, errors.Conflict("payment is already in progress")
	}

	event := request.PaymentResult{
		PaymentTxID:   paymentTxID,
		ReservationID: payload.ReservationID,
		UserID:        userID,
		SeatID:        reservation.SeatID,
		Amount:        reservation.Price,
	}
	msg, err := messagestream.NewEventMessage(messagestream.TopicPaymentTry, event)
	if err != nil {
		u.restorePaymentToken(ctx, payload.ReservationID, paymentTxID, payload.PaymentToken)
		return response.ConfirmReservation{}, errors.InternalServerError("error build payment event")
	}
	if err := u.publish.Publish(messagestream.TopicPaymentTry, msg); err != nil {
		u.restorePaymentToken(ctx, payload.ReservationID, paymentTxID, payload.PaymentToken)
		return response.ConfirmReservation{}, errors.InternalServerError("error publish payment event")
	}

	return response.ConfirmReservation{
		ReservationID: payload.ReservationID,
		PaymentTxID:   paymentTxID,
		Status:        "PAYMENT_PROCESSING",
	}, nil
}

func (u *usecase) ShowReservations(ctx context.Context, userID int64) ([]response.Reservation, error) {
	reservations, err := u.repo.FindReservationsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Reservation, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, toReservationResponse(r))
	}
	return resp, nil
}

func (u *usecase) ReservationDetail(ctx context.Context, userID int64, reservationID string) (response.Reservation, error) {
	reservation, err := u.repo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return response.Reservation{}, err
	}
	if reservation.UserID != userID {
		return response.Reservation{}, errors.UnauthorizedError("reservation does not belong to user")
	}
	if err := reservation.Validate(); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("inconsistent reservation %s: %v", reservationID, err))
		return response.Reservation{}, errors.InternalServerError("reservation state is inconsistent")
	}
	return toReservationResponse(reservation), nil
}

// ScheduleSeats lists seats through an advisory cache. The cache is never
// trusted for correctness, only for display.
func (u *usecase) ScheduleSeats(ctx context.Context, scheduleID int64) ([]response.Seat, error) {
	seats, hit, err := u.repo.CachedScheduleSeats(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if !hit {
		seats, err = u.repo.FindSeatsBySchedule(ctx, scheduleID)
		if err != nil {
			return nil, err
		}
		if err := u.repo.CacheScheduleSeats(ctx, scheduleID, seats, u.cfg.SeatCacheTTL); err != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error cache seats: %v", err))
		}
	}

	resp := make([]response.Seat, 0, len(seats))
	for _, s := range seats {
		resp = append(resp, response.Seat{
			ID:         s.ID,
			ScheduleID: s.ScheduleID,
			SeatNumber: s.SeatNumber,
			Class:      s.Class,
			Price:      s.Price,
			Status:     s.Status,
		})
	}
	return resp, nil
}

// SetReservationExpired reclaims a hold whose payment never completed. Every
// step is conditional on current state because a confirmation may have landed
// between job scheduling and firing.
func (u *usecase) SetReservationExpired(ctx context.Context, payload *request.ReservationExpiration) error {
	if _, err := u.repo.ReleaseSeatLock(ctx, payload.SeatID, payload.LockValue); err != nil {
		return err
	}

	expired, err := u.repo.UpdateReservationStatus(ctx, payload.ReservationID,
		entity.ReservationStatusPending, entity.ReservationStatusExpired, nil)
	if err != nil {
		return err
	}
	if expired {
		if _, err := u.repo.UpdateSeatStatus(ctx, payload.SeatID,
			entity.SeatStatusReserved, entity.SeatStatusAvailable); err != nil {
			return err
		}
	}

	if err := u.repo.DeletePaymentToken(ctx, payload.ReservationID); err != nil {
		return err
	}
	return u.repo.DeleteHoldMeta(ctx, payload.ReservationID)
}

// FinalizePaidReservation consumes payment.success. The reservation and seat
// writes commit in one transaction; redelivery of an already confirmed
// reservation only re-runs the idempotent hold cleanup.
func (u *usecase) FinalizePaidReservation(ctx context.Context, payload *request.PaymentResult) error {
	paidAt := time.Now().Round(time.Second)

	finalized, err := u.repo.FinalizeReservation(ctx, payload.ReservationID, payload.SeatID, paidAt)
	if err != nil {
		return err
	}
	if !finalized {
		reservation, err := u.repo.FindReservationByID(ctx, payload.ReservationID)
		if err != nil {
			return err
		}
		if reservation.Status != entity.ReservationStatusConfirmed {
			u.log.Ctx(ctx).Info(fmt.Sprintf("reservation %s already %s, skipping finalize", payload.ReservationID, reservation.Status))
			return nil
		}
		// confirmed on an earlier delivery whose cleanup was cut short
		return u.releaseHoldResources(ctx, payload.ReservationID, payload.SeatID)
	}

	seat, err := u.repo.FindSeatByID(ctx, payload.SeatID)
	if err != nil {
		return err
	}
	if err := u.sales.RecordSale(ctx, seat.ScheduleID); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error record sale: %v", err))
	}

	if err := u.releaseHoldResources(ctx, payload.ReservationID, payload.SeatID); err != nil {
		return err
	}

	msg, err := messagestream.NewEventMessage(messagestream.TopicReservationSuccess, payload)
	if err != nil {
		return errors.InternalServerError("error build reservation event")
	}
	if err := u.publish.Publish(messagestream.TopicReservationSuccess, msg); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish reservation success: %v", err))
	}
	return nil
}

// ReleaseFailedReservation consumes reservation.failure from the payment
// cancel path: seat back to AVAILABLE, reservation CANCELED.
func (u *usecase) ReleaseFailedReservation(ctx context.Context, payload *request.PaymentResult) error {
	canceled, err := u.repo.UpdateReservationStatus(ctx, payload.ReservationID,
		entity.ReservationStatusPending, entity.ReservationStatusCanceled, nil)
	if err != nil {
		return err
	}
	if canceled {
		if _, err := u.repo.UpdateSeatStatus(ctx, payload.SeatID,
			entity.SeatStatusReserved, entity.SeatStatusAvailable); err != nil {
			return err
		}
	}

	return u.releaseHoldResources(ctx, payload.ReservationID, payload.SeatID)
}

// rollbackHold unwinds a committed hold when a later setup step fails, the
// same conditional path SetReservationExpired takes. Best effort: anything
// left behind is reclaimed once the seat lock TTL lapses.
func (u *usecase) rollbackHold(ctx context.Context, reservationID string, seatID int64, lockValue string) {
	expired, err := u.repo.UpdateReservationStatus(ctx, reservationID,
		entity.ReservationStatusPending, entity.ReservationStatusExpired, nil)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error expire reservation on rollback: %v", err))
	}
	if expired {
		if _, err := u.repo.UpdateSeatStatus(ctx, seatID,
			entity.SeatStatusReserved, entity.SeatStatusAvailable); err != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error free seat on rollback: %v", err))
		}
	}
	if err := u.repo.DeletePaymentToken(ctx, reservationID); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error delete payment token on rollback: %v", err))
	}
	if _, err := u.repo.ReleaseSeatLock(ctx, seatID, lockValue); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error release seat lock on rollback: %v", err))
	}
}

func (u *usecase) restorePaymentToken(ctx context.Context, reservationID string, paymentTxID string, token string) {
	if _, err := u.repo.RestorePaymentToken(ctx, reservationID, paymentTxID, token); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error restore payment token: %v", err))
	}
}

func (u *usecase) releaseHoldResources(ctx context.Context, reservationID string, seatID int64) error {
	lockValue, taskID, err := u.repo.GetHoldMeta(ctx, reservationID)
	if err != nil {
		return err
	}
	if lockValue != "" {
		if _, err := u.repo.ReleaseSeatLock(ctx, seatID, lockValue); err != nil {
			return err
		}
	}
	if err := u.repo.DeleteExpiryTask(ctx, taskID); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error delete expiry task: %v", err))
	}
	if err := u.repo.DeletePaymentToken(ctx, reservationID); err != nil {
		return err
	}
	return u.repo.DeleteHoldMeta(ctx, reservationID)
}

func (u *usecase) issuePaymentToken(userID, seatID int64, reservationID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":            fmt.Sprintf("%d", userID),
		"seat_id":        seatID,
		"reservation_id": reservationID,
		"iat":            jwt.NewNumericDate(time.Now()),
		"exp":            jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JwtSecret))
}

func (u *usecase) verifyPaymentToken(tokenStr string, userID int64, reservationID string) error {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(u.cfg.JwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return fmt.Errorf("invalid payment token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("invalid payment token claims")
	}
	if sub, _ := claims["sub"].(string); sub != fmt.Sprintf("%d", userID) {
		return fmt.Errorf("payment token user mismatch")
	}
	if rid, _ := claims["reservation_id"].(string); rid != reservationID {
		return fmt.Errorf("payment token reservation mismatch")
	}
	return nil
}

func toReservationResponse(r entity.Reservation) response.Reservation {
	resp := response.Reservation{
		ID:        r.ID.String(),
		SeatID:    r.SeatID,
		Price:     r.Price,
		Status:    r.Status,
		CreatedAt: r.CreatedAt.Format(timeLayout),
	}
	if r.PaidAt.Valid {
		resp.PaidAt = r.PaidAt.Time.Format(timeLayout)
	}
	return resp
}
