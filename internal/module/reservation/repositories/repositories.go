package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ticketing-service/internal/module/reservation/models/entity"
	"ticketing-service/internal/module/reservation/models/request"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// compare-and-delete, a stale caller must never release someone else's lock
var releaseLockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`)

// compare-and-swap keeping the TTL, exactly one caller wins the exchange
var swapTokenScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	redis.call("set", KEYS[1], ARGV[2], "KEEPTTL")
	return 1
else
	return 0
end`)

const processingTokenPrefix = "processing:"

// ProcessingPaymentToken is the marker a payment token is swapped to while the
// payment saga for the given tx runs.
func ProcessingPaymentToken(paymentTxID string) string {
	return processingTokenPrefix + paymentTxID
}

// IsProcessingPaymentToken reports whether a stored token has already been
// consumed by a confirmation.
func IsProcessingPaymentToken(token string) bool {
	return strings.HasPrefix(token, processingTokenPrefix)
}

type repositories struct {
	db          *sqlx.DB
	log         *otelzap.Logger
	redisClient *redis.Client
	taskClient  *asynq.Client
	inspector   *asynq.Inspector
}

type Repositories interface {
	// redis
	AcquireSeatLock(ctx context.Context, seatID int64, holder string, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, seatID int64, holder string) (bool, error)
	StorePaymentToken(ctx context.Context, reservationID string, token string, ttl time.Duration) error
	GetPaymentToken(ctx context.Context, reservationID string) (string, error)
	MarkPaymentTokenProcessing(ctx context.Context, reservationID string, token string, paymentTxID string) (bool, error)
	RestorePaymentToken(ctx context.Context, reservationID string, paymentTxID string, token string) (bool, error)
	DeletePaymentToken(ctx context.Context, reservationID string) error
	StoreHoldMeta(ctx context.Context, reservationID string, lockValue string, taskID string, ttl time.Duration) error
	GetHoldMeta(ctx context.Context, reservationID string) (lockValue string, taskID string, err error)
	DeleteHoldMeta(ctx context.Context, reservationID string) error
	CachedScheduleSeats(ctx context.Context, scheduleID int64) ([]entity.Seat, bool, error)
	CacheScheduleSeats(ctx context.Context, scheduleID int64, seats []entity.Seat, ttl time.Duration) error
	// db
	ReserveSeat(ctx context.Context, seatID int64, reservation *entity.Reservation) error
	FindSeatByID(ctx context.Context, seatID int64) (entity.Seat, error)
	FindSeatsBySchedule(ctx context.Context, scheduleID int64) ([]entity.Seat, error)
	CountSeatsByStatus(ctx context.Context, scheduleID int64, status string) (int64, error)
	FindReservationByID(ctx context.Context, reservationID string) (entity.Reservation, error)
	FindReservationsByUserID(ctx context.Context, userID int64) ([]entity.Reservation, error)
	UpdateReservationStatus(ctx context.Context, reservationID string, from string, to string, paidAt *time.Time) (bool, error)
	UpdateSeatStatus(ctx context.Context, seatID int64, from string, to string) (bool, error)
	FinalizeReservation(ctx context.Context, reservationID string, seatID int64, paidAt time.Time) (bool, error)
	// scheduler
	ScheduleExpiryTask(ctx context.Context, payload *request.ReservationExpiration, delay time.Duration) (string, error)
	DeleteExpiryTask(ctx context.Context, taskID string) error
}

func New(db *sqlx.DB, log *otelzap.Logger, redisClient *redis.Client, taskClient *asynq.Client, inspector *asynq.Inspector) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
		taskClient:  taskClient,
		inspector:   inspector,
	}
}

func seatLockKey(seatID int64) string {
	return fmt.Sprintf("seat:lock:%d", seatID)
}

func paymentTokenKey(reservationID string) string {
	return fmt.Sprintf("payment:token:%s", reservationID)
}

func holdMetaKey(reservationID string) string {
	return fmt.Sprintf("reservation:hold:%s", reservationID)
}

func seatCacheKey(scheduleID int64) string {
	return fmt.Sprintf("seats:schedule:%d", scheduleID)
}

// AcquireSeatLock implements Repositories. A single atomic set-if-absent with
// TTL, never a read-then-write pair.
func (r *repositories) AcquireSeatLock(ctx context.Context, seatID int64, holder string, ttl time.Duration) (bool, error) {
	ok, err := r.redisClient.SetNX(ctx, seatLockKey(seatID), holder, ttl).Result()
	if err != nil {
		return false, errors.InternalServerError("error acquire seat lock")
	}
	return ok, nil
}

// ReleaseSeatLock implements Repositories. No-op when the lock already expired
// or is held by another token.
func (r *repositories) ReleaseSeatLock(ctx context.Context, seatID int64, holder string) (bool, error) {
	res, err := releaseLockScript.Run(ctx, r.redisClient, []string{seatLockKey(seatID)}, holder).Int64()
	if err != nil && err != redis.Nil {
		return false, errors.InternalServerError("error release seat lock")
	}
	return res == 1, nil
}

// StorePaymentToken implements Repositories.
func (r *repositories) StorePaymentToken(ctx context.Context, reservationID string, token string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, paymentTokenKey(reservationID), token, ttl).Err(); err != nil {
		return errors.InternalServerError("error store payment token")
	}
	return nil
}

// GetPaymentToken implements Repositories. Returns empty string when the token
// lapsed or was consumed.
func (r *repositories) GetPaymentToken(ctx context.Context, reservationID string) (string, error) {
	token, err := r.redisClient.Get(ctx, paymentTokenKey(reservationID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.InternalServerError("error get payment token")
	}
	return token, nil
}

// MarkPaymentTokenProcessing implements Repositories. Atomically exchanges the
// stored token for the processing marker of the given tx; only one confirm
// call per hold can win the swap. False means the token was already consumed,
// replaced, or never stored.
func (r *repositories) MarkPaymentTokenProcessing(ctx context.Context, reservationID string, token string, paymentTxID string) (bool, error) {
	res, err := swapTokenScript.Run(ctx, r.redisClient,
		[]string{paymentTokenKey(reservationID)}, token, ProcessingPaymentToken(paymentTxID)).Int64()
	if err != nil && err != redis.Nil {
		return false, errors.InternalServerError("error mark payment token processing")
	}
	return res == 1, nil
}

// RestorePaymentToken implements Repositories. Puts the original token back
// when the saga could not be started, conditional on the processing marker
// still belonging to this tx.
func (r *repositories) RestorePaymentToken(ctx context.Context, reservationID string, paymentTxID string, token string) (bool, error) {
	res, err := swapTokenScript.Run(ctx, r.redisClient,
		[]string{paymentTokenKey(reservationID)}, ProcessingPaymentToken(paymentTxID), token).Int64()
	if err != nil && err != redis.Nil {
		return false, errors.InternalServerError("error restore payment token")
	}
	return res == 1, nil
}

// DeletePaymentToken implements Repositories.
func (r *repositories) DeletePaymentToken(ctx context.Context, reservationID string) error {
	if err := r.redisClient.Del(ctx, paymentTokenKey(reservationID)).Err(); err != nil {
		return errors.InternalServerError("error delete payment token")
	}
	return nil
}

// StoreHoldMeta implements Repositories. Keeps the seat-lock value and the
// expiry task id addressable by reservation id for the finalize/release paths.
func (r *repositories) StoreHoldMeta(ctx context.Context, reservationID string, lockValue string, taskID string, ttl time.Duration) error {
	key := holdMetaKey(reservationID)
	if err := r.redisClient.HSet(ctx, key, "lock_value", lockValue, "task_id", taskID).Err(); err != nil {
		return errors.InternalServerError("error store hold meta")
	}
	if err := r.redisClient.Expire(ctx, key, ttl).Err(); err != nil {
		return errors.InternalServerError("error expire hold meta")
	}
	return nil
}

// GetHoldMeta implements Repositories.
func (r *repositories) GetHoldMeta(ctx context.Context, reservationID string) (string, string, error) {
	vals, err := r.redisClient.HMGet(ctx, holdMetaKey(reservationID), "lock_value", "task_id").Result()
	if err != nil {
		return "", "", errors.InternalServerError("error get hold meta")
	}
	lockValue, _ := vals[0].(string)
	taskID, _ := vals[1].(string)
	return lockValue, taskID, nil
}

// DeleteHoldMeta implements Repositories.
func (r *repositories) DeleteHoldMeta(ctx context.Context, reservationID string) error {
	if err := r.redisClient.Del(ctx, holdMetaKey(reservationID)).Err(); err != nil {
		return errors.InternalServerError("error delete hold meta")
	}
	return nil
}

// CachedScheduleSeats implements Repositories. Advisory read-through cache, the
// database stays the authority.
func (r *repositories) CachedScheduleSeats(ctx context.Context, scheduleID int64) ([]entity.Seat, bool, error) {
	data, err := r.redisClient.Get(ctx, seatCacheKey(scheduleID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.InternalServerError("error get cached seats")
	}

	var seats []entity.Seat
	if err := json.Unmarshal([]byte(data), &seats); err != nil {
		return nil, false, nil
	}
	return seats, true, nil
}

// CacheScheduleSeats implements Repositories.
func (r *repositories) CacheScheduleSeats(ctx context.Context, scheduleID int64, seats []entity.Seat, ttl time.Duration) error {
	data, err := json.Marshal(seats)
	if err != nil {
		return errors.InternalServerError("error marshal seats cache")
	}
	if err := r.redisClient.Set(ctx, seatCacheKey(scheduleID), data, ttl).Err(); err != nil {
		return errors.InternalServerError("error set seats cache")
	}
	return nil
}

// ReserveSeat implements Repositories. The conditional seat update is the true
// linearization point: a row that already moved on rejects the write instead
// of being silently overwritten.
func (r *repositories) ReserveSeat(ctx context.Context, seatID int64, reservation *entity.Reservation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE seats SET status = $1 WHERE id = $2 AND status = $3`,
		entity.SeatStatusReserved, seatID, entity.SeatStatusAvailable,
	)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error reserving seat")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error reserving seat")
	}
	if affected == 0 {
		tx.Rollback()
		return errors.Conflict("seat is not available")
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO reservations (id, user_id, seat_id, price, status, created_at)
		VALUES (:id, :user_id, :seat_id, :price, :status, :created_at)
	`, reservation)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error inserting reservation")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// FindSeatByID implements Repositories.
func (r *repositories) FindSeatByID(ctx context.Context, seatID int64) (entity.Seat, error) {
	var seat entity.Seat
	err := r.db.GetContext(ctx, &seat, `SELECT * FROM seats WHERE id = $1`, seatID)
	if err == sql.ErrNoRows {
		return entity.Seat{}, errors.NotFound("seat not found")
	}
	if err != nil {
		return entity.Seat{}, errors.InternalServerError("error find seat by id")
	}
	return seat, nil
}

// FindSeatsBySchedule implements Repositories.
func (r *repositories) FindSeatsBySchedule(ctx context.Context, scheduleID int64) ([]entity.Seat, error) {
	var seats []entity.Seat
	err := r.db.SelectContext(ctx, &seats, `SELECT * FROM seats WHERE schedule_id = $1 ORDER BY id`, scheduleID)
	if err != nil {
		return nil, errors.InternalServerError("error find seats by schedule")
	}
	return seats, nil
}

// CountSeatsByStatus implements Repositories.
func (r *repositories) CountSeatsByStatus(ctx context.Context, scheduleID int64, status string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM seats WHERE schedule_id = $1 AND status = $2`, scheduleID, status)
	if err != nil {
		return 0, errors.InternalServerError("error count seats by status")
	}
	return count, nil
}

// FindReservationByID implements Repositories.
func (r *repositories) FindReservationByID(ctx context.Context, reservationID string) (entity.Reservation, error) {
	var reservation entity.Reservation
	err := r.db.GetContext(ctx, &reservation, `SELECT * FROM reservations WHERE id = $1`, reservationID)
	if err == sql.ErrNoRows {
		return entity.Reservation{}, errors.NotFound("reservation not found")
	}
	if err != nil {
		return entity.Reservation{}, errors.InternalServerError("error find reservation by id")
	}
	return reservation, nil
}

// FindReservationsByUserID implements Repositories.
func (r *repositories) FindReservationsByUserID(ctx context.Context, userID int64) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := r.db.SelectContext(ctx, &reservations,
		`SELECT * FROM reservations WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find reservations by user id")
	}
	return reservations, nil
}

// UpdateReservationStatus implements Repositories. Conditional write keyed on
// the expected prior status; false means the row already moved on.
func (r *repositories) UpdateReservationStatus(ctx context.Context, reservationID string, from string, to string, paidAt *time.Time) (bool, error) {
	var res sql.Result
	var err error
	if paidAt != nil {
		res, err = r.db.ExecContext(ctx,
			`UPDATE reservations SET status = $1, paid_at = $2 WHERE id = $3 AND status = $4`,
			to, *paidAt, reservationID, from,
		)
	} else {
		res, err = r.db.ExecContext(ctx,
			`UPDATE reservations SET status = $1 WHERE id = $2 AND status = $3`,
			to, reservationID, from,
		)
	}
	if err != nil {
		return false, errors.InternalServerError("error update reservation status")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error update reservation status")
	}
	return affected > 0, nil
}

// UpdateSeatStatus implements Repositories. Same conditional-write discipline
// as reservations.
func (r *repositories) UpdateSeatStatus(ctx context.Context, seatID int64, from string, to string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE seats SET status = $1 WHERE id = $2 AND status = $3`,
		to, seatID, from,
	)
	if err != nil {
		return false, errors.InternalServerError("error update seat status")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error update seat status")
	}
	return affected > 0, nil
}

// FinalizeReservation implements Repositories. Reservation PENDING->CONFIRMED
// and seat RESERVED->SOLD commit together; a transient failure can never leave
// a confirmed reservation on a seat that is still RESERVED. False means the
// reservation already left PENDING and nothing was written.
func (r *repositories) FinalizeReservation(ctx context.Context, reservationID string, seatID int64, paidAt time.Time) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, errors.InternalServerError("error starting transaction")
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE reservations SET status = $1, paid_at = $2 WHERE id = $3 AND status = $4`,
		entity.ReservationStatusConfirmed, paidAt, reservationID, entity.ReservationStatusPending,
	)
	if err != nil {
		tx.Rollback()
		return false, errors.InternalServerError("error confirm reservation")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return false, errors.InternalServerError("error confirm reservation")
	}
	if affected == 0 {
		tx.Rollback()
		return false, nil
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE seats SET status = $1 WHERE id = $2 AND status = $3`,
		entity.SeatStatusSold, seatID, entity.SeatStatusReserved,
	)
	if err != nil {
		tx.Rollback()
		return false, errors.InternalServerError("error mark seat sold")
	}

	sold, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return false, errors.InternalServerError("error mark seat sold")
	}
	if sold == 0 {
		// a PENDING reservation implies a RESERVED seat; anything else lands
		// in the poison queue for inspection
		tx.Rollback()
		return false, errors.Conflict("seat is not reserved")
	}

	if err := tx.Commit(); err != nil {
		return false, errors.InternalServerError("error committing transaction")
	}
	return true, nil
}

// ScheduleExpiryTask implements Repositories. The expiry job, not passive
// lookup, is what reclaims an unpaid hold.
func (r *repositories) ScheduleExpiryTask(ctx context.Context, payload *request.ReservationExpiration, delay time.Duration) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.InternalServerError("error marshal expiry task")
	}

	task := asynq.NewTask(scheduler.TypeReservationExpire, data)
	info, err := r.taskClient.EnqueueContext(ctx, task, asynq.ProcessIn(delay))
	if err != nil {
		return "", errors.InternalServerError("error enqueue expiry task")
	}
	return info.ID, nil
}

// DeleteExpiryTask implements Repositories. Best effort, an already-fired task
// expires as a conditional no-op anyway.
func (r *repositories) DeleteExpiryTask(ctx context.Context, taskID string) error {
	if taskID == "" {
		return nil
	}
	if err := r.inspector.DeleteTask("default", taskID); err != nil {
		return errors.InternalServerError("error delete expiry task")
	}
	return nil
}
