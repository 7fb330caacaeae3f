package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"

	"ticketing-service/internal/module/payment/models/entity"
	"ticketing-service/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// ErrInsufficientBalance signals a rejected deduction. It drives the saga
// retry/cancel path instead of surfacing to a caller.
var ErrInsufficientBalance = stderrors.New("insufficient balance")

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

type Repositories interface {
	InsertTransaction(ctx context.Context, transaction *entity.PaymentTransaction) (bool, error)
	FindTransactionByID(ctx context.Context, paymentTxID string) (entity.PaymentTransaction, error)
	UpdateTransactionStatus(ctx context.Context, paymentTxID string, status string, retryCount int, reason string) (bool, error)
	DeductBalance(ctx context.Context, userID int64, amount float64, paymentTxID string) error
	ChargeBalance(ctx context.Context, userID int64, amount float64) (entity.UserPoint, error)
	RefundBalance(ctx context.Context, userID int64, amount float64, paymentTxID string) (bool, error)
	FindUserPoint(ctx context.Context, userID int64) (entity.UserPoint, error)
	FindPointHistories(ctx context.Context, userID int64) ([]entity.PointHistory, error)
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertTransaction implements Repositories. Keyed on payment_tx_id so a
// redelivered first attempt is detected instead of duplicated. Returns whether
// the row was actually created.
func (r *repositories) InsertTransaction(ctx context.Context, transaction *entity.PaymentTransaction) (bool, error) {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO payment_transactions (payment_tx_id, reservation_id, user_id, seat_id, amount, status, retry_count, created_at)
		VALUES (:payment_tx_id, :reservation_id, :user_id, :seat_id, :amount, :status, :retry_count, :created_at)
		ON CONFLICT (payment_tx_id) DO NOTHING
	`, transaction)
	if err != nil {
		return false, errors.InternalServerError("error insert payment transaction")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error insert payment transaction")
	}
	return affected > 0, nil
}

// FindTransactionByID implements Repositories.
func (r *repositories) FindTransactionByID(ctx context.Context, paymentTxID string) (entity.PaymentTransaction, error) {
	var transaction entity.PaymentTransaction
	err := r.db.GetContext(ctx, &transaction,
		`SELECT * FROM payment_transactions WHERE payment_tx_id = $1`, paymentTxID)
	if err == sql.ErrNoRows {
		return entity.PaymentTransaction{}, errors.NotFound("payment transaction not found")
	}
	if err != nil {
		return entity.PaymentTransaction{}, errors.InternalServerError("error find payment transaction")
	}
	return transaction, nil
}

// UpdateTransactionStatus implements Repositories. Terminal rows are never
// overwritten; false means the row already reached SUCCESS or CANCEL.
func (r *repositories) UpdateTransactionStatus(ctx context.Context, paymentTxID string, status string, retryCount int, reason string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE payment_transactions
		SET status = $1, retry_count = $2, last_failure_reason = NULLIF($3, ''), updated_at = NOW()
		WHERE payment_tx_id = $4 AND status NOT IN ('SUCCESS', 'CANCEL')
	`, status, retryCount, reason, paymentTxID)
	if err != nil {
		return false, errors.InternalServerError("error update payment transaction")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error update payment transaction")
	}
	return affected > 0, nil
}

// DeductBalance implements Repositories. Row lock plus balance check inside
// one transaction keeps concurrent deductions for the same user from driving
// the balance negative. The USE-row check for this payment_tx_id runs after
// the row lock so it reads committed state, not a snapshot taken while a
// concurrent delivery of the same tx was still in flight. A redsync lease that
// lapsed mid-flight therefore cannot produce a second deduction.
func (r *repositories) DeductBalance(ctx context.Context, userID int64, amount float64, paymentTxID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	var point entity.UserPoint
	err = tx.GetContext(ctx, &point,
		`SELECT user_id, balance FROM user_points WHERE user_id = $1 FOR UPDATE`, userID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return errors.NotFound("user point not found")
	}
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error locking user point")
	}

	var alreadyDeducted bool
	err = tx.GetContext(ctx, &alreadyDeducted,
		`SELECT EXISTS (SELECT 1 FROM point_histories WHERE payment_tx_id = $1 AND type = 'USE')`, paymentTxID)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error check deduction history")
	}
	if alreadyDeducted {
		tx.Rollback()
		return nil
	}

	if point.Balance < amount {
		tx.Rollback()
		return ErrInsufficientBalance
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE user_points SET balance = balance - $1, updated_at = NOW() WHERE user_id = $2`, amount, userID)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error deduct balance")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO point_histories (user_id, payment_tx_id, amount, type, created_at)
		VALUES ($1, $2, $3, 'USE', NOW())
	`, userID, paymentTxID, amount)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error insert point history")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// ChargeBalance implements Repositories.
func (r *repositories) ChargeBalance(ctx context.Context, userID int64, amount float64) (entity.UserPoint, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.UserPoint{}, errors.InternalServerError("error starting transaction")
	}

	var point entity.UserPoint
	err = tx.GetContext(ctx, &point, `
		INSERT INTO user_points (user_id, balance, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET balance = user_points.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING user_id, balance, updated_at
	`, userID, amount)
	if err != nil {
		tx.Rollback()
		return entity.UserPoint{}, errors.InternalServerError("error charge balance")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO point_histories (user_id, amount, type, created_at)
		VALUES ($1, $2, 'CHARGE', NOW())
	`, userID, amount)
	if err != nil {
		tx.Rollback()
		return entity.UserPoint{}, errors.InternalServerError("error insert point history")
	}

	if err := tx.Commit(); err != nil {
		return entity.UserPoint{}, errors.InternalServerError("error committing transaction")
	}
	return point, nil
}

// RefundBalance implements Repositories. Conditional on a prior successful
// deduction for this payment_tx_id and idempotent: a refund already recorded
// is not repeated. Returns whether a refund was applied.
func (r *repositories) RefundBalance(ctx context.Context, userID int64, amount float64, paymentTxID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, errors.InternalServerError("error starting transaction")
	}

	var deducted bool
	err = tx.GetContext(ctx, &deducted,
		`SELECT EXISTS (SELECT 1 FROM point_histories WHERE payment_tx_id = $1 AND type = 'USE')`, paymentTxID)
	if err != nil {
		tx.Rollback()
		return false, errors.InternalServerError("error check deduction history")
	}
	if !deducted {
		tx.Rollback()
		return false, nil
	}

	var refunded bool
	err = tx.GetContext(ctx, &refunded,
		`SELECT EXISTS (SELECT 1 FROM point_histories WHERE payment_tx_id = $1 AND type = 'REFUND')`, paymentTxID)
	if err != nil {
		tx.Rollback()
		return false, errors.InternalServerError("error check refund history")
	}
	if refunded {
		tx.Rollback()
		return false, nil
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE user_points SET balance = balance + $1, updated_at = NOW() WHERE user_id = $2`, amount, userID)
	if err != nil {
		tx.Rollback()
		return false, errors.InternalServerError("error refund balance")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO point_histories (user_id, payment_tx_id, amount, type, created_at)
		VALUES ($1, $2, $3, 'REFUND', NOW())
	`, userID, paymentTxID, amount)
	if err != nil {
		tx.Rollback()
		return false, errors.InternalServerError("error insert point history")
	}

	if err := tx.Commit(); err != nil {
		return false, errors.InternalServerError("error committing transaction")
	}
	return true, nil
}

// FindUserPoint implements Repositories.
func (r *repositories) FindUserPoint(ctx context.Context, userID int64) (entity.UserPoint, error) {
	var point entity.UserPoint
	err := r.db.GetContext(ctx, &point, `SELECT * FROM user_points WHERE user_id = $1`, userID)
	if err == sql.ErrNoRows {
		return entity.UserPoint{}, errors.NotFound("user point not found")
	}
	if err != nil {
		return entity.UserPoint{}, errors.InternalServerError("error find user point")
	}
	return point, nil
}

// FindPointHistories implements Repositories.
func (r *repositories) FindPointHistories(ctx context.Context, userID int64) ([]entity.PointHistory, error) {
	var histories []entity.PointHistory
	err := r.db.SelectContext(ctx, &histories,
		`SELECT * FROM point_histories WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find point histories")
	}
	return histories, nil
}
