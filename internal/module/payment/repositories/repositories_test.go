package repositories_test

import (
	"context"
	"testing"

	"ticketing-service/internal/module/payment/models/entity"
	"ticketing-service/internal/module/payment/repositories"
	"ticketing-service/internal/module/payment/saga"
	logPkg "ticketing-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock *otelzap.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logMock = logPkg.Setup()
}

func TestInsertTransaction(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	transaction := entity.PaymentTransaction{
		PaymentTxID:   uuid.NewString(),
		ReservationID: uuid.NewString(),
		UserID:        1,
		SeatID:        10,
		Amount:        150000,
		Status:        saga.StatusPending,
	}

	t.Run("first delivery inserts", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO payment_transactions").
			WillReturnResult(sqlxmock.NewResult(1, 1))

		inserted, err := repo.InsertTransaction(context.Background(), &transaction)
		assert.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("redelivery hits the conflict clause", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO payment_transactions").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		inserted, err := repo.InsertTransaction(context.Background(), &transaction)
		assert.NoError(t, err)
		assert.False(t, inserted)
	})
}

func TestUpdateTransactionStatus(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)
	paymentTxID := uuid.NewString()

	t.Run("live row updates", func(t *testing.T) {
		mock.ExpectExec("UPDATE payment_transactions").
			WithArgs(saga.StatusSuccess, 0, "", paymentTxID).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		ok, err := repo.UpdateTransactionStatus(context.Background(), paymentTxID, saga.StatusSuccess, 0, "")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("terminal row is never overwritten", func(t *testing.T) {
		mock.ExpectExec("UPDATE payment_transactions").
			WithArgs(saga.StatusRetrying, 1, "late retry", paymentTxID).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		ok, err := repo.UpdateTransactionStatus(context.Background(), paymentTxID, saga.StatusRetrying, 1, "late retry")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestDeductBalance(t *testing.T) {
	paymentTxID := uuid.NewString()

	t.Run("sufficient balance deducts and writes history", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT user_id, balance FROM user_points").
			WithArgs(int64(1)).
			WillReturnRows(sqlxmock.NewRows([]string{"user_id", "balance"}).AddRow(1, 200000.0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(paymentTxID).
			WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("UPDATE user_points SET balance = balance -").
			WithArgs(150000.0, int64(1)).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO point_histories").
			WithArgs(int64(1), paymentTxID, 150000.0).
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.DeductBalance(context.Background(), 1, 150000, paymentTxID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient balance rejects", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT user_id, balance FROM user_points").
			WithArgs(int64(1)).
			WillReturnRows(sqlxmock.NewRows([]string{"user_id", "balance"}).AddRow(1, 1000.0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(paymentTxID).
			WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		err := repo.DeductBalance(context.Background(), 1, 150000, paymentTxID)
		assert.ErrorIs(t, err, repositories.ErrInsufficientBalance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redelivered deduction is skipped after the row lock", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		// the history row written by the first delivery is only visible once
		// the row lock is held, so the lock comes first
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT user_id, balance FROM user_points").
			WithArgs(int64(1)).
			WillReturnRows(sqlxmock.NewRows([]string{"user_id", "balance"}).AddRow(1, 50000.0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(paymentTxID).
			WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		err := repo.DeductBalance(context.Background(), 1, 150000, paymentTxID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRefundBalance(t *testing.T) {
	paymentTxID := uuid.NewString()

	t.Run("refunds a prior deduction once", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(paymentTxID).
			WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(paymentTxID).
			WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("UPDATE user_points SET balance = balance \\+").
			WithArgs(150000.0, int64(1)).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO point_histories").
			WithArgs(int64(1), paymentTxID, 150000.0).
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectCommit()

		refunded, err := repo.RefundBalance(context.Background(), 1, 150000, paymentTxID)
		assert.NoError(t, err)
		assert.True(t, refunded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing was deducted so nothing refunds", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(paymentTxID).
			WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		refunded, err := repo.RefundBalance(context.Background(), 1, 150000, paymentTxID)
		assert.NoError(t, err)
		assert.False(t, refunded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second refund delivery is a no-op", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(paymentTxID).
			WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(paymentTxID).
			WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		refunded, err := repo.RefundBalance(context.Background(), 1, 150000, paymentTxID)
		assert.NoError(t, err)
		assert.False(t, refunded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
