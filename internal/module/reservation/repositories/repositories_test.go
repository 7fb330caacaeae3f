package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ticketing-service/internal/module/reservation/models/entity"
	"ticketing-service/internal/module/reservation/repositories"
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

func TestFindSeatByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil)

	t.Run("seat found", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id", "schedule_id", "seat_number", "class", "price", "status"}).
			AddRow(10, 1, "A-10", "S", 150000.0, entity.SeatStatusAvailable)

		mock.ExpectQuery("SELECT (.+) FROM seats WHERE id").
			WithArgs(int64(10)).
			WillReturnRows(rows)

		seat, err := repo.FindSeatByID(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), seat.ScheduleID)
		assert.Equal(t, entity.SeatStatusAvailable, seat.Status)
	})

	t.Run("seat not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM seats WHERE id").
			WithArgs(int64(99)).
			WillReturnRows(sqlxmock.NewRows([]string{"id"}))

		_, err := repo.FindSeatByID(context.Background(), 99)
		assert.Error(t, err)
	})
}

func TestReserveSeat(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil)

	t.Run("seat available", func(t *testing.T) {
		reservation := entity.NewReservation(1, 10, 150000)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE seats SET status").
			WithArgs(entity.SeatStatusReserved, int64(10), entity.SeatStatusAvailable).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO reservations").
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.ReserveSeat(context.Background(), 10, &reservation)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("seat already taken rolls back", func(t *testing.T) {
		reservation := entity.NewReservation(1, 10, 150000)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE seats SET status").
			WithArgs(entity.SeatStatusReserved, int64(10), entity.SeatStatusAvailable).
			WillReturnResult(sqlxmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.ReserveSeat(context.Background(), 10, &reservation)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil)
	reservationID := uuid.NewString()

	t.Run("pending row moves on", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations SET status").
			WithArgs(entity.ReservationStatusExpired, reservationID, entity.ReservationStatusPending).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		ok, err := repo.UpdateReservationStatus(context.Background(), reservationID,
			entity.ReservationStatusPending, entity.ReservationStatusExpired, nil)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("row already moved on rejects the write", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations SET status").
			WithArgs(entity.ReservationStatusExpired, reservationID, entity.ReservationStatusPending).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		ok, err := repo.UpdateReservationStatus(context.Background(), reservationID,
			entity.ReservationStatusPending, entity.ReservationStatusExpired, nil)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("confirmation writes paid_at", func(t *testing.T) {
		paidAt := time.Now().Round(time.Second)

		mock.ExpectExec("UPDATE reservations SET status(.+)paid_at").
			WithArgs(entity.ReservationStatusConfirmed, paidAt, reservationID, entity.ReservationStatusPending).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		ok, err := repo.UpdateReservationStatus(context.Background(), reservationID,
			entity.ReservationStatusPending, entity.ReservationStatusConfirmed, &paidAt)
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestFinalizeReservation(t *testing.T) {
	reservationID := uuid.NewString()
	paidAt := time.Now().Round(time.Second)

	t.Run("reservation and seat commit together", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock, nil, nil, nil)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reservations SET status(.+)paid_at").
			WithArgs(entity.ReservationStatusConfirmed, paidAt, reservationID, entity.ReservationStatusPending).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE seats SET status").
			WithArgs(entity.SeatStatusSold, int64(10), entity.SeatStatusReserved).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		finalized, err := repo.FinalizeReservation(context.Background(), reservationID, 10, paidAt)
		assert.NoError(t, err)
		assert.True(t, finalized)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reservation already left pending writes nothing", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock, nil, nil, nil)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reservations SET status(.+)paid_at").
			WithArgs(entity.ReservationStatusConfirmed, paidAt, reservationID, entity.ReservationStatusPending).
			WillReturnResult(sqlxmock.NewResult(0, 0))
		mock.ExpectRollback()

		finalized, err := repo.FinalizeReservation(context.Background(), reservationID, 10, paidAt)
		assert.NoError(t, err)
		assert.False(t, finalized)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("seat write failure rolls the confirmation back", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock, nil, nil, nil)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reservations SET status(.+)paid_at").
			WithArgs(entity.ReservationStatusConfirmed, paidAt, reservationID, entity.ReservationStatusPending).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE seats SET status").
			WithArgs(entity.SeatStatusSold, int64(10), entity.SeatStatusReserved).
			WillReturnError(fmt.Errorf("connection reset"))
		mock.ExpectRollback()

		_, err := repo.FinalizeReservation(context.Background(), reservationID, 10, paidAt)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateSeatStatus(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil)

	t.Run("reserved seat becomes sold", func(t *testing.T) {
		mock.ExpectExec("UPDATE seats SET status").
			WithArgs(entity.SeatStatusSold, int64(10), entity.SeatStatusReserved).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		ok, err := repo.UpdateSeatStatus(context.Background(), 10, entity.SeatStatusReserved, entity.SeatStatusSold)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("status mismatch touches nothing", func(t *testing.T) {
		mock.ExpectExec("UPDATE seats SET status").
			WithArgs(entity.SeatStatusSold, int64(10), entity.SeatStatusReserved).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		ok, err := repo.UpdateSeatStatus(context.Background(), 10, entity.SeatStatusReserved, entity.SeatStatusSold)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCountSeatsByStatus(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil)

	mock.ExpectQuery("SELECT COUNT(.+) FROM seats").
		WithArgs(int64(1), entity.SeatStatusAvailable).
		WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountSeatsByStatus(context.Background(), 1, entity.SeatStatusAvailable)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
