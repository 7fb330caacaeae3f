package entity

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	SeatStatusAvailable = "AVAILABLE"
	SeatStatusReserved  = "RESERVED"
	SeatStatusSold      = "SOLD"
)

const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusExpired   = "EXPIRED"
	ReservationStatusCanceled  = "CANCELED"
)

type Seat struct {
	ID         int64   `db:"id"`
	ScheduleID int64   `db:"schedule_id"`
	SeatNumber string  `db:"seat_number"`
	Class      string  `db:"class"`
	Price      float64 `db:"price"`
	Status     string  `db:"status"`
}

type Reservation struct {
	ID        uuid.UUID    `db:"id"`
	UserID    int64        `db:"user_id"`
	SeatID    int64        `db:"seat_id"`
	Price     float64      `db:"price"`
	Status    string       `db:"status"`
	PaidAt    sql.NullTime `db:"paid_at"`
	CreatedAt time.Time    `db:"created_at"`
}

// NewReservation builds a fresh PENDING hold for a seat.
func NewReservation(userID, seatID int64, price float64) Reservation {
	return Reservation{
		ID:        uuid.New(),
		UserID:    userID,
		SeatID:    seatID,
		Price:     price,
		Status:    ReservationStatusPending,
		CreatedAt: time.Now().Round(time.Second),
	}
}

// Validate rejects impossible status combinations, a CONFIRMED reservation
// must carry the payment timestamp.
func (r Reservation) Validate() error {
	if r.Status == ReservationStatusConfirmed && !r.PaidAt.Valid {
		return errors.New("confirmed reservation without paid_at")
	}
	if r.Status != ReservationStatusConfirmed && r.PaidAt.Valid {
		return errors.New("paid_at set on unconfirmed reservation")
	}
	return nil
}
