package entity

import (
	"database/sql"
	"time"
)

const (
	PointTypeCharge = "CHARGE"
	PointTypeUse    = "USE"
	PointTypeRefund = "REFUND"
)

// PaymentTransaction is one attempt chain, identified by a producer-generated
// payment_tx_id so redelivered events can be detected.
type PaymentTransaction struct {
	PaymentTxID       string         `db:"payment_tx_id"`
	ReservationID     string         `db:"reservation_id"`
	UserID            int64          `db:"user_id"`
	SeatID            int64          `db:"seat_id"`
	Amount            float64        `db:"amount"`
	Status            string         `db:"status"`
	RetryCount        int            `db:"retry_count"`
	LastFailureReason sql.NullString `db:"last_failure_reason"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         sql.NullTime   `db:"updated_at"`
}

type UserPoint struct {
	UserID    int64        `db:"user_id"`
	Balance   float64      `db:"balance"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

// PointHistory is the append-only ledger row paired with every balance
// mutation inside the same transaction.
type PointHistory struct {
	ID          int64          `db:"id"`
	UserID      int64          `db:"user_id"`
	PaymentTxID sql.NullString `db:"payment_tx_id"`
	Amount      float64        `db:"amount"`
	Type        string         `db:"type"`
	CreatedAt   time.Time      `db:"created_at"`
}
