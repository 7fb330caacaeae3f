package request

type TemporaryReserve struct {
	SeatID     int64  `json:"seat_id" validate:"required"`
	ScheduleID int64  `json:"schedule_id" validate:"required"`
	QueueToken string `json:"queue_token" validate:"required"`
}

type ConfirmReservation struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	PaymentToken  string `json:"payment_token" validate:"required"`
	PaymentTxID   string `json:"payment_tx_id"`
}

// ReservationExpiration is the delayed-job payload reclaiming a hold whose
// payment never arrived.
type ReservationExpiration struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	SeatID        int64  `json:"seat_id" validate:"required"`
	LockValue     string `json:"lock_value" validate:"required"`
}

// PaymentResult is the event data consumed from the payment saga on both the
// success and the failure topic.
type PaymentResult struct {
	PaymentTxID   string  `json:"payment_tx_id" validate:"required"`
	ReservationID string  `json:"reservation_id" validate:"required"`
	UserID        int64   `json:"user_id" validate:"required"`
	SeatID        int64   `json:"seat_id" validate:"required"`
	Amount        float64 `json:"amount"`
	Reason        string  `json:"reason"`
}
