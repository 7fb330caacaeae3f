package request

// PaymentEvent is the data payload on every payment.* topic.
type PaymentEvent struct {
	PaymentTxID   string  `json:"payment_tx_id" validate:"required"`
	ReservationID string  `json:"reservation_id" validate:"required"`
	UserID        int64   `json:"user_id" validate:"required"`
	SeatID        int64   `json:"seat_id" validate:"required"`
	Amount        float64 `json:"amount"`
	RetryCount    int     `json:"retry_count"`
	Reason        string  `json:"reason"`
}

type ChargePoints struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
