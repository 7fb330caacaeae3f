package response

type TemporaryReserve struct {
	ReservationID string `json:"reservation_id"`
	PaymentToken  string `json:"payment_token"`
	ExpiresAt     string `json:"expires_at"`
}

type ConfirmReservation struct {
	ReservationID string `json:"reservation_id"`
	PaymentTxID   string `json:"payment_tx_id"`
	Status        string `json:"status"`
}

type Reservation struct {
	ID        string  `json:"id"`
	SeatID    int64   `json:"seat_id"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	PaidAt    string  `json:"paid_at,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type Seat struct {
	ID         int64   `json:"id"`
	ScheduleID int64   `json:"schedule_id"`
	SeatNumber string  `json:"seat_number"`
	Class      string  `json:"class"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
}
