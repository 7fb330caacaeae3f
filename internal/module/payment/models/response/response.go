package response

type UserPoint struct {
	UserID  int64   `json:"user_id"`
	Balance float64 `json:"balance"`
}

type PointHistory struct {
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	CreatedAt string  `json:"created_at"`
}

type PointBalance struct {
	UserID    int64          `json:"user_id"`
	Balance   float64        `json:"balance"`
	Histories []PointHistory `json:"histories"`
}
