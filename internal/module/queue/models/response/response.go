package response

type EnterQueue struct {
	Token string `json:"token"`
	Rank  int64  `json:"rank"`
}

type QueueStatus struct {
	Status           string `json:"status"`
	Rank             int64  `json:"rank,omitempty"`
	RemainingSeconds int64  `json:"remaining_seconds,omitempty"`
}
