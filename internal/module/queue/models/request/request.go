package request

type EnterQueue struct {
	ScheduleID int64 `json:"schedule_id" validate:"required"`
}

type QueueStatus struct {
	ScheduleID int64  `json:"schedule_id" validate:"required"`
	Token      string `json:"token" validate:"required"`
}
