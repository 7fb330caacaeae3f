package request

type OpenSchedules struct {
	ScheduleIDs []int64 `json:"schedule_ids" validate:"required,min=1,dive,gt=0"`
}

type SelloutRanking struct {
	Limit int64 `query:"limit" validate:"omitempty,gt=0,lte=100"`
}
