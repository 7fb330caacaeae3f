package response

type OpenedSchedule struct {
	ScheduleID int64 `json:"schedule_id"`
	Capacity   int64 `json:"capacity"`
}

type RankingEntry struct {
	Rank            int     `json:"rank"`
	ScheduleID      int64   `json:"schedule_id"`
	DurationSeconds float64 `json:"duration_seconds"`
}
