package entity

import "time"

// SelloutStat tracks one schedule's sale progress from opening to sell-out.
// It lives entirely in redis so every instance sees the same counters.
type SelloutStat struct {
	ScheduleID int64
	Capacity   int64
	Sold       int64
	OpenedAt   time.Time
	SoldOutAt  time.Time
}

// SoldOut reports whether every seat of the schedule has been sold.
func (s SelloutStat) SoldOut() bool {
	return s.Capacity > 0 && s.Sold >= s.Capacity
}

type RankingEntry struct {
	ScheduleID int64
	Duration   time.Duration
}
