package entity

import "time"

type QueueStatus string

const (
	StatusWaiting QueueStatus = "WAITING"
	StatusActive  QueueStatus = "ACTIVE"
	StatusExpired QueueStatus = "EXPIRED"
)

// QueueEntry is a waiting-room membership: one token in either the waiting or
// the active set of a schedule, never both.
type QueueEntry struct {
	Token      string
	ScheduleID int64
	EnqueuedAt time.Time
}
