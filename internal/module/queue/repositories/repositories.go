package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ticketing-service/internal/module/queue/models/entity"
	"ticketing-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	leaderKey    = "queue:promotion:leader"
	schedulesKey = "queue:schedules"
)

// compare-and-expire, only the current leader may extend its lease
var renewScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
else
	return 0
end`)

// compare-and-delete, never release a lease owned by someone else
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`)

type repositories struct {
	redisClient *redis.Client
	log         *otelzap.Logger
}

type Repositories interface {
	// membership
	RegisterSchedule(ctx context.Context, scheduleID int64) error
	Schedules(ctx context.Context) ([]int64, error)
	AddWaiting(ctx context.Context, entry *entity.QueueEntry) error
	WaitingRank(ctx context.Context, scheduleID int64, token string) (int64, bool, error)
	ActivePromotedAt(ctx context.Context, scheduleID int64, token string) (time.Time, bool, error)
	CountWaiting(ctx context.Context, scheduleID int64) (int64, error)
	CountActive(ctx context.Context, scheduleID int64) (int64, error)
	PromoteOldest(ctx context.Context, scheduleID int64, n int64, at time.Time) ([]string, error)
	PruneActive(ctx context.Context, scheduleID int64, olderThan time.Time) (int64, error)
	RemoveActive(ctx context.Context, scheduleID int64, token string) (bool, error)
	// leadership
	AcquireLeadership(ctx context.Context, instanceID string, ttl time.Duration) (bool, error)
	RenewLeadership(ctx context.Context, instanceID string, ttl time.Duration) (bool, error)
	ReleaseLeadership(ctx context.Context, instanceID string) error
}

func New(redisClient *redis.Client, log *otelzap.Logger) Repositories {
	return &repositories{
		redisClient: redisClient,
		log:         log,
	}
}

func waitingKey(scheduleID int64) string {
	return fmt.Sprintf("queue:waiting:%d", scheduleID)
}

func activeKey(scheduleID int64) string {
	return fmt.Sprintf("queue:active:%d", scheduleID)
}

// RegisterSchedule implements Repositories.
func (r *repositories) RegisterSchedule(ctx context.Context, scheduleID int64) error {
	err := r.redisClient.SAdd(ctx, schedulesKey, scheduleID).Err()
	if err != nil {
		return errors.InternalServerError("error register schedule")
	}
	return nil
}

// Schedules implements Repositories.
func (r *repositories) Schedules(ctx context.Context) ([]int64, error) {
	members, err := r.redisClient.SMembers(ctx, schedulesKey).Result()
	if err != nil {
		return nil, errors.InternalServerError("error list schedules")
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AddWaiting implements Repositories. ZADD NX keeps the original enqueue score
// if the same token enters twice, so re-entry never re-ranks.
func (r *repositories) AddWaiting(ctx context.Context, entry *entity.QueueEntry) error {
	err := r.redisClient.ZAddNX(ctx, waitingKey(entry.ScheduleID), redis.Z{
		Score:  float64(entry.EnqueuedAt.UnixMilli()),
		Member: entry.Token,
	}).Err()
	if err != nil {
		return errors.InternalServerError("error add waiting token")
	}
	return nil
}

// WaitingRank implements Repositories.
func (r *repositories) WaitingRank(ctx context.Context, scheduleID int64, token string) (int64, bool, error) {
	rank, err := r.redisClient.ZRank(ctx, waitingKey(scheduleID), token).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.InternalServerError("error get waiting rank")
	}
	return rank, true, nil
}

// ActivePromotedAt implements Repositories.
func (r *repositories) ActivePromotedAt(ctx context.Context, scheduleID int64, token string) (time.Time, bool, error) {
	score, err := r.redisClient.ZScore(ctx, activeKey(scheduleID), token).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, errors.InternalServerError("error get active score")
	}
	return time.UnixMilli(int64(score)), true, nil
}

// CountWaiting implements Repositories.
func (r *repositories) CountWaiting(ctx context.Context, scheduleID int64) (int64, error) {
	count, err := r.redisClient.ZCard(ctx, waitingKey(scheduleID)).Result()
	if err != nil {
		return 0, errors.InternalServerError("error count waiting")
	}
	return count, nil
}

// CountActive implements Repositories.
func (r *repositories) CountActive(ctx context.Context, scheduleID int64) (int64, error) {
	count, err := r.redisClient.ZCard(ctx, activeKey(scheduleID)).Result()
	if err != nil {
		return 0, errors.InternalServerError("error count active")
	}
	return count, nil
}

// PromoteOldest implements Repositories. Pops the n lowest-score waiting
// members and adds them to the active set with the promotion time as score.
// The pop and the add are two commands; single-leader discipline in the
// usecase is what keeps this safe across the fleet.
func (r *repositories) PromoteOldest(ctx context.Context, scheduleID int64, n int64, at time.Time) ([]string, error) {
	popped, err := r.redisClient.ZPopMin(ctx, waitingKey(scheduleID), n).Result()
	if err != nil {
		return nil, errors.InternalServerError("error pop waiting tokens")
	}
	if len(popped) == 0 {
		return nil, nil
	}

	members := make([]redis.Z, 0, len(popped))
	tokens := make([]string, 0, len(popped))
	for _, z := range popped {
		token, ok := z.Member.(string)
		if !ok {
			continue
		}
		members = append(members, redis.Z{Score: float64(at.UnixMilli()), Member: token})
		tokens = append(tokens, token)
	}

	if err := r.redisClient.ZAdd(ctx, activeKey(scheduleID), members...).Err(); err != nil {
		return nil, errors.InternalServerError("error add active tokens")
	}
	return tokens, nil
}

// PruneActive implements Repositories. Removes active tokens whose admission
// window has lapsed.
func (r *repositories) PruneActive(ctx context.Context, scheduleID int64, olderThan time.Time) (int64, error) {
	max := strconv.FormatInt(olderThan.UnixMilli(), 10)
	removed, err := r.redisClient.ZRemRangeByScore(ctx, activeKey(scheduleID), "-inf", max).Result()
	if err != nil {
		return 0, errors.InternalServerError("error prune active tokens")
	}
	return removed, nil
}

// RemoveActive implements Repositories.
func (r *repositories) RemoveActive(ctx context.Context, scheduleID int64, token string) (bool, error) {
	removed, err := r.redisClient.ZRem(ctx, activeKey(scheduleID), token).Result()
	if err != nil {
		return false, errors.InternalServerError("error remove active token")
	}
	return removed > 0, nil
}

// AcquireLeadership implements Repositories. Single atomic create-if-absent
// with TTL; there is no read-then-write window.
func (r *repositories) AcquireLeadership(ctx context.Context, instanceID string, ttl time.Duration) (bool, error) {
	ok, err := r.redisClient.SetNX(ctx, leaderKey, instanceID, ttl).Result()
	if err != nil {
		return false, errors.InternalServerError("error acquire leadership")
	}
	return ok, nil
}

// RenewLeadership implements Repositories. Returns false when the stored value
// no longer matches this instance, which means the lease expired and may have
// been taken by another process.
func (r *repositories) RenewLeadership(ctx context.Context, instanceID string, ttl time.Duration) (bool, error) {
	res, err := renewScript.Run(ctx, r.redisClient, []string{leaderKey}, instanceID, ttl.Milliseconds()).Int64()
	if err != nil {
		return false, errors.InternalServerError("error renew leadership")
	}
	return res == 1, nil
}

// ReleaseLeadership implements Repositories.
func (r *repositories) ReleaseLeadership(ctx context.Context, instanceID string) error {
	if err := releaseScript.Run(ctx, r.redisClient, []string{leaderKey}, instanceID).Err(); err != nil && err != redis.Nil {
		return errors.InternalServerError("error release leadership")
	}
	return nil
}
