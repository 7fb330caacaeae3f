package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ticketing-service/internal/module/ranking/models/entity"
	"ticketing-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const rankingKey = "sellout:ranking"

type repositories struct {
	redisClient *redis.Client
	log         *otelzap.Logger
}

type Repositories interface {
	OpenStat(ctx context.Context, scheduleID int64, capacity int64, openedAt time.Time) error
	IncrementSold(ctx context.Context, scheduleID int64) (int64, error)
	Stat(ctx context.Context, scheduleID int64) (entity.SelloutStat, error)
	MarkSoldOut(ctx context.Context, scheduleID int64, soldOutAt time.Time, duration time.Duration) (bool, error)
	Ranking(ctx context.Context, limit int64) ([]entity.RankingEntry, error)
}

func New(redisClient *redis.Client, log *otelzap.Logger) Repositories {
	return &repositories{
		redisClient: redisClient,
		log:         log,
	}
}

func statKey(scheduleID int64) string {
	return fmt.Sprintf("sellout:stat:%d", scheduleID)
}

// OpenStat implements Repositories. HSETNX on opened_at makes reopening a
// no-op, so a redelivered open request never resets a running counter.
func (r *repositories) OpenStat(ctx context.Context, scheduleID int64, capacity int64, openedAt time.Time) error {
	opened, err := r.redisClient.HSetNX(ctx, statKey(scheduleID), "opened_at", openedAt.UnixMilli()).Result()
	if err != nil {
		return errors.InternalServerError("error open sellout stat")
	}
	if !opened {
		return nil
	}

	err = r.redisClient.HSet(ctx, statKey(scheduleID), "capacity", capacity, "sold", 0).Err()
	if err != nil {
		return errors.InternalServerError("error open sellout stat")
	}
	return nil
}

// IncrementSold implements Repositories. Returns the count after increment.
func (r *repositories) IncrementSold(ctx context.Context, scheduleID int64) (int64, error) {
	sold, err := r.redisClient.HIncrBy(ctx, statKey(scheduleID), "sold", 1).Result()
	if err != nil {
		return 0, errors.InternalServerError("error increment sold count")
	}
	return sold, nil
}

// Stat implements Repositories.
func (r *repositories) Stat(ctx context.Context, scheduleID int64) (entity.SelloutStat, error) {
	fields, err := r.redisClient.HGetAll(ctx, statKey(scheduleID)).Result()
	if err != nil {
		return entity.SelloutStat{}, errors.InternalServerError("error get sellout stat")
	}
	if len(fields) == 0 {
		return entity.SelloutStat{}, errors.NotFound("sellout stat not found")
	}

	stat := entity.SelloutStat{ScheduleID: scheduleID}
	stat.Capacity, _ = strconv.ParseInt(fields["capacity"], 10, 64)
	stat.Sold, _ = strconv.ParseInt(fields["sold"], 10, 64)
	if ms, err := strconv.ParseInt(fields["opened_at"], 10, 64); err == nil {
		stat.OpenedAt = time.UnixMilli(ms)
	}
	if ms, err := strconv.ParseInt(fields["sold_out_at"], 10, 64); err == nil {
		stat.SoldOutAt = time.UnixMilli(ms)
	}
	return stat, nil
}

// MarkSoldOut implements Repositories. ZADD NX records only the first sell-out
// observation, concurrent finalizers racing on the last seat cannot move the
// score. Returns whether this call was the one that recorded it.
func (r *repositories) MarkSoldOut(ctx context.Context, scheduleID int64, soldOutAt time.Time, duration time.Duration) (bool, error) {
	added, err := r.redisClient.ZAddNX(ctx, rankingKey, redis.Z{
		Score:  float64(duration.Milliseconds()),
		Member: strconv.FormatInt(scheduleID, 10),
	}).Result()
	if err != nil {
		return false, errors.InternalServerError("error mark sold out")
	}
	if added == 0 {
		return false, nil
	}

	err = r.redisClient.HSet(ctx, statKey(scheduleID), "sold_out_at", soldOutAt.UnixMilli()).Err()
	if err != nil {
		return false, errors.InternalServerError("error mark sold out")
	}
	return true, nil
}

// Ranking implements Repositories. Fastest sell-out first.
func (r *repositories) Ranking(ctx context.Context, limit int64) ([]entity.RankingEntry, error) {
	members, err := r.redisClient.ZRangeWithScores(ctx, rankingKey, 0, limit-1).Result()
	if err != nil {
		return nil, errors.InternalServerError("error get sellout ranking")
	}

	entries := make([]entity.RankingEntry, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m.Member.(string), 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, entity.RankingEntry{
			ScheduleID: id,
			Duration:   time.Duration(int64(m.Score)) * time.Millisecond,
		})
	}
	return entries, nil
}
