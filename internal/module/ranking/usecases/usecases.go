package usecases

import (
	"context"
	"time"

	"ticketing-service/internal/module/ranking/models/request"
	"ticketing-service/internal/module/ranking/models/response"
	"ticketing-service/internal/module/ranking/repositories"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const defaultRankingLimit = 10

// SeatCounter reports how many seats of a schedule sit in a given status. The
// reservation repository satisfies it.
type SeatCounter interface {
	CountSeatsByStatus(ctx context.Context, scheduleID int64, status string) (int64, error)
}

// ScheduleRegistrar opens the waiting queue for a schedule. The queue
// repository satisfies it.
type ScheduleRegistrar interface {
	RegisterSchedule(ctx context.Context, scheduleID int64) error
}

type usecase struct {
	repo      repositories.Repositories
	log       *otelzap.Logger
	seats     SeatCounter
	registrar ScheduleRegistrar
}

type Usecase interface {
	OpenSchedules(ctx context.Context, payload *request.OpenSchedules) ([]response.OpenedSchedule, error)
	RecordSale(ctx context.Context, scheduleID int64) error
	GetRanking(ctx context.Context, payload *request.SelloutRanking) ([]response.RankingEntry, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger, seats SeatCounter, registrar ScheduleRegistrar) Usecase {
	return &usecase{
		repo:      repo,
		log:       log,
		seats:     seats,
		registrar: registrar,
	}
}

// OpenSchedules implements Usecase. Capacity is pinned at opening time from
// the available seat count, so the sell-out condition is an exact match
// against a fixed number rather than a moving query.
func (u *usecase) OpenSchedules(ctx context.Context, payload *request.OpenSchedules) ([]response.OpenedSchedule, error) {
	opened := make([]response.OpenedSchedule, 0, len(payload.ScheduleIDs))
	now := time.Now()

	for _, scheduleID := range payload.ScheduleIDs {
		capacity, err := u.seats.CountSeatsByStatus(ctx, scheduleID, "AVAILABLE")
		if err != nil {
			return nil, err
		}

		if err := u.registrar.RegisterSchedule(ctx, scheduleID); err != nil {
			return nil, err
		}
		if err := u.repo.OpenStat(ctx, scheduleID, capacity, now); err != nil {
			return nil, err
		}

		u.log.Ctx(ctx).Info("schedule opened for sale",
			zap.Int64("schedule_id", scheduleID),
			zap.Int64("capacity", capacity))

		opened = append(opened, response.OpenedSchedule{ScheduleID: scheduleID, Capacity: capacity})
	}
	return opened, nil
}

// RecordSale implements Usecase. Called once per confirmed seat. The schedule
// is marked sold out when the counter reaches capacity and no sell-out was
// recorded yet; a duplicate tick past that point changes nothing because the
// ranking insert keeps the first score.
func (u *usecase) RecordSale(ctx context.Context, scheduleID int64) error {
	sold, err := u.repo.IncrementSold(ctx, scheduleID)
	if err != nil {
		return err
	}

	stat, err := u.repo.Stat(ctx, scheduleID)
	if err != nil {
		return err
	}
	stat.Sold = sold
	if !stat.SoldOut() || !stat.SoldOutAt.IsZero() {
		return nil
	}

	soldOutAt := time.Now()
	duration := soldOutAt.Sub(stat.OpenedAt)
	recorded, err := u.repo.MarkSoldOut(ctx, scheduleID, soldOutAt, duration)
	if err != nil {
		return err
	}
	if recorded {
		u.log.Ctx(ctx).Info("schedule sold out",
			zap.Int64("schedule_id", scheduleID),
			zap.Duration("duration", duration))
	}
	return nil
}

// GetRanking implements Usecase.
func (u *usecase) GetRanking(ctx context.Context, payload *request.SelloutRanking) ([]response.RankingEntry, error) {
	limit := payload.Limit
	if limit <= 0 {
		limit = defaultRankingLimit
	}

	entries, err := u.repo.Ranking(ctx, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]response.RankingEntry, 0, len(entries))
	for i, entry := range entries {
		resp = append(resp, response.RankingEntry{
			Rank:            i + 1,
			ScheduleID:      entry.ScheduleID,
			DurationSeconds: entry.Duration.Seconds(),
		})
	}
	return resp, nil
}
