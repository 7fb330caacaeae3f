package usecases

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"ticketing-service/config"
	"ticketing-service/internal/module/queue/models/entity"
	"ticketing-service/internal/module/queue/models/request"
	"ticketing-service/internal/module/queue/models/response"
	"ticketing-service/internal/module/queue/repositories"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo       repositories.Repositories
	log        *otelzap.Logger
	cfg        *config.QueueConfig
	instanceID string
	leader     atomic.Bool
	promoting  atomic.Bool
}

type Usecase interface {
	Enter(ctx context.Context, userID int64, payload *request.EnterQueue) (response.EnterQueue, error)
	Status(ctx context.Context, payload *request.QueueStatus) (response.QueueStatus, error)
	IsActive(ctx context.Context, userID int64, scheduleID int64, token string) (bool, error)
	ConsumeActiveToken(ctx context.Context, scheduleID int64, token string) error
	Promote(ctx context.Context) error
	TryAcquireLeadership(ctx context.Context) (bool, error)
	Heartbeat(ctx context.Context) bool
	RunPromotionLoop(ctx context.Context)
}

func New(repo repositories.Repositories, log *otelzap.Logger, cfg *config.QueueConfig) Usecase {
	return &usecase{
		repo:       repo,
		log:        log,
		cfg:        cfg,
		instanceID: uuid.NewString(),
	}
}

// Enter puts the caller at the tail of the waiting line. The token is a
// signed claim binding user and schedule, so only its holder can spend it.
func (u *usecase) Enter(ctx context.Context, userID int64, payload *request.EnterQueue) (response.EnterQueue, error) {
	token, err := u.issueQueueToken(userID, payload.ScheduleID)
	if err != nil {
		return response.EnterQueue{}, errors.InternalServerError("error issue queue token")
	}

	if err := u.repo.RegisterSchedule(ctx, payload.ScheduleID); err != nil {
		return response.EnterQueue{}, err
	}

	entry := entity.QueueEntry{
		Token:      token,
		ScheduleID: payload.ScheduleID,
		EnqueuedAt: time.Now(),
	}
	if err := u.repo.AddWaiting(ctx, &entry); err != nil {
		return response.EnterQueue{}, err
	}

	rank, found, err := u.repo.WaitingRank(ctx, payload.ScheduleID, token)
	if err != nil {
		return response.EnterQueue{}, err
	}
	if !found {
		// promoted between add and rank lookup, report the head of the line
		rank = 0
	}

	return response.EnterQueue{Token: token, Rank: rank}, nil
}

func (u *usecase) Status(ctx context.Context, payload *request.QueueStatus) (response.QueueStatus, error) {
	rank, waiting, err := u.repo.WaitingRank(ctx, payload.ScheduleID, payload.Token)
	if err != nil {
		return response.QueueStatus{}, err
	}
	if waiting {
		return response.QueueStatus{
			Status: string(entity.StatusWaiting),
			Rank:   rank,
		}, nil
	}

	promotedAt, active, err := u.repo.ActivePromotedAt(ctx, payload.ScheduleID, payload.Token)
	if err != nil {
		return response.QueueStatus{}, err
	}
	if active {
		remaining := helpers.DurationCalculation(promotedAt.Add(u.cfg.ActiveWindow))
		if remaining > 0 {
			return response.QueueStatus{
				Status:           string(entity.StatusActive),
				RemainingSeconds: int64(remaining.Seconds()),
			}, nil
		}
	}

	return response.QueueStatus{Status: string(entity.StatusExpired)}, nil
}

// IsActive reports whether the token is usable for reservation: issued to
// this user for this schedule, promoted, and still inside the admission
// window.
func (u *usecase) IsActive(ctx context.Context, userID int64, scheduleID int64, token string) (bool, error) {
	if err := u.verifyQueueToken(token, userID, scheduleID); err != nil {
		return false, nil
	}

	promotedAt, active, err := u.repo.ActivePromotedAt(ctx, scheduleID, token)
	if err != nil {
		return false, err
	}
	if !active {
		return false, nil
	}
	return time.Since(promotedAt) < u.cfg.ActiveWindow, nil
}

// ConsumeActiveToken removes an active token once it has been spent on a
// successful seat hold, freeing admission capacity for the next promotion.
func (u *usecase) ConsumeActiveToken(ctx context.Context, scheduleID int64, token string) error {
	removed, err := u.repo.RemoveActive(ctx, scheduleID, token)
	if err != nil {
		return err
	}
	if !removed {
		return errors.NotFound("active token not found")
	}
	return nil
}

// Promote moves waiting tokens into the active set up to capacity, oldest
// enqueue time first. It re-checks leadership ownership immediately before
// mutating anything: the in-memory leader flag is only a hint and must not be
// trusted across a missed heartbeat.
func (u *usecase) Promote(ctx context.Context) error {
	ok, err := u.repo.RenewLeadership(ctx, u.instanceID, u.cfg.LeaderTTL)
	if err != nil {
		return err
	}
	if !ok {
		u.leader.Store(false)
		return nil
	}

	scheduleIDs, err := u.repo.Schedules(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, scheduleID := range scheduleIDs {
		if _, err := u.repo.PruneActive(ctx, scheduleID, now.Add(-u.cfg.ActiveWindow)); err != nil {
			return err
		}

		active, err := u.repo.CountActive(ctx, scheduleID)
		if err != nil {
			return err
		}

		free := u.cfg.Capacity - active
		if free <= 0 {
			continue
		}

		waiting, err := u.repo.CountWaiting(ctx, scheduleID)
		if err != nil {
			return err
		}
		if waiting == 0 {
			continue
		}

		if _, err := u.repo.PromoteOldest(ctx, scheduleID, free, now); err != nil {
			return err
		}
	}

	return nil
}

// TryAcquireLeadership attempts to take the promotion lease and records the
// outcome in the local leader flag.
func (u *usecase) TryAcquireLeadership(ctx context.Context) (bool, error) {
	ok, err := u.repo.AcquireLeadership(ctx, u.instanceID, u.cfg.LeaderTTL)
	if err != nil {
		return false, err
	}
	if ok {
		u.leader.Store(true)
	}
	return ok, nil
}

// Heartbeat renews the lease and demotes this instance the moment renewal is
// refused: a lapsed lease may already belong to another process, so believing
// the local flag past that point would mean two promoters. Returns whether the
// instance still leads.
func (u *usecase) Heartbeat(ctx context.Context) bool {
	if !u.leader.Load() {
		return false
	}
	ok, err := u.repo.RenewLeadership(ctx, u.instanceID, u.cfg.LeaderTTL)
	if err != nil || !ok {
		u.leader.Store(false)
		return false
	}
	return true
}

// RunPromotionLoop drives leader election and the periodic promotion tick.
// Non-leaders retry acquisition at the promotion cadence; the leader renews at
// half the lease TTL. A tick that would overlap a still-running one is
// skipped, overlap would double-count capacity.
func (u *usecase) RunPromotionLoop(ctx context.Context) {
	promoteTicker := time.NewTicker(u.cfg.PromoteInterval)
	defer promoteTicker.Stop()
	heartbeatTicker := time.NewTicker(u.cfg.LeaderTTL / 2)
	defer heartbeatTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			if u.leader.Load() {
				if err := u.repo.ReleaseLeadership(context.Background(), u.instanceID); err != nil {
					u.log.Ctx(ctx).Error(fmt.Sprintf("error release leadership: %v", err))
				}
			}
			return

		case <-heartbeatTicker.C:
			u.Heartbeat(ctx)

		case <-promoteTicker.C:
			if !u.leader.Load() {
				ok, err := u.TryAcquireLeadership(ctx)
				if err != nil {
					u.log.Ctx(ctx).Error(fmt.Sprintf("error acquire leadership: %v", err))
					continue
				}
				if !ok {
					continue
				}
			}

			if !u.promoting.CompareAndSwap(false, true) {
				continue
			}
			// a failed tick is self-healing on the next interval
			if err := u.Promote(ctx); err != nil {
				u.log.Ctx(ctx).Error(fmt.Sprintf("error promote waiting tokens: %v", err))
			}
			u.promoting.Store(false)
		}
	}
}

func (u *usecase) issueQueueToken(userID int64, scheduleID int64) (string, error) {
	claims := jwt.MapClaims{
		"sub":         fmt.Sprintf("%d", userID),
		"schedule_id": scheduleID,
		"jti":         uuid.NewString(),
		"iat":         jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JwtSecret))
}

func (u *usecase) verifyQueueToken(tokenStr string, userID int64, scheduleID int64) error {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(u.cfg.JwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return fmt.Errorf("invalid queue token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("invalid queue token claims")
	}
	if sub, _ := claims["sub"].(string); sub != fmt.Sprintf("%d", userID) {
		return fmt.Errorf("queue token user mismatch")
	}
	if sid, _ := claims["schedule_id"].(float64); int64(sid) != scheduleID {
		return fmt.Errorf("queue token schedule mismatch")
	}
	return nil
}
