package usecases_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ticketing-service/config"
	"ticketing-service/internal/module/queue/mocks"
	"ticketing-service/internal/module/queue/models/entity"
	"ticketing-service/internal/module/queue/models/request"
	"ticketing-service/internal/module/queue/usecases"
	logPkg "ticketing-service/internal/pkg/log"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	cfgMock  *config.QueueConfig
)

func setup() {
	repoMock = new(mocks.Repositories)
	cfgMock = &config.QueueConfig{
		Capacity:        2,
		ActiveWindow:    3 * time.Minute,
		PromoteInterval: 2 * time.Second,
		LeaderTTL:       10 * time.Second,
		JwtSecret:       "secret",
	}
	uc = usecases.New(repoMock, logPkg.Setup(), cfgMock)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func queueTokenFor(userID, scheduleID int64) string {
	claims := jwt.MapClaims{
		"sub":         fmt.Sprintf("%d", userID),
		"schedule_id": scheduleID,
		"jti":         uuid.NewString(),
		"iat":         jwt.NewNumericDate(time.Now()),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	return token
}

func TestEnter(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.EnterQueue{ScheduleID: 1}

		repoMock.On("RegisterSchedule", ctx, int64(1)).Return(nil)
		repoMock.On("AddWaiting", ctx, mock.Anything).Return(nil)
		repoMock.On("WaitingRank", ctx, int64(1), mock.Anything).Return(int64(4), true, nil)

		resp, err := uc.Enter(ctx, 1, &payload)
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, int64(4), resp.Rank)
	})

	t.Run("issued token is bound to the entering user", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.EnterQueue{ScheduleID: 1}

		repoMock.On("RegisterSchedule", ctx, int64(1)).Return(nil)
		repoMock.On("AddWaiting", ctx, mock.Anything).Return(nil)
		repoMock.On("WaitingRank", ctx, int64(1), mock.Anything).Return(int64(0), true, nil)

		resp, err := uc.Enter(ctx, 7, &payload)
		assert.NoError(t, err)

		repoMock.On("ActivePromotedAt", ctx, int64(1), resp.Token).Return(time.Now(), true, nil)

		active, err := uc.IsActive(ctx, 7, 1, resp.Token)
		assert.NoError(t, err)
		assert.True(t, active)

		active, err = uc.IsActive(ctx, 8, 1, resp.Token)
		assert.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("promoted before rank lookup reports head of line", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.EnterQueue{ScheduleID: 1}

		repoMock.On("RegisterSchedule", ctx, int64(1)).Return(nil)
		repoMock.On("AddWaiting", ctx, mock.Anything).Return(nil)
		repoMock.On("WaitingRank", ctx, int64(1), mock.Anything).Return(int64(0), false, nil)

		resp, err := uc.Enter(ctx, 1, &payload)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), resp.Rank)
	})
}

func TestStatus(t *testing.T) {
	t.Run("waiting", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.QueueStatus{ScheduleID: 1, Token: "token-1"}

		repoMock.On("WaitingRank", ctx, int64(1), "token-1").Return(int64(7), true, nil)

		resp, err := uc.Status(ctx, &payload)
		assert.NoError(t, err)
		assert.Equal(t, string(entity.StatusWaiting), resp.Status)
		assert.Equal(t, int64(7), resp.Rank)
	})

	t.Run("active inside the admission window", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.QueueStatus{ScheduleID: 1, Token: "token-1"}

		repoMock.On("WaitingRank", ctx, int64(1), "token-1").Return(int64(0), false, nil)
		repoMock.On("ActivePromotedAt", ctx, int64(1), "token-1").Return(time.Now().Add(-time.Minute), true, nil)

		resp, err := uc.Status(ctx, &payload)
		assert.NoError(t, err)
		assert.Equal(t, string(entity.StatusActive), resp.Status)
		assert.Greater(t, resp.RemainingSeconds, int64(0))
	})

	t.Run("active window already passed", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.QueueStatus{ScheduleID: 1, Token: "token-1"}

		repoMock.On("WaitingRank", ctx, int64(1), "token-1").Return(int64(0), false, nil)
		repoMock.On("ActivePromotedAt", ctx, int64(1), "token-1").Return(time.Now().Add(-5*time.Minute), true, nil)

		resp, err := uc.Status(ctx, &payload)
		assert.NoError(t, err)
		assert.Equal(t, string(entity.StatusExpired), resp.Status)
	})

	t.Run("unknown token", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.QueueStatus{ScheduleID: 1, Token: "token-1"}

		repoMock.On("WaitingRank", ctx, int64(1), "token-1").Return(int64(0), false, nil)
		repoMock.On("ActivePromotedAt", ctx, int64(1), "token-1").Return(time.Time{}, false, nil)

		resp, err := uc.Status(ctx, &payload)
		assert.NoError(t, err)
		assert.Equal(t, string(entity.StatusExpired), resp.Status)
	})
}

func TestIsActive(t *testing.T) {
	t.Run("recently promoted", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		token := queueTokenFor(1, 1)
		repoMock.On("ActivePromotedAt", ctx, int64(1), token).Return(time.Now().Add(-time.Minute), true, nil)

		active, err := uc.IsActive(ctx, 1, 1, token)
		assert.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("stale promotion", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		token := queueTokenFor(1, 1)
		repoMock.On("ActivePromotedAt", ctx, int64(1), token).Return(time.Now().Add(-10*time.Minute), true, nil)

		active, err := uc.IsActive(ctx, 1, 1, token)
		assert.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("token of another user is rejected without a lookup", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		token := queueTokenFor(2, 1)

		active, err := uc.IsActive(ctx, 1, 1, token)
		assert.NoError(t, err)
		assert.False(t, active)
		repoMock.AssertNotCalled(t, "ActivePromotedAt", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("token of another schedule is rejected", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		token := queueTokenFor(1, 2)

		active, err := uc.IsActive(ctx, 1, 1, token)
		assert.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("forged token is rejected", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		active, err := uc.IsActive(ctx, 1, 1, "not-a-signed-token")
		assert.NoError(t, err)
		assert.False(t, active)
		repoMock.AssertNotCalled(t, "ActivePromotedAt", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestConsumeActiveToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("RemoveActive", ctx, int64(1), "token-1").Return(true, nil)

		err := uc.ConsumeActiveToken(ctx, 1, "token-1")
		assert.NoError(t, err)
	})

	t.Run("already consumed", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("RemoveActive", ctx, int64(1), "token-1").Return(false, nil)

		err := uc.ConsumeActiveToken(ctx, 1, "token-1")
		assert.Error(t, err)
	})
}

func TestPromote(t *testing.T) {
	t.Run("fills free admission slots oldest first", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("RenewLeadership", ctx, mock.Anything, cfgMock.LeaderTTL).Return(true, nil)
		repoMock.On("Schedules", ctx).Return([]int64{1}, nil)
		repoMock.On("PruneActive", ctx, int64(1), mock.Anything).Return(int64(0), nil)
		repoMock.On("CountActive", ctx, int64(1)).Return(int64(1), nil)
		repoMock.On("CountWaiting", ctx, int64(1)).Return(int64(5), nil)
		repoMock.On("PromoteOldest", ctx, int64(1), int64(1), mock.Anything).Return([]string{"token-1"}, nil)

		err := uc.Promote(ctx)
		assert.NoError(t, err)
		repoMock.AssertCalled(t, "PromoteOldest", ctx, int64(1), int64(1), mock.Anything)
	})

	t.Run("capacity full promotes nothing", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("RenewLeadership", ctx, mock.Anything, cfgMock.LeaderTTL).Return(true, nil)
		repoMock.On("Schedules", ctx).Return([]int64{1}, nil)
		repoMock.On("PruneActive", ctx, int64(1), mock.Anything).Return(int64(0), nil)
		repoMock.On("CountActive", ctx, int64(1)).Return(int64(2), nil)

		err := uc.Promote(ctx)
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "PromoteOldest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lost leadership mutates nothing", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("RenewLeadership", ctx, mock.Anything, cfgMock.LeaderTTL).Return(false, nil)

		err := uc.Promote(ctx)
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "Schedules", mock.Anything)
	})

	t.Run("empty waiting queue promotes nothing", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("RenewLeadership", ctx, mock.Anything, cfgMock.LeaderTTL).Return(true, nil)
		repoMock.On("Schedules", ctx).Return([]int64{1}, nil)
		repoMock.On("PruneActive", ctx, int64(1), mock.Anything).Return(int64(3), nil)
		repoMock.On("CountActive", ctx, int64(1)).Return(int64(0), nil)
		repoMock.On("CountWaiting", ctx, int64(1)).Return(int64(0), nil)

		err := uc.Promote(ctx)
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "PromoteOldest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHeartbeat(t *testing.T) {
	t.Run("refused renewal demotes the leader", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("AcquireLeadership", ctx, mock.Anything, cfgMock.LeaderTTL).Return(true, nil)

		ok, err := uc.TryAcquireLeadership(ctx)
		assert.NoError(t, err)
		assert.True(t, ok)

		// the lease expired and may belong to another instance now
		repoMock.On("RenewLeadership", ctx, mock.Anything, cfgMock.LeaderTTL).Return(false, nil)
		assert.False(t, uc.Heartbeat(ctx))

		// once demoted the heartbeat stops touching the lease
		assert.False(t, uc.Heartbeat(ctx))
		repoMock.AssertNumberOfCalls(t, "RenewLeadership", 1)
	})

	t.Run("successful renewal keeps leading", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("AcquireLeadership", ctx, mock.Anything, cfgMock.LeaderTTL).Return(true, nil)
		repoMock.On("RenewLeadership", ctx, mock.Anything, cfgMock.LeaderTTL).Return(true, nil)

		ok, err := uc.TryAcquireLeadership(ctx)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, uc.Heartbeat(ctx))
	})

	t.Run("non-leader heartbeat is a no-op", func(t *testing.T) {
		setup()
		defer teardown()

		assert.False(t, uc.Heartbeat(context.Background()))
		repoMock.AssertNotCalled(t, "RenewLeadership", mock.Anything, mock.Anything, mock.Anything)
	})
}
