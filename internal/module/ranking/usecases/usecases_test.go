package usecases_test

import (
	"context"
	"testing"
	"time"

	"ticketing-service/internal/module/ranking/mocks"
	"ticketing-service/internal/module/ranking/models/entity"
	"ticketing-service/internal/module/ranking/models/request"
	"ticketing-service/internal/module/ranking/usecases"
	logPkg "ticketing-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc            usecases.Usecase
	repoMock      *mocks.Repositories
	seatsMock     *mockSeatCounter
	registrarMock *mockScheduleRegistrar
)

type mockSeatCounter struct {
	mock.Mock
}

func (m *mockSeatCounter) CountSeatsByStatus(ctx context.Context, scheduleID int64, status string) (int64, error) {
	ret := m.Called(ctx, scheduleID, status)
	return ret.Get(0).(int64), ret.Error(1)
}

type mockScheduleRegistrar struct {
	mock.Mock
}

func (m *mockScheduleRegistrar) RegisterSchedule(ctx context.Context, scheduleID int64) error {
	ret := m.Called(ctx, scheduleID)
	return ret.Error(0)
}

func setup() {
	repoMock = new(mocks.Repositories)
	seatsMock = new(mockSeatCounter)
	registrarMock = new(mockScheduleRegistrar)
	uc = usecases.New(repoMock, logPkg.Setup(), seatsMock, registrarMock)
}

func teardown() {
	repoMock = nil
	seatsMock = nil
	registrarMock = nil
	uc = nil
}

func TestOpenSchedules(t *testing.T) {
	t.Run("pins capacity and opens the queue", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.OpenSchedules{ScheduleIDs: []int64{1, 2}}

		seatsMock.On("CountSeatsByStatus", ctx, int64(1), "AVAILABLE").Return(int64(100), nil)
		seatsMock.On("CountSeatsByStatus", ctx, int64(2), "AVAILABLE").Return(int64(50), nil)
		registrarMock.On("RegisterSchedule", ctx, int64(1)).Return(nil)
		registrarMock.On("RegisterSchedule", ctx, int64(2)).Return(nil)
		repoMock.On("OpenStat", ctx, int64(1), int64(100), mock.Anything).Return(nil)
		repoMock.On("OpenStat", ctx, int64(2), int64(50), mock.Anything).Return(nil)

		resp, err := uc.OpenSchedules(ctx, &payload)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, int64(100), resp[0].Capacity)
	})
}

func TestRecordSale(t *testing.T) {
	t.Run("ordinary sale only bumps the counter", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("IncrementSold", ctx, int64(1)).Return(int64(40), nil)
		repoMock.On("Stat", ctx, int64(1)).Return(entity.SelloutStat{
			ScheduleID: 1, Capacity: 100, Sold: 40, OpenedAt: time.Now().Add(-time.Hour),
		}, nil)

		err := uc.RecordSale(ctx, 1)
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "MarkSoldOut", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("final seat marks the sell out", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("IncrementSold", ctx, int64(1)).Return(int64(100), nil)
		repoMock.On("Stat", ctx, int64(1)).Return(entity.SelloutStat{
			ScheduleID: 1, Capacity: 100, Sold: 100, OpenedAt: time.Now().Add(-time.Hour),
		}, nil)
		repoMock.On("MarkSoldOut", ctx, int64(1), mock.Anything, mock.Anything).Return(true, nil)

		err := uc.RecordSale(ctx, 1)
		assert.NoError(t, err)
		repoMock.AssertCalled(t, "MarkSoldOut", ctx, int64(1), mock.Anything, mock.Anything)
	})

	t.Run("tick past capacity never re-marks", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("IncrementSold", ctx, int64(1)).Return(int64(101), nil)
		repoMock.On("Stat", ctx, int64(1)).Return(entity.SelloutStat{
			ScheduleID: 1, Capacity: 100, Sold: 101,
			OpenedAt: time.Now().Add(-time.Hour), SoldOutAt: time.Now().Add(-time.Minute),
		}, nil)

		err := uc.RecordSale(ctx, 1)
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "MarkSoldOut", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missed sell-out mark is healed on the next tick", func(t *testing.T) {
		setup()
		defer teardown()

		// counter past capacity but no sold_out_at recorded, the earlier mark
		// never landed; the ranking insert still keeps the first score
		ctx := context.Background()
		repoMock.On("IncrementSold", ctx, int64(1)).Return(int64(101), nil)
		repoMock.On("Stat", ctx, int64(1)).Return(entity.SelloutStat{
			ScheduleID: 1, Capacity: 100, Sold: 101, OpenedAt: time.Now().Add(-time.Hour),
		}, nil)
		repoMock.On("MarkSoldOut", ctx, int64(1), mock.Anything, mock.Anything).Return(false, nil)

		err := uc.RecordSale(ctx, 1)
		assert.NoError(t, err)
		repoMock.AssertCalled(t, "MarkSoldOut", ctx, int64(1), mock.Anything, mock.Anything)
	})

	t.Run("unopened schedule is ignored", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("IncrementSold", ctx, int64(1)).Return(int64(1), nil)
		repoMock.On("Stat", ctx, int64(1)).Return(entity.SelloutStat{ScheduleID: 1}, nil)

		err := uc.RecordSale(ctx, 1)
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "MarkSoldOut", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetRanking(t *testing.T) {
	t.Run("fastest first with ranks assigned", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		entries := []entity.RankingEntry{
			{ScheduleID: 2, Duration: 90 * time.Second},
			{ScheduleID: 1, Duration: 5 * time.Minute},
		}
		repoMock.On("Ranking", ctx, int64(10)).Return(entries, nil)

		resp, err := uc.GetRanking(ctx, &request.SelloutRanking{})
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, 1, resp[0].Rank)
		assert.Equal(t, int64(2), resp[0].ScheduleID)
		assert.Equal(t, 90.0, resp[0].DurationSeconds)
	})

	t.Run("explicit limit is passed through", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("Ranking", ctx, int64(3)).Return([]entity.RankingEntry{}, nil)

		resp, err := uc.GetRanking(ctx, &request.SelloutRanking{Limit: 3})
		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}
