package saga_test

import (
	"testing"

	"ticketing-service/internal/module/payment/saga"

	"github.com/stretchr/testify/assert"
)

const maxRetries = 3

func TestNextTry(t *testing.T) {
	t.Run("pending try attempts payment", func(t *testing.T) {
		status, effects := saga.Next(saga.StatusPending, saga.Event{Name: saga.EventTry}, maxRetries)

		assert.Equal(t, saga.StatusPending, status)
		assert.Equal(t, []saga.Effect{saga.EffectAttemptPayment}, effects)
	})

	t.Run("deducted finalizes success", func(t *testing.T) {
		status, effects := saga.Next(saga.StatusPending, saga.Event{Name: saga.EventDeducted}, maxRetries)

		assert.Equal(t, saga.StatusSuccess, status)
		assert.Equal(t, []saga.Effect{saga.EffectFinalizeSuccess}, effects)
	})

	t.Run("deduct failure under budget publishes retry", func(t *testing.T) {
		ev := saga.Event{Name: saga.EventDeductFailed, RetryCount: 1, Reason: "insufficient balance"}
		status, effects := saga.Next(saga.StatusPending, ev, maxRetries)

		assert.Equal(t, saga.StatusFailure, status)
		assert.Equal(t, []saga.Effect{saga.EffectPublishRetry}, effects)
	})

	t.Run("deduct failure at budget publishes cancel", func(t *testing.T) {
		ev := saga.Event{Name: saga.EventDeductFailed, RetryCount: maxRetries, Reason: "insufficient balance"}
		status, effects := saga.Next(saga.StatusPending, ev, maxRetries)

		assert.Equal(t, saga.StatusFailure, status)
		assert.Equal(t, []saga.Effect{saga.EffectPublishCancel}, effects)
	})
}

func TestNextRetry(t *testing.T) {
	t.Run("retry within budget replays the attempt", func(t *testing.T) {
		ev := saga.Event{Name: saga.EventRetry, RetryCount: 2}
		status, effects := saga.Next(saga.StatusFailure, ev, maxRetries)

		assert.Equal(t, saga.StatusRetrying, status)
		assert.Equal(t, []saga.Effect{saga.EffectRetryPayment}, effects)
	})

	t.Run("retry past budget gives up", func(t *testing.T) {
		ev := saga.Event{Name: saga.EventRetry, RetryCount: maxRetries + 1}
		status, effects := saga.Next(saga.StatusFailure, ev, maxRetries)

		assert.Equal(t, saga.StatusRetrying, status)
		assert.Equal(t, []saga.Effect{saga.EffectPublishCancel}, effects)
	})
}

func TestNextCancel(t *testing.T) {
	status, effects := saga.Next(saga.StatusFailure, saga.Event{Name: saga.EventCancel, Reason: "insufficient balance"}, maxRetries)

	assert.Equal(t, saga.StatusCancel, status)
	assert.Equal(t, []saga.Effect{saga.EffectRefundAndRelease}, effects)
}

func TestNextTerminalAbsorbsRedelivery(t *testing.T) {
	events := []saga.Event{
		{Name: saga.EventTry},
		{Name: saga.EventRetry, RetryCount: 1},
		{Name: saga.EventCancel},
		{Name: saga.EventDeducted},
		{Name: saga.EventDeductFailed},
	}

	for _, terminal := range []string{saga.StatusSuccess, saga.StatusCancel} {
		for _, ev := range events {
			status, effects := saga.Next(terminal, ev, maxRetries)

			assert.Equal(t, terminal, status)
			assert.Empty(t, effects)
		}
	}
}

func TestFullAttemptChain(t *testing.T) {
	// first attempt fails, one retry, second attempt succeeds
	status, effects := saga.Next(saga.StatusPending, saga.Event{Name: saga.EventTry}, maxRetries)
	assert.Equal(t, []saga.Effect{saga.EffectAttemptPayment}, effects)

	status, effects = saga.Next(status, saga.Event{Name: saga.EventDeductFailed, RetryCount: 0}, maxRetries)
	assert.Equal(t, saga.StatusFailure, status)
	assert.Equal(t, []saga.Effect{saga.EffectPublishRetry}, effects)

	status, effects = saga.Next(status, saga.Event{Name: saga.EventRetry, RetryCount: 1}, maxRetries)
	assert.Equal(t, saga.StatusRetrying, status)
	assert.Equal(t, []saga.Effect{saga.EffectRetryPayment}, effects)

	status, effects = saga.Next(status, saga.Event{Name: saga.EventTry}, maxRetries)
	assert.Equal(t, []saga.Effect{saga.EffectAttemptPayment}, effects)

	status, effects = saga.Next(status, saga.Event{Name: saga.EventDeducted}, maxRetries)
	assert.Equal(t, saga.StatusSuccess, status)
	assert.Equal(t, []saga.Effect{saga.EffectFinalizeSuccess}, effects)

	assert.True(t, saga.IsTerminal(status))
}
