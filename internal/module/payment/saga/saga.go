// Package saga holds the pure transition function of the payment state
// machine. The usecase layer feeds it bus events plus internal deduction
// outcomes and executes the returned effects; the function itself touches no
// storage and no bus, so event sequences can be tested directly.
package saga

// Transaction statuses as stored on the payment_transactions row.
const (
	StatusPending  = "PENDING"
	StatusSuccess  = "SUCCESS"
	StatusFailure  = "FAILURE"
	StatusRetrying = "RETRYING"
	StatusCancel   = "CANCEL"
)

// Event names driving the machine. Try, Retry and Cancel arrive from the bus;
// Deducted and DeductFailed are the internal outcomes of a balance deduction
// attempt.
const (
	EventTry          = "payment.try"
	EventRetry        = "payment.retry"
	EventCancel       = "payment.cancel"
	EventDeducted     = "payment.deducted"
	EventDeductFailed = "payment.deduct_failed"
)

type Event struct {
	Name       string
	RetryCount int
	Reason     string
}

type Effect int

const (
	EffectNone Effect = iota
	// EffectAttemptPayment deducts the balance under the user's lock.
	EffectAttemptPayment
	// EffectFinalizeSuccess marks the row SUCCESS and publishes payment.success.
	EffectFinalizeSuccess
	// EffectPublishRetry re-queues the attempt with an incremented retry count.
	EffectPublishRetry
	// EffectPublishCancel gives up on the attempt chain.
	EffectPublishCancel
	// EffectRetryPayment marks the row RETRYING and republishes a try.
	EffectRetryPayment
	// EffectRefundAndRelease refunds a prior deduction (if any) and publishes
	// reservation.failure so the seat is released.
	EffectRefundAndRelease
)

// IsTerminal reports whether a status admits no further transition.
func IsTerminal(status string) bool {
	return status == StatusSuccess || status == StatusCancel
}

// Next computes the successor status and the effects to run. Events arriving
// after a terminal status produce no effects, which is what makes redelivery
// of the same paymentTxId safe.
func Next(current string, ev Event, maxRetries int) (string, []Effect) {
	if IsTerminal(current) {
		return current, nil
	}

	switch ev.Name {
	case EventTry:
		return current, []Effect{EffectAttemptPayment}

	case EventDeducted:
		return StatusSuccess, []Effect{EffectFinalizeSuccess}

	case EventDeductFailed:
		if ev.RetryCount < maxRetries {
			return StatusFailure, []Effect{EffectPublishRetry}
		}
		return StatusFailure, []Effect{EffectPublishCancel}

	case EventRetry:
		if ev.RetryCount > maxRetries {
			return StatusRetrying, []Effect{EffectPublishCancel}
		}
		return StatusRetrying, []Effect{EffectRetryPayment}

	case EventCancel:
		return StatusCancel, []Effect{EffectRefundAndRelease}
	}

	return current, nil
}
