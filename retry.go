package upnode

import (
	"time"

	"upnode/types"
	"upnode/vars"
)

// AttemptFunc performs one upload attempt and reports its outcome.
type AttemptFunc func() types.AttemptOutcome

// Executor runs an attempt function under a fixed retry policy. The policy
// is data-driven: Delays[n] is the sleep before attempt n+2, so the attempt
// budget is len(Delays)+1. Sleep is injectable so tests can run with zero
// delays. An Executor is re-entrant but each Run is strictly sequential.
type Executor struct {
	Delays []time.Duration
	Sleep  func(time.Duration)
}

// NewExecutor returns an executor with the production policy: 3 attempts,
// 1s before the 2nd and 2s before the 3rd.
func NewExecutor() *Executor {
	return &Executor{Delays: vars.RETRY_DELAYS, Sleep: time.Sleep}
}

// Run invokes attempt until it succeeds, fails terminally, or the attempt
// budget is exhausted. It returns the final attempt's outcome untouched,
// along with the number of attempts actually made.
func (e *Executor) Run(attempt AttemptFunc) (types.AttemptOutcome, int) {
	maxAttempts := len(e.Delays) + 1

	var outcome types.AttemptOutcome
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			e.Sleep(e.Delays[i-1])
		}
		outcome = attempt()
		if outcome.Kind != types.OutcomeRetryable {
			return outcome, i + 1
		}
	}
	return outcome, maxAttempts
}
