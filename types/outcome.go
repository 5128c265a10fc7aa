package types

// OutcomeKind classifies the result of a single upload attempt.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeRetryable
	OutcomeTerminal
)

// AttemptOutcome is the result of exactly one attempt. Outcomes are values;
// a past outcome is never mutated by later attempts.
type AttemptOutcome struct {
	Kind       OutcomeKind
	StatusCode int    // set when an HTTP response was received, 0 otherwise
	Body       string // response body on success
	Reason     string // human-readable failure reason
}

func Success(statusCode int, body string) AttemptOutcome {
	return AttemptOutcome{Kind: OutcomeSuccess, StatusCode: statusCode, Body: body}
}

func Retryable(statusCode int, reason string) AttemptOutcome {
	return AttemptOutcome{Kind: OutcomeRetryable, StatusCode: statusCode, Reason: reason}
}

func Terminal(statusCode int, reason string) AttemptOutcome {
	return AttemptOutcome{Kind: OutcomeTerminal, StatusCode: statusCode, Reason: reason}
}
