package upnode

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"upnode/types"
)

// report maps the final attempt outcome to the caller-facing
// (status code, result text) pair. Pure; no side effects.
func report(outcome types.AttemptOutcome, attempts int) types.UploadResult {
	switch outcome.Kind {
	case types.OutcomeSuccess:
		return types.UploadResult{StatusCode: outcome.StatusCode, ResultText: outcome.Body}
	case types.OutcomeRetryable:
		// Exhaustion: the last attempt's reason, annotated with the budget spent.
		return types.UploadResult{
			StatusCode: outcome.StatusCode,
			ResultText: fmt.Sprintf("%s after %d attempts", outcome.Reason, attempts),
		}
	default:
		return types.UploadResult{StatusCode: outcome.StatusCode, ResultText: outcome.Reason}
	}
}

// logFailure appends one timestamped line naming the failed source file,
// creating missing parent directories first. Best effort: any write failure
// is swallowed and never affects the returned result.
func logFailure(logFile, sourcePath string) {
	if logFile == "" {
		return
	}

	if dir := filepath.Dir(logFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return
		}
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "%s\t%s\n", time.Now().Format(time.RFC3339), sourcePath)
}
