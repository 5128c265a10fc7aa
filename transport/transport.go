package transport

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"

	"upnode/types"
	"upnode/utils"
)

// Transport translates an upload request into one HTTP attempt for a
// specific destination kind. Each call performs at most one network
// round-trip and converts every failure into an AttemptOutcome; nothing
// escapes as an error.
type Transport interface {
	Attempt() types.AttemptOutcome
}

// classifyResponse maps an HTTP response to an outcome: 2xx is success,
// 5xx is retryable, everything else is terminal.
func classifyResponse(resp *http.Response) types.AttemptOutcome {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		body = nil
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return types.Success(resp.StatusCode, string(body))
	case resp.StatusCode >= 500:
		apiErr := &types.APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		return types.Retryable(resp.StatusCode, apiErr.Error())
	default:
		apiErr := &types.APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		return types.Terminal(resp.StatusCode, apiErr.Error())
	}
}

// readSource loads the file bytes for one attempt. Existence is validated
// before retries begin, so a failure here (file deleted mid-sequence,
// permissions) is a terminal condition.
func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %v", path, err)
	}
	return data, nil
}

// classifyNetError maps a transport-level error (no HTTP response received)
// to a retryable outcome with a concrete reason. Timeouts are distinguished
// from connection failures so the final result names what actually happened.
func classifyNetError(err error, endpoint string) types.AttemptOutcome {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return types.Retryable(0, "connection timed out reaching "+endpoint)
	}
	return types.Retryable(0, utils.SanitizeReason(fmt.Sprintf("connection error: unable to reach %s: %v", endpoint, err)))
}
