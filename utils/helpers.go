package utils

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/zeebo/blake3"
)

// FileHash computes the Blake3 content hash of a file, returned as the first
// 32 hex characters. Used for the upload history record.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("hashing %q: %w", path, err)
	}

	hexStr := hex.EncodeToString(hasher.Sum(nil))
	return hexStr[:32], nil
}

// formatTime returns a formatted string for a duration.
func FormatTime(duration time.Duration) string {
	return fmt.Sprintf("(%.2f sec)", duration.Seconds())
}

var sensitiveMarkers = []string{
	"authorization:",
	"bearer ",
	"api-key:",
	"x-api-key:",
	"token:",
	"password:",
	"secret:",
}

// SanitizeReason redacts credential-looking fragments from a failure reason
// before it reaches result text or the failure log. Everything from the
// marker to the end of the line is dropped.
func SanitizeReason(reason string) string {
	lines := strings.Split(reason, "\n")
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, marker := range sensitiveMarkers {
			if idx := strings.Index(lower, marker); idx >= 0 {
				lines[i] = line[:idx] + "[REDACTED]"
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}
