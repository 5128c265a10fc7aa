package vars

import "time"

const (
	MAX_UPLOAD_ATTEMPTS     = 3
	DEFAULT_TIMEOUT_SECONDS = 30
	FILESTASH_CAT_ENDPOINT  = "/api/files/cat"
	DEFAULT_UPLOAD_FIELD    = "file"
	DEFAULT_CONFIG_FILE     = "upnode.config.json"
)

// Delay before attempt n+2; no delay before the first attempt.
var RETRY_DELAYS = []time.Duration{1 * time.Second, 2 * time.Second}
