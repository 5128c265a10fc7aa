package vars

// Filled from the environment by the app at startup; empty means unset.
var (
	FILESTASH_URL     = ""
	FILESTASH_API_KEY = ""
	FILESTASH_SHARE   = ""
	HISTORY_DB_PATH   = ""
)
