package types

// DestinationKind discriminates the two supported upload targets.
type DestinationKind string

const (
	DestFilestash DestinationKind = "filestash"
	DestHTTP      DestinationKind = "http"
)

// FilestashDestination describes a Filestash-compatible API target.
// Authentication travels as query parameters, not headers.
type FilestashDestination struct {
	BaseURL    string `json:"base_url"`
	APIKey     string `json:"api_key"`
	ShareID    string `json:"share_id"`
	UploadPath string `json:"upload_path"`
}

// HTTPDestination describes a generic multipart upload target.
type HTTPDestination struct {
	URL       string `json:"url"`
	Method    string `json:"method"`
	FieldName string `json:"field_name,omitempty"`
}

// UploadRequest is the normalized description of one transfer. It is
// constructed fresh per invocation and consumed entirely within one call.
type UploadRequest struct {
	SourcePath string
	Kind       DestinationKind
	Filestash  FilestashDestination
	HTTP       HTTPDestination

	Headers        Headers
	TimeoutSeconds int
	LogFile        string
}

// UploadResult is the two-value output contract returned to the caller.
// StatusCode is the HTTP code, or 0 when the failure occurred before any
// HTTP response was received.
type UploadResult struct {
	StatusCode int
	ResultText string
}
