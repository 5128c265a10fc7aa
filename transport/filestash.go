package transport

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"upnode/types"
	"upnode/vars"
)

// Filestash performs one raw-body upload attempt against a Filestash
// compatible API. Authentication (key, share) and the destination path
// travel as query parameters; extra headers never touch them.
type Filestash struct {
	Dest         types.FilestashDestination
	SourcePath   string
	ExtraHeaders types.Headers

	client *http.Client
}

// Per-attempt timeout is fixed for this transport.
const filestashAttemptTimeout = vars.DEFAULT_TIMEOUT_SECONDS * time.Second

func NewFilestash(dest types.FilestashDestination, sourcePath string, extraHeaders types.Headers) *Filestash {
	return &Filestash{
		Dest:         dest,
		SourcePath:   sourcePath,
		ExtraHeaders: extraHeaders,
		client:       &http.Client{Timeout: filestashAttemptTimeout},
	}
}

// RemotePath is the destination path on the Filestash server:
// upload_path joined with the source file's base name.
func (t *Filestash) RemotePath() string {
	return strings.TrimSuffix(t.Dest.UploadPath, "/") + "/" + filepath.Base(t.SourcePath)
}

func (t *Filestash) Attempt() types.AttemptOutcome {
	data, err := readSource(t.SourcePath)
	if err != nil {
		return types.Terminal(0, err.Error())
	}

	endpoint := strings.TrimSuffix(t.Dest.BaseURL, "/") + vars.FILESTASH_CAT_ENDPOINT
	params := url.Values{}
	params.Set("path", t.RemotePath())
	params.Set("key", t.Dest.APIKey)
	params.Set("share", t.Dest.ShareID)

	req, err := http.NewRequest(http.MethodPost, endpoint+"?"+params.Encode(), bytes.NewReader(data))
	if err != nil {
		return types.Terminal(0, fmt.Sprintf("invalid URL %q: %v", t.Dest.BaseURL, err))
	}
	for _, hdr := range t.ExtraHeaders {
		req.Header.Set(hdr.Name, hdr.Value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return classifyNetError(err, endpoint)
	}
	return classifyResponse(resp)
}
