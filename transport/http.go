package transport

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"upnode/types"
	"upnode/utils"
	"upnode/vars"
)

// HTTP performs one multipart upload attempt against a generic endpoint.
// Only POST and PUT are accepted; any other method is rejected before a
// single byte goes on the wire.
type HTTP struct {
	Dest       types.HTTPDestination
	SourcePath string
	Headers    types.Headers

	client *http.Client
}

func NewHTTP(dest types.HTTPDestination, sourcePath string, headers types.Headers, timeout time.Duration) *HTTP {
	if dest.FieldName == "" {
		dest.FieldName = vars.DEFAULT_UPLOAD_FIELD
	}
	return &HTTP{
		Dest:       dest,
		SourcePath: sourcePath,
		Headers:    headers,
		client:     &http.Client{Timeout: timeout},
	}
}

func (t *HTTP) Attempt() types.AttemptOutcome {
	method := strings.ToUpper(strings.TrimSpace(t.Dest.Method))
	if method != http.MethodPost && method != http.MethodPut {
		return types.Terminal(0, fmt.Sprintf("invalid method %q: only POST and PUT are supported", t.Dest.Method))
	}

	data, err := readSource(t.SourcePath)
	if err != nil {
		return types.Terminal(0, err.Error())
	}

	body, contentType, err := buildMultipart(t.Dest.FieldName, t.SourcePath, data)
	if err != nil {
		return types.Terminal(0, fmt.Sprintf("building multipart body: %v", err))
	}

	req, err := http.NewRequest(method, t.Dest.URL, body)
	if err != nil {
		return types.Terminal(0, fmt.Sprintf("invalid URL %q: %v", t.Dest.URL, err))
	}
	req.Header.Set("Content-Type", contentType)
	for _, hdr := range t.Headers {
		req.Header.Set(hdr.Name, hdr.Value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return classifyNetError(err, t.Dest.URL)
	}
	return classifyResponse(resp)
}

// buildMultipart assembles a form-data payload with a single file part
// carrying the filename and a detected MIME type.
func buildMultipart(fieldName, sourcePath string, data []byte) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		fieldName, filepath.Base(sourcePath)))
	h.Set("Content-Type", utils.MimeTypeFor(sourcePath))

	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to write form file part: %v", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close form writer: %v", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
