// Package upnode uploads single files from the local filesystem to either a
// Filestash-compatible API or a generic HTTP endpoint, retrying transient
// failures under a fixed backoff policy and returning a normalized
// (status code, result text) pair. The package never panics or returns an
// error from an upload: every failure mode is folded into the result.
package upnode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"upnode/transport"
	"upnode/types"
	"upnode/utils"
	"upnode/vars"
)

// Run executes one upload request end to end: pre-flight validation, up to
// three transport attempts with backoff, result mapping, and the optional
// failure log entry.
func Run(req types.UploadRequest) types.UploadResult {
	return run(req, NewExecutor())
}

func run(req types.UploadRequest, exec *Executor) types.UploadResult {
	// Source existence is checked once, before any attempt. A missing file
	// is a config error; retrying cannot help and no HTTP call is made.
	if _, err := os.Stat(req.SourcePath); err != nil {
		logFailure(req.LogFile, req.SourcePath)
		return types.UploadResult{StatusCode: 0, ResultText: "file not found: " + req.SourcePath}
	}

	outcome, attempts := exec.Run(buildTransport(req).Attempt)
	result := report(outcome, attempts)

	if outcome.Kind != types.OutcomeSuccess {
		logFailure(req.LogFile, req.SourcePath)
	}
	return result
}

func buildTransport(req types.UploadRequest) transport.Transport {
	if req.Kind == types.DestFilestash {
		return transport.NewFilestash(req.Filestash, req.SourcePath, req.Headers)
	}

	timeout := req.TimeoutSeconds
	if timeout <= 0 {
		timeout = vars.DEFAULT_TIMEOUT_SECONDS
	}
	return transport.NewHTTP(req.HTTP, req.SourcePath, req.Headers, time.Duration(timeout)*time.Second)
}

// HTTPUpload sends a single file as a multipart request to url. It mirrors
// the host-facing upload node contract: headers arrive as raw text (either
// a JSON object or "Name: value" lines) and the return values are displayed
// verbatim by the host.
func HTTPUpload(filePath, url, method, headers string, timeoutSeconds int) (int, string) {
	if strings.TrimSpace(filePath) == "" {
		return 0, "file path is required"
	}
	if strings.TrimSpace(url) == "" {
		return 0, "URL is required"
	}

	result := Run(types.UploadRequest{
		SourcePath:     filePath,
		Kind:           types.DestHTTP,
		HTTP:           types.HTTPDestination{URL: url, Method: method},
		Headers:        utils.ParseHeaderText(headers),
		TimeoutSeconds: timeoutSeconds,
	})
	return result.StatusCode, result.ResultText
}

// MultipartUpload is the configurable variant of HTTPUpload: custom form
// field name, a secret-headers JSON file merged with precedence over the
// regular headers, and an optional failure log.
func MultipartUpload(filePath, url, method, fieldName, headers, secretHeadersFile string, timeoutSeconds int, logFile string) (int, string) {
	if strings.TrimSpace(filePath) == "" {
		return 0, "file path is required"
	}
	if strings.TrimSpace(url) == "" {
		return 0, "URL is required"
	}
	if strings.TrimSpace(fieldName) == "" {
		return 0, "upload field name is required"
	}

	parsed := utils.ParseHeaderText(headers)
	if strings.TrimSpace(secretHeadersFile) != "" {
		secret, err := utils.LoadSecretHeaders(strings.TrimSpace(secretHeadersFile))
		if err != nil {
			// Deliberately vague: the error could quote secret file contents.
			return 0, "header parsing error - check configuration"
		}
		parsed.Merge(secret)
	}

	result := Run(types.UploadRequest{
		SourcePath:     filePath,
		Kind:           types.DestHTTP,
		HTTP:           types.HTTPDestination{URL: url, Method: method, FieldName: fieldName},
		Headers:        parsed,
		TimeoutSeconds: timeoutSeconds,
		LogFile:        logFile,
	})
	return result.StatusCode, result.ResultText
}

// FilestashUpload is the legacy batch form: filenames is a newline-separated
// list of local paths (glob patterns allowed), and the return value is one
// SUCCESS/ERROR line per file joined with newlines.
func FilestashUpload(filenames, baseURL, apiKey, shareID, uploadPath string) string {
	if strings.TrimSpace(filenames) == "" {
		return "No filenames provided"
	}
	if apiKey == "" || shareID == "" {
		return "API key and Share ID are required"
	}

	dest := types.FilestashDestination{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		ShareID:    shareID,
		UploadPath: uploadPath,
	}

	var results []string
	for _, path := range ExpandFileList(filenames) {
		results = append(results, filestashUploadOne(dest, path))
	}
	return strings.Join(results, "\n")
}

func filestashUploadOne(dest types.FilestashDestination, path string) string {
	if _, err := os.Stat(path); err != nil {
		return "ERROR: File not found: " + path
	}

	t := transport.NewFilestash(dest, path, nil)
	result := Run(types.UploadRequest{
		SourcePath: path,
		Kind:       types.DestFilestash,
		Filestash:  dest,
	})

	if result.StatusCode >= 200 && result.StatusCode < 300 {
		return fmt.Sprintf("SUCCESS: Uploaded %s to %s", filepath.Base(path), t.RemotePath())
	}
	return fmt.Sprintf("ERROR: Failed to upload %s - %s", filepath.Base(path), result.ResultText)
}
