package upnode

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"upnode/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func countingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()
	var count int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&count, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &count
}

func TestRunMissingFileSkipsNetworkAndLogs(t *testing.T) {
	server, count := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	logFile := filepath.Join(t.TempDir(), "logs", "failures.log")
	var slept []time.Duration
	result := run(types.UploadRequest{
		SourcePath: "/tmp/missing-upload-test.jpg",
		Kind:       types.DestHTTP,
		HTTP:       types.HTTPDestination{URL: server.URL, Method: "POST"},
		LogFile:    logFile,
	}, testExecutor(&slept))

	require.Equal(t, 0, result.StatusCode)
	require.Equal(t, "file not found: /tmp/missing-upload-test.jpg", result.ResultText)
	require.EqualValues(t, 0, atomic.LoadInt32(count))
	require.Empty(t, slept)

	// One self-contained log line, parent directory created on demand.
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "/tmp/missing-upload-test.jpg")
}

func TestRunFilestashRetryThenSuccess(t *testing.T) {
	source := writeTempFile(t, "a.jpg", "jpeg bytes")

	var count int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&count, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if r.URL.Query().Get("path") != "/uploads/a.jpg" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	}))
	defer server.Close()

	logFile := filepath.Join(t.TempDir(), "failures.log")
	var slept []time.Duration
	result := run(types.UploadRequest{
		SourcePath: source,
		Kind:       types.DestFilestash,
		Filestash: types.FilestashDestination{
			BaseURL:    server.URL,
			APIKey:     "k",
			ShareID:    "s",
			UploadPath: "/uploads/",
		},
		LogFile: logFile,
	}, testExecutor(&slept))

	require.Equal(t, 200, result.StatusCode)
	require.Equal(t, "ok", result.ResultText)
	require.EqualValues(t, 2, atomic.LoadInt32(&count))
	require.Equal(t, []time.Duration{1 * time.Second}, slept)

	// Success writes no log entry.
	_, err := os.Stat(logFile)
	require.True(t, os.IsNotExist(err))
}

func TestRunExhaustionReportsLastAttempt(t *testing.T) {
	source := writeTempFile(t, "doc.pdf", "pdf bytes")

	server, count := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	logFile := filepath.Join(t.TempDir(), "failures.log")
	var slept []time.Duration
	result := run(types.UploadRequest{
		SourcePath: source,
		Kind:       types.DestHTTP,
		HTTP:       types.HTTPDestination{URL: server.URL, Method: "POST"},
		LogFile:    logFile,
	}, testExecutor(&slept))

	require.EqualValues(t, 3, atomic.LoadInt32(count))
	require.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, slept)
	require.Equal(t, 502, result.StatusCode)
	require.Contains(t, result.ResultText, "HTTP 502")
	require.Contains(t, result.ResultText, "after 3 attempts")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), source)
}

func TestRunInvalidMethodMakesNoNetworkCall(t *testing.T) {
	source := writeTempFile(t, "x.bin", "data")

	server, count := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var slept []time.Duration
	result := run(types.UploadRequest{
		SourcePath: source,
		Kind:       types.DestHTTP,
		HTTP:       types.HTTPDestination{URL: server.URL, Method: "DELETE"},
	}, testExecutor(&slept))

	require.Equal(t, 0, result.StatusCode)
	require.Contains(t, result.ResultText, "DELETE")
	require.EqualValues(t, 0, atomic.LoadInt32(count))
	require.Empty(t, slept)
}

func TestRunClientErrorIsTerminal(t *testing.T) {
	source := writeTempFile(t, "x.bin", "data")

	server, count := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	var slept []time.Duration
	result := run(types.UploadRequest{
		SourcePath: source,
		Kind:       types.DestHTTP,
		HTTP:       types.HTTPDestination{URL: server.URL, Method: "POST"},
	}, testExecutor(&slept))

	require.EqualValues(t, 1, atomic.LoadInt32(count))
	require.Equal(t, 403, result.StatusCode)
	require.Contains(t, result.ResultText, "HTTP 403")
	require.Empty(t, slept)
}

func TestHTTPUploadValidatesInputs(t *testing.T) {
	status, text := HTTPUpload("", "http://localhost:1/upload", "POST", "", 30)
	require.Equal(t, 0, status)
	require.Equal(t, "file path is required", text)

	status, text = HTTPUpload("/tmp/whatever.bin", "  ", "POST", "", 30)
	require.Equal(t, 0, status)
	require.Equal(t, "URL is required", text)
}

func TestMultipartUploadSecretHeaders(t *testing.T) {
	source := writeTempFile(t, "v.mp4", "video")
	secretFile := writeTempFile(t, "secrets.json", `{"X-Api-Key": "from-secret"}`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Secret headers override the regular ones.
		if r.Header.Get("X-Api-Key") != "from-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if _, _, err := r.FormFile("payload"); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "stored")
	}))
	defer server.Close()

	status, text := MultipartUpload(source, server.URL, "PUT", "payload",
		"X-Api-Key: from-config", secretFile, 30, "")
	require.Equal(t, 200, status)
	require.Equal(t, "stored", text)
}

func TestMultipartUploadBadSecretFile(t *testing.T) {
	source := writeTempFile(t, "v.mp4", "video")

	status, text := MultipartUpload(source, "http://localhost:1/upload", "POST", "file",
		"", filepath.Join(t.TempDir(), "nope.json"), 30, "")
	require.Equal(t, 0, status)
	require.Equal(t, "header parsing error - check configuration", text)
}
