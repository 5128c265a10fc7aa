package upnode

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"upnode/types"
	"upnode/utils"
	"upnode/vars"
)

const (
	ModeFilestash = "filestash"
	ModeHTTP      = "http"
	ModeMultipart = "multipart"
)

// Config represents the top-level CLI configuration.
type Config struct {
	Mode              string                     `json:"mode"`
	Files             []string                   `json:"files"`
	Filestash         types.FilestashDestination `json:"filestash,omitempty"`
	HTTP              types.HTTPDestination      `json:"http,omitempty"`
	Headers           map[string]string          `json:"headers,omitempty"`
	HeadersText       string                     `json:"headers_text,omitempty"`
	SecretHeadersFile string                     `json:"secret_headers_file,omitempty"`
	Timeout           int                        `json:"timeout,omitempty"`
	LogFile           string                     `json:"log_file,omitempty"`

	isProcessed bool
	files       []string
	headers     types.Headers
}

// Destination returns a printable destination for console output and the
// history record.
func (c *Config) Destination() string {
	if c.Mode == ModeFilestash {
		return c.Filestash.BaseURL
	}
	return c.HTTP.URL
}

// FileResult pairs one uploaded file with its final result.
type FileResult struct {
	Path   string
	Result types.UploadResult
}

// NewConfigFromFile reads a JSON file and unmarshals it into a Config.
func NewConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config JSON: %w", err)
	}

	return &cfg, nil
}

// Process validates the config, fills env-sourced defaults, resolves the
// header set and expands the file list. It must run before Apply.
func (c *Config) Process() error {
	if c.isProcessed {
		return nil
	}
	c.isProcessed = true

	c.fillEnvDefaults()

	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	headers, err := c.resolveHeaders()
	if err != nil {
		return fmt.Errorf("error resolving headers: %w", err)
	}
	c.headers = headers

	c.files = ExpandFileList(strings.Join(c.Files, "\n"))
	if len(c.files) == 0 {
		return errors.New("file list expanded to nothing")
	}

	return nil
}

// Apply uploads every file in order, one independent request per file.
func (c *Config) Apply() ([]FileResult, error) {
	if !c.isProcessed {
		return nil, errors.New("use Process() method before Apply()")
	}

	results := make([]FileResult, 0, len(c.files))
	for _, path := range c.files {
		results = append(results, FileResult{Path: path, Result: Run(c.request(path))})
	}
	return results, nil
}

func (c *Config) request(path string) types.UploadRequest {
	req := types.UploadRequest{
		SourcePath:     path,
		Headers:        c.headers,
		TimeoutSeconds: c.Timeout,
		LogFile:        c.LogFile,
	}

	if c.Mode == ModeFilestash {
		req.Kind = types.DestFilestash
		req.Filestash = c.Filestash
	} else {
		req.Kind = types.DestHTTP
		req.HTTP = c.HTTP
	}
	return req
}

// fillEnvDefaults lets the environment (or a .env file loaded by the app)
// supply Filestash credentials the config file leaves blank.
func (c *Config) fillEnvDefaults() {
	if c.Filestash.BaseURL == "" {
		c.Filestash.BaseURL = vars.FILESTASH_URL
	}
	if c.Filestash.APIKey == "" {
		c.Filestash.APIKey = vars.FILESTASH_API_KEY
	}
	if c.Filestash.ShareID == "" {
		c.Filestash.ShareID = vars.FILESTASH_SHARE
	}
}

// validate enforces required fields and mode-specific constraints.
func (c *Config) validate() error {
	if len(c.Files) == 0 {
		return errors.New("field 'files' is required")
	}

	switch c.Mode {
	case ModeFilestash:
		if c.Filestash.BaseURL == "" {
			return errors.New("mode 'filestash' requires filestash.base_url")
		}
		if c.Filestash.APIKey == "" || c.Filestash.ShareID == "" {
			return errors.New("mode 'filestash' requires filestash.api_key and filestash.share_id")
		}
		if c.Filestash.UploadPath == "" {
			c.Filestash.UploadPath = "/uploads/"
		}
	case ModeHTTP, ModeMultipart:
		if c.HTTP.URL == "" {
			return fmt.Errorf("mode %q requires http.url", c.Mode)
		}
		if c.HTTP.Method == "" {
			c.HTTP.Method = "POST"
		}
		if c.Mode == ModeHTTP {
			// Plain http mode always posts under the default field name.
			c.HTTP.FieldName = vars.DEFAULT_UPLOAD_FIELD
		}
	case "":
		return errors.New("field 'mode' is required")
	default:
		return errors.New("mode unknown")
	}

	if c.Timeout < 0 {
		return errors.New("timeout must be a positive number of seconds")
	}

	for k, v := range c.Headers {
		if strings.TrimSpace(k) == "" || strings.TrimSpace(v) == "" {
			return errors.New("header keys and values must be non-empty strings")
		}
	}

	return nil
}

func (c *Config) resolveHeaders() (types.Headers, error) {
	headers := utils.HeadersFromMap(c.Headers)
	headers.Merge(utils.ParseHeaderText(c.HeadersText))

	if strings.TrimSpace(c.SecretHeadersFile) != "" {
		secret, err := utils.LoadSecretHeaders(strings.TrimSpace(c.SecretHeadersFile))
		if err != nil {
			return nil, err
		}
		headers.Merge(secret)
	}

	return headers, nil
}
