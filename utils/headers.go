package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"upnode/types"
)

// ParseHeaderText normalizes a raw header block into an ordered header list.
// Two input shapes are accepted: a JSON object string ({"Name": "value", ...})
// or multiline "Name: value" text. In the multiline form, blank lines and
// lines without a colon are skipped, they are not an error. Duplicate names
// overwrite the earlier value.
func ParseHeaderText(text string) types.Headers {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}") {
		var obj map[string]string
		if err := json.Unmarshal([]byte(text), &obj); err == nil {
			return HeadersFromMap(obj)
		}
		// Fall through: malformed JSON is treated as line-oriented text.
	}

	var headers types.Headers
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, ":") {
			continue
		}
		name, value, _ := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		headers.Set(name, value)
	}
	return headers
}

// HeadersFromMap converts a structured mapping into an ordered header list.
// Map iteration order is not stable, so keys are sorted for deterministic output.
func HeadersFromMap(m map[string]string) types.Headers {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var headers types.Headers
	for _, k := range keys {
		name := strings.TrimSpace(k)
		value := strings.TrimSpace(m[k])
		if name == "" || value == "" {
			continue
		}
		headers.Set(name, value)
	}
	return headers
}

// LoadSecretHeaders reads a JSON object file of headers kept out of the main
// configuration. Values from this file take precedence over regular headers.
func LoadSecretHeaders(path string) (types.Headers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading secret headers: %w", err)
	}

	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parsing secret headers JSON: %w", err)
	}

	return HeadersFromMap(obj), nil
}
