package upnode

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandFileList splits a newline-separated file list and expands glob
// patterns (including **) against the local filesystem. Plain paths pass
// through untouched; a pattern that matches nothing is kept as-is so the
// per-file loop reports it as not found instead of silently dropping it.
func ExpandFileList(filenames string) []string {
	var out []string
	for _, line := range strings.Split(filenames, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.ContainsAny(line, "*?[{") {
			if matches, err := doublestar.FilepathGlob(line); err == nil && len(matches) > 0 {
				out = append(out, matches...)
				continue
			}
		}
		out = append(out, line)
	}
	return out
}
