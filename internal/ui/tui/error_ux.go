package tui

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/mallctl/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line hint for the status toast.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			switch {
			case strings.Contains(oe.Op, "load_candidates"):
				return "Candidate list not found"
			case strings.Contains(oe.Op, "yamlmall"):
				return "Mall data not found"
			case strings.Contains(oe.Op, "workspacefinder"):
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidData:
			if field := invalidField(oe.Err); field != "" {
				return "Invalid mall data: " + field
			}
			return "Invalid mall data" + yamlLocation(oe.Path, err.Error())

		case domain.KindInvalidConfig:
			return "Invalid config" + yamlLocation(oe.Path, err.Error())
		}
		return "Unexpected error (see logs)"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Timed out"
	}
	if looksLikeYAMLProblem(err.Error()) {
		return "Invalid YAML" + yamlLocation("", err.Error())
	}
	return "Unexpected error (see logs)"
}

// invalidField extracts "name: reason" from the loader's "field name: reason" errors.
func invalidField(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	i := strings.LastIndex(s, "field ")
	if i < 0 {
		return ""
	}
	s = strings.TrimSuffix(s[i+len("field "):], ": "+domain.ErrInvalidData.Error())
	return strings.TrimSpace(s)
}

func yamlLocation(path, msg string) string {
	var b strings.Builder
	if strings.TrimSpace(path) != "" {
		b.WriteString(" at ")
		b.WriteString(filepath.Base(path))
	}
	if line := extractLine(msg); line != "" {
		b.WriteString(" line ")
		b.WriteString(line)
	}
	return b.String()
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
