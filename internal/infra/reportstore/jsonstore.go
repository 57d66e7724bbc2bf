package reportstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/ports"
)

const (
	defaultReportsDir = "reports"
	shortIDLen        = 8
)

type JSONStore struct {
	rootDir        string
	reportsDirName string
	writeIndex     bool
	now            func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	reportsDir := cfg.Paths.ReportsDir
	if strings.TrimSpace(reportsDir) == "" {
		reportsDir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:        root,
		reportsDirName: reportsDir,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

// SaveReport writes the report as <timestamp>_<mall-slug>_<report-id>.json
// and returns the file name without extension as its ID. Only the first
// characters of the report ID are used. An existing file is never
// overwritten; a numeric suffix is added instead.
func (s *JSONStore) SaveReport(report domain.PolicyReport) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := report.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := report
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}

	slug := slugify(report.MallName)
	if slug == "" {
		slug = "mall"
	}

	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)
	if short := shortID(report.ID); short != "" {
		base += "_" + short
	}
	id := freeID(dir, base)
	filename := id + ".json"
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, toSave)
	}

	return id, nil
}

// LoadReport reads a report previously written by SaveReport.
func (s *JSONStore) LoadReport(id string) (domain.PolicyReport, error) {
	path := filepath.Join(s.dir(), id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.PolicyReport{}, &domain.OpError{
			Op:   "reportstore.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var r domain.PolicyReport
	if err := json.Unmarshal(b, &r); err != nil {
		return domain.PolicyReport{}, &domain.OpError{
			Op:   "reportstore.load",
			Kind: domain.KindInvalidData,
			Path: path,
			Err:  err,
		}
	}
	return r, nil
}

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.reportsDirName)
}

func (s *JSONStore) appendIndex(dir, id, filename string, report domain.PolicyReport) error {
	type idx struct {
		ID       string    `json:"id"`
		ReportID string    `json:"report_id"`
		File     string    `json:"file"`
		Mall     string    `json:"mall"`
		Security bool      `json:"security"`
		Payroll  bool      `json:"payroll"`
		Started  time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:       id,
		ReportID: report.ID,
		File:     filename,
		Mall:     report.MallName,
		Security: report.Security != nil,
		Payroll:  len(report.Payroll) > 0,
		Started:  report.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// freeID returns base, or base-N for the first N >= 2 with no report on disk.
func freeID(dir, base string) string {
	id := base
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, id+".json")); errors.Is(err, fs.ErrNotExist) {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

func shortID(id string) string {
	s := slugify(id)
	if len(s) > shortIDLen {
		s = strings.TrimRight(s[:shortIDLen], "-")
	}
	return s
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
