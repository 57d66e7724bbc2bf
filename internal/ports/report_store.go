package ports

import "github.com/aalvaropc/mallctl/internal/domain"

// ReportStore persists policy reports for auditing.
type ReportStore interface {
	SaveReport(report domain.PolicyReport) (id string, err error)
}
