package usecase

import (
	"context"

	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/ports"
	"github.com/aalvaropc/mallctl/internal/usecase/query"
)

type RunQueries struct {
	malls ports.MallLoader
}

func NewRunQueries(ml ports.MallLoader) *RunQueries {
	return &RunQueries{malls: ml}
}

// Execute loads the mall at dataPath and computes every aggregate.
// The loaded mall is returned alongside the report for callers that render it.
func (uc *RunQueries) Execute(ctx context.Context, dataPath string) (domain.QueryReport, domain.Mall, error) {
	if err := ctx.Err(); err != nil {
		return domain.QueryReport{}, domain.Mall{}, err
	}

	m, err := uc.malls.LoadMall(dataPath)
	if err != nil {
		return domain.QueryReport{}, domain.Mall{}, err
	}

	return query.Run(m), m, nil
}
