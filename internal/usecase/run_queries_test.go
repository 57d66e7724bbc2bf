package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/domain/domaintest"
)

func TestRunQueries_ReferenceMall(t *testing.T) {
	loader := &fakeMallLoader{mall: domaintest.LaVieFunchal()}
	uc := NewRunQueries(loader)

	report, m, err := uc.Execute(context.Background(), "data/mall.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"data/mall.yaml"}, loader.calls)
	assert.Equal(t, "La Vie Funchal", report.MallName)
	require.NotNil(t, report.BiggestStore)
	assert.Equal(t, "Pretail", report.BiggestStore.Name)
	require.Len(t, report.HighestPaid, 1)
	assert.Equal(t, "Abdallah Stafford", report.HighestPaid[0].Name)
	assert.Equal(t, 13, report.Headcount)
	assert.Equal(t, "La Vie Funchal", m.Name)
}

func TestRunQueries_LoadError(t *testing.T) {
	loadErr := &domain.OpError{Op: "yamlmall.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	uc := NewRunQueries(&fakeMallLoader{err: loadErr})

	_, _, err := uc.Execute(context.Background(), "missing.yaml")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunQueries_ContextCancelled(t *testing.T) {
	loader := &fakeMallLoader{mall: domaintest.LaVieFunchal()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewRunQueries(loader).Execute(ctx, "data/mall.yaml")
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, loader.calls)
}

func TestInitWorkspace_DelegatesToInitializer(t *testing.T) {
	initializer := &fakeInitializer{}
	require.NoError(t, NewInitWorkspace(initializer).Execute("/tmp/ws", true))

	assert.Equal(t, "/tmp/ws", initializer.spec.Root)
	assert.True(t, initializer.force)
}
