package jobs

import (
	"context"
	"testing"
	"time"

	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/domain/sqlite"
	"metrocontratos/cmd/internal/domain/sqlite/repository"
	"metrocontratos/cmd/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open("file::memory:")
	require.NoError(t, err)
	repo := repository.NewCompanyRepository(db)

	now := utils.NowUTC()
	stale := now - (11 * time.Hour).Milliseconds()
	require.NoError(t, repo.Save(ctx, &entity.RegistryCompany{CNPJ: "11222333000181", Found: true, CachedAt: stale}))
	require.NoError(t, repo.Save(ctx, &entity.RegistryCompany{CNPJ: "11444777000161", Found: false, CachedAt: stale}))
	require.NoError(t, repo.Save(ctx, &entity.RegistryCompany{CNPJ: "11222333000262", Found: true, CachedAt: now}))

	NewCompanyCacheCleaner(repo, 10*time.Hour, time.Hour).Cleanup(ctx)

	for _, gone := range []string{"11222333000181", "11444777000161"} {
		c, err := repo.FindByCNPJ(ctx, gone)
		require.NoError(t, err)
		assert.Nil(t, c, gone)
	}
	fresh, err := repo.FindByCNPJ(ctx, "11222333000262")
	require.NoError(t, err)
	assert.NotNil(t, fresh)
}

type countingRepo struct {
	calls chan int64
}

func (r *countingRepo) DeleteExpired(_ context.Context, before int64) (int64, error) {
	select {
	case r.calls <- before:
	default:
	}
	return 0, nil
}

func TestStartSweepsUntilCancelled(t *testing.T) {
	repo := &countingRepo{calls: make(chan int64, 16)}
	cleaner := NewCompanyCacheCleaner(repo, time.Minute, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cleaner.Start(ctx)
		close(done)
	}()

	select {
	case before := <-repo.calls:
		assert.Less(t, before, utils.NowUTC())
	case <-time.After(2 * time.Second):
		t.Fatal("cleaner never swept")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleaner did not stop")
	}
}

func TestDefaults(t *testing.T) {
	c := NewCompanyCacheCleaner(&countingRepo{}, 0, 0)
	assert.Equal(t, DefaultCacheTTL, c.ttl)
	assert.Equal(t, DefaultCleanInterval, c.interval)
}
