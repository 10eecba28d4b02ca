package repository

import (
	"context"
	"testing"
	"time"

	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/domain/sqlite"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Open("file::memory:")
	require.NoError(t, err)
	return db
}

func TestContractRepository(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	clients := NewClientRepository(db)
	contracts := NewContractRepository(db)

	client := &entity.Client{ID: 10, PersonType: entity.PersonLegal, LegalName: "ACME Ltda", CNPJ: "11.222.333/0001-81"}
	require.NoError(t, clients.Save(ctx, client))

	end := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	first := &entity.Contract{
		ID: 1, Number: "CT-1", Type: entity.ContractLoan, Status: entity.StatusDraft,
		StartDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), EndDate: &end,
		TotalValue: decimal.RequireFromString("12000.00"), ClientID: client.ID, CreatedAt: 1,
	}
	second := &entity.Contract{
		ID: 2, Number: "CT-2", Type: entity.ContractSLA, Status: entity.StatusInForce,
		StartDate: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), ClientID: client.ID, CreatedAt: 2,
	}
	require.NoError(t, contracts.Save(ctx, first))
	require.NoError(t, contracts.Save(ctx, second))

	t.Run("find by id preloads client", func(t *testing.T) {
		got, err := contracts.FindByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, got.Client)
		assert.Equal(t, "ACME Ltda", got.Client.LegalName)
		assert.True(t, decimal.NewFromInt(12000).Equal(got.TotalValue))
		require.NotNil(t, got.EndDate)
		assert.Equal(t, "2026-12-31", got.EndDate.Format("2006-01-02"))

		missing, err := contracts.FindByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("find all is newest first and filters", func(t *testing.T) {
		all, err := contracts.FindAll(ctx, ContractFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "CT-2", all[0].Number)

		sla, err := contracts.FindAll(ctx, ContractFilter{Type: entity.ContractSLA, ClientID: client.ID})
		require.NoError(t, err)
		require.Len(t, sla, 1)
		assert.Equal(t, "CT-2", sla[0].Number)

		none, err := contracts.FindAll(ctx, ContractFilter{Status: entity.StatusCancelled})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("exists by number ignores the row itself", func(t *testing.T) {
		exists, err := contracts.ExistsByNumber(ctx, "CT-1", 1)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = contracts.ExistsByNumber(ctx, "CT-1", 2)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("update pdf url and count", func(t *testing.T) {
		require.NoError(t, contracts.UpdatePDFURL(ctx, 1, "https://bucket.test/a.pdf", 5))
		got, err := contracts.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "https://bucket.test/a.pdf", got.PDFURL)
		assert.Equal(t, int64(5), got.UpdatedAt)

		n, err := clients.CountContracts(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, contracts.Delete(ctx, second))
		got, err := contracts.FindByID(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSettingsRepositoryFindFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(openDB(t))

	none, err := repo.FindFirst(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repo.Save(ctx, &entity.CompanySettings{ID: 2, LegalName: "Segunda"}))
	require.NoError(t, repo.Save(ctx, &entity.CompanySettings{ID: 1, LegalName: "Primeira"}))

	got, err := repo.FindFirst(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Primeira", got.LegalName)
}
