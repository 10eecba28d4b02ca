package service

import (
	"context"
	"errors"
	"testing"

	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/infrastructure/minhareceita"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistry struct {
	calls   int
	company *entity.RegistryCompany
	err     error
}

func (f *fakeRegistry) GetByCNPJ(_ context.Context, _ string) (*entity.RegistryCompany, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	c := *f.company
	return &c, nil
}

func TestGetCompanyByCNPJ(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches once then serves from cache", func(t *testing.T) {
		env := newTestEnv(t)
		registry := &fakeRegistry{company: &entity.RegistryCompany{
			LegalName:         "EMPRESA EXEMPLO LTDA",
			RegStatus:         entity.StatusActive,
			AddressType:       "RUA",
			AddressStreetName: "DAS FLORES",
			AddressCity:       "CAMPINAS",
			AddressRegion:     "SP",
		}}
		svc := NewMiscService(registry, env.companies)

		first, apiErr := svc.GetCompanyByCNPJ(ctx, "11.222.333/0001-81")
		require.Nil(t, apiErr)
		assert.False(t, first.Cached)
		assert.Equal(t, "11.222.333/0001-81", first.CNPJ)
		require.NotNil(t, first.Client)
		assert.Equal(t, "RUA DAS FLORES", first.Client.Street)
		assert.Equal(t, "juridica", first.Client.PersonType)

		second, apiErr := svc.GetCompanyByCNPJ(ctx, testCNPJ)
		require.Nil(t, apiErr)
		assert.True(t, second.Cached)
		assert.Equal(t, "EMPRESA EXEMPLO LTDA", second.LegalName)
		assert.Equal(t, 1, registry.calls)
	})

	t.Run("not found is cached", func(t *testing.T) {
		env := newTestEnv(t)
		registry := &fakeRegistry{err: minhareceita.ErrNotFound}
		svc := NewMiscService(registry, env.companies)

		_, apiErr := svc.GetCompanyByCNPJ(ctx, testCNPJ)
		assert.Equal(t, apierror.NotFoundError, apiErr)
		_, apiErr = svc.GetCompanyByCNPJ(ctx, testCNPJ)
		assert.Equal(t, apierror.NotFoundError, apiErr)
		assert.Equal(t, 1, registry.calls)

		cached, err := env.companies.FindByCNPJ(ctx, testCNPJ)
		require.NoError(t, err)
		require.NotNil(t, cached)
		assert.False(t, cached.Found)
	})

	t.Run("registry outage is not cached", func(t *testing.T) {
		env := newTestEnv(t)
		registry := &fakeRegistry{err: errors.New("connection reset")}
		svc := NewMiscService(registry, env.companies)

		_, apiErr := svc.GetCompanyByCNPJ(ctx, testCNPJ)
		assert.Equal(t, apierror.RegistryUnavailableError, apiErr)
		_, apiErr = svc.GetCompanyByCNPJ(ctx, testCNPJ)
		assert.Equal(t, apierror.RegistryUnavailableError, apiErr)
		assert.Equal(t, 2, registry.calls)
	})

	t.Run("invalid cnpj never reaches the registry", func(t *testing.T) {
		env := newTestEnv(t)
		registry := &fakeRegistry{}
		svc := NewMiscService(registry, env.companies)

		_, apiErr := svc.GetCompanyByCNPJ(ctx, "11.222.333/0001-82")
		assert.Equal(t, apierror.InvalidCNPJError, apiErr)
		assert.Zero(t, registry.calls)
	})
}

func TestContractTypes(t *testing.T) {
	types := (&MiscService{}).ContractTypes()
	require.Len(t, types, len(entity.ContractTypes))

	last := types[len(types)-1]
	assert.Equal(t, "prestacao_servicos", last.Tag)
	assert.True(t, last.Legacy)
	for _, ct := range types[:len(types)-1] {
		assert.False(t, ct.Legacy, ct.Tag)
		assert.NotEmpty(t, ct.Title, ct.Tag)
		assert.NotEmpty(t, ct.Description, ct.Tag)
	}
}
