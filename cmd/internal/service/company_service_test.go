package service

import (
	"context"
	"errors"
	"testing"

	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenSettings struct{}

func (brokenSettings) FindFirst(context.Context) (*entity.CompanySettings, error) {
	return nil, errors.New("database is locked")
}

func (brokenSettings) Save(context.Context, *entity.CompanySettings) error {
	return errors.New("database is locked")
}

func TestResolveCompanyProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("no row yields defaults", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Equal(t, entity.DefaultCompanyProfile(), env.company.ResolveCompanyProfile(ctx))
	})

	t.Run("fetch failure yields defaults", func(t *testing.T) {
		s := NewCompanyService(brokenSettings{}, entity.DefaultCompanyProfile(), nil)
		assert.Equal(t, entity.DefaultCompanyProfile(), s.ResolveCompanyProfile(ctx))
	})

	t.Run("blank columns fall back per field", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.settings.Save(ctx, &entity.CompanySettings{LegalName: "Lab Alfa", CNPJ: "  "}))

		p := env.company.ResolveCompanyProfile(ctx)
		assert.Equal(t, "Lab Alfa", p.LegalName)
		assert.Equal(t, "13.250.539/0001-40", p.CNPJ)
		assert.Equal(t, entity.DefaultCompanyProfile().City, p.City)
	})

	t.Run("cancelled context", func(t *testing.T) {
		env := newTestEnv(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := env.company.CompanyProfile(cancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPersistCompanyProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip with mixed key styles", func(t *testing.T) {
		env := newTestEnv(t)
		saved, apiErr := env.company.PersistCompanyProfile(ctx, map[string]any{
			"razao_social": "Lab Beta Metrologia",
			"cidade":       "Santos",
			"uf":           "SP",
			"numero":       float64(42),
			"email":        "contato@beta.com.br",
		})
		require.Nil(t, apiErr)
		assert.Equal(t, "Lab Beta Metrologia", saved.LegalName)
		assert.Equal(t, "42", saved.Number)
		assert.Equal(t, "13.250.539/0001-40", saved.CNPJ)

		resolved := env.company.ResolveCompanyProfile(ctx)
		assert.Equal(t, *saved, resolved)
	})

	t.Run("second update merges into the same row", func(t *testing.T) {
		env := newTestEnv(t)
		_, apiErr := env.company.PersistCompanyProfile(ctx, map[string]any{"razaoSocial": "Lab Gama"})
		require.Nil(t, apiErr)
		_, apiErr = env.company.PersistCompanyProfile(ctx, map[string]any{"site": "www.gama.com.br"})
		require.Nil(t, apiErr)

		p := env.company.ResolveCompanyProfile(ctx)
		assert.Equal(t, "Lab Gama", p.LegalName)
		assert.Equal(t, "www.gama.com.br", p.Website)
	})

	t.Run("invalid values", func(t *testing.T) {
		env := newTestEnv(t)
		_, apiErr := env.company.PersistCompanyProfile(ctx, map[string]any{
			"cnpj":   "123",
			"estado": "XX",
			"cidade": []string{"nope"},
		})
		requireFields(t, apiErr, "cnpj", "estado", "cidade")
	})

	t.Run("only unknown keys", func(t *testing.T) {
		env := newTestEnv(t)
		_, apiErr := env.company.PersistCompanyProfile(ctx, map[string]any{"favorite_color": "blue"})
		assert.Equal(t, apierror.EmptyProfileUpdateError, apiErr)
	})

	t.Run("storage failure", func(t *testing.T) {
		s := NewCompanyService(brokenSettings{}, entity.DefaultCompanyProfile(), nil)
		_, apiErr := s.PersistCompanyProfile(ctx, map[string]any{"cidade": "Santos"})
		assert.Equal(t, apierror.InternalServerError, apiErr)
	})
}
