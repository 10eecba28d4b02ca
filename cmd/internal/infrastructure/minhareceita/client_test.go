package minhareceita

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"metrocontratos/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByCNPJ(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/11222333000181":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"cnpj": "11222333000181",
				"razao_social": "EMPRESA EXEMPLO LTDA",
				"descricao_situacao_cadastral": "ATIVA",
				"descricao_tipo_de_logradouro": "RUA",
				"logradouro": "DAS FLORES",
				"municipio": "CAMPINAS",
				"uf": "SP",
				"email": "CONTATO@EXEMPLO.COM.BR",
				"ddd_telefone_1": "1932000000"
			}`))
		case "/11444777000161":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		company, err := client.GetByCNPJ(ctx, "11222333000181")
		require.NoError(t, err)
		assert.Equal(t, "EMPRESA EXEMPLO LTDA", company.LegalName)
		assert.Equal(t, entity.StatusActive, company.RegStatus)
		assert.Equal(t, "contato@exemplo.com.br", company.Email)
		assert.Equal(t, "SP", company.AddressRegion)
		assert.True(t, company.Found)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := client.GetByCNPJ(ctx, "11444777000161")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other status", func(t *testing.T) {
		_, err := client.GetByCNPJ(ctx, "00000000000191")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestTranslateStatus(t *testing.T) {
	assert.Equal(t, entity.StatusClosed, translateStatus("baixada"))
	assert.Equal(t, entity.StatusUnknown, translateStatus("NULA"))
}
