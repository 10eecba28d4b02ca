package service

import (
	"context"
	"strconv"
	"testing"

	"metrocontratos/cmd/internal/contract"
	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContract(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t)

	base := func() *contract.ContractRequest {
		return &contract.ContractRequest{
			Number:     "CT-2026/001",
			Type:       string(entity.ContractCalibration),
			StartDate:  "2026-01-01",
			EndDate:    "2026-12-31",
			TotalValue: decimal.NewFromInt(12000),
			ClientID:   client.ID,
		}
	}

	t.Run("defaults to draft and loads the client", func(t *testing.T) {
		resp, apiErr := env.contract.CreateContract(ctx, base())
		require.Nil(t, apiErr)
		assert.Equal(t, string(entity.StatusDraft), resp.Status)
		assert.Equal(t, "2026-12-31", resp.EndDate)
		assert.True(t, decimal.NewFromInt(12000).Equal(resp.TotalValue))
		require.NotNil(t, resp.Client)
		assert.Equal(t, "ACME Ltda", resp.Client.LegalName)
	})

	t.Run("duplicate number", func(t *testing.T) {
		_, apiErr := env.contract.CreateContract(ctx, base())
		assert.Equal(t, apierror.DuplicateNumberError, apiErr)
	})

	t.Run("indeterminate clears the end date", func(t *testing.T) {
		req := base()
		req.Number = "CT-2026/002"
		req.IndeterminateTerm = true
		resp, apiErr := env.contract.CreateContract(ctx, req)
		require.Nil(t, apiErr)
		assert.True(t, resp.IndeterminateTerm)
		assert.Empty(t, resp.EndDate)
	})

	t.Run("end before start", func(t *testing.T) {
		req := base()
		req.Number = "CT-2026/003"
		req.EndDate = "2025-12-31"
		_, apiErr := env.contract.CreateContract(ctx, req)
		requireFields(t, apiErr, "data_fim")
	})

	t.Run("negative values and broken type data", func(t *testing.T) {
		req := base()
		req.Number = "CT-2026/004"
		req.TotalValue = decimal.NewFromInt(-1)
		req.TypeData = []byte(`{"periodicidade": 12}`)
		_, apiErr := env.contract.CreateContract(ctx, req)
		requireFields(t, apiErr, "valor_total", "dados_especificos")
	})

	t.Run("unknown client", func(t *testing.T) {
		req := base()
		req.Number = "CT-2026/005"
		req.ClientID = 999
		_, apiErr := env.contract.CreateContract(ctx, req)
		assert.Equal(t, apierror.ClientNotFoundError, apiErr)
	})

	t.Run("validator rejects bad tags and layouts", func(t *testing.T) {
		req := base()
		req.Number = "CT 006"
		req.Type = "aluguel"
		req.Status = "vigente"
		req.StartDate = "01/01/2026"
		_, apiErr := env.contract.CreateContract(ctx, req)
		requireFields(t, apiErr, "numero_contrato", "tipo_contrato", "status", "data_inicio")
	})
}

func TestUpdateContract(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t)
	created := env.createContract(t, client.ID, "CT-200", "")
	env.createContract(t, client.ID, "CT-201", "")

	t.Run("partial update keeps other fields", func(t *testing.T) {
		resp, apiErr := env.contract.UpdateContract(ctx, created.ID, &contract.UpdateContractRequest{
			Status:     ptr(string(entity.StatusInForce)),
			TotalValue: ptr(decimal.RequireFromString("1500.50")),
		})
		require.Nil(t, apiErr)
		assert.Equal(t, "ativo", resp.Status)
		assert.Equal(t, "CT-200", resp.Number)
		assert.True(t, decimal.RequireFromString("1500.50").Equal(resp.TotalValue))
		assert.JSONEq(t, `{"equipamentos":[{"descricao":"Balança analítica"}]}`, string(resp.TypeData))
	})

	t.Run("renaming onto another number", func(t *testing.T) {
		_, apiErr := env.contract.UpdateContract(ctx, created.ID, &contract.UpdateContractRequest{Number: ptr("CT-201")})
		assert.Equal(t, apierror.DuplicateNumberError, apiErr)
	})

	t.Run("unknown contract", func(t *testing.T) {
		_, apiErr := env.contract.UpdateContract(ctx, 7, &contract.UpdateContractRequest{})
		assert.Equal(t, apierror.ContractNotFoundError, apiErr)
	})
}

func TestListContracts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t)
	env.createContract(t, client.ID, "CT-300", "")
	env.createContract(t, client.ID, "CT-301", string(entity.StatusInForce))

	all, apiErr := env.contract.ListContracts(ctx, "", "", "")
	require.Nil(t, apiErr)
	assert.Len(t, all, 2)

	drafts, apiErr := env.contract.ListContracts(ctx, "rascunho", "comodato", strconv.FormatInt(client.ID, 10))
	require.Nil(t, apiErr)
	require.Len(t, drafts, 1)
	assert.Equal(t, "CT-300", drafts[0].Number)

	none, apiErr := env.contract.ListContracts(ctx, "", "sla", "")
	require.Nil(t, apiErr)
	assert.Empty(t, none)

	_, apiErr = env.contract.ListContracts(ctx, "vigente", "", "")
	assert.Equal(t, 400, apiErr.Code())
	_, apiErr = env.contract.ListContracts(ctx, "", "", "abc")
	assert.Equal(t, 400, apiErr.Code())
}

func TestDeleteContract(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t)

	cases := []struct {
		status string
		want   apierror.ErrorResponse
	}{
		{"rascunho", nil},
		{"cancelado", nil},
		{"ativo", apierror.ContractInForceError},
		{"suspenso", apierror.ContractInForceError},
		{"encerrado", apierror.ContractInForceError},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			c := env.createContract(t, client.ID, "CT-DEL-"+tc.status, tc.status)
			got := env.contract.DeleteContract(ctx, c.ID)
			if tc.want == nil {
				assert.Nil(t, got)
				_, apiErr := env.contract.GetContract(ctx, c.ID)
				assert.Equal(t, apierror.ContractNotFoundError, apiErr)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
