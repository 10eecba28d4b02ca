package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"metrocontratos/cmd/internal/contract"
	"metrocontratos/cmd/internal/document"
	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContracts struct {
	lastQuery [3]string
	created   *contract.ContractRequest
	deleteErr apierror.ErrorResponse
}

func (f *fakeContracts) ListContracts(_ context.Context, status, kind, clientID string) ([]*contract.ContractResponse, apierror.ErrorResponse) {
	f.lastQuery = [3]string{status, kind, clientID}
	return []*contract.ContractResponse{{ID: 1, Number: "CT-1"}}, nil
}

func (f *fakeContracts) GetContract(_ context.Context, id int64) (*contract.ContractResponse, apierror.ErrorResponse) {
	if id != 1 {
		return nil, apierror.ContractNotFoundError
	}
	return &contract.ContractResponse{ID: 1, Number: "CT-1"}, nil
}

func (f *fakeContracts) CreateContract(_ context.Context, req *contract.ContractRequest) (*contract.ContractResponse, apierror.ErrorResponse) {
	f.created = req
	return &contract.ContractResponse{ID: 2, Number: req.Number}, nil
}

func (f *fakeContracts) UpdateContract(_ context.Context, id int64, req *contract.UpdateContractRequest) (*contract.ContractResponse, apierror.ErrorResponse) {
	return &contract.ContractResponse{ID: id, Number: *req.Number}, nil
}

func (f *fakeContracts) DeleteContract(context.Context, int64) apierror.ErrorResponse {
	return f.deleteErr
}

type fakeDocuments struct {
	uploadErr apierror.ErrorResponse
}

func (f *fakeDocuments) AssembleContract(context.Context, int64) (string, apierror.ErrorResponse) {
	return "CONTRATO DE COMODATO DE EQUIPAMENTOS\n", nil
}

func (f *fakeDocuments) RenderContract(context.Context, int64) (*document.GeneratedDocument, apierror.ErrorResponse) {
	return &document.GeneratedDocument{Bytes: []byte("%PDF-1.3"), Filename: "Contrato_CT_1_ACME.pdf", Pages: 1}, nil
}

func (f *fakeDocuments) RenderAndUpload(context.Context, int64) (*contract.RenderResult, apierror.ErrorResponse) {
	if f.uploadErr != nil {
		return &contract.RenderResult{Error: "access denied"}, f.uploadErr
	}
	return &contract.RenderResult{Success: true, URL: "https://bucket.test/a.pdf"}, nil
}

type fakeCompany struct {
	fields map[string]any
}

func (f *fakeCompany) ResolveCompanyProfile(context.Context) entity.CompanyProfile {
	return entity.DefaultCompanyProfile()
}

func (f *fakeCompany) PersistCompanyProfile(_ context.Context, fields map[string]any) (*entity.CompanyProfile, apierror.ErrorResponse) {
	f.fields = fields
	if _, ok := fields["cnpj"]; ok {
		problems := apierror.NewStructured(400)
		problems.Add("cnpj", "Invalid value provided")
		return nil, problems
	}
	p := entity.DefaultCompanyProfile()
	return &p, nil
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newContractServer(contracts *fakeContracts, documents *fakeDocuments) *echo.Echo {
	e := echo.New()
	routes := NewContractRoute(contracts, documents)
	e.GET("/contracts", routes.GetContracts)
	e.GET("/contracts/:id", routes.GetContract)
	e.POST("/contracts", routes.CreateContract)
	e.PATCH("/contracts/:id", routes.UpdateContract)
	e.DELETE("/contracts/:id", routes.DeleteContract)
	e.GET("/contracts/:id/text", routes.GetText)
	e.GET("/contracts/:id/pdf", routes.GetPDF)
	e.POST("/contracts/:id/pdf", routes.UploadPDF)
	return e
}

// errorMessage decodes the APIError envelope; echo escapes characters such as
// '>' so the raw body is not compared directly.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body apierror.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestContractRoutes(t *testing.T) {
	contracts := &fakeContracts{}
	documents := &fakeDocuments{}
	e := newContractServer(contracts, documents)

	t.Run("list forwards filters", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/contracts?status=ativo&tipo=sla&cliente_id=9", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, [3]string{"ativo", "sla", "9"}, contracts.lastQuery)
		assert.Contains(t, rec.Body.String(), `"contracts"`)
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/contracts/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apierror.InvalidIDError.Message, errorMessage(t, rec))
	})

	t.Run("not found", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/contracts/5", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("create binds snake case body", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/contracts", `{"numero_contrato":"CT-9","tipo_contrato":"sla","valor_total":"100.50","dados_especificos":{"horario":"8x5"}}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, contracts.created)
		assert.Equal(t, "CT-9", contracts.created.Number)
		assert.Equal(t, "100.5", contracts.created.TotalValue.String())
		assert.JSONEq(t, `{"horario":"8x5"}`, string(contracts.created.TypeData))
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/contracts", `{"numero_contrato":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apierror.MalformedJSONError.Message, errorMessage(t, rec))
	})

	t.Run("update", func(t *testing.T) {
		rec := serve(e, http.MethodPatch, "/contracts/1", `{"numero_contrato":"CT-10"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"numero_contrato":"CT-10"`)
	})

	t.Run("delete in force", func(t *testing.T) {
		contracts.deleteErr = apierror.ContractInForceError
		defer func() { contracts.deleteErr = nil }()
		rec := serve(e, http.MethodDelete, "/contracts/1", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := serve(e, http.MethodDelete, "/contracts/1", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("text", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/contracts/1/text", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain))
		assert.Equal(t, "CONTRATO DE COMODATO DE EQUIPAMENTOS\n", rec.Body.String())
	})

	t.Run("pdf download", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/contracts/1/pdf", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, `attachment; filename="Contrato_CT_1_ACME.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, "%PDF-1.3", rec.Body.String())
	})

	t.Run("upload", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/contracts/1/pdf", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var result contract.RenderResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, "https://bucket.test/a.pdf", result.URL)
	})

	t.Run("upload failure keeps the envelope", func(t *testing.T) {
		documents.uploadErr = apierror.UploadError
		defer func() { documents.uploadErr = nil }()
		rec := serve(e, http.MethodPost, "/contracts/1/pdf", "")
		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var result contract.RenderResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.False(t, result.Success)
		assert.Equal(t, "access denied", result.Error)
	})
}

func TestCompanyRoutes(t *testing.T) {
	company := &fakeCompany{}
	routes := NewCompanyRoute(company)
	e := echo.New()
	e.GET("/company-profile", routes.GetProfile)
	e.PUT("/company-profile", routes.UpdateProfile)

	t.Run("get", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/company-profile", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"cnpj":"13.250.539/0001-40"`)
	})

	t.Run("update", func(t *testing.T) {
		rec := serve(e, http.MethodPut, "/company-profile", `{"razao_social":"Lab Omega"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Lab Omega", company.fields["razao_social"])

		var result contract.PersistResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Success)
	})

	t.Run("validation failure", func(t *testing.T) {
		rec := serve(e, http.MethodPut, "/company-profile", `{"cnpj":"123"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Invalid company configuration","data":{"errors":{"cnpj":["Invalid value provided"]}}}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serve(e, http.MethodPut, "/company-profile", `[1,2`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})
}

type fakeUtil struct{}

func (fakeUtil) GetCompanyByCNPJ(_ context.Context, cnpj string) (*contract.CompanyResponse, apierror.ErrorResponse) {
	if cnpj != "11222333000181" {
		return nil, apierror.InvalidCNPJError
	}
	return &contract.CompanyResponse{CNPJ: "11.222.333/0001-81", LegalName: "EMPRESA EXEMPLO LTDA"}, nil
}

func (fakeUtil) ContractTypes() []*contract.ContractTypeResponse {
	return []*contract.ContractTypeResponse{{Tag: "comodato", Title: "CONTRATO DE COMODATO DE EQUIPAMENTOS"}}
}

func TestUtilRoutes(t *testing.T) {
	routes := NewUtilRoute(fakeUtil{})
	e := echo.New()
	e.GET("/health", routes.Health)
	e.GET("/contract-types", routes.GetContractTypes)
	e.GET("/lookup/cnpj/:cnpj", routes.GetCompany)

	rec := serve(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"OK"`)

	rec = serve(e, http.MethodGet, "/contract-types", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tag":"comodato"`)

	rec = serve(e, http.MethodGet, "/lookup/cnpj/11222333000181", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMPRESA EXEMPLO LTDA")

	rec = serve(e, http.MethodGet, "/lookup/cnpj/123", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
