package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"metrocontratos/cmd/internal/contract"
	"metrocontratos/cmd/internal/document"
	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/domain/sqlite"
	"metrocontratos/cmd/internal/domain/sqlite/repository"
	"metrocontratos/cmd/internal/utils/apierror"
	"metrocontratos/cmd/internal/utils/uid"
	"metrocontratos/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

// Valid check digits, used across the tests.
const (
	testCNPJ = "11222333000181"
	testCPF  = "52998224725"
)

type testEnv struct {
	validate  *validator.Validate
	settings  *repository.DefaultSettingsRepository
	companies *repository.DefaultCompanyRepository
	clients   *repository.DefaultClientRepository
	contracts *repository.DefaultContractRepository

	company   *CompanyService
	client    *ClientService
	contract  *ContractService
	documents *DocumentService
	storage   *fakeStorage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	uid.Init(1)

	db, err := sqlite.Open("file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	validate := validator.New()
	require.NoError(t, validators.Register(validate))

	env := &testEnv{
		validate:  validate,
		settings:  repository.NewSettingsRepository(db),
		companies: repository.NewCompanyRepository(db),
		clients:   repository.NewClientRepository(db),
		contracts: repository.NewContractRepository(db),
		storage:   &fakeStorage{objects: map[string][]byte{}},
	}
	env.company = NewCompanyService(env.settings, entity.DefaultCompanyProfile(), validate)
	env.client = NewClientService(env.clients, validate)
	env.contract = NewContractService(env.contracts, env.clients, validate)
	env.documents = NewDocumentService(env.contract, document.NewAssembler(env.company), nil, env.storage)
	return env
}

func (e *testEnv) createClient(t *testing.T) *contract.ClientResponse {
	t.Helper()
	resp, apiErr := e.client.CreateClient(context.Background(), &contract.ClientRequest{
		PersonType: "juridica",
		LegalName:  "ACME Ltda",
		CNPJ:       testCNPJ,
		City:       "Campinas",
		State:      "sp",
	})
	require.Nil(t, apiErr)
	return resp
}

func (e *testEnv) createContract(t *testing.T, clientID int64, number, status string) *contract.ContractResponse {
	t.Helper()
	resp, apiErr := e.contract.CreateContract(context.Background(), &contract.ContractRequest{
		Number:    number,
		Type:      string(entity.ContractLoan),
		Status:    status,
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		TypeData:  []byte(`{"equipamentos":[{"descricao":"Balança analítica"}]}`),
		ClientID:  clientID,
	})
	require.Nil(t, apiErr)
	return resp
}

// requireFields asserts apiErr is a 400 structured error naming every field.
func requireFields(t *testing.T, apiErr apierror.ErrorResponse, fields ...string) {
	t.Helper()
	require.NotNil(t, apiErr)
	structured, ok := apiErr.(*apierror.StructuredError)
	require.True(t, ok, "expected structured error, got %#v", apiErr)
	require.Equal(t, 400, structured.Code())
	for _, f := range fields {
		require.Contains(t, structured.Errors, f)
	}
}

type fakeStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
	types     map[string]string
}

func (f *fakeStorage) UploadFile(_ context.Context, data []byte, key, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.objects[key] = data
	if f.types == nil {
		f.types = map[string]string{}
	}
	f.types[key] = contentType
	return f.PublicURL(key), nil
}

func (f *fakeStorage) DownloadFile(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://bucket.test/" + key
}
