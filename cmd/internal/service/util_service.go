package service

import (
	"context"
	"errors"

	"metrocontratos/cmd/internal/contract"
	"metrocontratos/cmd/internal/domain/clause"
	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/infrastructure/minhareceita"
	"metrocontratos/cmd/internal/utils"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type CompanyRepository interface {
	Save(ctx context.Context, company *entity.RegistryCompany) error
	FindByCNPJ(ctx context.Context, cnpj string) (*entity.RegistryCompany, error)
}

type RegistryClient interface {
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.RegistryCompany, error)
}

type MiscService struct {
	ReceitaClient RegistryClient
	CompanyRepo   CompanyRepository
}

func NewMiscService(client RegistryClient, companyRepo CompanyRepository) *MiscService {
	return &MiscService{
		ReceitaClient: client,
		CompanyRepo:   companyRepo,
	}
}

// GetCompanyByCNPJ looks a company up in the public registry so a client can
// be pre-filled. Masked input is accepted.
func (u *MiscService) GetCompanyByCNPJ(ctx context.Context, cnpj string) (*contract.CompanyResponse, apierror.ErrorResponse) {
	cnpj = utils.OnlyDigits(cnpj)
	if !utils.IsCNPJValid(cnpj) {
		return nil, apierror.InvalidCNPJError
	}

	company, fromCache, err := u.findCompany(ctx, cnpj)
	if err != nil {
		return nil, err
	}
	return toCompanyResp(company, fromCache), nil
}

// findCompany is a utility function that will try to resolve the CNPJ into a company.
// It returns the company, a boolean (true = cached, false = API fetch) and a possible error response.
func (u *MiscService) findCompany(ctx context.Context, cnpj string) (*entity.RegistryCompany, bool, apierror.ErrorResponse) {
	cached, err := u.CompanyRepo.FindByCNPJ(ctx, cnpj)
	if err != nil {
		log.Errorf("failed to find company by cnpj %s: %v", cnpj, err)
		return nil, false, apierror.InternalServerError
	}

	// If we have some kind of cache
	if cached != nil {
		if cached.Found {
			return cached, true, nil
		}
		return nil, false, apierror.NotFoundError
	}

	// Cache miss
	apiCompany, apierr := u.fetchFromAPI(ctx, cnpj)
	if apierr != nil {
		return nil, false, apierr
	}

	err = u.CompanyRepo.Save(ctx, apiCompany)
	if err != nil {
		// We don't return a 500 here, since we have the data we need
		// and only the cache has failed. We can just log it and proceed.
		log.Errorf("failed to save company cache for CNPJ %s: %v", cnpj, err)
	}

	return apiCompany, false, nil
}

func (u *MiscService) fetchFromAPI(ctx context.Context, cnpj string) (*entity.RegistryCompany, apierror.ErrorResponse) {
	company, err := u.ReceitaClient.GetByCNPJ(ctx, cnpj)
	if err != nil {
		if errors.Is(err, minhareceita.ErrNotFound) {
			u.cacheNegativeResult(ctx, cnpj)
			return nil, apierror.NotFoundError
		}
		log.Errorf("failed to fetch company by cnpj %s: %v", cnpj, err)
		return nil, apierror.RegistryUnavailableError
	}

	company.CNPJ = cnpj
	company.Found = true
	company.CachedAt = utils.NowUTC()
	return company, nil
}

func (u *MiscService) cacheNegativeResult(ctx context.Context, cnpj string) {
	emptyCompany := &entity.RegistryCompany{
		CNPJ:     cnpj,
		Found:    false,
		CachedAt: utils.NowUTC(),
	}
	if err := u.CompanyRepo.Save(ctx, emptyCompany); err != nil {
		log.Warnf("failed to cache missing CNPJ %s: %v", cnpj, err)
	}
}

func toCompanyResp(c *entity.RegistryCompany, cached bool) *contract.CompanyResponse {
	return &contract.CompanyResponse{
		CNPJ:        utils.FormatCNPJ(c.CNPJ),
		LegalName:   c.LegalName,
		TradeName:   c.TradeName,
		LegalNature: c.LegalNature,
		RegStatus:   string(c.RegStatus),
		Address: &contract.CompanyAddress{
			Type:         c.AddressType,
			StreetName:   c.AddressStreetName,
			Number:       c.AddressNumber,
			Complement:   c.AddressComplement,
			Neighborhood: c.AddressNeighborhood,
			ZipCode:      c.AddressZipCode,
			City:         c.AddressCity,
			Region:       c.AddressRegion,
		},
		Email:  c.Email,
		Phone:  c.Phone,
		Cached: cached,
		Client: toClientDraft(c),
	}
}

// toClientDraft maps a registry entry onto a new legal-entity client.
func toClientDraft(c *entity.RegistryCompany) *contract.ClientRequest {
	street := c.AddressStreetName
	if c.AddressType != "" && street != "" {
		street = c.AddressType + " " + street
	}
	return &contract.ClientRequest{
		PersonType: string(entity.PersonLegal),
		LegalName:  c.LegalName,
		TradeName:  c.TradeName,
		CNPJ:       utils.FormatCNPJ(c.CNPJ),
		Street:     street,
		Number:     c.AddressNumber,
		Complement: c.AddressComplement,
		District:   c.AddressNeighborhood,
		City:       c.AddressCity,
		State:      c.AddressRegion,
		ZipCode:    c.AddressZipCode,
		Phone:      c.Phone,
		Email:      c.Email,
	}
}

// ContractTypes lists every selectable contract type, legacy last.
func (u *MiscService) ContractTypes() []*contract.ContractTypeResponse {
	resp := make([]*contract.ContractTypeResponse, 0, len(entity.ContractTypes))
	for _, t := range entity.ContractTypes {
		description, _ := clause.ServiceDescription(t)
		resp = append(resp, &contract.ContractTypeResponse{
			Tag:         string(t),
			Title:       clause.Title(t),
			Description: description,
			Legacy:      t == entity.ContractServiceProvision,
		})
	}
	return resp
}
