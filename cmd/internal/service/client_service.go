package service

import (
	"context"
	"strings"

	"metrocontratos/cmd/internal/contract"
	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/utils"
	"metrocontratos/cmd/internal/utils/apierror"
	"metrocontratos/cmd/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ClientRepository interface {
	FindAll(ctx context.Context, search string) ([]*entity.Client, error)
	FindByID(ctx context.Context, id int64) (*entity.Client, error)
	Save(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, client *entity.Client) error
	CountContracts(ctx context.Context, id int64) (int64, error)
}

type ClientService struct {
	ClientRepo ClientRepository
	Validate   *validator.Validate
}

func NewClientService(repo ClientRepository, validate *validator.Validate) *ClientService {
	return &ClientService{ClientRepo: repo, Validate: validate}
}

func (s *ClientService) ListClients(ctx context.Context, search string) ([]*contract.ClientResponse, apierror.ErrorResponse) {
	clients, err := s.ClientRepo.FindAll(ctx, search)
	if err != nil {
		log.Errorf("failed to fetch clients: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ClientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toClientResponse(c)
	}
	return resp, nil
}

func (s *ClientService) GetClient(ctx context.Context, id int64) (*contract.ClientResponse, apierror.ErrorResponse) {
	client, apiErr := s.findClient(ctx, id)
	if apiErr != nil {
		return nil, apiErr
	}
	return toClientResponse(client), nil
}

func (s *ClientService) CreateClient(ctx context.Context, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	now := utils.NowUTC()
	client := &entity.Client{
		ID:                 uid.Generate(),
		PersonType:         entity.PersonType(req.PersonType),
		LegalName:          req.LegalName,
		TradeName:          req.TradeName,
		CNPJ:               req.CNPJ,
		CPF:                req.CPF,
		StateRegistration:  req.StateRegistration,
		Street:             req.Street,
		Number:             req.Number,
		Complement:         req.Complement,
		District:           req.District,
		City:               req.City,
		State:              strings.ToUpper(req.State),
		ZipCode:            req.ZipCode,
		Phone:              req.Phone,
		Email:              req.Email,
		RepresentativeName: req.RepresentativeName,
		RepresentativeCPF:  req.RepresentativeCPF,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if apiErr := normalizeTaxID(client); apiErr != nil {
		return nil, apiErr
	}

	if err := s.ClientRepo.Save(ctx, client); err != nil {
		log.Errorf("failed to save client: %v", err)
		return nil, apierror.InternalServerError
	}
	return toClientResponse(client), nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id int64, req *contract.UpdateClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	client, apiErr := s.findClient(ctx, id)
	if apiErr != nil {
		return nil, apiErr
	}

	if req.PersonType != nil {
		client.PersonType = entity.PersonType(*req.PersonType)
	}
	set(&client.LegalName, req.LegalName)
	set(&client.TradeName, req.TradeName)
	set(&client.CNPJ, req.CNPJ)
	set(&client.CPF, req.CPF)
	set(&client.StateRegistration, req.StateRegistration)
	set(&client.Street, req.Street)
	set(&client.Number, req.Number)
	set(&client.Complement, req.Complement)
	set(&client.District, req.District)
	set(&client.City, req.City)
	set(&client.State, req.State)
	set(&client.ZipCode, req.ZipCode)
	set(&client.Phone, req.Phone)
	set(&client.Email, req.Email)
	set(&client.RepresentativeName, req.RepresentativeName)
	set(&client.RepresentativeCPF, req.RepresentativeCPF)
	client.State = strings.ToUpper(client.State)

	if apiErr := normalizeTaxID(client); apiErr != nil {
		return nil, apiErr
	}
	client.UpdatedAt = utils.NowUTC()

	if err := s.ClientRepo.Save(ctx, client); err != nil {
		log.Errorf("failed to update client %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toClientResponse(client), nil
}

// DeleteClient refuses to remove a client that contracts still point at.
func (s *ClientService) DeleteClient(ctx context.Context, id int64) apierror.ErrorResponse {
	client, apiErr := s.findClient(ctx, id)
	if apiErr != nil {
		return apiErr
	}

	n, err := s.ClientRepo.CountContracts(ctx, id)
	if err != nil {
		log.Errorf("failed to count contracts of client %d: %v", id, err)
		return apierror.InternalServerError
	}
	if n > 0 {
		return apierror.ClientHasContractsError
	}

	if err := s.ClientRepo.Delete(ctx, client); err != nil {
		log.Errorf("failed to delete client %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *ClientService) findClient(ctx context.Context, id int64) (*entity.Client, apierror.ErrorResponse) {
	client, err := s.ClientRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if client == nil {
		return nil, apierror.ClientNotFoundError
	}
	return client, nil
}

// normalizeTaxID keeps exactly one of CNPJ and CPF, the one matching the
// person type, and stores it masked.
func normalizeTaxID(c *entity.Client) apierror.ErrorResponse {
	if c.IsIndividual() {
		c.CNPJ = ""
		if c.CPF == "" {
			return requiredField("cpf")
		}
		c.CPF = utils.FormatCPF(c.CPF)
	} else {
		c.CPF = ""
		if c.CNPJ == "" {
			return requiredField("cnpj")
		}
		c.CNPJ = utils.FormatCNPJ(c.CNPJ)
	}
	if c.RepresentativeCPF != "" {
		c.RepresentativeCPF = utils.FormatCPF(c.RepresentativeCPF)
	}
	return nil
}

func requiredField(field string) *apierror.StructuredError {
	problems := apierror.NewStructured(400)
	problems.Add(field, "This field is required")
	return problems
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func toClientResponse(c *entity.Client) *contract.ClientResponse {
	return &contract.ClientResponse{
		ID:                 c.ID,
		PersonType:         string(c.PersonType),
		LegalName:          c.LegalName,
		TradeName:          c.TradeName,
		CNPJ:               c.CNPJ,
		CPF:                c.CPF,
		StateRegistration:  c.StateRegistration,
		Street:             c.Street,
		Number:             c.Number,
		Complement:         c.Complement,
		District:           c.District,
		City:               c.City,
		State:              c.State,
		ZipCode:            c.ZipCode,
		Phone:              c.Phone,
		Email:              c.Email,
		RepresentativeName: c.RepresentativeName,
		RepresentativeCPF:  c.RepresentativeCPF,
		CreatedAt:          utils.FormatEpoch(c.CreatedAt),
		UpdatedAt:          utils.FormatEpoch(c.UpdatedAt),
	}
}
