package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"metrocontratos/cmd/internal/contract"
	"metrocontratos/cmd/internal/domain/clause"
	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/domain/policy"
	"metrocontratos/cmd/internal/domain/sqlite/repository"
	"metrocontratos/cmd/internal/utils"
	"metrocontratos/cmd/internal/utils/apierror"
	"metrocontratos/cmd/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/datatypes"
)

type ContractRepository interface {
	FindAll(ctx context.Context, filter repository.ContractFilter) ([]*entity.Contract, error)
	FindByID(ctx context.Context, id int64) (*entity.Contract, error)
	ExistsByNumber(ctx context.Context, number string, exceptID int64) (bool, error)
	Save(ctx context.Context, contract *entity.Contract) error
	Delete(ctx context.Context, contract *entity.Contract) error
	UpdatePDFURL(ctx context.Context, id int64, url string, updatedAt int64) error
}

type ContractService struct {
	ContractRepo ContractRepository
	ClientRepo   ClientRepository
	Policy       *policy.ContractPolicy
	Validate     *validator.Validate
}

func NewContractService(contracts ContractRepository, clients ClientRepository, validate *validator.Validate) *ContractService {
	return &ContractService{
		ContractRepo: contracts,
		ClientRepo:   clients,
		Policy:       policy.NewContractPolicy(),
		Validate:     validate,
	}
}

// ListContracts accepts the raw query values of status, tipo and cliente_id.
func (s *ContractService) ListContracts(ctx context.Context, status, kind, clientID string) ([]*contract.ContractResponse, apierror.ErrorResponse) {
	filter := repository.ContractFilter{
		Status: entity.ContractStatus(status),
		Type:   entity.ContractType(kind),
	}
	if status != "" && s.Validate.Var(status, "contractstatus") != nil {
		return nil, apierror.NewInvalidQueryError("status", status)
	}
	if kind != "" && s.Validate.Var(kind, "contracttype") != nil {
		return nil, apierror.NewInvalidQueryError("tipo", kind)
	}
	if clientID != "" {
		id, err := strconv.ParseInt(clientID, 10, 64)
		if err != nil || id <= 0 {
			return nil, apierror.NewInvalidParamTypeError("cliente_id", "int64")
		}
		filter.ClientID = id
	}

	contracts, err := s.ContractRepo.FindAll(ctx, filter)
	if err != nil {
		log.Errorf("failed to fetch contracts: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ContractResponse, len(contracts))
	for i, c := range contracts {
		resp[i] = toContractResponse(c)
	}
	return resp, nil
}

func (s *ContractService) GetContract(ctx context.Context, id int64) (*contract.ContractResponse, apierror.ErrorResponse) {
	c, apiErr := s.FindContract(ctx, id)
	if apiErr != nil {
		return nil, apiErr
	}
	return toContractResponse(c), nil
}

// FindContract loads the contract and its client for rendering.
func (s *ContractService) FindContract(ctx context.Context, id int64) (*entity.Contract, apierror.ErrorResponse) {
	c, err := s.ContractRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch contract %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if c == nil {
		return nil, apierror.ContractNotFoundError
	}
	return c, nil
}

func (s *ContractService) CreateContract(ctx context.Context, req *contract.ContractRequest) (*contract.ContractResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	now := utils.NowUTC()
	c := &entity.Contract{
		ID:                uid.Generate(),
		Number:            req.Number,
		Type:              entity.ContractType(req.Type),
		Status:            entity.ContractStatus(req.Status),
		IndeterminateTerm: req.IndeterminateTerm,
		TotalValue:        req.TotalValue,
		MonthlyValue:      req.MonthlyValue,
		PaymentTerms:      req.PaymentTerms,
		PaymentMethod:     req.PaymentMethod,
		DueDay:            req.DueDay,
		TypeData:          datatypes.JSON(req.TypeData),
		AdditionalClauses: req.AdditionalClauses,
		Notes:             req.Notes,
		ClientID:          req.ClientID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if c.Status == "" {
		c.Status = entity.StatusDraft
	}
	// Layouts were checked by the validator.
	c.StartDate, _ = time.Parse(contract.DateLayout, req.StartDate)
	c.EndDate = parseOptionalDate(req.EndDate)

	if apiErr := s.check(ctx, c); apiErr != nil {
		return nil, apiErr
	}

	if err := s.ContractRepo.Save(ctx, c); err != nil {
		log.Errorf("failed to save contract %s: %v", c.Number, err)
		return nil, apierror.InternalServerError
	}
	return s.reload(ctx, c)
}

func (s *ContractService) UpdateContract(ctx context.Context, id int64, req *contract.UpdateContractRequest) (*contract.ContractResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	c, apiErr := s.FindContract(ctx, id)
	if apiErr != nil {
		return nil, apiErr
	}

	set(&c.Number, req.Number)
	if req.Type != nil {
		c.Type = entity.ContractType(*req.Type)
	}
	if req.Status != nil {
		c.Status = entity.ContractStatus(*req.Status)
	}
	if req.StartDate != nil {
		c.StartDate, _ = time.Parse(contract.DateLayout, *req.StartDate)
	}
	if req.EndDate != nil {
		c.EndDate = parseOptionalDate(*req.EndDate)
	}
	set(&c.IndeterminateTerm, req.IndeterminateTerm)
	set(&c.TotalValue, req.TotalValue)
	set(&c.MonthlyValue, req.MonthlyValue)
	set(&c.PaymentTerms, req.PaymentTerms)
	set(&c.PaymentMethod, req.PaymentMethod)
	set(&c.DueDay, req.DueDay)
	if req.TypeData != nil {
		c.TypeData = datatypes.JSON(req.TypeData)
	}
	set(&c.AdditionalClauses, req.AdditionalClauses)
	set(&c.Notes, req.Notes)
	if req.ClientID != nil && *req.ClientID != c.ClientID {
		c.ClientID = *req.ClientID
		c.Client = nil
	}

	if apiErr := s.check(ctx, c); apiErr != nil {
		return nil, apiErr
	}
	c.UpdatedAt = utils.NowUTC()

	if err := s.ContractRepo.Save(ctx, c); err != nil {
		log.Errorf("failed to update contract %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return s.reload(ctx, c)
}

func (s *ContractService) DeleteContract(ctx context.Context, id int64) apierror.ErrorResponse {
	c, apiErr := s.FindContract(ctx, id)
	if apiErr != nil {
		return apiErr
	}

	if apiErr := s.Policy.CanDelete(c); apiErr != nil {
		return apiErr
	}

	if err := s.ContractRepo.Delete(ctx, c); err != nil {
		log.Errorf("failed to delete contract %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

// check enforces the rules the validator cannot express on its own.
func (s *ContractService) check(ctx context.Context, c *entity.Contract) apierror.ErrorResponse {
	problems := apierror.NewStructured(400)

	if c.TotalValue.IsNegative() {
		problems.Add("valor_total", "Value must not be negative")
	}
	if c.MonthlyValue.IsNegative() {
		problems.Add("valor_mensal", "Value must not be negative")
	}
	if c.IndeterminateTerm {
		// The end date is meaningless for an open-ended contract.
		c.EndDate = nil
	} else if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		problems.Add("data_fim", "Value must not be before the start date")
	}
	if len(c.TypeData) > 0 {
		if !json.Valid(c.TypeData) {
			problems.Add("dados_especificos", "Value must be valid JSON")
		} else if _, err := clause.DecodeTypeData(c.Type, c.TypeData); err != nil {
			problems.Add("dados_especificos", "Malformed type-specific data: "+err.Error())
		}
	}
	if !problems.Empty() {
		return problems
	}

	exists, err := s.ContractRepo.ExistsByNumber(ctx, c.Number, c.ID)
	if err != nil {
		log.Errorf("failed to check contract number %s: %v", c.Number, err)
		return apierror.InternalServerError
	}
	if exists {
		return apierror.DuplicateNumberError
	}

	client, err := s.ClientRepo.FindByID(ctx, c.ClientID)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", c.ClientID, err)
		return apierror.InternalServerError
	}
	if client == nil {
		return apierror.ClientNotFoundError
	}
	return nil
}

func (s *ContractService) reload(ctx context.Context, c *entity.Contract) (*contract.ContractResponse, apierror.ErrorResponse) {
	saved, apiErr := s.FindContract(ctx, c.ID)
	if apiErr != nil {
		return nil, apiErr
	}
	return toContractResponse(saved), nil
}

func parseOptionalDate(value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := time.Parse(contract.DateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

func toContractResponse(c *entity.Contract) *contract.ContractResponse {
	resp := &contract.ContractResponse{
		ID:                c.ID,
		Number:            c.Number,
		Type:              string(c.Type),
		Status:            string(c.Status),
		StartDate:         c.StartDate.Format(contract.DateLayout),
		IndeterminateTerm: c.IndeterminateTerm,
		TotalValue:        c.TotalValue,
		MonthlyValue:      c.MonthlyValue,
		PaymentTerms:      c.PaymentTerms,
		PaymentMethod:     c.PaymentMethod,
		DueDay:            c.DueDay,
		TypeData:          json.RawMessage(c.TypeData),
		AdditionalClauses: c.AdditionalClauses,
		Notes:             c.Notes,
		PDFURL:            c.PDFURL,
		ClientID:          c.ClientID,
		CreatedAt:         utils.FormatEpoch(c.CreatedAt),
		UpdatedAt:         utils.FormatEpoch(c.UpdatedAt),
	}
	if c.EndDate != nil {
		resp.EndDate = c.EndDate.Format(contract.DateLayout)
	}
	if c.Client != nil {
		resp.Client = toClientResponse(c.Client)
	}
	return resp
}
