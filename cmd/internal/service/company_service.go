package service

import (
	"context"
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/utils"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CompanySettingsRepository interface {
	FindFirst(ctx context.Context) (*entity.CompanySettings, error)
	Save(ctx context.Context, settings *entity.CompanySettings) error
}

// profileField binds one storage column to its profile field. Aliases are
// compared after lowercasing and dropping underscores, so "razao_social" and
// "razaoSocial" are the same key.
type profileField struct {
	column   string
	aliases  []string
	rule     string
	settings func(*entity.CompanySettings) *string
	profile  func(*entity.CompanyProfile) *string
}

var profileFields = []profileField{
	{"razao_social", []string{"nome", "legalname", "name"}, "max=200",
		func(s *entity.CompanySettings) *string { return &s.LegalName },
		func(p *entity.CompanyProfile) *string { return &p.LegalName }},
	{"nome_fantasia", []string{"fantasia", "tradename"}, "max=200",
		func(s *entity.CompanySettings) *string { return &s.TradeName },
		func(p *entity.CompanyProfile) *string { return &p.TradeName }},
	{"cnpj", nil, "omitempty,cnpj",
		func(s *entity.CompanySettings) *string { return &s.CNPJ },
		func(p *entity.CompanyProfile) *string { return &p.CNPJ }},
	{"inscricao_estadual", []string{"ie", "stateregistration"}, "max=30",
		func(s *entity.CompanySettings) *string { return &s.StateRegistration },
		func(p *entity.CompanyProfile) *string { return &p.StateRegistration }},
	{"inscricao_municipal", []string{"im", "municipalregistration"}, "max=30",
		func(s *entity.CompanySettings) *string { return &s.MunicipalRegistration },
		func(p *entity.CompanyProfile) *string { return &p.MunicipalRegistration }},
	{"endereco", []string{"logradouro", "rua", "street"}, "max=200",
		func(s *entity.CompanySettings) *string { return &s.Street },
		func(p *entity.CompanyProfile) *string { return &p.Street }},
	{"numero", []string{"number"}, "max=20",
		func(s *entity.CompanySettings) *string { return &s.Number },
		func(p *entity.CompanyProfile) *string { return &p.Number }},
	{"complemento", []string{"complement"}, "max=100",
		func(s *entity.CompanySettings) *string { return &s.Complement },
		func(p *entity.CompanyProfile) *string { return &p.Complement }},
	{"bairro", []string{"district"}, "max=100",
		func(s *entity.CompanySettings) *string { return &s.District },
		func(p *entity.CompanyProfile) *string { return &p.District }},
	{"cidade", []string{"municipio", "city"}, "max=100",
		func(s *entity.CompanySettings) *string { return &s.City },
		func(p *entity.CompanyProfile) *string { return &p.City }},
	{"estado", []string{"uf", "state"}, "omitempty,uf",
		func(s *entity.CompanySettings) *string { return &s.State },
		func(p *entity.CompanyProfile) *string { return &p.State }},
	{"cep", []string{"zipcode"}, "max=10",
		func(s *entity.CompanySettings) *string { return &s.ZipCode },
		func(p *entity.CompanyProfile) *string { return &p.ZipCode }},
	{"telefone", []string{"fone", "phone"}, "max=30",
		func(s *entity.CompanySettings) *string { return &s.Phone },
		func(p *entity.CompanyProfile) *string { return &p.Phone }},
	{"email", nil, "omitempty,email",
		func(s *entity.CompanySettings) *string { return &s.Email },
		func(p *entity.CompanyProfile) *string { return &p.Email }},
	{"site", []string{"website"}, "max=200",
		func(s *entity.CompanySettings) *string { return &s.Website },
		func(p *entity.CompanyProfile) *string { return &p.Website }},
	{"codigo_acreditacao", []string{"acreditacao", "accreditationcode"}, "max=50",
		func(s *entity.CompanySettings) *string { return &s.AccreditationCode },
		func(p *entity.CompanyProfile) *string { return &p.AccreditationCode }},
	{"regime_tributario", []string{"taxregime"}, "max=100",
		func(s *entity.CompanySettings) *string { return &s.TaxRegime },
		func(p *entity.CompanyProfile) *string { return &p.TaxRegime }},
	{"representante_nome", []string{"representante", "representativename"}, "max=200",
		func(s *entity.CompanySettings) *string { return &s.RepresentativeName },
		func(p *entity.CompanyProfile) *string { return &p.RepresentativeName }},
	{"representante_cargo", []string{"cargo", "representativerole"}, "max=100",
		func(s *entity.CompanySettings) *string { return &s.RepresentativeRole },
		func(p *entity.CompanyProfile) *string { return &p.RepresentativeRole }},
	{"representante_cpf", []string{"representativecpf"}, "omitempty,cpf",
		func(s *entity.CompanySettings) *string { return &s.RepresentativeCPF },
		func(p *entity.CompanyProfile) *string { return &p.RepresentativeCPF }},
}

var fieldsByKey = indexProfileFields()

func indexProfileFields() map[string]*profileField {
	index := make(map[string]*profileField)
	for i := range profileFields {
		f := &profileFields[i]
		index[fieldKey(f.column)] = f
		for _, alias := range f.aliases {
			index[fieldKey(alias)] = f
		}
	}
	return index
}

func fieldKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "")
}

type CompanyService struct {
	SettingsRepo CompanySettingsRepository
	Defaults     entity.CompanyProfile
	Validate     *validator.Validate
}

func NewCompanyService(repo CompanySettingsRepository, defaults entity.CompanyProfile, validate *validator.Validate) *CompanyService {
	return &CompanyService{
		SettingsRepo: repo,
		Defaults:     defaults,
		Validate:     validate,
	}
}

// ResolveCompanyProfile never fails: a fetch error or a missing row yields the
// defaults, and every blank column falls back to its own default.
func (s *CompanyService) ResolveCompanyProfile(ctx context.Context) entity.CompanyProfile {
	settings, err := s.SettingsRepo.FindFirst(ctx)
	if err != nil {
		log.Warnf("failed to fetch company settings, using defaults: %v", err)
		return s.Defaults
	}

	if settings == nil {
		return s.Defaults
	}
	return s.toProfile(settings)
}

// CompanyProfile adapts the resolver for the document assembler. It only
// fails when ctx is already done.
func (s *CompanyService) CompanyProfile(ctx context.Context) (entity.CompanyProfile, error) {
	if err := ctx.Err(); err != nil {
		return entity.CompanyProfile{}, err
	}
	return s.ResolveCompanyProfile(ctx), nil
}

func (s *CompanyService) toProfile(settings *entity.CompanySettings) entity.CompanyProfile {
	profile := s.Defaults
	for i := range profileFields {
		f := &profileFields[i]
		if v := strings.TrimSpace(*f.settings(settings)); v != "" {
			*f.profile(&profile) = v
		}
	}
	return profile
}

// PersistCompanyProfile merges the given fields into the configuration row,
// creating it when absent. Keys may use the storage names or the profile's
// JSON names; unknown keys are ignored.
func (s *CompanyService) PersistCompanyProfile(ctx context.Context, fields map[string]any) (*entity.CompanyProfile, apierror.ErrorResponse) {
	values, apiErr := s.normalize(fields)
	if apiErr != nil {
		return nil, apiErr
	}

	settings, err := s.SettingsRepo.FindFirst(ctx)
	if err != nil {
		log.Errorf("failed to fetch company settings: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	if settings == nil {
		settings = &entity.CompanySettings{CreatedAt: now}
	}
	for f, v := range values {
		*f.settings(settings) = v
	}
	settings.UpdatedAt = now

	if err := s.SettingsRepo.Save(ctx, settings); err != nil {
		log.Errorf("failed to save company settings: %v", err)
		return nil, apierror.InternalServerError
	}

	profile := s.toProfile(settings)
	return &profile, nil
}

func (s *CompanyService) normalize(fields map[string]any) (map[*profileField]string, apierror.ErrorResponse) {
	values := make(map[*profileField]string, len(fields))
	problems := apierror.NewStructured(400)

	for key, raw := range fields {
		f, ok := fieldsByKey[fieldKey(key)]
		if !ok {
			log.Debugf("ignoring unknown company field %q", key)
			continue
		}

		v, ok := stringify(raw)
		if !ok {
			problems.Add(f.column, "Value must be a string")
			continue
		}
		if s.Validate != nil {
			if err := s.Validate.Var(v, f.rule); err != nil {
				problems.Add(f.column, "Invalid value provided")
				continue
			}
		}
		values[f] = v
	}

	if !problems.Empty() {
		return nil, problems
	}
	if len(values) == 0 {
		return nil, apierror.EmptyProfileUpdateError
	}
	return values, nil
}

// stringify accepts strings, numbers and null (stored as empty).
func stringify(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return strings.TrimSpace(v), true
	case float64:
		return fmt.Sprintf("%.0f", v), v == float64(int64(v))
	case int, int64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}
