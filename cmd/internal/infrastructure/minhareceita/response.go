package minhareceita

import (
	"strings"

	"metrocontratos/cmd/internal/domain/entity"
)

type companyResponse struct {
	CNPJ               string `json:"cnpj"`
	LegalName          string `json:"razao_social"`
	TradeName          string `json:"nome_fantasia"`
	LegalNature        string `json:"natureza_juridica"`
	RegistrationStatus string `json:"descricao_situacao_cadastral"`

	AddressType         string `json:"descricao_tipo_de_logradouro"`
	AddressStreetName   string `json:"logradouro"`
	AddressNumber       string `json:"numero"`
	AddressComplement   string `json:"complemento"`
	AddressNeighborhood string `json:"bairro"`
	AddressZipCode      string `json:"cep"`
	AddressCity         string `json:"municipio"`
	AddressRegion       string `json:"uf"`

	Email string `json:"email"`
	Phone string `json:"ddd_telefone_1"`
}

func (c *companyResponse) ToDomain() *entity.RegistryCompany {
	return &entity.RegistryCompany{
		CNPJ:                c.CNPJ,
		LegalName:           c.LegalName,
		TradeName:           c.TradeName,
		LegalNature:         c.LegalNature,
		RegStatus:           translateStatus(c.RegistrationStatus),
		AddressType:         c.AddressType,
		AddressStreetName:   c.AddressStreetName,
		AddressNumber:       c.AddressNumber,
		AddressComplement:   c.AddressComplement,
		AddressNeighborhood: c.AddressNeighborhood,
		AddressZipCode:      c.AddressZipCode,
		AddressCity:         c.AddressCity,
		AddressRegion:       c.AddressRegion,
		Email:               strings.ToLower(c.Email),
		Phone:               c.Phone,
		Found:               true,
	}
}

func translateStatus(status string) entity.RegStatus {
	switch strings.ToUpper(status) {
	case "ATIVA":
		return entity.StatusActive
	case "BAIXADA":
		return entity.StatusClosed
	case "SUSPENSA":
		return entity.StatusSuspended
	case "INAPTA":
		return entity.StatusUnfit
	default:
		return entity.StatusUnknown
	}
}
