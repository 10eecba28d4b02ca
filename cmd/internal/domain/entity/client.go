package entity

import "strings"

type PersonType string

const (
	PersonLegal      PersonType = "juridica"
	PersonIndividual PersonType = "fisica"
)

// Client is the contracting party. Exactly one of CNPJ or CPF is populated,
// selected by PersonType.
type Client struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement:false"`
	PersonType         PersonType `gorm:"column:tipo_pessoa;not null;default:juridica"`
	LegalName          string     `gorm:"column:razao_social;not null"`
	TradeName          string     `gorm:"column:nome_fantasia"`
	CNPJ               string     `gorm:"column:cnpj;index"`
	CPF                string     `gorm:"column:cpf;index"`
	StateRegistration  string     `gorm:"column:inscricao_estadual"`
	Street             string     `gorm:"column:endereco"`
	Number             string     `gorm:"column:numero"`
	Complement         string     `gorm:"column:complemento"`
	District           string     `gorm:"column:bairro"`
	City               string     `gorm:"column:cidade"`
	State              string     `gorm:"column:estado"`
	ZipCode            string     `gorm:"column:cep"`
	Phone              string     `gorm:"column:telefone"`
	Email              string     `gorm:"column:email"`
	RepresentativeName string     `gorm:"column:representante_nome"`
	RepresentativeCPF  string     `gorm:"column:representante_cpf"`
	CreatedAt          int64      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt          int64      `gorm:"not null;autoUpdateTime:false"`
}

func (Client) TableName() string { return "clientes" }

// IsIndividual reports whether the client is a natural person. Anything other
// than "fisica" is handled as a legal entity.
func (c *Client) IsIndividual() bool {
	return c.PersonType == PersonIndividual
}

// TaxID returns the document number matching the person type.
func (c *Client) TaxID() string {
	if c.IsIndividual() {
		return c.CPF
	}
	return c.CNPJ
}

// TaxIDLabel is "CPF" for individuals and "CNPJ" otherwise.
func (c *Client) TaxIDLabel() string {
	if c.IsIndividual() {
		return "CPF"
	}
	return "CNPJ"
}

func (c *Client) Address() string {
	return joinAddress(c.Street, c.Number, c.Complement, c.District, c.City, c.State, c.ZipCode)
}

// joinAddress formats "street, number, complement, district, city/UF, CEP zip".
func joinAddress(street, number, complement, district, city, state, zip string) string {
	var parts []string
	for _, p := range []string{street, number, complement, district} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	city, state = strings.TrimSpace(city), strings.TrimSpace(state)
	switch {
	case city != "" && state != "":
		parts = append(parts, city+"/"+state)
	case city != "":
		parts = append(parts, city)
	case state != "":
		parts = append(parts, state)
	}

	if zip = strings.TrimSpace(zip); zip != "" {
		parts = append(parts, "CEP "+zip)
	}
	return strings.Join(parts, ", ")
}
