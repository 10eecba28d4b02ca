package entity

// CompanySettings is the persisted configuration row of the service provider.
// Only one logical row is expected; see repository.FindFirst.
type CompanySettings struct {
	ID                    int64  `gorm:"primaryKey"`
	LegalName             string `gorm:"column:razao_social"`
	TradeName             string `gorm:"column:nome_fantasia"`
	CNPJ                  string `gorm:"column:cnpj"`
	StateRegistration     string `gorm:"column:inscricao_estadual"`
	MunicipalRegistration string `gorm:"column:inscricao_municipal"`
	Street                string `gorm:"column:endereco"`
	Number                string `gorm:"column:numero"`
	Complement            string `gorm:"column:complemento"`
	District              string `gorm:"column:bairro"`
	City                  string `gorm:"column:cidade"`
	State                 string `gorm:"column:estado"`
	ZipCode               string `gorm:"column:cep"`
	Phone                 string `gorm:"column:telefone"`
	Email                 string `gorm:"column:email"`
	Website               string `gorm:"column:site"`
	AccreditationCode     string `gorm:"column:codigo_acreditacao"`
	TaxRegime             string `gorm:"column:regime_tributario"`
	RepresentativeName    string `gorm:"column:representante_nome"`
	RepresentativeRole    string `gorm:"column:representante_cargo"`
	RepresentativeCPF     string `gorm:"column:representante_cpf"`
	CreatedAt             int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt             int64  `gorm:"not null;autoUpdateTime:false"`
}

func (CompanySettings) TableName() string { return "configuracoes_empresa" }

// CompanyProfile is the normalized identity of the contracted party, the shape
// every clause template interpolates from.
type CompanyProfile struct {
	LegalName             string `json:"razaoSocial"`
	TradeName             string `json:"nomeFantasia"`
	CNPJ                  string `json:"cnpj"`
	StateRegistration     string `json:"inscricaoEstadual"`
	MunicipalRegistration string `json:"inscricaoMunicipal"`
	Street                string `json:"endereco"`
	Number                string `json:"numero"`
	Complement            string `json:"complemento"`
	District              string `json:"bairro"`
	City                  string `json:"cidade"`
	State                 string `json:"estado"`
	ZipCode               string `json:"cep"`
	Phone                 string `json:"telefone"`
	Email                 string `json:"email"`
	Website               string `json:"site"`
	AccreditationCode     string `json:"codigoAcreditacao"`
	TaxRegime             string `json:"regimeTributario"`
	RepresentativeName    string `json:"representanteNome"`
	RepresentativeRole    string `json:"representanteCargo"`
	RepresentativeCPF     string `json:"representanteCpf"`
}

// DefaultCompanyProfile is the one authoritative set of fallback values for the
// company identity. Callers get a copy, so mutating it is harmless.
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		LegalName:             "Metrolab Calibração e Metrologia Ltda",
		TradeName:             "Metrolab",
		CNPJ:                  "13.250.539/0001-40",
		StateRegistration:     "Isento",
		MunicipalRegistration: "Não informada",
		Street:                "Rua dos Instrumentos",
		Number:                "150",
		Complement:            "Sala 2",
		District:              "Distrito Industrial",
		City:                  "Campinas",
		State:                 "SP",
		ZipCode:               "13069-000",
		Phone:                 "(19) 3200-0000",
		Email:                 "contato@metrolab.com.br",
		Website:               "www.metrolab.com.br",
		AccreditationCode:     "CAL 0000",
		TaxRegime:             "Lucro Presumido",
		RepresentativeName:    "Representante Legal",
		RepresentativeRole:    "Sócio-Administrador",
		RepresentativeCPF:     "000.000.000-00",
	}
}

// Address returns the single-line street address, omitting blank parts.
func (p CompanyProfile) Address() string {
	return joinAddress(p.Street, p.Number, p.Complement, p.District, p.City, p.State, p.ZipCode)
}
