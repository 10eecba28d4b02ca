package contract

type ClientRequest struct {
	PersonType         string `json:"tipo_pessoa" validate:"required,persontype"`
	LegalName          string `json:"razao_social" validate:"required,min=2,max=200"`
	TradeName          string `json:"nome_fantasia" validate:"max=200"`
	CNPJ               string `json:"cnpj" validate:"omitempty,cnpj"`
	CPF                string `json:"cpf" validate:"omitempty,cpf"`
	StateRegistration  string `json:"inscricao_estadual" validate:"max=30"`
	Street             string `json:"endereco" validate:"max=200"`
	Number             string `json:"numero" validate:"max=20"`
	Complement         string `json:"complemento" validate:"max=100"`
	District           string `json:"bairro" validate:"max=100"`
	City               string `json:"cidade" validate:"max=100"`
	State              string `json:"estado" validate:"omitempty,uf"`
	ZipCode            string `json:"cep" validate:"max=10"`
	Phone              string `json:"telefone" validate:"max=30"`
	Email              string `json:"email" validate:"omitempty,email"`
	RepresentativeName string `json:"representante_nome" validate:"max=200"`
	RepresentativeCPF  string `json:"representante_cpf" validate:"omitempty,cpf"`
}

// UpdateClientRequest only touches the fields that are present.
type UpdateClientRequest struct {
	PersonType         *string `json:"tipo_pessoa" validate:"omitempty,persontype"`
	LegalName          *string `json:"razao_social" validate:"omitempty,min=2,max=200"`
	TradeName          *string `json:"nome_fantasia" validate:"omitempty,max=200"`
	CNPJ               *string `json:"cnpj" validate:"omitempty,cnpj"`
	CPF                *string `json:"cpf" validate:"omitempty,cpf"`
	StateRegistration  *string `json:"inscricao_estadual" validate:"omitempty,max=30"`
	Street             *string `json:"endereco" validate:"omitempty,max=200"`
	Number             *string `json:"numero" validate:"omitempty,max=20"`
	Complement         *string `json:"complemento" validate:"omitempty,max=100"`
	District           *string `json:"bairro" validate:"omitempty,max=100"`
	City               *string `json:"cidade" validate:"omitempty,max=100"`
	State              *string `json:"estado" validate:"omitempty,uf"`
	ZipCode            *string `json:"cep" validate:"omitempty,max=10"`
	Phone              *string `json:"telefone" validate:"omitempty,max=30"`
	Email              *string `json:"email" validate:"omitempty,email"`
	RepresentativeName *string `json:"representante_nome" validate:"omitempty,max=200"`
	RepresentativeCPF  *string `json:"representante_cpf" validate:"omitempty,cpf"`
}

type ClientResponse struct {
	ID                 int64  `json:"id"`
	PersonType         string `json:"tipo_pessoa"`
	LegalName          string `json:"razao_social"`
	TradeName          string `json:"nome_fantasia,omitempty"`
	CNPJ               string `json:"cnpj,omitempty"`
	CPF                string `json:"cpf,omitempty"`
	StateRegistration  string `json:"inscricao_estadual,omitempty"`
	Street             string `json:"endereco,omitempty"`
	Number             string `json:"numero,omitempty"`
	Complement         string `json:"complemento,omitempty"`
	District           string `json:"bairro,omitempty"`
	City               string `json:"cidade,omitempty"`
	State              string `json:"estado,omitempty"`
	ZipCode            string `json:"cep,omitempty"`
	Phone              string `json:"telefone,omitempty"`
	Email              string `json:"email,omitempty"`
	RepresentativeName string `json:"representante_nome,omitempty"`
	RepresentativeCPF  string `json:"representante_cpf,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}
