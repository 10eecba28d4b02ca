package contract

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of every contract date.
const DateLayout = "2006-01-02"

type ContractRequest struct {
	Number            string          `json:"numero_contrato" validate:"required,max=50,nowhitespaces"`
	Type              string          `json:"tipo_contrato" validate:"required,contracttype"`
	Status            string          `json:"status" validate:"omitempty,contractstatus"`
	StartDate         string          `json:"data_inicio" validate:"required,datetime=2006-01-02"`
	EndDate           string          `json:"data_fim" validate:"omitempty,datetime=2006-01-02"`
	IndeterminateTerm bool            `json:"prazo_indeterminado"`
	TotalValue        decimal.Decimal `json:"valor_total"`
	MonthlyValue      decimal.Decimal `json:"valor_mensal"`
	PaymentTerms      string          `json:"condicoes_pagamento" validate:"max=500"`
	PaymentMethod     string          `json:"forma_pagamento" validate:"max=100"`
	DueDay            int             `json:"dia_vencimento" validate:"gte=0,lte=31"`
	TypeData          json.RawMessage `json:"dados_especificos"`
	AdditionalClauses string          `json:"clausulas_adicionais" validate:"max=20000"`
	Notes             string          `json:"observacoes" validate:"max=5000"`
	ClientID          int64           `json:"cliente_id" validate:"required,gt=0"`
}

// UpdateContractRequest only touches the fields that are present.
type UpdateContractRequest struct {
	Number            *string          `json:"numero_contrato" validate:"omitempty,max=50,nowhitespaces"`
	Type              *string          `json:"tipo_contrato" validate:"omitempty,contracttype"`
	Status            *string          `json:"status" validate:"omitempty,contractstatus"`
	StartDate         *string          `json:"data_inicio" validate:"omitempty,datetime=2006-01-02"`
	EndDate           *string          `json:"data_fim" validate:"omitempty,datetime=2006-01-02"`
	IndeterminateTerm *bool            `json:"prazo_indeterminado"`
	TotalValue        *decimal.Decimal `json:"valor_total"`
	MonthlyValue      *decimal.Decimal `json:"valor_mensal"`
	PaymentTerms      *string          `json:"condicoes_pagamento" validate:"omitempty,max=500"`
	PaymentMethod     *string          `json:"forma_pagamento" validate:"omitempty,max=100"`
	DueDay            *int             `json:"dia_vencimento" validate:"omitempty,gte=0,lte=31"`
	TypeData          json.RawMessage  `json:"dados_especificos"`
	AdditionalClauses *string          `json:"clausulas_adicionais" validate:"omitempty,max=20000"`
	Notes             *string          `json:"observacoes" validate:"omitempty,max=5000"`
	ClientID          *int64           `json:"cliente_id" validate:"omitempty,gt=0"`
}

type ContractResponse struct {
	ID                int64           `json:"id"`
	Number            string          `json:"numero_contrato"`
	Type              string          `json:"tipo_contrato"`
	Status            string          `json:"status"`
	StartDate         string          `json:"data_inicio"`
	EndDate           string          `json:"data_fim,omitempty"`
	IndeterminateTerm bool            `json:"prazo_indeterminado"`
	TotalValue        decimal.Decimal `json:"valor_total"`
	MonthlyValue      decimal.Decimal `json:"valor_mensal"`
	PaymentTerms      string          `json:"condicoes_pagamento,omitempty"`
	PaymentMethod     string          `json:"forma_pagamento,omitempty"`
	DueDay            int             `json:"dia_vencimento,omitempty"`
	TypeData          json.RawMessage `json:"dados_especificos,omitempty"`
	AdditionalClauses string          `json:"clausulas_adicionais,omitempty"`
	Notes             string          `json:"observacoes,omitempty"`
	PDFURL            string          `json:"pdf_url,omitempty"`
	ClientID          int64           `json:"cliente_id"`
	Client            *ClientResponse `json:"cliente,omitempty"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}
