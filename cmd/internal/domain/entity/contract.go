package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ContractType string

const (
	ContractCalibration        ContractType = "calibracao"
	ContractLoan               ContractType = "comodato"
	ContractMaintenance        ContractType = "manutencao"
	ContractSLA                ContractType = "sla"
	ContractConsulting         ContractType = "consultoria"
	ContractFleetManagement    ContractType = "gestao_frota"
	ContractSupport            ContractType = "suporte"
	ContractValidation         ContractType = "validacao"
	ContractNonDisclosure      ContractType = "confidencialidade"
	ContractReverseEngineering ContractType = "engenharia_reversa"

	// ContractServiceProvision is the legacy generic tag. Contracts stored with
	// it keep rendering with the legacy clause set.
	ContractServiceProvision ContractType = "prestacao_servicos"
)

// ContractTypes lists every accepted tag, legacy included.
var ContractTypes = []ContractType{
	ContractCalibration,
	ContractLoan,
	ContractMaintenance,
	ContractSLA,
	ContractConsulting,
	ContractFleetManagement,
	ContractSupport,
	ContractValidation,
	ContractNonDisclosure,
	ContractReverseEngineering,
	ContractServiceProvision,
}

type ContractStatus string

const (
	StatusDraft     ContractStatus = "rascunho"
	StatusInForce   ContractStatus = "ativo"
	StatusOnHold    ContractStatus = "suspenso"
	StatusFinished  ContractStatus = "encerrado"
	StatusCancelled ContractStatus = "cancelado"
)

var ContractStatuses = []ContractStatus{
	StatusDraft,
	StatusInForce,
	StatusOnHold,
	StatusFinished,
	StatusCancelled,
}

type Contract struct {
	ID                int64           `gorm:"primaryKey;autoIncrement:false"`
	Number            string          `gorm:"column:numero_contrato;uniqueIndex;not null"`
	Type              ContractType    `gorm:"column:tipo_contrato;index;not null"`
	Status            ContractStatus  `gorm:"column:status;index;not null;default:rascunho"`
	StartDate         time.Time       `gorm:"column:data_inicio;type:date"`
	EndDate           *time.Time      `gorm:"column:data_fim;type:date"`
	IndeterminateTerm bool            `gorm:"column:prazo_indeterminado;not null;default:false"`
	TotalValue        decimal.Decimal `gorm:"column:valor_total;type:decimal(14,2)"`
	MonthlyValue      decimal.Decimal `gorm:"column:valor_mensal;type:decimal(14,2)"`
	PaymentTerms      string          `gorm:"column:condicoes_pagamento"`
	PaymentMethod     string          `gorm:"column:forma_pagamento"`
	DueDay            int             `gorm:"column:dia_vencimento"`
	TypeData          datatypes.JSON  `gorm:"column:dados_especificos"`
	AdditionalClauses string          `gorm:"column:clausulas_adicionais"`
	Notes             string          `gorm:"column:observacoes"`
	PDFURL            string          `gorm:"column:pdf_url"`
	ClientID          int64           `gorm:"column:cliente_id;index;not null"`
	CreatedAt         int64           `gorm:"not null;autoCreateTime:false"`
	UpdatedAt         int64           `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Client *Client `gorm:"foreignKey:ClientID;references:ID"`
}

func (Contract) TableName() string { return "contratos" }

func (c *Contract) IsDraft() bool {
	return c.Status == StatusDraft
}
