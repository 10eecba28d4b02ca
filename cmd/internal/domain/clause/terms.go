package clause

import (
	"time"

	"metrocontratos/cmd/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Fixed commercial policy baked into the general clauses.
const (
	LateFeePercent          = 2
	LateInterestPercent     = 1
	TerminationNoticeDays   = 30
	TerminationPenaltyPct   = 20
	ConfidentialityYears    = 5
	RecordRetentionYears    = 5
	WarrantyDays            = 90
	DefaultPaymentDays      = 30
	DefaultFixedTermMonths  = 12
	DefaultComplaintDays    = 10
	DefaultReadjustmentRate = "IPCA/IBGE"
)

// Terms carries everything the general clauses interpolate. ServiceDescription,
// StartDate and TotalValue are always supplied by the assembler; every other
// field may be zero and degrades to a fallback phrase.
type Terms struct {
	ServiceDescription string
	StartDate          time.Time
	EndDate            *time.Time
	Indeterminate      bool
	TotalValue         decimal.Decimal
	MonthlyValue       decimal.Decimal
	PaymentTerms       string
	PaymentMethod      string
	DueDay             int

	Company entity.CompanyProfile
	Client  entity.Client
}

var serviceDescriptions = map[entity.ContractType]string{
	entity.ContractCalibration:        "calibração de instrumentos de medição",
	entity.ContractLoan:               "comodato de equipamentos",
	entity.ContractMaintenance:        "manutenção preventiva e corretiva de equipamentos",
	entity.ContractSLA:                "atendimento técnico com níveis de serviço acordados (SLA)",
	entity.ContractConsulting:         "consultoria técnica em metrologia e sistemas da qualidade",
	entity.ContractFleetManagement:    "gestão do parque de instrumentos de medição",
	entity.ContractSupport:            "suporte técnico especializado",
	entity.ContractValidation:         "validação e qualificação de equipamentos, sistemas e processos",
	entity.ContractNonDisclosure:      "troca de informações confidenciais",
	entity.ContractReverseEngineering: "engenharia reversa de peças e equipamentos",
	entity.ContractServiceProvision:   "prestação de serviços técnicos de metrologia",
}

var contractTitles = map[entity.ContractType]string{
	entity.ContractCalibration:        "CONTRATO DE PRESTAÇÃO DE SERVIÇOS DE CALIBRAÇÃO",
	entity.ContractLoan:               "CONTRATO DE COMODATO DE EQUIPAMENTOS",
	entity.ContractMaintenance:        "CONTRATO DE PRESTAÇÃO DE SERVIÇOS DE MANUTENÇÃO",
	entity.ContractSLA:                "CONTRATO DE NÍVEL DE SERVIÇO (SLA)",
	entity.ContractConsulting:         "CONTRATO DE PRESTAÇÃO DE SERVIÇOS DE CONSULTORIA",
	entity.ContractFleetManagement:    "CONTRATO DE GESTÃO DE PARQUE DE INSTRUMENTOS",
	entity.ContractSupport:            "CONTRATO DE PRESTAÇÃO DE SERVIÇOS DE SUPORTE TÉCNICO",
	entity.ContractValidation:         "CONTRATO DE PRESTAÇÃO DE SERVIÇOS DE VALIDAÇÃO",
	entity.ContractNonDisclosure:      "ACORDO DE CONFIDENCIALIDADE",
	entity.ContractReverseEngineering: "CONTRATO DE PRESTAÇÃO DE SERVIÇOS DE ENGENHARIA REVERSA",
	entity.ContractServiceProvision:   "CONTRATO DE PRESTAÇÃO DE SERVIÇOS",
}

// Title is the document heading for a contract type, defaulting to the
// generic service-provision title.
func Title(t entity.ContractType) string {
	if title, ok := contractTitles[t]; ok {
		return title
	}
	return "CONTRATO DE PRESTAÇÃO DE SERVIÇOS"
}

// ServiceDescription resolves the human-readable description of a contract
// type. Unknown tags report false and an empty description.
func ServiceDescription(t entity.ContractType) (string, bool) {
	d, ok := serviceDescriptions[t]
	return d, ok
}

func (t Terms) service() string {
	return or(t.ServiceDescription, "serviços técnicos especializados descritos neste instrumento")
}

func (t Terms) start() string {
	if t.StartDate.IsZero() {
		return "a data de sua assinatura"
	}
	return Date(t.StartDate)
}
