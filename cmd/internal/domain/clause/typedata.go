package clause

import (
	"encoding/json"
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// TypeData is the type-specific bag of a contract. Each contract type has its
// own variant; every field is optional.
type TypeData interface {
	ContractType() entity.ContractType
}

var variants = map[entity.ContractType]func() TypeData{
	entity.ContractCalibration:        func() TypeData { return &CalibrationData{} },
	entity.ContractLoan:               func() TypeData { return &LoanData{} },
	entity.ContractMaintenance:        func() TypeData { return &MaintenanceData{} },
	entity.ContractSLA:                func() TypeData { return &SLAData{} },
	entity.ContractConsulting:         func() TypeData { return &ConsultingData{} },
	entity.ContractFleetManagement:    func() TypeData { return &FleetData{} },
	entity.ContractSupport:            func() TypeData { return &SupportData{} },
	entity.ContractValidation:         func() TypeData { return &ValidationData{} },
	entity.ContractNonDisclosure:      func() TypeData { return &NDAData{} },
	entity.ContractReverseEngineering: func() TypeData { return &ReverseEngineeringData{} },
	entity.ContractServiceProvision:   func() TypeData { return &ServiceProvisionData{} },
}

// DecodeTypeData decodes the stored JSON bag into the variant for t. Unknown
// tags return nil. Blank input returns the empty variant. Malformed input
// returns the empty variant together with the decode error, so callers can log
// it and keep going.
func DecodeTypeData(t entity.ContractType, raw []byte) (TypeData, error) {
	newVariant, ok := variants[t]
	if !ok {
		return nil, nil
	}

	data := newVariant()
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return data, nil
	}

	if err := json.Unmarshal(raw, data); err != nil {
		return newVariant(), fmt.Errorf("decode %s data: %w", t, err)
	}
	return data, nil
}

// variant extracts the concrete variant, falling back to its zero value when d
// is nil or of another type.
func variant[T any](d TypeData) *T {
	if v, ok := any(d).(*T); ok && v != nil {
		return v
	}
	return new(T)
}

// Equipment describes an instrument or machine listed in a contract.
type Equipment struct {
	Description  string          `json:"descricao"`
	Manufacturer string          `json:"fabricante"`
	Model        string          `json:"modelo"`
	Serial       string          `json:"numero_serie"`
	Tag          string          `json:"identificacao"`
	Range        string          `json:"faixa"`
	Quantity     int             `json:"quantidade"`
	Value        decimal.Decimal `json:"valor"`
}

func (e Equipment) String() string {
	parts := []string{or(e.Description, "equipamento sem descrição")}
	if v := strings.TrimSpace(e.Manufacturer); v != "" {
		parts = append(parts, "fabricante "+v)
	}
	if v := strings.TrimSpace(e.Model); v != "" {
		parts = append(parts, "modelo "+v)
	}
	if v := strings.TrimSpace(e.Serial); v != "" {
		parts = append(parts, "nº de série "+v)
	}
	if v := strings.TrimSpace(e.Tag); v != "" {
		parts = append(parts, "identificação "+v)
	}
	if v := strings.TrimSpace(e.Range); v != "" {
		parts = append(parts, "faixa "+v)
	}
	s := strings.Join(parts, ", ")
	if e.Quantity > 1 {
		s += fmt.Sprintf(" (%d unidades)", e.Quantity)
	}
	if e.Value.IsPositive() {
		s += ", valor de referência " + Money(e.Value)
	}
	return s
}

// equipmentItems lists equipment as lettered items, or returns the fallback
// paragraph when the list is empty.
func equipmentItems(list []Equipment, fallback string) []Node {
	if len(list) == 0 {
		return []Node{para(fallback)}
	}
	texts := make([]string, len(list))
	for i, e := range list {
		sep := ";"
		if i == len(list)-1 {
			sep = "."
		}
		texts[i] = e.String() + sep
	}
	return items(texts...)
}

// listItems letters plain strings with the same punctuation rule.
func listItems(list []string, fallback string) []Node {
	var clean []string
	for _, v := range list {
		if v = strings.TrimSpace(v); v != "" {
			clean = append(clean, strings.TrimRight(v, ".;"))
		}
	}
	if len(clean) == 0 {
		return []Node{para(fallback)}
	}
	for i := range clean {
		if i == len(clean)-1 {
			clean[i] += "."
		} else {
			clean[i] += ";"
		}
	}
	return items(clean...)
}

// SpecificSet builds the type-specific clauses of one contract type.
type SpecificSet func(TypeData) []Section

// specificSets maps each contract type to its clause set. The legacy
// service-provision tag keeps its own set; moving contracts from it to the
// calibration set is an explicit data change, never done here.
var specificSets = map[entity.ContractType]SpecificSet{
	entity.ContractCalibration:        func(d TypeData) []Section { return CalibrationClauses(variant[CalibrationData](d)) },
	entity.ContractLoan:               func(d TypeData) []Section { return LoanClauses(variant[LoanData](d)) },
	entity.ContractMaintenance:        func(d TypeData) []Section { return MaintenanceClauses(variant[MaintenanceData](d)) },
	entity.ContractSLA:                func(d TypeData) []Section { return SLAClauses(variant[SLAData](d)) },
	entity.ContractConsulting:         func(d TypeData) []Section { return ConsultingClauses(variant[ConsultingData](d)) },
	entity.ContractFleetManagement:    func(d TypeData) []Section { return FleetClauses(variant[FleetData](d)) },
	entity.ContractSupport:            func(d TypeData) []Section { return SupportClauses(variant[SupportData](d)) },
	entity.ContractValidation:         func(d TypeData) []Section { return ValidationClauses(variant[ValidationData](d)) },
	entity.ContractNonDisclosure:      func(d TypeData) []Section { return NDAClauses(variant[NDAData](d)) },
	entity.ContractReverseEngineering: func(d TypeData) []Section { return ReverseEngineeringClauses(variant[ReverseEngineeringData](d)) },
	entity.ContractServiceProvision:   func(d TypeData) []Section { return ServiceProvisionClauses(variant[ServiceProvisionData](d)) },
}

// Specific returns the type-specific clauses for t, or false when the type has
// no clause set.
func Specific(t entity.ContractType, data TypeData) ([]Section, bool) {
	set, ok := specificSets[t]
	if !ok {
		return nil, false
	}
	return set(data), true
}
