package validators

import (
	"reflect"
	"regexp"
	"slices"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var (
	hasSpaces = regexp.MustCompile(`\s+`)

	states = []string{
		"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG", "PA",
		"PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
	}
)

// Register adds every custom tag to v and reports fields by their JSON name.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)

	tags := map[string]validator.Func{
		"cnpj":           CNPJ,
		"cpf":            CPF,
		"uf":             UF,
		"contracttype":   ContractType,
		"contractstatus": ContractStatus,
		"persontype":     PersonType,
		"nowhitespaces":  NoWhiteSpaces,
		"nodupes":        NoDupes,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func stringValue(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return "", false
	}
	return field.String(), true
}

// CNPJ accepts both masked and digits-only forms.
func CNPJ(fl validator.FieldLevel) bool {
	val, ok := stringValue(fl)
	return ok && utils.IsCNPJValid(utils.OnlyDigits(val))
}

func CPF(fl validator.FieldLevel) bool {
	val, ok := stringValue(fl)
	return ok && utils.IsCPFValid(utils.OnlyDigits(val))
}

func UF(fl validator.FieldLevel) bool {
	val, ok := stringValue(fl)
	return ok && slices.Contains(states, strings.ToUpper(val))
}

func ContractType(fl validator.FieldLevel) bool {
	val, ok := stringValue(fl)
	return ok && slices.Contains(entity.ContractTypes, entity.ContractType(val))
}

func ContractStatus(fl validator.FieldLevel) bool {
	val, ok := stringValue(fl)
	return ok && slices.Contains(entity.ContractStatuses, entity.ContractStatus(val))
}

func PersonType(fl validator.FieldLevel) bool {
	val, ok := stringValue(fl)
	return ok && (entity.PersonType(val) == entity.PersonLegal || entity.PersonType(val) == entity.PersonIndividual)
}

// NoWhiteSpaces returns false if the string contains any whitespace (rejecting the user input).
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	str, ok := stringValue(fl)
	if !ok {
		return false
	}
	return !hasSpaces.MatchString(str)
}

func NoDupes(fl validator.FieldLevel) bool {
	slice := fl.Field()
	if slice.Kind() != reflect.Slice {
		log.Warnf("validator 'nodupes' applied to non-slice type: %s\n", slice.Kind().String())
		return false
	}

	length := slice.Len()
	seen := make(map[any]bool, length)
	for i := 0; i < length; i++ {
		val := slice.Index(i).Interface()
		if _, exists := seen[val]; exists {
			return false
		}
		seen[val] = true
	}
	return true
}
