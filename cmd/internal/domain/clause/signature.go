package clause

import (
	"fmt"
	"strings"
	"time"

	"metrocontratos/cmd/internal/domain/entity"
)

const (
	RoleClient     = "CONTRATANTE"
	RoleContracted = "CONTRATADA"

	// WitnessCount is the number of blank witness lines printed after the
	// parties' signatures.
	WitnessCount = 2

	// CopyCount is the number of signed copies the closing text declares.
	CopyCount = 2
)

// SignatureBlock is one party's signature area: a rule, the name, the tax ID
// line and the role.
type SignatureBlock struct {
	Name  string
	TaxID string
	Role  string
}

func (s SignatureBlock) Lines() []string {
	return []string{s.Name, s.TaxID, s.Role}
}

func CompanySignature(p entity.CompanyProfile) SignatureBlock {
	return SignatureBlock{
		Name:  or(p.LegalName, "(razão social não informada)"),
		TaxID: "CNPJ: " + or(p.CNPJ, "(não informado)"),
		Role:  RoleContracted,
	}
}

// ClientSignature prints "CPF:" for individuals and "CNPJ:" otherwise.
func ClientSignature(c entity.Client) SignatureBlock {
	return SignatureBlock{
		Name:  or(c.LegalName, "(nome não informado)"),
		TaxID: c.TaxIDLabel() + ": " + or(c.TaxID(), "(não informado)"),
		Role:  RoleClient,
	}
}

// Closing is the final paragraph and the place/date line. The date is the one
// passed in, usually the invocation time.
func Closing(p entity.CompanyProfile, now time.Time) (string, string) {
	text := fmt.Sprintf("E, por estarem assim justas e contratadas, as partes assinam o presente instrumento em %s vias de igual teor e forma, na presença das testemunhas abaixo.", countFeminine(CopyCount))

	place := strings.TrimSpace(p.City)
	if uf := strings.TrimSpace(p.State); place != "" && uf != "" {
		place += "/" + uf
	}
	if place == "" {
		return text, LongDate(now) + "."
	}
	return text, place + ", " + LongDate(now) + "."
}

// WitnessLines returns the labels printed under each blank witness line.
func WitnessLines() []string {
	lines := make([]string, WitnessCount)
	for i := range lines {
		lines[i] = fmt.Sprintf("Testemunha %d - Nome: ______________________ CPF: ______________", i+1)
	}
	return lines
}
