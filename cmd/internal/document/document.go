package document

import (
	"strings"

	"metrocontratos/cmd/internal/domain/clause"
	"metrocontratos/cmd/internal/domain/entity"
)

// Document is the fully assembled contract, in layout order. It is the
// intermediate form consumed by both the text export and the PDF renderer.
type Document struct {
	Title    string
	Number   string
	Status   entity.ContractStatus
	Company  entity.CompanyProfile
	Preamble clause.Section

	// Sections hold numbered clause titles ("CLÁUSULA PRIMEIRA – DO OBJETO").
	Sections []clause.Section

	ClosingText string
	PlaceDate   string
	Signatures  []clause.SignatureBlock
	Witnesses   []string
}

// SignatureRule is the line drawn above each signature block in text form.
const SignatureRule = "________________________________________"

// Text renders the document as plain text.
func (d *Document) Text() string {
	var b strings.Builder
	b.WriteString(d.Title)
	b.WriteString("\n")
	if d.Number != "" {
		b.WriteString("Contrato nº ")
		b.WriteString(d.Number)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(d.Preamble.String())

	for _, s := range d.Sections {
		b.WriteString("\n\n")
		b.WriteString(s.String())
	}

	b.WriteString("\n\n")
	b.WriteString(d.ClosingText)
	b.WriteString("\n\n")
	b.WriteString(d.PlaceDate)

	for _, sig := range d.Signatures {
		b.WriteString("\n\n\n")
		b.WriteString(SignatureRule)
		for _, line := range sig.Lines() {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}

	for _, w := range d.Witnesses {
		b.WriteString("\n\n\n")
		b.WriteString(SignatureRule)
		b.WriteString("\n")
		b.WriteString(w)
	}
	b.WriteString("\n")
	return b.String()
}
