package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"metrocontratos/cmd/internal/domain/clause"
	"metrocontratos/cmd/internal/domain/entity"

	"github.com/labstack/gommon/log"
)

// ErrProfileUnavailable wraps a failure of the company profile source. It is
// the only error Assemble returns.
var ErrProfileUnavailable = errors.New("company profile unavailable")

// ProfileSource supplies the contracted party's identity.
type ProfileSource interface {
	CompanyProfile(ctx context.Context) (entity.CompanyProfile, error)
}

type Assembler struct {
	Profiles ProfileSource
	Now      func() time.Time
}

func NewAssembler(profiles ProfileSource) *Assembler {
	return &Assembler{Profiles: profiles, Now: time.Now}
}

// Assemble resolves the company profile and builds the document for c. The
// client is taken from c.Client; a missing client degrades to placeholder
// text like any other missing field.
func (a *Assembler) Assemble(ctx context.Context, c *entity.Contract) (*Document, error) {
	profile, err := a.Profiles.CompanyProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileUnavailable, err)
	}
	return a.AssembleWith(c, profile), nil
}

// AssembleText is Assemble rendered to plain text.
func (a *Assembler) AssembleText(ctx context.Context, c *entity.Contract) (string, error) {
	doc, err := a.Assemble(ctx, c)
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

// AssembleWith builds the document against an already resolved profile. It
// cannot fail.
func (a *Assembler) AssembleWith(c *entity.Contract, profile entity.CompanyProfile) *Document {
	if c == nil {
		c = &entity.Contract{}
	}
	client := entity.Client{}
	if c.Client != nil {
		client = *c.Client
	}

	description, ok := clause.ServiceDescription(c.Type)
	if !ok {
		log.Warnf("contract %s has unknown type %q, rendering without service description", c.Number, c.Type)
	}

	terms := clause.Terms{
		ServiceDescription: description,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		Indeterminate:      c.IndeterminateTerm,
		TotalValue:         c.TotalValue,
		MonthlyValue:       c.MonthlyValue,
		PaymentTerms:       c.PaymentTerms,
		PaymentMethod:      c.PaymentMethod,
		DueDay:             c.DueDay,
		Company:            profile,
		Client:             client,
	}

	sections := clause.General(terms)

	data, err := clause.DecodeTypeData(c.Type, c.TypeData)
	if err != nil {
		log.Warnf("contract %s: ignoring malformed type data: %v", c.Number, err)
	}
	if specific, ok := clause.Specific(c.Type, data); ok {
		sections = append(sections, specific...)
	}

	if strings.TrimSpace(c.AdditionalClauses) != "" {
		sections = append(sections, clause.AdditionalClauses(c.AdditionalClauses))
	}

	closing, placeDate := clause.Closing(profile, a.now())

	return &Document{
		Title:       clause.Title(c.Type),
		Number:      c.Number,
		Status:      c.Status,
		Company:     profile,
		Preamble:    clause.Preamble(terms),
		Sections:    number(sections),
		ClosingText: closing,
		PlaceDate:   placeDate,
		Signatures: []clause.SignatureBlock{
			clause.ClientSignature(client),
			clause.CompanySignature(profile),
		},
		Witnesses: clause.WitnessLines(),
	}
}

func (a *Assembler) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// number prefixes every title with its clause ordinal, in order.
func number(sections []clause.Section) []clause.Section {
	out := make([]clause.Section, len(sections))
	for i, s := range sections {
		s.Title = fmt.Sprintf("CLÁUSULA %s – %s", clause.Ordinal(i+1), s.Title)
		out[i] = s
	}
	return out
}
