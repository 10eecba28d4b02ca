package render

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"metrocontratos/cmd/internal/document"
	"metrocontratos/cmd/internal/domain/clause"
	"metrocontratos/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monospace measures every rune as 2mm, whatever the style.
type monospace struct{}

func (monospace) TextWidth(text string, _ Style) float64 {
	return float64(utf8.RuneCountInString(text)) * 2
}

func longDocument(sections int, status entity.ContractStatus) *document.Document {
	body := strings.Repeat("texto de cláusula contratual ", 40)
	doc := &document.Document{
		Title:       "CONTRATO DE TESTE",
		Number:      "CT-1",
		Status:      status,
		Company:     entity.DefaultCompanyProfile(),
		Preamble:    clause.Section{Title: "QUALIFICAÇÃO DAS PARTES", Nodes: []clause.Node{{Text: "partes"}}},
		ClosingText: "E, por estarem justas.",
		PlaceDate:   "Campinas/SP, 14 de outubro de 2026.",
		Signatures: []clause.SignatureBlock{
			{Name: "ACME Ltda", TaxID: "CNPJ: 11.111.111/0001-11", Role: clause.RoleClient},
			{Name: "Metrolab", TaxID: "CNPJ: 13.250.539/0001-40", Role: clause.RoleContracted},
		},
		Witnesses: clause.WitnessLines(),
	}
	for i := 0; i < sections; i++ {
		doc.Sections = append(doc.Sections, clause.Section{
			Title: fmt.Sprintf("CLÁUSULA %s – DO TESTE", clause.Ordinal(i+1)),
			Nodes: []clause.Node{{Text: body}, {Kind: clause.NodeItem, Text: "a) item"}},
		})
	}
	return doc
}

func TestWrap(t *testing.T) {
	m := monospace{}

	t.Run("fits width", func(t *testing.T) {
		lines := wrap(m, "aaa bbb ccc ddd", BodyStyle, 14)
		assert.Equal(t, []string{"aaa bbb", "ccc ddd"}, lines)
	})

	t.Run("keeps explicit newlines", func(t *testing.T) {
		lines := wrap(m, "um\n\ndois", BodyStyle, 100)
		assert.Equal(t, []string{"um", "", "dois"}, lines)
	})

	t.Run("splits long words", func(t *testing.T) {
		lines := wrap(m, "abcdefghij", BodyStyle, 8)
		assert.Equal(t, []string{"abcd", "efgh", "ij"}, lines)
	})
}

func TestLayoutBreaksPages(t *testing.T) {
	l := NewLayout(monospace{})
	pages := l.Flow(longDocument(12, entity.StatusInForce))

	require.Greater(t, len(pages), 1)
	g := DefaultGeometry
	for i, p := range pages {
		require.NotEmpty(t, p.Ops, "page %d", i+1)
		for _, op := range p.Ops {
			if op.Kind == OpText {
				assert.GreaterOrEqual(t, op.Y, g.ContentTop, "page %d: %q", i+1, op.Text)
				assert.LessOrEqual(t, op.Y, g.ContentBottom, "page %d: %q", i+1, op.Text)
			}
		}
	}
}

func TestSectionTitleNeverOrphaned(t *testing.T) {
	l := NewLayout(monospace{})
	l.NewPage()
	l.y = DefaultGeometry.ContentBottom - DefaultGeometry.LineHeight

	l.DrawSectionTitle("CLÁUSULA DÉCIMA – DO FORO")
	require.Len(t, l.Pages(), 2)
	assert.Empty(t, l.Pages()[0].Ops)
	assert.Equal(t, []string{"CLÁUSULA DÉCIMA – DO FORO"}, l.Pages()[1].Texts())
}

func TestSignatureKeptTogether(t *testing.T) {
	l := NewLayout(monospace{})
	l.NewPage()
	l.y = DefaultGeometry.ContentBottom - 10

	l.DrawSignature(clause.SignatureBlock{Name: "ACME Ltda", TaxID: "CNPJ: 1", Role: clause.RoleClient})
	require.Len(t, l.Pages(), 2)
	assert.Equal(t, []string{"ACME Ltda", "CNPJ: 1", clause.RoleClient}, l.Pages()[1].Texts())
}

func TestSignatureBoundary(t *testing.T) {
	sig := clause.SignatureBlock{Name: "ACME Ltda", TaxID: "CNPJ: 1", Role: clause.RoleClient}
	block := signatureSpace + signatureRuleGap + 3*DefaultGeometry.LineHeight

	cases := []struct {
		name  string
		left  float64
		pages int
	}{
		{"exact fit", block, 1},
		{"half a millimetre roomy", block + 0.5, 1},
		{"half a millimetre short", block - 0.5, 2},
		{"one millimetre short", block - 1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLayout(monospace{})
			l.NewPage()
			l.y = DefaultGeometry.ContentBottom - tc.left

			l.DrawSignature(sig)
			require.Len(t, l.Pages(), tc.pages)
			last := l.Pages()[tc.pages-1]
			assert.Equal(t, []string{"ACME Ltda", "CNPJ: 1", clause.RoleClient}, last.Texts())
			assert.LessOrEqual(t, l.Y(), DefaultGeometry.ContentBottom)
		})
	}
}

func TestDecorateFooterOnEveryPage(t *testing.T) {
	m := monospace{}
	doc := longDocument(12, entity.StatusInForce)
	pages := Paginate(m, doc, nil)
	require.Greater(t, len(pages), 1)

	for i, p := range pages {
		texts := p.Texts()
		assert.Contains(t, texts, fmt.Sprintf("Página %d de %d", i+1, len(pages)))
		assert.Contains(t, texts, "Contrato nº CT-1")
		assert.Contains(t, texts, "Metrolab Calibração e Metrologia Ltda - CNPJ: 13.250.539/0001-40")
		assert.NotContains(t, texts, WatermarkText)
	}
}

func TestDecorateWatermarkOnDrafts(t *testing.T) {
	pages := Paginate(monospace{}, longDocument(12, entity.StatusDraft), nil)
	require.Greater(t, len(pages), 1)

	for _, p := range pages {
		first := p.Ops[0]
		assert.Equal(t, OpWatermark, first.Kind)
		assert.Equal(t, WatermarkText, first.Text)
		assert.Equal(t, 45.0, first.Angle)
	}
}

func TestDecorateHeader(t *testing.T) {
	g := DefaultGeometry
	profile := entity.DefaultCompanyProfile()

	headerRule := func(p *Page) Op {
		for _, op := range p.Ops {
			if op.Kind == OpLine && op.Y < g.ContentTop {
				return op
			}
		}
		t.Fatal("header rule not found")
		return Op{}
	}

	t.Run("logo", func(t *testing.T) {
		p := &Page{}
		Decorate(monospace{}, []*Page{p}, Decoration{Profile: profile, Logo: &Image{Width: 300, Height: 100}})

		var img *Op
		for i := range p.Ops {
			if p.Ops[i].Kind == OpImage {
				img = &p.Ops[i]
			}
		}
		require.NotNil(t, img)
		assert.InDelta(t, 45.0, img.W, 1e-9)
		assert.InDelta(t, 15.0, img.H, 1e-9)
		assert.NotContains(t, p.Texts(), profile.LegalName)

		rule := headerRule(p)
		assert.Greater(t, rule.Y, img.Y+img.H)
		assert.Less(t, rule.Y, g.ContentTop)
	})

	t.Run("text fallback", func(t *testing.T) {
		p := &Page{}
		Decorate(monospace{}, []*Page{p}, Decoration{Profile: profile})

		texts := p.Texts()
		assert.Contains(t, texts, profile.LegalName)
		assert.Contains(t, texts, "Acreditação "+profile.AccreditationCode)
		for _, op := range p.Ops {
			assert.NotEqual(t, OpImage, op.Kind)
		}
		assert.Less(t, headerRule(p).Y, g.ContentTop)
	})

	t.Run("tall logo is bounded by height", func(t *testing.T) {
		w, h := fitLogo(&Image{Width: 100, Height: 200})
		assert.InDelta(t, 9.0, w, 1e-9)
		assert.InDelta(t, 18.0, h, 1e-9)
	})
}
