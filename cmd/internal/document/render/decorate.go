package render

import (
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/document"
	"metrocontratos/cmd/internal/domain/entity"
)

const (
	WatermarkText = "RASCUNHO"

	logoMaxWidth  = 45
	logoMaxHeight = 18
	ruleGap       = 3
)

// Decoration is what the second pass needs besides the pages themselves.
// A nil Logo selects the text fallback.
type Decoration struct {
	Number  string
	Status  entity.ContractStatus
	Profile entity.CompanyProfile
	Logo    *Image
}

// Decorate is the second pass: with the total page count known it adds
// header and footer to every page.
func Decorate(m Measurer, pages []*Page, d Decoration) {
	g := DefaultGeometry
	for i, p := range pages {
		drawHeader(m, g, p, d)
		drawFooter(m, g, p, i+1, len(pages), d.Profile)
	}
}

func drawHeader(m Measurer, g Geometry, p *Page, d Decoration) {
	var boxBottom float64
	if d.Logo != nil && d.Logo.Width > 0 && d.Logo.Height > 0 {
		w, h := fitLogo(d.Logo)
		p.add(Op{Kind: OpImage, X: g.MarginLeft, Y: g.HeaderTop, W: w, H: h})
		boxBottom = g.HeaderTop + h
	} else {
		style := Style{Size: 12, Bold: true}
		p.add(Op{Kind: OpText, X: g.MarginLeft, Y: g.HeaderTop + 6, Text: companyName(d.Profile), Style: style})
		if code := strings.TrimSpace(d.Profile.AccreditationCode); code != "" {
			p.add(Op{Kind: OpText, X: g.MarginLeft, Y: g.HeaderTop + 11, Text: "Acreditação " + code, Style: FooterStyle})
		}
		boxBottom = g.HeaderTop + 13
	}

	if d.Number != "" {
		label := "Contrato nº " + d.Number
		style := Style{Size: 9, Bold: true}
		p.add(Op{
			Kind:  OpText,
			X:     g.PageWidth - g.MarginRight - m.TextWidth(label, style),
			Y:     g.HeaderTop + 5,
			Text:  label,
			Style: style,
		})
	}

	ruleY := min(boxBottom+ruleGap, g.ContentTop-ruleGap)
	p.add(Op{Kind: OpLine, X: g.MarginLeft, Y: ruleY, X2: g.PageWidth - g.MarginRight, Y2: ruleY, W: 0.4})

	if d.Status == entity.StatusDraft {
		p.underlay(Op{
			Kind:  OpWatermark,
			X:     g.PageWidth / 2,
			Y:     g.PageHeight / 2,
			Angle: 45,
			Alpha: 0.12,
			Text:  WatermarkText,
			Style: Style{Size: 90, Bold: true, Gray: 150},
		})
	}
}

func drawFooter(m Measurer, g Geometry, p *Page, index, total int, profile entity.CompanyProfile) {
	p.add(Op{Kind: OpLine, X: g.MarginLeft, Y: g.FooterTop, X2: g.PageWidth - g.MarginRight, Y2: g.FooterTop, W: 0.2})

	center := g.MarginLeft + g.UsableWidth()/2
	for i, line := range footerLines(profile) {
		p.add(Op{
			Kind:  OpText,
			X:     center - m.TextWidth(line, FooterStyle)/2,
			Y:     g.FooterTop + 4 + float64(i)*3.5,
			Text:  line,
			Style: FooterStyle,
		})
	}

	label := fmt.Sprintf("Página %d de %d", index, total)
	style := Style{Size: 8}
	p.add(Op{
		Kind:  OpText,
		X:     g.PageWidth - g.MarginRight - m.TextWidth(label, style),
		Y:     g.FooterTop + 13,
		Text:  label,
		Style: style,
	})
}

func footerLines(p entity.CompanyProfile) [2]string {
	first := companyName(p)
	if cnpj := strings.TrimSpace(p.CNPJ); cnpj != "" {
		first += " - CNPJ: " + cnpj
	}

	var contact []string
	if addr := p.Address(); addr != "" {
		contact = append(contact, addr)
	}
	for _, v := range []string{p.Phone, p.Email, p.Website} {
		if v = strings.TrimSpace(v); v != "" {
			contact = append(contact, v)
		}
	}
	return [2]string{first, strings.Join(contact, " | ")}
}

func companyName(p entity.CompanyProfile) string {
	if name := strings.TrimSpace(p.LegalName); name != "" {
		return name
	}
	return strings.TrimSpace(p.TradeName)
}

// fitLogo scales the image into the logo box keeping its aspect ratio.
func fitLogo(img *Image) (float64, float64) {
	ratio := float64(img.Width) / float64(img.Height)
	w, h := logoMaxHeight*ratio, float64(logoMaxHeight)
	if w > logoMaxWidth {
		w, h = logoMaxWidth, logoMaxWidth/ratio
	}
	return w, h
}

// Paginate runs both passes over doc with a fresh Layout.
func Paginate(m Measurer, doc *document.Document, logo *Image) []*Page {
	pages := NewLayout(m).Flow(doc)
	Decorate(m, pages, Decoration{
		Number:  doc.Number,
		Status:  doc.Status,
		Profile: doc.Company,
		Logo:    logo,
	})
	return pages
}
