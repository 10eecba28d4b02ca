package render

import (
	"metrocontratos/cmd/internal/document"
	"metrocontratos/cmd/internal/domain/clause"
)

// Align positions each wrapped line inside the usable width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type ParagraphOptions struct {
	Style  Style
	Indent float64
	Align  Align
}

const (
	// signatureSpace is the blank room left above each signature rule.
	signatureSpace = 14
	// signatureRuleGap separates a signature rule from the name under it.
	signatureRuleGap = 1
	signatureRule  = 80
	witnessRule    = 90
)

// Layout is the content pass. It owns the cursor and the pages created so
// far, and must not be shared between renders.
type Layout struct {
	m     Measurer
	g     Geometry
	pages []*Page
	y     float64
}

func NewLayout(m Measurer) *Layout {
	return &Layout{m: m, g: DefaultGeometry}
}

// Y is the current cursor position.
func (l *Layout) Y() float64 { return l.y }

func (l *Layout) Pages() []*Page { return l.pages }

// NewPage starts a sheet and resets the cursor to the top of the content area.
func (l *Layout) NewPage() {
	l.pages = append(l.pages, &Page{})
	l.y = l.g.ContentTop
}

func (l *Layout) page() *Page {
	if len(l.pages) == 0 {
		l.NewPage()
	}
	return l.pages[len(l.pages)-1]
}

// ensure breaks the page when fewer than h millimetres remain.
func (l *Layout) ensure(h float64) {
	if len(l.pages) == 0 || l.y+h > l.g.ContentBottom {
		l.NewPage()
	}
}

func (l *Layout) gap(h float64) {
	l.y += h
}

// baseline converts the line top held by the cursor into a text baseline.
func (l *Layout) baseline() float64 {
	return l.y + l.g.LineHeight*0.75
}

func (l *Layout) lineX(text string, opts ParagraphOptions, width float64) float64 {
	left := l.g.MarginLeft + opts.Indent
	switch opts.Align {
	case AlignCenter:
		return left + (width-l.m.TextWidth(text, opts.Style))/2
	case AlignRight:
		return left + width - l.m.TextWidth(text, opts.Style)
	default:
		return left
	}
}

// DrawParagraph wraps text to the usable width and emits it line by line,
// breaking the page before any line that would not fit. It returns the new
// cursor position.
func (l *Layout) DrawParagraph(text string, opts ParagraphOptions) float64 {
	if opts.Style.Size == 0 {
		opts.Style = BodyStyle
	}
	width := l.g.UsableWidth() - opts.Indent
	for _, line := range wrap(l.m, text, opts.Style, width) {
		l.ensure(l.g.LineHeight)
		if line != "" {
			l.page().add(Op{
				Kind:  OpText,
				X:     l.lineX(line, opts, width),
				Y:     l.baseline(),
				Text:  line,
				Style: opts.Style,
			})
		}
		l.y += l.g.LineHeight
	}
	return l.y
}

// DrawSectionTitle emits a bold heading with an underline as wide as each
// rendered title line. The title is moved to the next page when it would be
// left without at least one body line under it.
func (l *Layout) DrawSectionTitle(title string) float64 {
	width := l.g.UsableWidth()
	lines := wrap(l.m, title, TitleStyle, width)
	l.ensure(float64(len(lines)+1)*l.g.LineHeight + l.g.ParagraphGap)

	for _, line := range lines {
		baseline := l.baseline()
		p := l.page()
		p.add(Op{Kind: OpText, X: l.g.MarginLeft, Y: baseline, Text: line, Style: TitleStyle})
		p.add(Op{
			Kind: OpLine,
			X:    l.g.MarginLeft,
			Y:    baseline + 0.8,
			X2:   l.g.MarginLeft + l.m.TextWidth(line, TitleStyle),
			Y2:   baseline + 0.8,
			W:    0.2,
		})
		l.y += l.g.LineHeight
	}
	l.gap(l.g.ParagraphGap)
	return l.y
}

// DrawSection lays out a clause: its title then every node, items indented.
func (l *Layout) DrawSection(s clause.Section) float64 {
	if s.Title != "" {
		l.DrawSectionTitle(s.Title)
	}
	for _, n := range s.Nodes {
		opts := ParagraphOptions{Style: BodyStyle}
		if n.Kind == clause.NodeItem {
			opts.Indent = l.g.ItemIndent
		}
		l.DrawParagraph(n.Text, opts)
		l.gap(l.g.ParagraphGap)
	}
	l.gap(l.g.ParagraphGap)
	return l.y
}

// DrawSignature keeps a whole signature block on one page: the blank space,
// the centred rule and the name, tax ID and role lines.
func (l *Layout) DrawSignature(sig clause.SignatureBlock) float64 {
	lines := sig.Lines()
	rows := 0
	for _, line := range lines {
		rows += len(wrap(l.m, line, BodyStyle, l.g.UsableWidth()))
	}
	l.ensure(signatureSpace + signatureRuleGap + float64(rows)*l.g.LineHeight)
	l.gap(signatureSpace)

	center := l.g.MarginLeft + l.g.UsableWidth()/2
	l.page().add(Op{
		Kind: OpLine,
		X:    center - signatureRule/2,
		Y:    l.y,
		X2:   center + signatureRule/2,
		Y2:   l.y,
		W:    0.3,
	})
	l.gap(signatureRuleGap)
	for _, line := range lines {
		l.DrawParagraph(line, ParagraphOptions{Style: BodyStyle, Align: AlignCenter})
	}
	return l.y
}

// DrawWitness draws one witness rule with its label underneath.
func (l *Layout) DrawWitness(label string) float64 {
	l.ensure(signatureSpace + l.g.LineHeight)
	l.gap(signatureSpace - 4)
	l.page().add(Op{
		Kind: OpLine,
		X:    l.g.MarginLeft,
		Y:    l.y,
		X2:   l.g.MarginLeft + witnessRule,
		Y2:   l.y,
		W:    0.2,
	})
	l.gap(1)
	return l.DrawParagraph(label, ParagraphOptions{Style: FooterStyle})
}

// Flow runs the content pass over an assembled document and returns the
// pages it produced.
func (l *Layout) Flow(doc *document.Document) []*Page {
	l.NewPage()

	l.DrawParagraph(doc.Title, ParagraphOptions{Style: HeadingStyle, Align: AlignCenter})
	if doc.Number != "" {
		l.DrawParagraph("Contrato nº "+doc.Number, ParagraphOptions{Style: BodyStyle, Align: AlignCenter})
	}
	l.gap(l.g.ParagraphGap * 2)

	l.DrawSection(doc.Preamble)
	for _, s := range doc.Sections {
		l.DrawSection(s)
	}

	l.DrawParagraph(doc.ClosingText, ParagraphOptions{Style: BodyStyle})
	l.gap(l.g.ParagraphGap)
	l.DrawParagraph(doc.PlaceDate, ParagraphOptions{Style: BodyStyle, Align: AlignRight})

	for _, sig := range doc.Signatures {
		l.DrawSignature(sig)
	}
	l.gap(l.g.ParagraphGap)
	for _, w := range doc.Witnesses {
		l.DrawWitness(w)
	}
	return l.pages
}
