package pdf

import (
	"bytes"
	"fmt"
	"time"

	"metrocontratos/cmd/internal/document/render"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Helvetica"
	logoName   = "logo"
)

// Canvas is an fpdf document driven by a rendered page list. It measures text
// with the same fonts it draws with. A Canvas serves exactly one render.
type Canvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func NewCanvas(title string, created time.Time) *Canvas {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	doc.SetTitle(title, true)
	doc.SetCreator("metrocontratos", true)
	doc.SetCreationDate(created)
	doc.SetFont(fontFamily, "", render.BodyStyle.Size)

	return &Canvas{
		pdf: doc,
		// Core fonts are cp1252, which covers Portuguese.
		tr: doc.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *Canvas) setFont(s render.Style) {
	style := ""
	if s.Bold {
		style = "B"
	}
	c.pdf.SetFont(fontFamily, style, s.Size)
}

func (c *Canvas) TextWidth(text string, style render.Style) float64 {
	c.setFont(style)
	return c.pdf.GetStringWidth(c.tr(text))
}

// Render emits pages and returns the PDF bytes. logo must already be
// decoded with DecodeLogo; pages only reference it through OpImage.
func (c *Canvas) Render(pages []*render.Page, logo *render.Image) ([]byte, error) {
	imageOpts := fpdf.ImageOptions{}
	if logo != nil {
		imageOpts.ImageType = logo.Format
		c.pdf.RegisterImageOptionsReader(logoName, imageOpts, bytes.NewReader(logo.Data))
		if err := c.pdf.Error(); err != nil {
			return nil, fmt.Errorf("register logo: %w", err)
		}
	}

	for _, page := range pages {
		c.pdf.AddPage()
		for _, op := range page.Ops {
			c.draw(op, logo != nil, imageOpts)
		}
		if err := c.pdf.Error(); err != nil {
			return nil, fmt.Errorf("draw page %d: %w", c.pdf.PageNo(), err)
		}
	}

	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Canvas) draw(op render.Op, hasLogo bool, imageOpts fpdf.ImageOptions) {
	switch op.Kind {
	case render.OpText:
		c.setFont(op.Style)
		c.pdf.SetTextColor(op.Style.Gray, op.Style.Gray, op.Style.Gray)
		c.pdf.Text(op.X, op.Y, c.tr(op.Text))

	case render.OpLine:
		c.pdf.SetDrawColor(0, 0, 0)
		c.pdf.SetLineWidth(op.W)
		c.pdf.Line(op.X, op.Y, op.X2, op.Y2)

	case render.OpImage:
		if hasLogo {
			c.pdf.ImageOptions(logoName, op.X, op.Y, op.W, op.H, false, imageOpts, 0, "")
		}

	case render.OpWatermark:
		c.setFont(op.Style)
		text := c.tr(op.Text)
		width := c.pdf.GetStringWidth(text)

		c.pdf.SetAlpha(op.Alpha, "Normal")
		c.pdf.SetTextColor(op.Style.Gray, op.Style.Gray, op.Style.Gray)
		c.pdf.TransformBegin()
		c.pdf.TransformRotate(op.Angle, op.X, op.Y)
		c.pdf.Text(op.X-width/2, op.Y+op.Style.Size*0.35/2, text)
		c.pdf.TransformEnd()
		c.pdf.SetAlpha(1, "Normal")
	}
}
