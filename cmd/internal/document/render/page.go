package render

// Geometry is the A4 page in millimetres.
type Geometry struct {
	PageWidth     float64
	PageHeight    float64
	MarginLeft    float64
	MarginRight   float64
	HeaderTop     float64
	ContentTop    float64
	ContentBottom float64
	FooterTop     float64
	LineHeight    float64
	ParagraphGap  float64
	ItemIndent    float64
}

var DefaultGeometry = Geometry{
	PageWidth:     210,
	PageHeight:    297,
	MarginLeft:    20,
	MarginRight:   20,
	HeaderTop:     12,
	ContentTop:    42,
	ContentBottom: 272,
	FooterTop:     277,
	LineHeight:    5,
	ParagraphGap:  2.5,
	ItemIndent:    6,
}

// UsableWidth is the horizontal space between the margins.
func (g Geometry) UsableWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// Style selects the font for a run of text. Every run uses Helvetica.
type Style struct {
	Size float64
	Bold bool
	Gray int
}

var (
	BodyStyle    = Style{Size: 10}
	TitleStyle   = Style{Size: 10.5, Bold: true}
	HeadingStyle = Style{Size: 13, Bold: true}
	FooterStyle  = Style{Size: 7.5, Gray: 90}
)

// Measurer reports the rendered width of text, in millimetres.
type Measurer interface {
	TextWidth(text string, style Style) float64
}

type OpKind int

const (
	// OpText draws Text with its baseline at (X, Y).
	OpText OpKind = iota
	// OpLine draws a rule from (X, Y) to (X2, Y2).
	OpLine
	// OpImage places the registered logo in the box (X, Y, W, H).
	OpImage
	// OpWatermark draws Text rotated by Angle degrees, centred on (X, Y).
	OpWatermark
)

type Op struct {
	Kind   OpKind
	X, Y   float64
	X2, Y2 float64
	W, H   float64
	Angle  float64
	Alpha  float64
	Text   string
	Style  Style
}

// Page is the list of drawing operations for one sheet, in paint order.
type Page struct {
	Ops []Op
}

func (p *Page) add(op Op) {
	p.Ops = append(p.Ops, op)
}

// underlay inserts ops beneath everything already on the page.
func (p *Page) underlay(ops ...Op) {
	p.Ops = append(append([]Op{}, ops...), p.Ops...)
}

// Texts returns every text run on the page, watermark included, in paint
// order.
func (p *Page) Texts() []string {
	var out []string
	for _, op := range p.Ops {
		if op.Kind == OpText || op.Kind == OpWatermark {
			out = append(out, op.Text)
		}
	}
	return out
}

// Image is a logo already decoded and sized in pixels.
type Image struct {
	Data   []byte
	Format string
	Width  int
	Height int
}
