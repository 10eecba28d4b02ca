package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validate parses the rendered bytes back and checks the page count.
func Validate(data []byte, wantPages int) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pages, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return fmt.Errorf("invalid pdf: %w", err)
	}
	if pages != wantPages {
		return fmt.Errorf("pdf has %d pages, layout produced %d", pages, wantPages)
	}
	return nil
}
