package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"metrocontratos/cmd/internal/document/render"
)

var imageTypes = map[string]string{
	"png":  "PNG",
	"jpeg": "JPG",
	"gif":  "GIF",
}

// DecodeLogo checks that data is an image fpdf can embed and reads its size.
// Checking up front keeps a broken logo from leaving the canvas in an error
// state.
func DecodeLogo(data []byte) (*render.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("logo is empty")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}
	kind, ok := imageTypes[format]
	if !ok {
		return nil, fmt.Errorf("unsupported logo format %q", format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("logo has no size")
	}
	return &render.Image{Data: data, Format: kind, Width: cfg.Width, Height: cfg.Height}, nil
}

// FileLogo loads the logo from a path on disk.
type FileLogo struct {
	Path string
}

func (f FileLogo) LoadLogo(_ context.Context) ([]byte, error) {
	if f.Path == "" {
		return nil, fmt.Errorf("no logo path configured")
	}
	return os.ReadFile(f.Path)
}
