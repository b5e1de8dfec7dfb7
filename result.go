package qrgen

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Result is the output of one successful generation.
type Result struct {
	format   Format
	fragment templ.Component
	source   string
}

// Format returns the format the result was produced in.
func (r *Result) Format() Format { return r.format }

// Source returns the raster image source, or "" for markup results.
func (r *Result) Source() string { return r.source }

// Image decodes the raster source into the image bytes and MIME type.
func (r *Result) Image() ([]byte, string, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(r.source, "data:"), ",")
	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	if r.format != FormatRaster || !ok || !isBase64 {
		return nil, "", ErrNotRaster
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", errors.Join(ErrNotRaster, err)
	}
	return data, mime, nil
}

// Render writes the markup fragment, or an <img> for raster results.
func (r *Result) Render(ctx context.Context, w io.Writer) error {
	if r.format == FormatRaster {
		_, err := io.WriteString(w, `<img class="qrcode" alt="QR code" src="`+templ.EscapeString(r.source)+`">`)
		return err
	}
	if r.fragment == nil {
		return nil
	}
	return r.fragment.Render(ctx, w)
}
