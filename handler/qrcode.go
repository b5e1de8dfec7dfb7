package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/qrgen"
	"github.com/dmitrymomot/qrgen/pkg/broadcast"
	"github.com/dmitrymomot/qrgen/pkg/requestid"
)

// Engine is the encoding engine used by the QR code handlers.
// *qrcode.Engine implements it.
type Engine = qrgen.Engine

// Attributes is the request for the QR code handlers. Nil fields were not
// sent and keep their configured default.
type Attributes struct {
	Auto       *string `query:"auto" json:"auto"`
	Data       *string `query:"data" json:"data"`
	Debug      *string `query:"debug" json:"debug"`
	ECCLevel   *string `query:"ecclevel" json:"ecclevel"`
	Format     *string `query:"format" json:"format"`
	Margin     *string `query:"margin" json:"margin"`
	Mask       *string `query:"mask" json:"mask"`
	Mode       *string `query:"mode" json:"mode"`
	ModuleSize *string `query:"modulesize" json:"modulesize"`
	Version    *string `query:"version" json:"version"`
}

// each calls fn for every attribute that was sent.
func (a Attributes) each(fn func(name, value string) error) error {
	for _, attr := range []struct {
		name  string
		value *string
	}{
		{qrgen.AttrAuto, a.Auto},
		{qrgen.AttrData, a.Data},
		{qrgen.AttrDebug, a.Debug},
		{qrgen.AttrECCLevel, a.ECCLevel},
		{qrgen.AttrFormat, a.Format},
		{qrgen.AttrMargin, a.Margin},
		{qrgen.AttrMask, a.Mask},
		{qrgen.AttrMode, a.Mode},
		{qrgen.AttrModuleSize, a.ModuleSize},
		{qrgen.AttrVersion, a.Version},
	} {
		if attr.value == nil {
			continue
		}
		if err := fn(attr.name, *attr.value); err != nil {
			return err
		}
	}
	return nil
}

// QRCode serves the QR code component. Each request gets its own Generator
// built from the configured defaults and the request attributes.
type QRCode struct {
	engine   Engine
	defaults qrgen.Config
	document broadcast.Broadcaster[qrgen.Event]
	log      *slog.Logger
}

// QRCodeOption configures QRCode.
type QRCodeOption func(*QRCode)

// WithLogger sets the logger passed to every Generator.
func WithLogger(l *slog.Logger) QRCodeOption {
	return func(h *QRCode) {
		if l != nil {
			h.log = l
		}
	}
}

// WithDocument sets the bus generated events bubble to.
func WithDocument(b broadcast.Broadcaster[qrgen.Event]) QRCodeOption {
	return func(h *QRCode) {
		h.document = b
	}
}

// NewQRCode creates the QR code handlers.
func NewQRCode(engine Engine, defaults qrgen.Config, opts ...QRCodeOption) *QRCode {
	h := &QRCode{
		engine:   engine,
		defaults: defaults,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *QRCode) generator(ctx context.Context, req Attributes) (*qrgen.Generator, error) {
	gen := qrgen.New(
		qrgen.WithID(requestid.FromContext(ctx)),
		qrgen.WithEngine(h.engine),
		qrgen.WithLogger(h.log),
		qrgen.WithConfig(h.defaults),
		qrgen.WithDocument(h.document),
	)
	if err := req.each(gen.SetAttribute); err != nil {
		_ = gen.Close()
		return nil, errors.Join(ErrBadRequest, err)
	}
	return gen, nil
}

// Page renders the component. Regular requests get the full page, DataStar
// requests a patch of the container.
func (h *QRCode) Page(ctx Context, req Attributes) Response {
	gen, err := h.generator(ctx, req)
	if err != nil {
		return Error(err)
	}
	defer gen.Close()

	gen.Update(ctx)
	if gen.State() == qrgen.StateIdle {
		gen.Generate(ctx)
	}

	return TemplPartial(gen, page(gen), WithTarget("#"+qrgen.ContainerID), WithPatchMode(PatchOuter))
}

// Image generates the request attributes as a raster image and returns its
// bytes. Like Page it logs invalid attributes and emits the generated event.
func (h *QRCode) Image(ctx Context, req Attributes) Response {
	gen, err := h.generator(ctx, req)
	if err != nil {
		return Error(err)
	}
	defer gen.Close()

	gen.SetFormat(qrgen.FormatRaster)
	gen.Generate(ctx)
	if err := gen.Err(); err != nil {
		return Error(err)
	}

	data, mime, err := gen.Result().Image()
	if err != nil {
		return Error(err)
	}
	return Image(data, mime)
}
