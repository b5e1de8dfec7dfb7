package qrcode

import (
	"encoding/base64"
	"errors"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrgen/pkg/cache"
)

// Engine validates options, encodes payloads and renders symbols.
// It is safe for concurrent use when its encoder and platform are.
type Engine struct {
	encoder  Encoder
	platform Platform
	symbols  *cache.LRUCache[symbolKey, *Symbol]
}

type symbolKey struct {
	payload string
	level   Level
	mode    Mode
	version int
	mask    int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithEncoder replaces the default AutoEncoder. Nil is ignored.
func WithEncoder(enc Encoder) EngineOption {
	return func(e *Engine) {
		if enc != nil {
			e.encoder = enc
		}
	}
}

// WithPlatform replaces the default PNGPlatform. Nil is ignored.
func WithPlatform(p Platform) EngineOption {
	return func(e *Engine) {
		if p != nil {
			e.platform = p
		}
	}
}

// WithCache keeps up to size encoded symbols. Non-positive sizes disable caching.
func WithCache(size int) EngineOption {
	return func(e *Engine) {
		if size > 0 {
			e.symbols = cache.NewLRUCache[symbolKey, *Symbol](size)
		} else {
			e.symbols = nil
		}
	}
}

// NewEngine creates an engine. Defaults: AutoEncoder, PNGPlatform, no cache.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		encoder:  AutoEncoder{},
		platform: PNGPlatform{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode validates opts and returns the symbol for payload.
func (e *Engine) Encode(payload string, opts Options) (*Symbol, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	text, err := NormalizePayload(payload, opts.Mode)
	if err != nil {
		return nil, err
	}

	if e.symbols == nil {
		return e.encoder.Encode(text, opts)
	}

	key := symbolKey{payload: text, level: opts.Level, mode: opts.Mode, version: opts.Version, mask: opts.Mask}
	sym, _, err := e.symbols.GetOrLoad(key, func() (*Symbol, error) {
		return e.encoder.Encode(text, opts)
	})
	return sym, err
}

// Markup renders payload as an HTML table fragment.
func (e *Engine) Markup(payload string, opts Options) (templ.Component, error) {
	sym, err := e.Encode(payload, opts)
	if err != nil {
		return nil, err
	}
	return templ.Raw(renderTable(sym, opts)), nil
}

// Raster draws payload on a platform canvas and returns the encoded image
// with its MIME type.
func (e *Engine) Raster(payload string, opts Options) ([]byte, string, error) {
	sym, err := e.Encode(payload, opts)
	if err != nil {
		return nil, "", err
	}

	side, err := rasterSide(sym, opts)
	if err != nil {
		return nil, "", err
	}
	canvas, err := e.platform.NewCanvas(side, side)
	if err != nil {
		return nil, "", err
	}
	drawSymbol(canvas, sym, opts)
	return canvas.Encode()
}

// RasterSource is like Raster but returns a data URI usable as <img src>.
func (e *Engine) RasterSource(payload string, opts Options) (string, error) {
	data, mime, err := e.Raster(payload, opts)
	if err != nil {
		return "", err
	}
	if mime == "" {
		return "", errors.Join(ErrFailedToGenerateQRCode, errors.New("canvas returned no MIME type"))
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
