package qrgen

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/dmitrymomot/qrgen/pkg/broadcast"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/statemachine"
	"github.com/dmitrymomot/qrgen/pkg/validator"
)

// Engine produces QR code output. *qrcode.Engine implements it.
type Engine interface {
	Markup(payload string, opts qrcode.Options) (templ.Component, error)
	RasterSource(payload string, opts qrcode.Options) (string, error)
}

// EventGenerated is the name of the event emitted after a successful generation.
const EventGenerated = "qrcode-generated"

// ContainerID is the id of the element Render wraps the result in.
const ContainerID = "qrCodeContainer"

// Event notifies listeners that a generator produced a new result.
type Event struct {
	Name     string
	SourceID string
}

const (
	// StateIdle means no valid result has been produced yet.
	StateIdle statemachine.StringState = "idle"
	// StateReady means the generator holds the last valid result.
	StateReady statemachine.StringState = "ready"

	generated statemachine.StringEvent = "generated"
)

const eventBuffer = 16

// Generator is a QR code component. It is not safe for concurrent use.
type Generator struct {
	id        string
	engine    Engine
	log       *slog.Logger
	events    *broadcast.MemoryBroadcaster[Event]
	document  broadcast.Broadcaster[Event]
	lifecycle statemachine.StateMachine

	auto       bool
	data       string
	debug      bool
	ecclevel   qrcode.Level
	format     Format
	margin     int
	mask       int
	mode       qrcode.Mode
	modulesize float64
	version    int

	result  *Result
	err     error
	changed map[string]struct{}
}

// Option configures a Generator.
type Option func(*Generator)

// WithEngine sets the encoding engine. Defaults to qrcode.NewEngine().
func WithEngine(e Engine) Option {
	return func(g *Generator) {
		if e != nil {
			g.engine = e
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithID sets the id used as event source. Defaults to a random UUID.
func WithID(id string) Option {
	return func(g *Generator) {
		if id != "" {
			g.id = id
		}
	}
}

// WithDocument makes generated events bubble to b in addition to the
// generator's own listeners.
func WithDocument(b broadcast.Broadcaster[Event]) Option {
	return func(g *Generator) {
		g.document = b
	}
}

// WithConfig sets the initial attribute values. Values that differ from
// DefaultConfig count as changes, so the first Update settles them and
// generates when auto is on.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.SetAuto(cfg.Auto)
		g.SetData(cfg.Data)
		g.SetDebug(cfg.Debug)
		g.SetECCLevel(qrcode.Level(cfg.ECCLevel))
		g.SetFormat(parseFormat(cfg.Format))
		g.SetMargin(cfg.Margin)
		g.SetMask(cfg.Mask)
		g.SetMode(qrcode.Mode(cfg.Mode))
		g.SetModuleSize(cfg.ModuleSize)
		g.SetVersion(cfg.Version)
	}
}

// New creates a generator with default attributes.
func New(opts ...Option) *Generator {
	g := &Generator{
		id:      uuid.NewString(),
		log:     slog.Default(),
		events:  broadcast.NewMemoryBroadcaster[Event](eventBuffer),
		changed: make(map[string]struct{}),
		lifecycle: statemachine.MustNew(StateIdle,
			statemachine.WithTransition(StateIdle, StateReady, generated),
			statemachine.WithTransition(StateReady, StateReady, generated),
		),
	}
	g.apply(DefaultConfig())

	for _, opt := range opts {
		opt(g)
	}
	if g.engine == nil {
		g.engine = qrcode.NewEngine()
	}
	g.log = g.log.With(logger.Component("qrcode"), logger.SourceID(g.id))

	return g
}

func (g *Generator) apply(cfg Config) {
	g.auto = cfg.Auto
	g.data = cfg.Data
	g.debug = cfg.Debug
	g.ecclevel = qrcode.Level(cfg.ECCLevel)
	g.format = parseFormat(cfg.Format)
	g.margin = cfg.Margin
	g.mask = cfg.Mask
	g.mode = qrcode.Mode(cfg.Mode)
	g.modulesize = cfg.ModuleSize
	g.version = cfg.Version
}

// Err returns why the last Generate failed, or nil after a success. The
// result of a failed Generate is the previous one.
func (g *Generator) Err() error { return g.err }

// ID returns the event source id.
func (g *Generator) ID() string { return g.id }

// Result returns the last successful result, or nil.
func (g *Generator) Result() *Result { return g.result }

// State returns StateIdle or StateReady.
func (g *Generator) State() statemachine.State { return g.lifecycle.Current() }

// Options returns the engine options assembled from the current attributes.
func (g *Generator) Options() qrcode.Options {
	return qrcode.Options{
		ModuleSize: g.modulesize,
		Margin:     g.margin,
		Version:    g.version,
		Mode:       g.mode,
		Level:      g.ecclevel,
		Mask:       g.mask,
	}
}

// Check validates every attribute and returns validator.ValidationErrors
// listing each failing field, or nil.
func (g *Generator) Check() error {
	rules := g.Options().Rules()
	rules = slices.Insert(rules, 1, validator.OneOf("format", g.format, Formats()))
	return validator.Apply(rules...)
}

// Validate reports whether every attribute is valid, logging each failure.
func (g *Generator) Validate(ctx context.Context) bool {
	errs := validator.ExtractValidationErrors(g.Check())
	for _, e := range errs {
		g.log.WarnContext(ctx, "invalid qrcode attribute",
			logger.Field(e.Field),
			logger.Value(e.Value),
			slog.String("reason", e.Message),
		)
	}
	return len(errs) == 0
}

// Generate validates the attributes and asks the engine for a new result.
// On any failure the previous result is kept and no event is emitted.
func (g *Generator) Generate(ctx context.Context) {
	g.trace(ctx, "generate", slog.String("format", string(g.format)))

	if !g.Validate(ctx) {
		g.err = g.Check()
		return
	}

	start := time.Now()
	result, err := g.produce(ctx)
	g.err = err
	if err != nil {
		g.log.ErrorContext(ctx, "qrcode generation failed",
			slog.String("format", string(g.format)),
			logger.Error(err),
		)
		return
	}

	g.trace(ctx, "generated", logger.Duration(time.Since(start)))

	g.result = result
	if err := g.lifecycle.Fire(ctx, generated, result); err != nil {
		g.log.ErrorContext(ctx, "qrcode lifecycle transition failed", logger.Error(err))
	}
	g.emit(ctx)
}

func (g *Generator) produce(ctx context.Context) (*Result, error) {
	opts := g.Options()

	if g.format == FormatRaster {
		src, err := g.engine.RasterSource(g.data, opts)
		if err != nil {
			return nil, err
		}
		return &Result{format: FormatRaster, source: src}, nil
	}

	g.trace(ctx, "markup", slog.String("data", g.data))
	fragment, err := g.engine.Markup(g.data, opts)
	if err != nil {
		return nil, err
	}
	return &Result{format: FormatMarkup, fragment: fragment}, nil
}

func (g *Generator) emit(ctx context.Context) {
	msg := broadcast.Message[Event]{Data: Event{Name: EventGenerated, SourceID: g.id}}

	if err := g.events.Broadcast(ctx, msg); err != nil {
		g.log.WarnContext(ctx, "failed to deliver event", logger.Event(EventGenerated), logger.Error(err))
	}
	if g.document != nil {
		if err := g.document.Broadcast(ctx, msg); err != nil {
			g.log.WarnContext(ctx, "failed to bubble event", logger.Event(EventGenerated), logger.Error(err))
		}
	}
}

// Subscribe returns a listener for generated events. Listeners that fall
// behind are dropped.
func (g *Generator) Subscribe(ctx context.Context) broadcast.Subscriber[Event] {
	return g.events.Subscribe(ctx)
}

// Close ends every subscription. The document bus is not closed.
func (g *Generator) Close() error {
	return g.events.Close()
}

// Render writes the current result inside the container element.
func (g *Generator) Render(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, `<div id="`+ContainerID+`">`); err != nil {
		return err
	}
	if g.result != nil {
		if err := g.result.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>")
	return err
}

func (g *Generator) trace(ctx context.Context, msg string, attrs ...slog.Attr) {
	if g.debug {
		g.log.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
	}
}

var _ templ.Component = (*Generator)(nil)
