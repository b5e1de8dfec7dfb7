package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/qrgen"
	"github.com/dmitrymomot/qrgen/handler"
	"github.com/dmitrymomot/qrgen/pkg/binder"
	"github.com/dmitrymomot/qrgen/pkg/broadcast"
	"github.com/dmitrymomot/qrgen/pkg/config"
	"github.com/dmitrymomot/qrgen/pkg/environment"
	"github.com/dmitrymomot/qrgen/pkg/httpserver"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/requestid"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"qrgen"`
	LogFormat string `env:"LOG_FORMAT"`
	Encoder   string `env:"QRCODE_ENCODER" envDefault:"auto"`
	CacheSize int    `env:"QRCODE_CACHE_SIZE" envDefault:"128"`
}

func main() {
	var app appConfig
	config.MustLoad(&app)

	logOpts := []logger.Option{
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(environment.LoggerExtractor(), requestid.LoggerExtractor()),
	}
	if app.LogFormat != "" {
		logOpts = append(logOpts, logger.WithFormat(logger.Format(app.LogFormat)))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), app, log); err != nil {
		log.Error("qrgen stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, app appConfig, log *slog.Logger) error {
	var defaults qrgen.Config
	if err := config.Load(&defaults); err != nil {
		return err
	}
	var server httpserver.Config
	if err := config.Load(&server); err != nil {
		return err
	}

	enc, err := qrcode.NewEncoder(app.Encoder)
	if err != nil {
		return err
	}
	engine := qrcode.NewEngine(qrcode.WithEncoder(enc), qrcode.WithCache(app.CacheSize))

	document := broadcast.NewMemoryBroadcaster[qrgen.Event](64)
	defer document.Close()

	router := newRouter(environment.Parse(app.Env), engine, defaults, document, log)
	srv := httpserver.NewFromConfig(server, httpserver.WithLogger(log))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	events := document.Subscribe(ctx)
	g.Go(func() error {
		logEvents(ctx, events, log)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return srv.Run(ctx, router)
	})
	return g.Wait()
}

func newRouter(
	env environment.Environment,
	engine handler.Engine,
	defaults qrgen.Config,
	document broadcast.Broadcaster[qrgen.Event],
	log *slog.Logger,
) http.Handler {
	qr := handler.NewQRCode(engine, defaults, handler.WithLogger(log), handler.WithDocument(document))
	errs := handler.NewErrorHandler(log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, environment.Middleware(env))

	r.Get("/", handler.Wrap[handler.Context, handler.Attributes](qr.Page,
		handler.WithBinders[handler.Context, handler.Attributes](binder.Query(), binder.Signals()),
		handler.WithErrorHandler[handler.Context, handler.Attributes](errs),
	))
	r.Get("/qrcode.png", handler.Wrap[handler.Context, handler.Attributes](qr.Image,
		handler.WithBinders[handler.Context, handler.Attributes](binder.Query()),
		handler.WithErrorHandler[handler.Context, handler.Attributes](errs),
	))
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, engineReady(engine)))

	return r
}

// engineReady encodes a one-digit payload with the default options.
func engineReady(engine handler.Engine) func(context.Context) error {
	return func(context.Context) error {
		_, err := engine.Markup("0", qrcode.DefaultOptions())
		return err
	}
}

func logEvents(ctx context.Context, sub broadcast.Subscriber[qrgen.Event], log *slog.Logger) {
	defer sub.Close()
	for msg := range sub.Receive(ctx) {
		log.DebugContext(ctx, "qrcode generated",
			logger.Event(msg.Data.Name),
			logger.SourceID(msg.Data.SourceID),
		)
	}
}
