// Package httpserver runs an http.Handler with configurable timeouts,
// structured logging and graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM is received or
// the listener fails, then drains in-flight requests within the shutdown
// timeout. HealthCheckHandler serves liveness and readiness probes.
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen errors are wrapped with ErrStart and shutdown errors with
// ErrShutdown.
package httpserver
