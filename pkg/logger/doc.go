// Package logger builds *slog.Logger instances for qrgen binaries and
// components.
//
// New assembles a text or JSON slog handler from functional options and wraps
// it with a decorator that pulls request-scoped attributes out of the context
// on every record. Environment presets (WithDevelopment, WithStaging,
// WithProduction, WithEnvironment) pick a format and level in one call.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "qrgen"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "qrcode generated", logger.Component("qrgen"))
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, so they can be passed without a
// nil check.
package logger
