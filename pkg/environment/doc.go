// Package environment carries the application environment (development,
// staging, production) through context.Context so that loggers and HTTP
// handlers can adapt their behaviour without extra parameters.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx := environment.WithContext(context.Background(), env)
//
//	if environment.IsProduction(ctx) {
//		// quieter logging, no debug output
//	}
//
// Middleware attaches the environment to every request context, and
// LoggerExtractor exposes it to the logger package as an "env" attribute.
package environment
