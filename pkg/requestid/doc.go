// Package requestid tags every request with an identifier.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUID,
// echoes it on the response and stores it in the request context. The
// QR code handlers use it as the generator id, so "generated" events and
// log records of one request share the same identifier.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
