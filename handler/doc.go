// Package handler serves the qrgen component over HTTP.
//
// It keeps the typed handler model: a HandlerFunc binds the request into a
// struct, returns a Response, and Wrap turns it into an http.HandlerFunc.
// Binding and rendering errors go to an ErrorHandler.
//
//	qr := handler.NewQRCode(qrcode.NewEngine(), qrgen.DefaultConfig())
//
//	r := chi.NewRouter()
//	r.Get("/", handler.Wrap[handler.Context, handler.Attributes](qr.Page, handler.WithBinders[handler.Context, handler.Attributes](
//		binder.Query(),
//		binder.Signals(),
//	)))
//	r.Get("/qrcode.png", handler.Wrap[handler.Context, handler.Attributes](qr.Image, handler.WithBinders[handler.Context, handler.Attributes](
//		binder.Query(),
//	)))
//
// # DataStar Integration
//
// Regular requests to the page receive a full HTML document. Requests sent by
// the DataStar client (Accept: text/event-stream) receive a Server-Sent Event
// that patches only the #qrCodeContainer element, so the page re-renders the
// code as the user edits the inputs.
//
// # Error Handling
//
// Invalid attribute values (unparsable numbers, unknown enum values, a payload
// the mode cannot encode) are client errors and answer 400. A host without a
// raster surface answers 501. Everything else answers 500. NewErrorHandler
// logs every error and, for DataStar requests, patches the message into the
// container instead of writing an error page.
package handler
