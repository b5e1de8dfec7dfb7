// Package binder binds HTTP request data to Go structs.
//
// Binders share one signature, func(r *http.Request, v any) error, so they can
// be chained by the handler package. A binder that has nothing to read for a
// request returns ErrBinderNotApplicable and the chain moves on.
//
// # Available Binders
//
//   - Query binds URL query parameters using the `query` struct tag.
//   - Signals binds DataStar signals (the JSON object sent by the DataStar
//     client in the "datastar" query parameter or the request body) using the
//     `json` struct tag.
//
// Supported field types are string, signed and unsigned integers, floats,
// bool, slices of those, and pointers to them. Pointer fields stay nil when the
// parameter is absent, which lets handlers tell "not sent" from a zero value.
//
//	type Request struct {
//		Data    *string `query:"data" json:"data"`
//		Version *string `query:"version" json:"version"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, Request](
//		binder.Query(),
//		binder.Signals(),
//	))
package binder
