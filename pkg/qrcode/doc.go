// Package qrcode is the encoding engine behind the qrgen component.
//
// It turns a payload plus an Options record into either an HTML markup
// fragment or a raster image source. Symbol encoding itself (error
// correction, module placement, mask scoring) is delegated to third-party
// encoders; this package validates options, normalises the payload for the
// requested mode, picks an encoder and draws the resulting module matrix.
//
// # Architecture
//
//   - Options carries the generation parameters: module size, margin,
//     version, mode, error-correction level and mask.
//   - An Encoder produces a *Symbol (the module matrix, without quiet zone):
//     SkipEncoder wraps github.com/skip2/go-qrcode, PlanEncoder wraps
//     rsc.io/qr/coding, BarcodeEncoder wraps github.com/boombuler/barcode and
//     MatrixEncoder wraps github.com/yeqown/go-qrcode/v2. NewEncoder selects
//     one by name.
//     AutoEncoder, the default, sends fully automatic requests to skip2 (which
//     scores masks) and requests with a forced mask or a widened mode to the
//     rsc.io planner, which honours every parameter.
//   - Engine.Markup renders a <table class="qrcode"> fragment as a
//     templ.Component.
//   - Engine.Raster and Engine.RasterSource draw the symbol on a Canvas
//     obtained from a Platform and return PNG bytes or a data URI. Hosts that
//     cannot draw use HeadlessPlatform, which always fails with ErrNoCanvas.
//
// # Usage
//
//	engine := qrcode.NewEngine(qrcode.WithCache(128))
//
//	opts := qrcode.DefaultOptions()
//	opts.Mode = qrcode.ModeAlphanumeric
//	opts.Level = qrcode.LevelQ
//
//	fragment, err := engine.Markup("HELLO WORLD", opts)
//	if err != nil {
//		// handle error
//	}
//	_ = fragment.Render(ctx, w)
//
//	src, err := engine.RasterSource("12345678", opts)
//	// src is "data:image/png;base64,..." and can be used in <img src>.
//
// # Payload and mode
//
// Numeric mode accepts digits only. Alphanumeric mode accepts the QR
// alphanumeric set case-insensitively and upper-cases the payload. Octet mode
// accepts anything. A payload that does not fit the mode fails with
// ErrPayloadMode.
//
// # Error Handling
//
// Errors are package-level sentinels wrapped with errors.Join, so callers
// compare them with errors.Is:
//
//   - ErrInvalidOptions: an option is out of range (the joined error is a
//     validator.ValidationErrors listing every bad field).
//   - ErrPayloadMode: the payload cannot be encoded in the requested mode.
//   - ErrPayloadTooLong: the payload does not fit the requested version.
//   - ErrUnsupportedOption: the selected encoder cannot honour an option.
//   - ErrNoCanvas: the platform has no raster surface.
//   - ErrFailedToGenerateQRCode: the underlying library failed.
package qrcode
