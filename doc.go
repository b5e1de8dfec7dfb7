// Package qrgen provides a declarative QR code component.
//
// A Generator holds the attributes of one QR code (payload, error-correction
// level, output format, module size, margin, mask, encoding mode and version),
// validates them, delegates encoding to a qrcode.Engine and keeps the last
// successful result. It renders that result inside a container and notifies
// listeners with a "qrcode-generated" event after every successful generation.
//
// Basic Usage:
//
//	gen := qrgen.New()
//	gen.SetData("12345678")
//	gen.SetFormat(qrgen.FormatRaster)
//	gen.Generate(ctx)
//
//	_ = gen.Render(ctx, w) // <div id="qrCodeContainer"><img ...></div>
//
// Automatic regeneration:
//
// Mutations are batched. After a batch, Update settles it and regenerates when
// auto is enabled and at least one of auto, data, ecclevel, mask, mode or
// version changed. Changes to format, margin, modulesize and debug never
// regenerate on their own.
//
//	gen.SetAuto(true)
//	gen.SetData("HELLO")
//	gen.Update(ctx) // generates
//
//	gen.SetFormat(qrgen.FormatRaster)
//	gen.Update(ctx) // does not generate
//
// Attributes can also be set from strings, which is how the HTTP handler maps
// query parameters:
//
//	if err := gen.SetAttribute("version", "5"); err != nil {
//		// errors.Is(err, qrgen.ErrInvalidAttribute)
//	}
//
// Errors:
//
// Generate and Update never return errors. Invalid attributes are logged one
// per field and abort the attempt; engine failures (payload incompatible with
// mode, payload too long for version, no raster surface) are logged as well.
// In both cases the previous result is kept and no event is emitted. Use Check
// to get the aggregated validator.ValidationErrors programmatically.
package qrgen
