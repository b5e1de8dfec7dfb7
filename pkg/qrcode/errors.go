package qrcode

import "errors"

var (
	// ErrInvalidOptions is returned when Options fail validation.
	ErrInvalidOptions = errors.New("invalid qrcode options")
	// ErrPayloadMode is returned when the payload cannot be encoded in the requested mode.
	ErrPayloadMode = errors.New("payload is not compatible with encoding mode")
	// ErrPayloadTooLong is returned when the payload does not fit the requested version.
	ErrPayloadTooLong = errors.New("payload too long for qrcode version")
	// ErrUnsupportedOption is returned when an encoder cannot honour an option.
	ErrUnsupportedOption = errors.New("option not supported by encoder")
	// ErrUnknownEncoder is returned by NewEncoder for unknown encoder names.
	ErrUnknownEncoder = errors.New("unknown qrcode encoder")
	// ErrNoCanvas is returned when the platform cannot create a raster surface.
	ErrNoCanvas = errors.New("raster surface is not available")
	// ErrFailedToGenerateQRCode is returned when the underlying library fails.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
)
