package qrgen

import "errors"

var (
	// ErrUnknownAttribute is returned by SetAttribute for unrecognised names.
	ErrUnknownAttribute = errors.New("unknown qrcode attribute")
	// ErrInvalidAttribute is returned by SetAttribute when a value cannot be parsed.
	ErrInvalidAttribute = errors.New("invalid qrcode attribute value")
	// ErrNotRaster is returned by Result.Image for results without image data.
	ErrNotRaster = errors.New("qrcode result is not a raster image")
)
