package qrcode

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/boombuler/barcode/qr"
)

// BarcodeEncoder encodes with github.com/boombuler/barcode/qr. It honours
// level and mode; version and mask are always chosen by the library.
type BarcodeEncoder struct{}

func (BarcodeEncoder) Encode(payload string, opts Options) (*Symbol, error) {
	if opts.Version != VersionAuto {
		return nil, fmt.Errorf("%w: barcode selects the version itself (got %d)", ErrUnsupportedOption, opts.Version)
	}
	if opts.Mask != MaskAuto {
		return nil, fmt.Errorf("%w: barcode selects the mask itself (got %d)", ErrUnsupportedOption, opts.Mask)
	}

	code, err := qr.Encode(payload, barcodeLevel(opts.Level), barcodeMode(opts.Mode))
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}

	bounds := code.Bounds()
	size := bounds.Dx()
	sym := newSymbol(size, versionForSize(size), MaskAuto)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g := color.GrayModel.Convert(code.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			sym.set(x, y, g.Y < 0x80)
		}
	}
	return sym, nil
}

func barcodeLevel(l Level) qr.ErrorCorrectionLevel {
	switch l {
	case LevelM:
		return qr.M
	case LevelQ:
		return qr.Q
	case LevelH:
		return qr.H
	default:
		return qr.L
	}
}

func barcodeMode(m Mode) qr.Encoding {
	switch m {
	case ModeNumeric:
		return qr.Numeric
	case ModeAlphanumeric:
		return qr.AlphaNumeric
	default:
		return qr.Unicode
	}
}
