package qrcode

import (
	"errors"
	"fmt"

	yeqown "github.com/yeqown/go-qrcode/v2"
)

// MatrixEncoder encodes with github.com/yeqown/go-qrcode/v2. It honours
// level, mode and version; the mask is always chosen by the library.
type MatrixEncoder struct{}

func (MatrixEncoder) Encode(payload string, opts Options) (*Symbol, error) {
	if opts.Mask != MaskAuto {
		return nil, fmt.Errorf("%w: matrix encoder selects the mask itself (got %d)", ErrUnsupportedOption, opts.Mask)
	}

	encOpts := []yeqown.EncodeOption{
		matrixLevel(opts.Level),
		matrixMode(opts.Mode),
	}
	if opts.Version != VersionAuto {
		encOpts = append(encOpts, yeqown.WithVersion(opts.Version))
	}

	code, err := yeqown.NewWith(payload, encOpts...)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}

	w := &matrixWriter{}
	if err := code.Save(w); err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return w.sym, nil
}

// matrixWriter copies the module matrix handed over by the library.
type matrixWriter struct {
	sym *Symbol
}

func (w *matrixWriter) Write(mat yeqown.Matrix) error {
	size := mat.Width()
	w.sym = newSymbol(size, versionForSize(size), MaskAuto)
	mat.Iterate(yeqown.IterDirection_ROW, func(x, y int, v yeqown.QRValue) {
		w.sym.set(x, y, v.IsSet())
	})
	return nil
}

func (w *matrixWriter) Close() error { return nil }

func matrixLevel(l Level) yeqown.EncodeOption {
	switch l {
	case LevelM:
		return yeqown.WithErrorCorrectionLevel(yeqown.ErrorCorrectionMedium)
	case LevelQ:
		return yeqown.WithErrorCorrectionLevel(yeqown.ErrorCorrectionQuart)
	case LevelH:
		return yeqown.WithErrorCorrectionLevel(yeqown.ErrorCorrectionHighest)
	default:
		return yeqown.WithErrorCorrectionLevel(yeqown.ErrorCorrectionLow)
	}
}

func matrixMode(m Mode) yeqown.EncodeOption {
	switch m {
	case ModeNumeric:
		return yeqown.WithEncodingMode(yeqown.EncModeNumeric)
	case ModeAlphanumeric:
		return yeqown.WithEncodingMode(yeqown.EncModeAlphanumeric)
	default:
		return yeqown.WithEncodingMode(yeqown.EncModeByte)
	}
}
