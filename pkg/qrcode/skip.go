package qrcode

import (
	"errors"
	"fmt"

	skipqrcode "github.com/skip2/go-qrcode"
)

// SkipEncoder encodes with github.com/skip2/go-qrcode. The library picks the
// segment encoding and scores all eight masks, so a forced mask is rejected.
type SkipEncoder struct{}

func (SkipEncoder) Encode(payload string, opts Options) (*Symbol, error) {
	if opts.Mask != MaskAuto {
		return nil, fmt.Errorf("%w: skip2 selects the mask itself (got %d)", ErrUnsupportedOption, opts.Mask)
	}

	var (
		q   *skipqrcode.QRCode
		err error
	)
	if opts.Version == VersionAuto {
		q, err = skipqrcode.New(payload, skipLevel(opts.Level))
	} else {
		q, err = skipqrcode.NewWithForcedVersion(payload, opts.Version, skipLevel(opts.Level))
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}

	// margin is drawn by the renderers
	q.DisableBorder = true
	bitmap := q.Bitmap()

	sym := newSymbol(len(bitmap), q.VersionNumber, MaskAuto)
	for y, row := range bitmap {
		for x, dark := range row {
			sym.set(x, y, dark)
		}
	}
	return sym, nil
}

func skipLevel(l Level) skipqrcode.RecoveryLevel {
	switch l {
	case LevelM:
		return skipqrcode.Medium
	case LevelQ:
		return skipqrcode.High
	case LevelH:
		return skipqrcode.Highest
	default:
		return skipqrcode.Low
	}
}
