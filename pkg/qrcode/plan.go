package qrcode

import (
	"errors"
	"fmt"

	"rsc.io/qr/coding"
)

// PlanEncoder encodes with rsc.io/qr/coding, which honours mode, version and
// mask exactly. Auto version picks the smallest version that fits. The
// planner does not score masks, so an automatic mask falls back to mask 0;
// AutoEncoder only sends it forced masks and empty payloads.
type PlanEncoder struct{}

func (PlanEncoder) Encode(payload string, opts Options) (*Symbol, error) {
	enc := planEncoding(payload, opts.Mode)
	if err := enc.Check(); err != nil {
		return nil, errors.Join(ErrPayloadMode, err)
	}

	level := planLevel(opts.Level)

	version := coding.Version(opts.Version)
	if opts.Version == VersionAuto {
		v, ok := smallestVersion(enc, level)
		if !ok {
			return nil, fmt.Errorf("%w: %d bits exceed version %d", ErrPayloadTooLong, enc.Bits(coding.MaxVersion), MaxVersion)
		}
		version = v
	} else if bits, capacity := enc.Bits(version), version.DataBytes(level)*8; bits > capacity {
		return nil, fmt.Errorf("%w: %d bits exceed %d available in version %d", ErrPayloadTooLong, bits, capacity, opts.Version)
	}

	mask := coding.Mask(0)
	if opts.Mask != MaskAuto {
		mask = coding.Mask(opts.Mask)
	}

	plan, err := coding.NewPlan(version, level, mask)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	code, err := plan.Encode(enc)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}

	sym := newSymbol(code.Size, int(version), int(mask))
	for y := 0; y < code.Size; y++ {
		for x := 0; x < code.Size; x++ {
			sym.set(x, y, code.Black(x, y))
		}
	}
	return sym, nil
}

func planEncoding(payload string, mode Mode) coding.Encoding {
	switch mode {
	case ModeNumeric:
		return coding.Num(payload)
	case ModeAlphanumeric:
		return coding.Alpha(payload)
	default:
		return coding.String(payload)
	}
}

func planLevel(l Level) coding.Level {
	switch l {
	case LevelM:
		return coding.M
	case LevelQ:
		return coding.Q
	case LevelH:
		return coding.H
	default:
		return coding.L
	}
}

func smallestVersion(enc coding.Encoding, level coding.Level) (coding.Version, bool) {
	for v := coding.Version(coding.MinVersion); v <= coding.MaxVersion; v++ {
		if enc.Bits(v) <= v.DataBytes(level)*8 {
			return v, true
		}
	}
	return 0, false
}
