package qrcode

import (
	"fmt"
	"strings"
)

// Encoder turns a normalised payload into a Symbol.
type Encoder interface {
	Encode(payload string, opts Options) (*Symbol, error)
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(payload string, opts Options) (*Symbol, error)

func (f EncoderFunc) Encode(payload string, opts Options) (*Symbol, error) {
	return f(payload, opts)
}

// AutoEncoder routes requests so that an automatic mask is always scored by
// a library. skip2 takes them when it may pick everything itself (non-empty
// payload, mode equal to the narrowest fitting mode), the yeqown encoder
// takes the other automatic-mask requests, and the rsc.io planner takes
// forced masks. An empty payload the yeqown encoder refuses falls back to the
// planner.
type AutoEncoder struct {
	Skip   SkipEncoder
	Matrix MatrixEncoder
	Plan   PlanEncoder
}

func (a AutoEncoder) Encode(payload string, opts Options) (*Symbol, error) {
	if opts.Mask != MaskAuto {
		return a.Plan.Encode(payload, opts)
	}
	if payload != "" && DetectMode(payload) == opts.Mode {
		return a.Skip.Encode(payload, opts)
	}

	sym, err := a.Matrix.Encode(payload, opts)
	if err != nil && payload == "" {
		return a.Plan.Encode(payload, opts)
	}
	return sym, err
}

// NewEncoder returns the encoder registered under name:
// "auto" (or empty), "skip2", "rsc", "barcode" or "matrix".
func NewEncoder(name string) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return AutoEncoder{}, nil
	case "skip2":
		return SkipEncoder{}, nil
	case "rsc":
		return PlanEncoder{}, nil
	case "barcode":
		return BarcodeEncoder{}, nil
	case "matrix":
		return MatrixEncoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoder, name)
	}
}
