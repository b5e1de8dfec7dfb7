package qrcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/qrgen/pkg/validator"
)

// Level is the error-correction level.
type Level string

const (
	LevelL Level = "L" // ~7% recovery
	LevelM Level = "M" // ~15% recovery
	LevelQ Level = "Q" // ~25% recovery
	LevelH Level = "H" // ~30% recovery
)

// Levels lists the valid error-correction levels.
func Levels() []Level { return []Level{LevelL, LevelM, LevelQ, LevelH} }

// Mode is the payload encoding mode.
type Mode string

const (
	ModeNumeric      Mode = "numeric"
	ModeAlphanumeric Mode = "alphanumeric"
	ModeOctet        Mode = "octet"
)

// Modes lists the valid encoding modes, narrowest first.
func Modes() []Mode { return []Mode{ModeNumeric, ModeAlphanumeric, ModeOctet} }

const (
	MaskAuto    = -1
	MaxMask     = 7
	VersionAuto = -1
	MinVersion  = 1
	MaxVersion  = 40

	DefaultMargin     = 4
	MinMargin         = -1
	DefaultModuleSize = 5.0
	MinModuleSize     = 0.5
)

// Options are the generation parameters handed to the engine.
type Options struct {
	ModuleSize float64 // pixels per module, >= 0.5
	Margin     int     // quiet zone in modules; negative means DefaultMargin
	Version    int     // 1..40, or VersionAuto
	Mode       Mode
	Level      Level
	Mask       int // 0..7, or MaskAuto
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ModuleSize: DefaultModuleSize,
		Margin:     DefaultMargin,
		Version:    VersionAuto,
		Mode:       ModeNumeric,
		Level:      LevelL,
		Mask:       MaskAuto,
	}
}

// Rules returns the validation rules for o. Field names match the qrgen
// attribute names.
func (o Options) Rules() []validator.Rule {
	return []validator.Rule{
		validator.OneOf("ecclevel", o.Level, Levels()),
		validator.RangeOr("mask", o.Mask, 0, MaxMask, MaskAuto),
		validator.OneOf("mode", o.Mode, Modes()),
		validator.Min("modulesize", o.ModuleSize, MinModuleSize),
		validator.Finite("modulesize", o.ModuleSize),
		validator.RangeOr("version", o.Version, MinVersion, MaxVersion, VersionAuto),
		validator.Min("margin", o.Margin, MinMargin),
	}
}

// Validate checks every option and reports all failures at once.
func (o Options) Validate() error {
	if err := validator.Apply(o.Rules()...); err != nil {
		return errors.Join(ErrInvalidOptions, err)
	}
	return nil
}

// margin resolves the quiet zone width in modules.
func (o Options) margin() int {
	if o.Margin < 0 {
		return DefaultMargin
	}
	return o.Margin
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// NormalizePayload checks payload against mode and returns the text that
// will actually be encoded.
func NormalizePayload(payload string, mode Mode) (string, error) {
	switch mode {
	case ModeNumeric:
		for _, r := range payload {
			if r < '0' || r > '9' {
				return "", errors.Join(ErrPayloadMode, fmt.Errorf("%q is not a digit", r))
			}
		}
		return payload, nil
	case ModeAlphanumeric:
		// ASCII letters only: Unicode folding maps "ı" to "I" and "ſ" to "S"
		upper := strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' {
				return r - 'a' + 'A'
			}
			return r
		}, payload)
		for _, r := range upper {
			if !strings.ContainsRune(alphanumericCharset, r) {
				return "", errors.Join(ErrPayloadMode, fmt.Errorf("%q is not in the alphanumeric set", r))
			}
		}
		return upper, nil
	case ModeOctet:
		return payload, nil
	default:
		return "", errors.Join(ErrInvalidOptions, fmt.Errorf("unknown mode %q", mode))
	}
}

// DetectMode returns the narrowest mode able to encode payload as is.
func DetectMode(payload string) Mode {
	numeric, alnum := true, true
	for _, r := range payload {
		if r < '0' || r > '9' {
			numeric = false
		}
		if !strings.ContainsRune(alphanumericCharset, r) {
			alnum = false
		}
	}
	switch {
	case numeric:
		return ModeNumeric
	case alnum:
		return ModeAlphanumeric
	default:
		return ModeOctet
	}
}
