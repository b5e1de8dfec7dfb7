package qrgen

import (
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

// Format selects the output produced by Generate.
type Format string

const (
	FormatMarkup Format = "markup"
	FormatRaster Format = "raster"
)

// Formats lists the valid output formats.
func Formats() []Format { return []Format{FormatMarkup, FormatRaster} }

// Config holds the initial attribute values of a Generator.
type Config struct {
	Auto       bool    `env:"QRCODE_AUTO" envDefault:"false"`
	Data       string  `env:"QRCODE_DATA"`
	Debug      bool    `env:"QRCODE_DEBUG" envDefault:"false"`
	ECCLevel   string  `env:"QRCODE_ECC_LEVEL" envDefault:"L"`
	Format     string  `env:"QRCODE_FORMAT" envDefault:"markup"`
	Margin     int     `env:"QRCODE_MARGIN" envDefault:"4"`
	Mask       int     `env:"QRCODE_MASK" envDefault:"-1"`
	Mode       string  `env:"QRCODE_MODE" envDefault:"numeric"`
	ModuleSize float64 `env:"QRCODE_MODULE_SIZE" envDefault:"5"`
	Version    int     `env:"QRCODE_VERSION" envDefault:"-1"`
}

// DefaultConfig returns the documented attribute defaults.
func DefaultConfig() Config {
	opts := qrcode.DefaultOptions()
	return Config{
		ECCLevel:   string(opts.Level),
		Format:     string(FormatMarkup),
		Margin:     opts.Margin,
		Mask:       opts.Mask,
		Mode:       string(opts.Mode),
		ModuleSize: opts.ModuleSize,
		Version:    opts.Version,
	}
}
