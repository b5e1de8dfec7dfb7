package qrgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

// Attribute names.
const (
	AttrAuto       = "auto"
	AttrData       = "data"
	AttrDebug      = "debug"
	AttrECCLevel   = "ecclevel"
	AttrFormat     = "format"
	AttrMargin     = "margin"
	AttrMask       = "mask"
	AttrMode       = "mode"
	AttrModuleSize = "modulesize"
	AttrVersion    = "version"
)

// autoTriggers are the attributes whose change regenerates an auto generator.
var autoTriggers = map[string]bool{
	AttrAuto:     true,
	AttrData:     true,
	AttrECCLevel: true,
	AttrMask:     true,
	AttrMode:     true,
	AttrVersion:  true,
}

func (g *Generator) Auto() bool             { return g.auto }
func (g *Generator) Data() string           { return g.data }
func (g *Generator) Debug() bool            { return g.debug }
func (g *Generator) ECCLevel() qrcode.Level { return g.ecclevel }
func (g *Generator) Format() Format         { return g.format }
func (g *Generator) Margin() int            { return g.margin }
func (g *Generator) Mask() int              { return g.mask }
func (g *Generator) Mode() qrcode.Mode      { return g.mode }
func (g *Generator) ModuleSize() float64    { return g.modulesize }
func (g *Generator) Version() int           { return g.version }

func (g *Generator) SetAuto(v bool)             { set(g, AttrAuto, &g.auto, v) }
func (g *Generator) SetData(v string)           { set(g, AttrData, &g.data, v) }
func (g *Generator) SetDebug(v bool)            { set(g, AttrDebug, &g.debug, v) }
func (g *Generator) SetECCLevel(v qrcode.Level) { set(g, AttrECCLevel, &g.ecclevel, v) }
func (g *Generator) SetFormat(v Format)         { set(g, AttrFormat, &g.format, v) }
func (g *Generator) SetMargin(v int)            { set(g, AttrMargin, &g.margin, v) }
func (g *Generator) SetMask(v int)              { set(g, AttrMask, &g.mask, v) }
func (g *Generator) SetMode(v qrcode.Mode)      { set(g, AttrMode, &g.mode, v) }
func (g *Generator) SetModuleSize(v float64)    { set(g, AttrModuleSize, &g.modulesize, v) }
func (g *Generator) SetVersion(v int)           { set(g, AttrVersion, &g.version, v) }

// set stores value and records name as changed. Equal values are not changes.
func set[T comparable](g *Generator, name string, field *T, value T) {
	if *field == value {
		return
	}
	*field = value
	g.changed[name] = struct{}{}
}

// Changed returns the sorted names of attributes changed since the last Update.
func (g *Generator) Changed() []string {
	return slices.Sorted(maps.Keys(g.changed))
}

// Update settles a batch of attribute changes. When auto is on and an
// auto-trigger attribute changed, it generates.
func (g *Generator) Update(ctx context.Context) {
	changed := g.Changed()
	clear(g.changed)
	if len(changed) == 0 {
		return
	}

	g.trace(ctx, "update", slog.Any("changed", changed))

	if !g.auto {
		return
	}
	if slices.ContainsFunc(changed, func(name string) bool { return autoTriggers[name] }) {
		g.Generate(ctx)
	}
}

// SetAttribute sets an attribute from its string form. Booleans follow HTML
// semantics: an empty value or the attribute's own name means true. Enum values
// are stored verbatim and checked by Validate; "html" and "png" are accepted
// as aliases of the markup and raster formats.
func (g *Generator) SetAttribute(name, value string) error {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case AttrAuto, AttrDebug:
		b, err := parseBool(name, value)
		if err != nil {
			return err
		}
		if name == AttrAuto {
			g.SetAuto(b)
		} else {
			g.SetDebug(b)
		}
	case AttrData:
		g.SetData(value)
	case AttrECCLevel:
		g.SetECCLevel(qrcode.Level(strings.TrimSpace(value)))
	case AttrFormat:
		g.SetFormat(parseFormat(value))
	case AttrMode:
		g.SetMode(qrcode.Mode(strings.TrimSpace(value)))
	case AttrMargin, AttrMask, AttrVersion:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return invalidAttribute(name, value, err)
		}
		switch name {
		case AttrMargin:
			g.SetMargin(n)
		case AttrMask:
			g.SetMask(n)
		default:
			g.SetVersion(n)
		}
	case AttrModuleSize:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return invalidAttribute(name, value, err)
		}
		g.SetModuleSize(f)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	return nil
}

func parseBool(name, value string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == name {
		return true, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, invalidAttribute(name, value, err)
	}
	return b, nil
}

func parseFormat(value string) Format {
	switch v := strings.TrimSpace(value); v {
	case "html":
		return FormatMarkup
	case "png":
		return FormatRaster
	default:
		return Format(v)
	}
}

func invalidAttribute(name, value string, err error) error {
	return errors.Join(ErrInvalidAttribute, fmt.Errorf("%s=%q: %w", name, value, err))
}
