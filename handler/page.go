package handler

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrgen"
)

// DataStarScript is the client bundle loaded by the page.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// page renders a standalone document with inputs bound to DataStar signals.
// Editing an input re-requests the page and patches the container.
func page(gen *qrgen.Generator) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		signals, err := json.Marshal(map[string]any{
			qrgen.AttrAuto:       strconv.FormatBool(gen.Auto()),
			qrgen.AttrData:       gen.Data(),
			qrgen.AttrECCLevel:   string(gen.ECCLevel()),
			qrgen.AttrFormat:     string(gen.Format()),
			qrgen.AttrMargin:     gen.Margin(),
			qrgen.AttrMask:       gen.Mask(),
			qrgen.AttrMode:       string(gen.Mode()),
			qrgen.AttrModuleSize: gen.ModuleSize(),
			qrgen.AttrVersion:    gen.Version(),
		})
		if err != nil {
			return err
		}

		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<title>QR code</title>` +
			`<script type="module" src="` + DataStarScript + `"></script>` +
			`</head><body>` +
			`<form data-signals='` + templ.EscapeString(string(signals)) + `'` +
			` data-on-input__debounce.300ms="@get('/')" data-on-submit__prevent="@get('/')">` +
			`<input type="text" name="data" placeholder="payload" data-bind-data>` +
			selectInput("mode", "numeric", "alphanumeric", "octet") +
			selectInput("ecclevel", "L", "M", "Q", "H") +
			selectInput("format", "markup", "raster") +
			`<input type="number" name="modulesize" min="0.5" step="0.5" data-bind-modulesize>` +
			`<input type="number" name="margin" min="-1" data-bind-margin>` +
			`<input type="number" name="mask" min="-1" max="7" data-bind-mask>` +
			`<input type="number" name="version" min="-1" max="40" data-bind-version>` +
			`</form>`

		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := gen.Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</body></html>`)
		return err
	})
}

func selectInput(name string, options ...string) string {
	s := `<select name="` + name + `" data-bind-` + name + `>`
	for _, o := range options {
		s += `<option value="` + o + `">` + o + `</option>`
	}
	return s + `</select>`
}
