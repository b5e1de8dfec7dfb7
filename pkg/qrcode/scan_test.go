package qrcode_test

import (
	"fmt"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxing "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

// TestRasterScans renders every encoder's output and reads it back with an
// independent decoder.
func TestRasterScans(t *testing.T) {
	t.Parallel()

	encoders := map[string]qrcode.Encoder{
		"auto":    qrcode.AutoEncoder{},
		"skip2":   qrcode.SkipEncoder{},
		"rsc":     qrcode.PlanEncoder{},
		"barcode": qrcode.BarcodeEncoder{},
		"matrix":  qrcode.MatrixEncoder{},
	}
	payloads := []struct {
		mode qrcode.Mode
		in   string
		want string
	}{
		{mode: qrcode.ModeNumeric, in: "12345678", want: "12345678"},
		{mode: qrcode.ModeAlphanumeric, in: "LostInBrittany", want: "LOSTINBRITTANY"},
		{mode: qrcode.ModeOctet, in: "hello, world", want: "hello, world"},
	}
	levels := []qrcode.Level{qrcode.LevelL, qrcode.LevelH}

	for name, enc := range encoders {
		engine := qrcode.NewEngine(qrcode.WithEncoder(enc))
		for _, p := range payloads {
			for _, level := range levels {
				t.Run(fmt.Sprintf("%s/%s/%s", name, p.mode, level), func(t *testing.T) {
					t.Parallel()

					opts := qrcode.DefaultOptions()
					opts.Mode = p.mode
					opts.Level = level

					data, _, err := engine.Raster(p.in, opts)
					require.NoError(t, err)

					bmp, err := gozxing.NewBinaryBitmapFromImage(decodePNG(t, data))
					require.NoError(t, err)
					res, err := zxing.NewQRCodeReader().Decode(bmp, nil)
					require.NoError(t, err)
					assert.Equal(t, p.want, res.GetText())
				})
			}
		}
	}
}

func TestRasterScansForcedMask(t *testing.T) {
	t.Parallel()

	engine := qrcode.NewEngine()
	for mask := 0; mask < 8; mask++ {
		t.Run(fmt.Sprintf("mask %d", mask), func(t *testing.T) {
			t.Parallel()

			opts := qrcode.DefaultOptions()
			opts.Mask = mask
			opts.Version = 2

			data, _, err := engine.Raster("31415926535", opts)
			require.NoError(t, err)

			bmp, err := gozxing.NewBinaryBitmapFromImage(decodePNG(t, data))
			require.NoError(t, err)
			res, err := zxing.NewQRCodeReader().Decode(bmp, nil)
			require.NoError(t, err)
			assert.Equal(t, "31415926535", res.GetText())
		})
	}
}
