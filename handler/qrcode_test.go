package handler_test

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen"
	"github.com/dmitrymomot/qrgen/handler"
	"github.com/dmitrymomot/qrgen/pkg/binder"
	"github.com/dmitrymomot/qrgen/pkg/broadcast"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/requestid"
)

func routes(qr *handler.QRCode) (page, image http.HandlerFunc) {
	errs := handler.NewErrorHandler(logger.Discard())
	page = handler.Wrap[handler.Context, handler.Attributes](qr.Page,
		handler.WithBinders[handler.Context, handler.Attributes](binder.Query(), binder.Signals()),
		handler.WithErrorHandler[handler.Context, handler.Attributes](errs),
	)
	image = handler.Wrap[handler.Context, handler.Attributes](qr.Image,
		handler.WithBinders[handler.Context, handler.Attributes](binder.Query()),
		handler.WithErrorHandler[handler.Context, handler.Attributes](errs),
	)
	return page, image
}

func newQRCode(opts ...handler.QRCodeOption) *handler.QRCode {
	opts = append([]handler.QRCodeOption{handler.WithLogger(logger.Discard())}, opts...)
	return handler.NewQRCode(qrcode.NewEngine(), qrgen.DefaultConfig(), opts...)
}

func serve(h http.HandlerFunc, target string, header ...string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		r.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func TestPage(t *testing.T) {
	t.Parallel()

	page, _ := routes(newQRCode())

	t.Run("renders markup inside the page", func(t *testing.T) {
		t.Parallel()
		w := serve(page, "/?data=12345678")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, `<div id="qrCodeContainer"><table class="qrcode"`)
		assert.Contains(t, body, "data-signals=")
		assert.Contains(t, body, handler.DataStarScript)
	})

	t.Run("renders raster image", func(t *testing.T) {
		t.Parallel()
		w := serve(page, "/?data=12345678&format=png")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<div id="qrCodeContainer"><img class="qrcode" alt="QR code" src="data:image/png;base64,`)
	})

	t.Run("invalid attribute leaves container empty", func(t *testing.T) {
		t.Parallel()
		w := serve(page, "/?data=1&mode=xyz")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<div id="qrCodeContainer"></div>`)
	})

	t.Run("payload outside mode leaves container empty", func(t *testing.T) {
		t.Parallel()
		w := serve(page, "/?data=LostInBrittany")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<div id="qrCodeContainer"></div>`)
	})

	t.Run("unparsable number", func(t *testing.T) {
		t.Parallel()
		w := serve(page, "/?version=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("datastar request patches the container", func(t *testing.T) {
		t.Parallel()
		signals := url.QueryEscape(`{"data":"LostInBrittany","mode":"alphanumeric","modulesize":2}`)
		w := serve(page, "/?datastar="+signals, "Accept", "text/event-stream")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "qrCodeContainer")
		assert.Contains(t, body, `<table class="qrcode"`)
		assert.NotContains(t, body, "<!DOCTYPE html>")
	})

	t.Run("datastar error is patched into the container", func(t *testing.T) {
		t.Parallel()
		signals := url.QueryEscape(`{"version":"abc"}`)
		w := serve(page, "/?datastar="+signals, "Accept", "text/event-stream")

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "qrcode-error")
	})
}

func TestPageBubblesEvents(t *testing.T) {
	t.Parallel()

	doc := broadcast.NewMemoryBroadcaster[qrgen.Event](4)
	defer doc.Close()
	sub := doc.Subscribe(context.Background())

	page, _ := routes(newQRCode(handler.WithDocument(doc)))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/?data=42&auto", nil)
	r.Header.Set(requestid.Header, "req-42")
	requestid.Middleware(page).ServeHTTP(w, r)

	select {
	case msg := <-sub.Receive(context.Background()):
		assert.Equal(t, qrgen.EventGenerated, msg.Data.Name)
		assert.Equal(t, "req-42", msg.Data.SourceID)
	case <-time.After(time.Second):
		t.Fatal("no generated event on the document bus")
	}

	select {
	case <-sub.Receive(context.Background()):
		t.Fatal("auto and explicit generation must not both run")
	default:
	}
}

func TestImage(t *testing.T) {
	t.Parallel()

	t.Run("returns png", func(t *testing.T) {
		t.Parallel()
		_, image := routes(newQRCode())
		w := serve(image, "/qrcode.png?data=12345678&modulesize=2&margin=0")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, 42, img.Bounds().Dx())
	})

	t.Run("invalid attributes", func(t *testing.T) {
		t.Parallel()
		_, image := routes(newQRCode())

		assert.Equal(t, http.StatusBadRequest, serve(image, "/qrcode.png?mode=xyz").Code)
		assert.Equal(t, http.StatusBadRequest, serve(image, "/qrcode.png?mask=9").Code)
		assert.Equal(t, http.StatusBadRequest, serve(image, "/qrcode.png?data=abc").Code)
		assert.Equal(t, http.StatusBadRequest, serve(image, "/qrcode.png?colour=red&margin=x").Code)
	})

	t.Run("oversized image is a bad request", func(t *testing.T) {
		t.Parallel()
		_, image := routes(newQRCode())
		assert.Equal(t, http.StatusBadRequest, serve(image, "/qrcode.png?data=1&modulesize=2000").Code)
	})

	t.Run("generates through the component", func(t *testing.T) {
		t.Parallel()
		doc := broadcast.NewMemoryBroadcaster[qrgen.Event](4)
		defer doc.Close()
		sub := doc.Subscribe(context.Background())

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		_, image := routes(newQRCode(handler.WithDocument(doc), handler.WithLogger(log)))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/qrcode.png?data=7", nil)
		r.Header.Set(requestid.Header, "img-7")
		requestid.Middleware(image).ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)

		select {
		case msg := <-sub.Receive(context.Background()):
			assert.Equal(t, qrgen.EventGenerated, msg.Data.Name)
			assert.Equal(t, "img-7", msg.Data.SourceID)
		case <-time.After(time.Second):
			t.Fatal("no generated event for the image request")
		}

		w = serve(image, "/qrcode.png?data=7&mask=9&ecclevel=Z")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		out := buf.String()
		assert.Contains(t, out, `"field":"mask"`)
		assert.Contains(t, out, `"field":"ecclevel"`)
	})

	t.Run("headless engine", func(t *testing.T) {
		t.Parallel()
		engine := qrcode.NewEngine(qrcode.WithPlatform(qrcode.HeadlessPlatform{}))
		qr := handler.NewQRCode(engine, qrgen.DefaultConfig(), handler.WithLogger(logger.Discard()))
		_, image := routes(qr)

		assert.Equal(t, http.StatusNotImplemented, serve(image, "/qrcode.png?data=1").Code)
	})
}
