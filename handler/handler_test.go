package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrgen/handler"
)

type echoRequest struct {
	Name string `query:"name"`
}

type textResponse string

func (t textResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	_, err := w.Write([]byte(t))
	return err
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(handler.HandlerFunc[handler.Context, echoRequest](func(_ handler.Context, req echoRequest) handler.Response {
			return textResponse("hello " + req.Name)
		}), handler.WithBinders[handler.Context, echoRequest](func(r *http.Request, v any) error {
			v.(*echoRequest).Name = r.URL.Query().Get("name")
			return nil
		}))

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/?name=qr", nil))
		assert.Equal(t, "hello qr", w.Body.String())
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(handler.HandlerFunc[handler.Context, echoRequest](func(handler.Context, echoRequest) handler.Response {
			return nil
		}))

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("binder error is a bad request", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(handler.HandlerFunc[handler.Context, echoRequest](func(handler.Context, echoRequest) handler.Response {
			return textResponse("unreachable")
		}), handler.WithBinders[handler.Context, echoRequest](func(*http.Request, any) error {
			return errors.New("boom")
		}))

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error response uses the status of HTTPError", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(handler.HandlerFunc[handler.Context, echoRequest](func(handler.Context, echoRequest) handler.Response {
			return handler.Error(handler.NewHTTPError(http.StatusTeapot, "teapot"))
		}))

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, w.Code)
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(r))

	r.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(r))

	assert.True(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)))
}
