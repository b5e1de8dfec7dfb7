package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrgen"
	"github.com/dmitrymomot/qrgen/pkg/binder"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/validator"
)

// ErrorInfo is the classification of an error.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// classifyError maps err to a status code and a message safe to show.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	switch {
	case errors.Is(err, qrcode.ErrNoCanvas):
		info.StatusCode = http.StatusNotImplemented
		info.Message = "raster output is not available"
	case validator.IsValidationError(err),
		errors.Is(err, binder.ErrFailedToParseQuery),
		errors.Is(err, binder.ErrFailedToParseSignals),
		errors.Is(err, qrgen.ErrInvalidAttribute),
		errors.Is(err, qrgen.ErrUnknownAttribute),
		errors.Is(err, qrcode.ErrInvalidOptions),
		errors.Is(err, qrcode.ErrPayloadMode),
		errors.Is(err, qrcode.ErrPayloadTooLong),
		errors.Is(err, qrcode.ErrUnsupportedOption):
		info.StatusCode = http.StatusBadRequest
		info.Message = err.Error()
	}

	info.LogLevel = slog.LevelError
	if isClientError(info.StatusCode) {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler creates an error handler that logs every error. Regular
// requests get a plain-text error; DataStar requests get the message patched
// into the QR code container.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		if !IsDataStar(r) {
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}

		response := Templ(errorFragment(info.Message),
			WithTarget("#"+qrgen.ContainerID),
			WithPatchMode(PatchInner),
		)
		if renderErr := response.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.Error("failed to render error fragment",
				logger.Error(renderErr),
				logger.Event("render_error_fragment"),
			)
		}
	}
}

func errorFragment(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p class="qrcode-error" role="alert">`+templ.EscapeString(message)+`</p>`)
		return err
	})
}
