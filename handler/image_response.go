package handler

import (
	"net/http"
	"strconv"
)

type imageResponse struct {
	data []byte
	mime string
}

// Image creates a response writing raw image bytes.
func Image(data []byte, mime string) Response {
	return imageResponse{data: data, mime: mime}
}

func (i imageResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", i.mime)
	w.Header().Set("Content-Length", strconv.Itoa(len(i.data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(i.data)
	return err
}

type errorResponse struct {
	err error
}

// Error creates a response that hands err to the error handler.
func Error(err error) Response {
	return errorResponse{err: err}
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}
