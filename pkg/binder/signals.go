package binder

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// SignalsQueryParam is the query parameter DataStar uses for GET requests.
const SignalsQueryParam = "datastar"

// DefaultMaxSignalsSize caps the size of a signals payload (64KB).
const DefaultMaxSignalsSize = 64 << 10

// Signals creates a binder for DataStar signals using the `json` struct tag.
// Only top-level scalar signals are bound; nested objects are ignored.
// Requests without signals return ErrBinderNotApplicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		raw, err := readSignals(r)
		if err != nil {
			return err
		}

		var signals map[string]any
		if err := json.Unmarshal(raw, &signals); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseSignals, err)
		}

		values := make(map[string][]string, len(signals))
		for name, signal := range signals {
			if s, ok := scalar(signal); ok {
				values[name] = []string{s}
			}
		}
		return bindToStruct(v, "json", values, ErrFailedToParseSignals)
	}
}

func readSignals(r *http.Request) ([]byte, error) {
	if r.Method == http.MethodGet || r.Method == http.MethodDelete {
		q := r.URL.Query()
		if !q.Has(SignalsQueryParam) {
			return nil, ErrBinderNotApplicable
		}
		return []byte(q.Get(SignalsQueryParam)), nil
	}

	if r.Body == nil || !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return nil, ErrBinderNotApplicable
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxSignalsSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseSignals, err)
	}
	if len(body) > DefaultMaxSignalsSize {
		return nil, fmt.Errorf("%w: payload too large (max %d bytes)", ErrFailedToParseSignals, DefaultMaxSignalsSize)
	}
	return body, nil
}

func scalar(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}
