package logger

import (
	"log/slog"
	"strconv"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under the key "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Field records the name of an offending attribute.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Value records an offending attribute value.
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}

func SourceID(id string) slog.Attr {
	return slog.String("source_id", id)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
