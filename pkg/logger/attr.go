package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
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

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records the label of a check under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Depth records how deep a check sits in its branch, 0 for top-level checks.
func Depth(depth int) slog.Attr {
	return slog.Int("depth", depth)
}

// Skipped records the number of child checks not evaluated.
func Skipped(n int) slog.Attr {
	return slog.Int("skipped", n)
}

// Count records the number of registered checks under the key "checks".
func Count(n int) slog.Attr {
	return slog.Int("checks", n)
}

// Failures records the number of collected failures.
func Failures(n int) slog.Attr {
	return slog.Int("failures", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// File records a file path under the key "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// Record records a record identifier under the key "record".
func Record(id string) slog.Attr {
	return slog.String("record", id)
}
