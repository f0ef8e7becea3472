// Command papiliodemo exercises the papilio surface calls against a
// handful of format strings, logging each result via structured
// key/value fields rather than plain text.
package main

import (
	"log/slog"
	"os"

	"github.com/papilio-go/papilio"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	examples := []struct {
		format string
		args   []any
	}{
		{"{}", []any{42}},
		{"{:+06d}", []any{42}},
		{"{:#06x}", []any{10}},
		{"{:^8.5}", []any{"hello!"}},
		{"{.length:*>4}", []any{"hello"}},
		{"{0} warning{${0}>1:'s'}", []any{1}},
		{"{0} warning{${0}>1:'s'}", []any{2}},
	}

	for _, ex := range examples {
		out, err := papilio.Format(ex.format, ex.args...)
		if err != nil {
			logger.Error("format failed", "format", ex.format, "err", err)
			continue
		}
		logger.Info("formatted", "format", ex.format, "result", out)
	}
}
