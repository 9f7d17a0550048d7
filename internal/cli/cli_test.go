package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newLogger(&buf))

	logger.Info("session started")

	out := buf.String()
	if !strings.Contains(out, "run_id="+runID()) {
		t.Errorf("log record missing run_id %q: %q", runID(), out)
	}
}
