package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sabur-pro/rayan-admin/internal/logger"
)

func TestEventsCarryStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Info().Str("component", "ledger").Int("count", 3).Msg("loaded")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}

	if entry["component"] != "ledger" {
		t.Fatalf("expected component=ledger, got %v", entry["component"])
	}
	if entry["message"] != "loaded" {
		t.Fatalf("expected message=loaded, got %v", entry["message"])
	}
	if entry["count"] != float64(3) {
		t.Fatalf("expected count=3, got %v", entry["count"])
	}
}

func TestWarnLevelTag(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Warn().Msg("recovered to defaults")

	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("expected warn level in output, got %q", buf.String())
	}
}
