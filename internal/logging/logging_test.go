package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/olivier-w/orbfield/internal/config"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "debug"}, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected no-op logger to drop everything")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "orbfield.log")
	logger, err := New(config.LoggingConfig{Level: "warn", File: path}, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "dropped") {
		t.Fatalf("expected info entry filtered, got %s", data)
	}
	if !strings.Contains(string(data), `"msg":"kept"`) {
		t.Fatalf("expected warn entry, got %s", data)
	}
}

func TestVerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbfield.log")
	logger, err := New(config.LoggingConfig{Level: "error", File: path}, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected debug to be enabled")
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "shout", File: filepath.Join(t.TempDir(), "x.log")}, false)
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
}
