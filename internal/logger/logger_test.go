package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	env := map[string]string{
		EnvLevel:  "debug",
		EnvFormat: "json",
	}
	cfg, ok := ConfigFromEnv(func(k string) string { return env[k] })
	if !ok {
		t.Fatal("expected logging to be enabled")
	}
	if cfg.Level != LevelDebug || cfg.Format != "json" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, ok := ConfigFromEnv(func(string) string { return "" }); ok {
		t.Error("expected logging to stay disabled without " + EnvLevel)
	}
}

func TestSilentUntilInit(t *testing.T) {
	Reset()
	// Must not panic with no logger configured.
	Info("nothing")

	var buf bytes.Buffer
	if err := Init(Config{Level: LevelDebug, Format: "text", Output: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Reset()

	LogTargetResolved("aarch64--netbsd", "program-name")
	if !strings.Contains(buf.String(), "triple=aarch64--netbsd") {
		t.Errorf("expected triple in log output, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Level: LevelInfo, Output: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Reset()

	Debug("hidden")
	Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("messages below info leaked: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("info message missing: %q", buf.String())
	}
}

func TestLogFileClosedOnReinit(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	if err := Init(Config{Level: LevelDebug, LogFile: first}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	opened := logFile
	Info("to first")

	if err := Init(Config{Level: LevelDebug, LogFile: second}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := opened.Close(); err == nil {
		t.Error("the first log file was left open")
	}
	Info("to second")

	Reset()
	if logFile != nil {
		t.Error("Reset kept the log file")
	}

	data, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "to second") || strings.Contains(string(data), "to first") {
		t.Errorf("second log = %q", data)
	}
}
