package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathDefaultDir(t *testing.T) {
	tempDir := t.TempDir()
	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalDir)
	}()

	path, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolveLogFilePath: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(defaultLogDirName, defaultLogFilename)) {
		t.Fatalf("unexpected log path: %s", path)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
}

func TestNewReleaseWritesToConfiguredFile(t *testing.T) {
	tempDir := t.TempDir()
	options := Options{
		Dir:      tempDir,
		Filename: "api.log",
	}

	instance := New("release", options)
	if instance == nil {
		t.Fatalf("expected logger instance")
	}
	instance.Sugar().Infow("startup_check", "component", "logger")
	_ = instance.Sync()

	content, err := os.ReadFile(filepath.Join(tempDir, "api.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "startup_check") {
		t.Fatalf("log entry missing from file: %s", string(content))
	}
}

func TestNewDebugDoesNotWriteFile(t *testing.T) {
	tempDir := t.TempDir()
	options := Options{
		Dir:      tempDir,
		Filename: "debug.log",
	}

	instance := New("debug", options)
	if instance == nil {
		t.Fatalf("expected logger instance")
	}
	instance.Sugar().Debugw("debug_check")
	_ = instance.Sync()

	if _, err := os.Stat(filepath.Join(tempDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode should not create log file, stat err: %v", err)
	}
}
