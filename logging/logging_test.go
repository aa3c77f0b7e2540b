package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridwalk.log")
	log, err := New(path, false)
	if err != nil {
		t.Fatal(err)
	}

	log.Info("scene loaded", zap.String("scene", "gridwalk"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "scene loaded") {
		t.Errorf("log file missing entry: %q", data)
	}
	if !strings.Contains(string(data), "gridwalk") {
		t.Errorf("log file missing field: %q", data)
	}
}

func TestDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	log, err := New(path, true)
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("frame hitch")
	_ = log.Sync()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "frame hitch") {
		t.Error("debug entry suppressed at debug level")
	}

	// Info-level logger drops debug entries
	path2 := filepath.Join(t.TempDir(), "info.log")
	log2, err := New(path2, false)
	if err != nil {
		t.Fatal(err)
	}
	log2.Debug("invisible")
	_ = log2.Sync()
	data2, _ := os.ReadFile(path2)
	if strings.Contains(string(data2), "invisible") {
		t.Error("debug entry leaked at info level")
	}
}

func TestNop(t *testing.T) {
	// Must be safe to use without any sink
	Nop().Info("discarded")
}
