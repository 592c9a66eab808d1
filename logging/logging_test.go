package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/fireworks/sim"
	"github.com/lixenwraith/fireworks/vmath"
)

func enabledConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "debug"
	cfg.Dir = filepath.Join(t.TempDir(), "logs")
	return cfg
}

func TestNew_DisabledByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	logger, done, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer done()

	if logger.Core().Enabled(zap.ErrorLevel) {
		t.Error("disabled logger accepts records")
	}
	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestNew_EnabledWritesFile(t *testing.T) {
	cfg := enabledConfig(t)
	logger, done, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("zap record")
	log.Println("standard record")
	done()

	data, err := os.ReadFile(filepath.Join(cfg.Dir, FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"zap record", "standard record"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %q:\n%s", want, data)
		}
	}
}

func TestNew_NoStdoutStderr(t *testing.T) {
	logger, done, err := New(enabledConfig(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer done()
	_ = logger

	output := log.Writer()
	if output == os.Stdout {
		t.Error("Log output should not be stdout")
	}
	if output == os.Stderr {
		t.Error("Log output should not be stderr")
	}
}

func TestNew_Rotation(t *testing.T) {
	cfg := enabledConfig(t)
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(cfg.Dir, FileName)
	if err := os.WriteFile(logPath, make([]byte, MaxSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	_, done, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer done()

	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		t.Fatal(err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != FileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > MaxSize {
		t.Errorf("new log file is %d bytes, want below %d", info.Size(), MaxSize)
	}
}

func TestRotateName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, make([]byte, MaxSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 1, 1, 0, 0, 5, 0, time.UTC)
	if err := rotate(path, now); err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "fireworks-20260101-000005.log")); err != nil {
		t.Errorf("rotated file missing: %v", err)
	}
}

func TestRotateSmallFileKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("short"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := rotate(path, time.Now()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("small log moved: %v", err)
	}
}

func TestRocketEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	events := RocketEvents{Log: zap.New(core)}

	cfg := sim.DefaultConfig()
	w := sim.NewWorld(cfg, sim.NewRand(3), 800, 600, sim.WithObserver(events))
	w.Launch(sim.RocketBurst, vmath.V(400, 590), sim.White, "")
	for range 200 {
		w.Tick()
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Message != "rocket launched" || entries[1].Message != "rocket exploded" {
		t.Errorf("messages = %q, %q", entries[0].Message, entries[1].Message)
	}
	if n := entries[1].ContextMap()["particles"]; n != int64(cfg.BurstCount) {
		t.Errorf("particles field = %v, want %d", n, cfg.BurstCount)
	}
}
