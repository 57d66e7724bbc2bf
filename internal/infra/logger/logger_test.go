package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}
	want := filepath.Join(root, ".mallctl", "logs", "mallctl.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	Component("query").Info("query.done", "headcount", 13)
	Component("query").Debug("hidden")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	f, err := os.Open(want)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var msgs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			t.Fatalf("log line is not JSON: %v", err)
		}
		msgs = append(msgs, entry["msg"].(string))
		if entry["msg"] == "query.done" && entry["component"] != "query" {
			t.Fatalf("expected component attr, got %v", entry)
		}
	}
	if len(msgs) != 2 || msgs[0] != "logger.initialized" || msgs[1] != "query.done" {
		t.Fatalf("unexpected log messages %v", msgs)
	}
}

func TestSetup_DebugLevel(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	L().Debug("payroll.adjusted")
	_ = cleanup()

	b, err := os.ReadFile(filepath.Join(root, ".mallctl", "logs", "mallctl.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var last map[string]any
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		_ = json.Unmarshal(sc.Bytes(), &last)
	}
	if last["msg"] != "payroll.adjusted" || last["source"] == nil {
		t.Fatalf("expected debug line with source, got %v", last)
	}
}

func TestSetup_UnwritableRootFallsBackToDiscard(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Setup(Config{Root: file}); err == nil {
		t.Fatalf("expected error")
	}
	if IsReady() == nil {
		t.Fatalf("expected logger not ready")
	}
	L().Info("still usable")
}
