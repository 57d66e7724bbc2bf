package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/mallctl/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	t.Setenv(RootEnv, "")

	root := writeConfig(t, "mallctl:\n  output:\n    format: pretty\n")
	nested := filepath.Join(root, "data", "archive", "2026")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_StartsFromFileDirectory(t *testing.T) {
	t.Setenv(RootEnv, "")

	root := writeConfig(t, "mallctl: {}\n")
	dataFile := filepath.Join(root, "mall.yaml")
	if err := os.WriteFile(dataFile, []byte("name: x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewFinder().FindRoot(dataFile)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	t.Setenv(RootEnv, "")

	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	_, err := NewFinder().FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_EmptyStart(t *testing.T) {
	t.Setenv(RootEnv, "")

	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}

func TestFindRoot_EnvPinsRoot(t *testing.T) {
	root := writeConfig(t, "mallctl: {}\n")
	t.Setenv(RootEnv, root)

	got, err := NewFinder().FindRoot(t.TempDir())
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected pinned root=%s, got=%s", root, got)
	}
}

func TestFindRoot_EnvPinnedWithoutConfig(t *testing.T) {
	t.Setenv(RootEnv, t.TempDir())

	_, err := NewFinder().FindRoot(".")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}
