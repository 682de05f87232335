package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/platter/internal/catalog"
	"github.com/five82/platter/internal/mealdb/mealdbtest"
)

var ctx = context.Background()

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func testConfig(t *testing.T, endpoint string) string {
	t.Helper()
	dir := t.TempDir()
	body := fmt.Sprintf("[source]\nendpoint = %q\n\n[log]\nfile = %q\n", endpoint, filepath.Join(dir, "platter.log"))
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestListCommand_Query(t *testing.T) {
	srv := mealdbtest.NewServer(t, mealdbtest.OK(
		catalog.Item{ID: "52772", DisplayName: "Shrimp Curry", ImageURL: "u1"},
		catalog.Item{ID: "52959", DisplayName: "Baked Salmon", ImageURL: "u2"},
	))
	cfg := testConfig(t, srv.Endpoint())

	out, err := execute(t, "list", "--config", cfg, "--query", "salmon")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "52959") || strings.Contains(out, "52772") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if srv.Hits() != 1 {
		t.Fatalf("hits = %d, want exactly one fetch", srv.Hits())
	}
}

func TestListCommand_JSON(t *testing.T) {
	srv := mealdbtest.NewServer(t, mealdbtest.OK(catalog.Item{ID: "1", DisplayName: "Shrimp Curry", ImageURL: "u1"}))
	cfg := testConfig(t, srv.Endpoint())

	out, err := execute(t, "list", "--config", cfg, "--json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, `"displayName": "Shrimp Curry"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestListCommand_RejectsArgs(t *testing.T) {
	if _, err := execute(t, "list", "extra"); err == nil {
		t.Fatalf("list accepted a positional argument")
	}
}

func TestLogsCommand_EmptyLog(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1/unused")
	out, err := execute(t, "logs", "--config", cfg, "-n", "5", "--color=false")
	if err != nil {
		t.Fatalf("logs failed: %v", err)
	}
	if !strings.Contains(out, "no log entries") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Fatalf("version output = %q", out)
	}
}
