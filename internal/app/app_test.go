package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/platter/internal/catalog"
	"github.com/five82/platter/internal/config"
	"github.com/five82/platter/internal/mealdb/mealdbtest"
)

func writeConfig(t *testing.T, endpoint string) (path, logFile string) {
	t.Helper()
	dir := t.TempDir()
	logFile = filepath.Join(dir, "logs", "platter.log")
	body := fmt.Sprintf(`
[source]
endpoint = %q

[log]
file = %q
level = "debug"
`, endpoint, logFile)
	path = filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path, logFile
}

func TestList_FiltersAndPrintsTable(t *testing.T) {
	srv := mealdbtest.NewServer(t, mealdbtest.OK(
		catalog.Item{ID: "1", DisplayName: "Shrimp Curry", ImageURL: "u1"},
		catalog.Item{ID: "2", DisplayName: "Baked Salmon", ImageURL: "u2"},
	))
	cfgPath, logFile := writeConfig(t, srv.Endpoint())

	var out bytes.Buffer
	if err := List(context.Background(), &out, ListOptions{ConfigPath: cfgPath, Query: "SHRIMP"}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Shrimp Curry") || strings.Contains(got, "Baked Salmon") {
		t.Fatalf("List output = %q", got)
	}
	if !strings.HasPrefix(got, "ID") {
		t.Fatalf("List output missing header: %q", got)
	}

	logData, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(logData), "catalog loaded") {
		t.Fatalf("log missing load entry:\n%s", logData)
	}
}

func TestList_JSON(t *testing.T) {
	srv := mealdbtest.NewServer(t, mealdbtest.OK(catalog.Item{ID: "1", DisplayName: "Shrimp Curry", ImageURL: "u1"}))
	cfgPath, _ := writeConfig(t, srv.Endpoint())

	var out bytes.Buffer
	if err := List(context.Background(), &out, ListOptions{ConfigPath: cfgPath, JSON: true}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	var items []catalog.Item
	if err := json.Unmarshal(out.Bytes(), &items); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(items) != 1 || items[0].ID != "1" || items[0].ImageURL != "u1" {
		t.Fatalf("items = %+v", items)
	}
}

func TestList_EmptyMatchPrintsEmptyJSONArray(t *testing.T) {
	srv := mealdbtest.NewServer(t, mealdbtest.Response{Body: `{"meals":null}`})
	cfgPath, _ := writeConfig(t, srv.Endpoint())

	var out bytes.Buffer
	if err := List(context.Background(), &out, ListOptions{ConfigPath: cfgPath, JSON: true}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "[]" {
		t.Fatalf("output = %q, want []", out.String())
	}
}

func TestList_FetchFailureIsReturned(t *testing.T) {
	srv := mealdbtest.NewServer(t, mealdbtest.Status(http.StatusBadGateway))
	cfgPath, _ := writeConfig(t, srv.Endpoint())

	var out bytes.Buffer
	err := List(context.Background(), &out, ListOptions{ConfigPath: cfgPath})
	if err == nil {
		t.Fatalf("List returned nil error for a 502")
	}
	if !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("error = %q, want the status cause", err.Error())
	}
	if catalog.KindOf(err) != catalog.KindHTTPStatus {
		t.Fatalf("KindOf = %v, want http_status", catalog.KindOf(err))
	}
}

func TestList_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[source\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	err := List(context.Background(), &bytes.Buffer{}, ListOptions{ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("List error = %v, want load config failure", err)
	}
}

func TestLogs_TailAndLevel(t *testing.T) {
	cfgPath, logFile := writeConfig(t, "http://127.0.0.1:1/unused")
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := strings.Join([]string{
		`time=t1 level=DEBUG msg="catalog fetch started"`,
		`time=t2 level=INFO msg="catalog loaded" items=3`,
		`time=t3 level=WARN msg="catalog fetch failed" kind=transport`,
	}, "\n") + "\n"
	if err := os.WriteFile(logFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out bytes.Buffer
	if err := Logs(&out, LogsOptions{ConfigPath: cfgPath, Lines: 10, MinLevel: "warn"}); err != nil {
		t.Fatalf("Logs returned error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != `time=t3 level=WARN msg="catalog fetch failed" kind=transport` {
		t.Fatalf("Logs output = %q", got)
	}

	out.Reset()
	if err := Logs(&out, LogsOptions{ConfigPath: cfgPath, Lines: 2}); err != nil {
		t.Fatalf("Logs returned error: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out.String()), "\n"); len(lines) != 2 {
		t.Fatalf("Logs returned %d lines, want 2", len(lines))
	}

	if err := Logs(&out, LogsOptions{ConfigPath: cfgPath, MinLevel: "loud"}); err == nil {
		t.Fatalf("Logs accepted an unknown level")
	}
}

func TestLogs_MissingFile(t *testing.T) {
	cfgPath, _ := writeConfig(t, "http://127.0.0.1:1/unused")
	var out bytes.Buffer
	if err := Logs(&out, LogsOptions{ConfigPath: cfgPath, Lines: 5}); err != nil {
		t.Fatalf("Logs returned error: %v", err)
	}
	if !strings.Contains(out.String(), "no log entries") {
		t.Fatalf("Logs output = %q", out.String())
	}
}

func TestOpenLogger_CreatesDirAndRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "platter.log")
	logger, closeLog, err := OpenLogger(config.Log{File: path, Level: slog.LevelWarn})
	if err != nil {
		t.Fatalf("OpenLogger returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Fatalf("log contents = %q", data)
	}
}

type readyChan chan struct{}

func (r readyChan) Ready() <-chan struct{} { return r }

func TestWatchReady(t *testing.T) {
	ready := make(readyChan)
	notified := make(chan struct{})
	go func() {
		watchReady(context.Background(), ready, func() { close(notified) })
	}()
	close(ready)
	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatalf("notify not called after ready")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	if watchReady(ctx, make(readyChan), func() { called = true }) || called {
		t.Fatalf("watchReady notified after cancellation")
	}
}
