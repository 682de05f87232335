package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/platter/internal/mealdb"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source.Endpoint != mealdb.DefaultEndpoint {
		t.Fatalf("Endpoint = %q, want %q", cfg.Source.Endpoint, mealdb.DefaultEndpoint)
	}
	if cfg.Source.ListKey != "meals" || cfg.Source.IDField != "idMeal" {
		t.Fatalf("unexpected schema defaults: %+v", cfg.Source)
	}
	if cfg.Source.RequestTimeout != 0 {
		t.Fatalf("RequestTimeout = %v, want 0", cfg.Source.RequestTimeout)
	}
	if cfg.Source.DiscardStale {
		t.Fatalf("DiscardStale = true, want false")
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.Log.File != wantLog {
		t.Fatalf("Log.File = %q, want %q", cfg.Log.File, wantLog)
	}
	if cfg.Log.Level != slog.LevelInfo {
		t.Fatalf("Log.Level = %v, want info", cfg.Log.Level)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
[source]
endpoint = "  http://localhost:8080/api/json/v1/1/filter.php?c=Dessert  "
list_key = "drinks"
id_field = "idDrink"
name_field = "strDrink"
image_field = "strDrinkThumb"
request_timeout = "5s"
discard_stale = true

[log]
file = "  ~/logs/platter.log  "
level = "DEBUG"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	src := cfg.Source
	if src.Endpoint != "http://localhost:8080/api/json/v1/1/filter.php?c=Dessert" {
		t.Fatalf("Endpoint = %q", src.Endpoint)
	}
	if src.ListKey != "drinks" || src.IDField != "idDrink" || src.NameField != "strDrink" || src.ImageField != "strDrinkThumb" {
		t.Fatalf("schema not parsed: %+v", src)
	}
	if src.UserAgent != mealdb.DefaultUserAgent {
		t.Fatalf("UserAgent = %q, want default", src.UserAgent)
	}
	if src.RequestTimeout != 5*time.Second {
		t.Fatalf("RequestTimeout = %v, want 5s", src.RequestTimeout)
	}
	if !src.DiscardStale {
		t.Fatalf("DiscardStale = false, want true")
	}
	if cfg.Log.File != filepath.Join(home, "logs/platter.log") {
		t.Fatalf("Log.File = %q, want it under HOME %q", cfg.Log.File, home)
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Fatalf("Log.Level = %v, want debug", cfg.Log.Level)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
[source]
endpoint = "   "
list_key = ""
request_timeout = ""

[log]
level = " "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source.Endpoint != mealdb.DefaultEndpoint {
		t.Fatalf("Endpoint = %q, want default", cfg.Source.Endpoint)
	}
	if cfg.Source.ListKey != mealdb.DefaultSchema.ListKey {
		t.Fatalf("ListKey = %q, want default", cfg.Source.ListKey)
	}
	if cfg.Source.RequestTimeout != 0 {
		t.Fatalf("RequestTimeout = %v, want 0", cfg.Source.RequestTimeout)
	}
	if cfg.Log.Level != slog.LevelInfo {
		t.Fatalf("Log.Level = %v, want info", cfg.Log.Level)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"invalid toml":     `[source`,
		"bad duration":     "[source]\nrequest_timeout = \"soon\"\n",
		"negative timeout": "[source]\nrequest_timeout = \"-1s\"\n",
		"bad level":        "[log]\nlevel = \"loud\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			if err == nil {
				t.Fatalf("Load returned nil error, want parse error")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"Info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Fatalf("ParseLevel(trace) returned nil error")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestDefault_MatchesClientDefaults(t *testing.T) {
	src := Default().Source
	schema := mealdb.Schema{ListKey: src.ListKey, IDField: src.IDField, NameField: src.NameField, ImageField: src.ImageField}
	if schema != mealdb.DefaultSchema {
		t.Fatalf("schema = %+v, want %+v", schema, mealdb.DefaultSchema)
	}
	if src.Endpoint != mealdb.DefaultEndpoint || src.UserAgent != mealdb.DefaultUserAgent {
		t.Fatalf("Endpoint/UserAgent = %q/%q, want client defaults", src.Endpoint, src.UserAgent)
	}
}
