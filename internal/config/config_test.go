package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SiteDir != "." {
		t.Errorf("expected default site_dir %q, got %q", ".", cfg.SiteDir)
	}
	if cfg.DatasetPath != "data/projects.json" {
		t.Errorf("expected default dataset_path %q, got %q", "data/projects.json", cfg.DatasetPath)
	}
	if cfg.DetailPath != "projects/project.html" {
		t.Errorf("expected default detail_path %q, got %q", "projects/project.html", cfg.DetailPath)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.SessionTimeout() != 5*time.Minute {
		t.Errorf("expected default session timeout 5m, got %s", cfg.SessionTimeout())
	}
}

func TestDatasetFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SiteDir = "site"
	want := filepath.Join("site", "data", "projects.json")
	if got := cfg.DatasetFile(); got != want {
		t.Errorf("DatasetFile() = %q, want %q", got, want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.SiteTitle = "Jane Doe"
	original.SiteDir = "site"
	original.Port = 9090
	original.Exclude = []string{"**/*.psd", "assets/drafts/**"}
	original.OutputDir = "dist"
	original.AllowAllOrigins = true
	original.LogFormat = FormatJSON

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.SiteTitle != original.SiteTitle {
		t.Errorf("site_title: got %q, want %q", loaded.SiteTitle, original.SiteTitle)
	}
	if loaded.SiteDir != original.SiteDir {
		t.Errorf("site_dir: got %q, want %q", loaded.SiteDir, original.SiteDir)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if !loaded.AllowAllOrigins {
		t.Error("allow_all_origins: got false, want true")
	}
	if loaded.LogFormat != FormatJSON {
		t.Errorf("log_format: got %q, want %q", loaded.LogFormat, FormatJSON)
	}
	if len(loaded.Exclude) != len(original.Exclude) {
		t.Fatalf("exclude length: got %d, want %d", len(loaded.Exclude), len(original.Exclude))
	}
	for i, v := range loaded.Exclude {
		if v != original.Exclude[i] {
			t.Errorf("exclude[%d]: got %q, want %q", i, v, original.Exclude[i])
		}
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".folio.yml")
	if err := os.WriteFile(path, []byte("port: 3000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("port: got %d, want 3000", cfg.Port)
	}
	if cfg.DetailPath != "projects/project.html" {
		t.Errorf("detail_path should keep its default, got %q", cfg.DetailPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".folio.yml")
	if err := os.WriteFile(path, []byte("port: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_DATASET_URL", "https://example.com/data/projects.json")
	t.Setenv("FOLIO_PORT", "9999")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DatasetURL != "https://example.com/data/projects.json" {
		t.Errorf("env override failed: got %q", loaded.DatasetURL)
	}
	if loaded.Port != 9999 {
		t.Errorf("env override failed: got port %d, want 9999", loaded.Port)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty site_dir", func(c *Config) { c.SiteDir = "" }},
		{"relative dataset_url", func(c *Config) { c.DatasetURL = "data/projects.json" }},
		{"non-http dataset_url", func(c *Config) { c.DatasetURL = "ftp://example.com/p.json" }},
		{"no dataset at all", func(c *Config) { c.DatasetPath = "" }},
		{"absolute detail_path", func(c *Config) { c.DetailPath = "/projects/project.html" }},
		{"escaping detail_path", func(c *Config) { c.DetailPath = "../project.html" }},
		{"detail_path not html", func(c *Config) { c.DetailPath = "projects/project" }},
		{"empty output_dir", func(c *Config) { c.OutputDir = "" }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"huge port", func(c *Config) { c.Port = 70000 }},
		{"bad log_level", func(c *Config) { c.LogLevel = "trace" }},
		{"bad log_format", func(c *Config) { c.LogFormat = "xml" }},
		{"zero session_ttl", func(c *Config) { c.SessionTTL = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestValidateDatasetURLReplacesPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DatasetPath = ""
	cfg.DatasetURL = "https://example.com/projects.json"
	if err := cfg.Validate(); err != nil {
		t.Errorf("dataset_url alone should be valid, got: %v", err)
	}
}

func TestValidatePort(t *testing.T) {
	for _, s := range []string{"80", " 8080 ", "65535"} {
		if err := validatePort(s); err != nil {
			t.Errorf("validatePort(%q) = %v, want nil", s, err)
		}
	}
	for _, s := range []string{"", "0", "abc", "70000"} {
		if err := validatePort(s); err == nil {
			t.Errorf("validatePort(%q) = nil, want error", s)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.psd", []string{"**/*.psd"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
