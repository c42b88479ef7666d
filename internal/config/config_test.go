package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// clearEnvVars blanks every variable Load reads; t.Setenv restores them.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDataFile, EnvLogLevel, EnvLogFile, EnvTheme, EnvCurrency} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "stockpile.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnvVars(t)
	p := writeFile(t, "data_file: /var/lib/stock.json\ntheme: Neon\ncurrency: eur\n")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	want := &Config{
		DataFile: "/var/lib/stock.json",
		LogLevel: DefaultLogLevel,
		Theme:    "neon",
		Currency: "EUR",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnvVars(t)
	p := writeFile(t, "data_file: from-file.json\nlog_level: info\n")
	t.Setenv(EnvDataFile, "from-env.json")
	t.Setenv(EnvLogFile, "/tmp/stockpile.log")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.DataFile != "from-env.json" {
		t.Errorf("DataFile = %s, want from-env.json", cfg.DataFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.LogFile != "/tmp/stockpile.log" {
		t.Errorf("LogFile = %s, want /tmp/stockpile.log", cfg.LogFile)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnvVars(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with a missing explicit file returned nil error")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnvVars(t)
	p := writeFile(t, "theme: [unterminated\n")
	if _, err := Load(p); err == nil {
		t.Error("Load() with malformed YAML returned nil error")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{"log level", map[string]string{EnvLogLevel: "verbose"}, ErrInvalidLogLevel},
		{"theme", map[string]string{EnvTheme: "solarized"}, ErrInvalidTheme},
		{"currency", map[string]string{EnvCurrency: "XYZW"}, ErrInvalidCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_EmptyDataFile(t *testing.T) {
	cfg := Default()
	cfg.DataFile = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrEmptyDataFile) {
		t.Errorf("Validate() error = %v, want ErrEmptyDataFile", err)
	}
}
