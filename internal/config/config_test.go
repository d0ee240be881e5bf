package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDecodesAllFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eliza.yaml")
	yaml := `
delimiters:
  - ","
  - "."
  - "BUT"
  - "AND"
nomatch_messages: false
newkey_fail_uses_none: false
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Delimiters) != 4 || cfg.Delimiters[3] != "AND" {
		t.Errorf("Delimiters = %v", cfg.Delimiters)
	}
	if cfg.NomatchMessages == nil || *cfg.NomatchMessages != false {
		t.Errorf("NomatchMessages = %v, want false", cfg.NomatchMessages)
	}
	if cfg.NewkeyFailUsesNone == nil || *cfg.NewkeyFailUsesNone != false {
		t.Errorf("NewkeyFailUsesNone = %v, want false", cfg.NewkeyFailUsesNone)
	}

	if got := len(cfg.Options()); got != 3 {
		t.Errorf("Options() returned %d options, want 3", got)
	}
}

func TestLoadLeavesUnsetFieldsNil(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eliza.yaml")
	if err := os.WriteFile(path, []byte("delimiters: [\",\"]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NomatchMessages != nil {
		t.Errorf("NomatchMessages = %v, want nil", cfg.NomatchMessages)
	}
	if cfg.NewkeyFailUsesNone != nil {
		t.Errorf("NewkeyFailUsesNone = %v, want nil", cfg.NewkeyFailUsesNone)
	}
	if got := len(cfg.Options()); got != 1 {
		t.Errorf("Options() returned %d options, want 1", got)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load("/nonexistent/eliza.yaml"); err == nil {
		t.Fatal("Load: expected an error for a missing file")
	}
}

func TestNilConfigOptionsIsEmpty(t *testing.T) {
	var cfg *EngineConfig
	if got := cfg.Options(); got != nil {
		t.Errorf("Options() on nil config = %v, want nil", got)
	}
}
