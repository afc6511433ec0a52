package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Plan.Monthly != 10000 {
		t.Errorf("Plan.Monthly = %v want 10000", cfg.Plan.Monthly)
	}
	if cfg.Plan.Years != 10 {
		t.Errorf("Plan.Years = %d want 10", cfg.Plan.Years)
	}
	if cfg.Plan.Reinvest == nil || !*cfg.Plan.Reinvest {
		t.Errorf("Plan.Reinvest = %v want true", cfg.Plan.Reinvest)
	}
	if cfg.Display.Currency != "TWD" {
		t.Errorf("Display.Currency = %q want TWD", cfg.Display.Currency)
	}
	if cfg.Fetch.Cache == nil || !*cfg.Fetch.Cache {
		t.Errorf("Fetch.Cache = %v want true", cfg.Fetch.Cache)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "efc.yaml")
	content := `
plan:
  lump_sum: 5000
  years: 20
  reinvest: false
display:
  currency: USD
database:
  sqlite_path: runs.db
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Plan.LumpSum != 5000 {
		t.Errorf("Plan.LumpSum = %v want 5000", cfg.Plan.LumpSum)
	}
	// A lump-sum-only plan keeps monthly at zero, the default must not kick in.
	if cfg.Plan.Monthly != 0 {
		t.Errorf("Plan.Monthly = %v want 0", cfg.Plan.Monthly)
	}
	if cfg.Plan.Years != 20 {
		t.Errorf("Plan.Years = %d want 20", cfg.Plan.Years)
	}
	if cfg.Plan.Reinvest == nil || *cfg.Plan.Reinvest {
		t.Errorf("Plan.Reinvest = %v want false, an explicit false must survive", cfg.Plan.Reinvest)
	}
	if cfg.Display.Currency != "USD" {
		t.Errorf("Display.Currency = %q want USD", cfg.Display.Currency)
	}
	if cfg.Database.SQLitePath != "runs.db" {
		t.Errorf("Database.SQLitePath = %q want runs.db", cfg.Database.SQLitePath)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "efc.yaml")
	if err := os.WriteFile(path, []byte("plan:\n  years: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EFC_YEARS", "25")
	t.Setenv("EFC_CURRENCY", "EUR")
	t.Setenv("EFC_MONTHLY", "2500")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Plan.Years != 25 {
		t.Errorf("Plan.Years = %d want 25, env must override the file", cfg.Plan.Years)
	}
	if cfg.Plan.Monthly != 2500 {
		t.Errorf("Plan.Monthly = %v want 2500", cfg.Plan.Monthly)
	}
	if cfg.Display.Currency != "EUR" {
		t.Errorf("Display.Currency = %q want EUR", cfg.Display.Currency)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Plan.Monthly = 1000
		cfg.Plan.Years = 10
		return cfg
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("Validate() error = %v want nil", err)
	}

	cfg := valid()
	cfg.Plan.LumpSum = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil want error for negative lump sum")
	}

	cfg = valid()
	cfg.Plan.Years = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil want error for zero horizon")
	}

	cfg = valid()
	cfg.Plan.Years = 41
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil want error for horizon over 40")
	}
}
