// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Defaults().Validate() = %v, want nil", err)
	}
}

func TestLoadAndValidateEmptyPath(t *testing.T) {
	cfg, err := LoadAndValidate("")
	if err != nil {
		t.Fatalf("LoadAndValidate(\"\") error = %v", err)
	}
	if cfg.Scoring.DemandWeight != 0.40 {
		t.Errorf("DemandWeight = %v, want built-in default 0.40", cfg.Scoring.DemandWeight)
	}
	if cfg.Fees.DefaultTier != "small_standard" {
		t.Errorf("DefaultTier = %q, want small_standard", cfg.Fees.DefaultTier)
	}
}

func TestLoadOverridesMergeWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	data := `
scoring:
  min_margin_percent: 15
  winner_score_threshold: 70
  veto_on_operator_presence: true
fees:
  default_referral_rate: 0.12
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}

	if cfg.Scoring.MinMarginPercent != 15 {
		t.Errorf("MinMarginPercent = %v, want overridden 15", cfg.Scoring.MinMarginPercent)
	}
	if cfg.Scoring.WinnerScoreThreshold != 70 {
		t.Errorf("WinnerScoreThreshold = %d, want overridden 70", cfg.Scoring.WinnerScoreThreshold)
	}
	if !cfg.Scoring.VetoOnOperatorPresence {
		t.Error("VetoOnOperatorPresence = false, want overridden true")
	}
	if cfg.Fees.DefaultReferralRate != 0.12 {
		t.Errorf("DefaultReferralRate = %v, want overridden 0.12", cfg.Fees.DefaultReferralRate)
	}

	// Untouched sections still get the built-in defaults.
	if cfg.Scoring.DemandWeight != 0.40 {
		t.Errorf("DemandWeight = %v, want default 0.40", cfg.Scoring.DemandWeight)
	}
	if len(cfg.Brands.Critical) == 0 {
		t.Error("Brands.Critical empty, want default brand list")
	}
	if len(cfg.Hazmat.Keywords) == 0 {
		t.Error("Hazmat.Keywords empty, want default keyword list")
	}
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("MIN_MARGIN", "12.5")

	path := filepath.Join(t.TempDir(), "tables.yaml")
	data := "scoring:\n  min_margin_percent: ${MIN_MARGIN}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if cfg.Scoring.MinMarginPercent != 12.5 {
		t.Errorf("MinMarginPercent = %v, want 12.5 from environment", cfg.Scoring.MinMarginPercent)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadAndValidate(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadAndValidate() = nil error for missing file")
	}
}

func TestValidateRejectsInconsistentTables(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			"pillar weights off",
			func(c *Config) { c.Scoring.DemandWeight = 0.50 },
			"pillar weights",
		},
		{
			"unordered rank tiers",
			func(c *Config) { c.Scoring.RankTiers[1].MaxRank = 100 },
			"rank_tiers",
		},
		{
			"unknown default tier",
			func(c *Config) { c.Fees.DefaultTier = "mystery" },
			"default_tier",
		},
		{
			"last size tier not catch-all",
			func(c *Config) { c.Fees.SizeTiers[len(c.Fees.SizeTiers)-1].MaxWeightLb = 50 },
			"catch-all",
		},
		{
			"cogs fraction out of range",
			func(c *Config) { c.Scoring.DefaultCOGSFraction = 1.5 },
			"default_cogs_fraction",
		},
		{
			"margin floor out of range",
			func(c *Config) { c.Scoring.MinMarginPercent = 120 },
			"min_margin_percent",
		},
		{
			"no operator names",
			func(c *Config) { c.Sellers.OperatorNames = []string{} },
			"operator_names",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
