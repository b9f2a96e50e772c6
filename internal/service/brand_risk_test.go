// internal/service/brand_risk_test.go
package service

import (
	"testing"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/config"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
)

func TestCheckBrandTiers(t *testing.T) {
	checker := NewBrandRiskChecker(config.Defaults().Brands)

	tests := []struct {
		name     string
		brand    string
		title    string
		wantTier models.RiskTier
		wantVeto bool
	}{
		{
			name:     "critical brand field",
			brand:    "Nike",
			title:    "Running Shoes Size 10",
			wantTier: models.RiskTierCritical,
			wantVeto: true,
		},
		{
			name:     "critical brand in title only",
			brand:    "",
			title:    "Building Blocks Compatible with LEGO Sets",
			wantTier: models.RiskTierCritical,
			wantVeto: true,
		},
		{
			name:     "high risk brand",
			brand:    "Anker",
			title:    "USB-C Charging Cable 6ft",
			wantTier: models.RiskTierHigh,
			wantVeto: false,
		},
		{
			name:     "medium risk brand",
			brand:    "Spigen",
			title:    "Phone Case Clear",
			wantTier: models.RiskTierMedium,
			wantVeto: false,
		},
		{
			name:     "punctuation in brand name",
			brand:    "Hydro-Flask",
			title:    "Insulated Water Bottle 32oz",
			wantTier: models.RiskTierHigh,
			wantVeto: false,
		},
		{
			name:     "clean brand",
			brand:    "Acme Kitchen Co",
			title:    "Ceramic Utensil Holder",
			wantTier: models.RiskTierNone,
			wantVeto: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.CheckBrand(tt.brand, tt.title)
			if got.Tier != tt.wantTier {
				t.Errorf("Tier = %v, want %v", got.Tier, tt.wantTier)
			}
			if got.IsVeto != tt.wantVeto {
				t.Errorf("IsVeto = %v, want %v", got.IsVeto, tt.wantVeto)
			}
			if tt.wantTier != models.RiskTierNone && got.MatchedBrand == "" {
				t.Error("MatchedBrand is empty for a matched tier")
			}
		})
	}
}

func TestCheckBrandWorstTierWins(t *testing.T) {
	// A brand listed in several tiers must classify at its worst tier.
	table := config.BrandRiskTable{
		Critical:           []string{"acme"},
		High:               []string{"acme"},
		Medium:             []string{"acme"},
		MinSubstringLength: 4,
	}
	checker := NewBrandRiskChecker(table)

	got := checker.CheckBrand("Acme", "Acme Widget")
	if got.Tier != models.RiskTierCritical {
		t.Errorf("Tier = %v, want critical when brand is in every tier", got.Tier)
	}
	if !got.IsVeto {
		t.Error("IsVeto = false, want true for critical tier")
	}
}

func TestCheckBrandShortNamesNeedWordBoundary(t *testing.T) {
	table := config.BrandRiskTable{
		Critical:           []string{"gap"},
		MinSubstringLength: 4,
	}
	checker := NewBrandRiskChecker(table)

	tests := []struct {
		name      string
		title     string
		wantMatch bool
	}{
		{
			name:      "substring inside unrelated word",
			title:     "Gapless Storage Lid for Mason Jars",
			wantMatch: false,
		},
		{
			name:      "exact word in title",
			title:     "GAP Logo Hoodie Mens Large",
			wantMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.CheckBrand("", tt.title)
			if matched := got.Tier != models.RiskTierNone; matched != tt.wantMatch {
				t.Errorf("matched = %v, want %v (tier %v)", matched, tt.wantMatch, got.Tier)
			}
		})
	}
}

func TestCheckBrandFieldBeatsTitle(t *testing.T) {
	// A high-tier brand field wins over scanning, even if the title would
	// also match a lower tier.
	table := config.BrandRiskTable{
		High:               []string{"anker"},
		Medium:             []string{"spigen"},
		MinSubstringLength: 4,
	}
	checker := NewBrandRiskChecker(table)

	got := checker.CheckBrand("Anker", "Anker charger for Spigen case")
	if got.Tier != models.RiskTierHigh {
		t.Errorf("Tier = %v, want high from brand field", got.Tier)
	}
}
