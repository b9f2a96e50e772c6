// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks that the loaded tables are internally consistent. The
// engine trusts the config after this point, so everything load-bearing is
// checked here.
func (c *Config) Validate() error {
	if err := c.Fees.validate(); err != nil {
		return err
	}
	if err := c.Brands.validate(); err != nil {
		return err
	}
	if err := c.Hazmat.validate(); err != nil {
		return err
	}
	if err := c.Scoring.validate(); err != nil {
		return err
	}
	if len(c.Sellers.OperatorNames) == 0 {
		return errors.New("sellers.operator_names must not be empty")
	}
	return nil
}

func (f *FeeTable) validate() error {
	if f.DefaultReferralRate <= 0 || f.DefaultReferralRate >= 1 {
		return fmt.Errorf("fees.default_referral_rate must be in (0,1), got %v", f.DefaultReferralRate)
	}
	for cat, rate := range f.ReferralRates {
		if rate <= 0 || rate >= 1 {
			return fmt.Errorf("fees.referral_rates[%s] must be in (0,1), got %v", cat, rate)
		}
	}
	if len(f.SizeTiers) == 0 {
		return errors.New("fees.size_tiers must not be empty")
	}
	last := f.SizeTiers[len(f.SizeTiers)-1]
	if last.MaxLongestIn != 0 || last.MaxWeightLb != 0 {
		return errors.New("fees.size_tiers: last tier must be the unlimited catch-all")
	}
	names := make(map[string]bool, len(f.SizeTiers))
	for _, tier := range f.SizeTiers {
		if tier.Name == "" {
			return errors.New("fees.size_tiers: tier name is required")
		}
		if names[tier.Name] {
			return fmt.Errorf("fees.size_tiers: duplicate tier %q", tier.Name)
		}
		names[tier.Name] = true
		if tier.FixedFee < 0 || tier.PercentOfPrice < 0 {
			return fmt.Errorf("fees.size_tiers[%s]: fees must not be negative", tier.Name)
		}
	}
	if !names[f.DefaultTier] {
		return fmt.Errorf("fees.default_tier %q is not a defined size tier", f.DefaultTier)
	}
	for cat, tier := range f.CategoryDefaultTiers {
		if !names[tier] {
			return fmt.Errorf("fees.category_default_tiers[%s]: unknown tier %q", cat, tier)
		}
	}
	if f.StorageRatePerCubicFoot < 0 || f.OversizeStorageRate < 0 {
		return errors.New("fees: storage rates must not be negative")
	}
	return nil
}

func (b *BrandRiskTable) validate() error {
	if b.MinSubstringLength < 1 {
		return errors.New("brands.min_substring_length must be >= 1")
	}
	for _, list := range [][]string{b.Critical, b.High, b.Medium} {
		for _, brand := range list {
			if brand == "" {
				return errors.New("brands: empty brand name in tier list")
			}
		}
	}
	return nil
}

func (h *HazmatTable) validate() error {
	for i, kw := range h.Keywords {
		if kw.Keyword == "" {
			return fmt.Errorf("hazmat.keywords[%d]: keyword is required", i)
		}
		if kw.Category == "" {
			return fmt.Errorf("hazmat.keywords[%d]: category is required", i)
		}
	}
	return nil
}

func (s *ScoringConfig) validate() error {
	pillars := s.DemandWeight + s.CompetitionWeight + s.ProfitWeight
	if math.Abs(pillars-1.0) > 1e-9 {
		return fmt.Errorf("scoring: pillar weights must sum to 1.0, got %v", pillars)
	}
	demand := s.RankWeight + s.StabilityWeight + s.VelocityWeight
	if math.Abs(demand-1.0) > 1e-9 {
		return fmt.Errorf("scoring: demand component weights must sum to 1.0, got %v", demand)
	}
	competition := s.SellerCountWeight + s.VulnerabilityWeight + s.OperatorWeight
	if math.Abs(competition-1.0) > 1e-9 {
		return fmt.Errorf("scoring: competition component weights must sum to 1.0, got %v", competition)
	}
	profit := s.MarginWeight + s.PricePointWeight + s.RiskPenaltyWeight
	if math.Abs(profit-1.0) > 1e-9 {
		return fmt.Errorf("scoring: profit component weights must sum to 1.0, got %v", profit)
	}

	if len(s.RankTiers) == 0 {
		return errors.New("scoring.rank_tiers must not be empty")
	}
	prev := 0
	for _, tier := range s.RankTiers {
		if tier.MaxRank <= prev {
			return errors.New("scoring.rank_tiers must be ordered by ascending max_rank")
		}
		prev = tier.MaxRank
	}
	if len(s.VelocityTiers) == 0 {
		return errors.New("scoring.velocity_tiers must not be empty")
	}
	for i := 1; i < len(s.VelocityTiers); i++ {
		if s.VelocityTiers[i].MinSales >= s.VelocityTiers[i-1].MinSales {
			return errors.New("scoring.velocity_tiers must be ordered by descending min_sales")
		}
	}
	if len(s.MarginTiers) == 0 {
		return errors.New("scoring.margin_tiers must not be empty")
	}
	for i := 1; i < len(s.MarginTiers); i++ {
		if s.MarginTiers[i].MinMargin >= s.MarginTiers[i-1].MinMargin {
			return errors.New("scoring.margin_tiers must be ordered by descending min_margin")
		}
	}

	if s.SweetSpotMinSellers > s.SweetSpotMaxSellers {
		return errors.New("scoring: sweet_spot_min_sellers must be <= sweet_spot_max_sellers")
	}
	if s.CrowdedMaxSellers < s.SweetSpotMaxSellers {
		return errors.New("scoring: crowded_max_sellers must be >= sweet_spot_max_sellers")
	}

	if s.MinMarginPercent < 0 || s.MinMarginPercent > 100 {
		return fmt.Errorf("scoring.min_margin_percent must be in [0,100], got %v", s.MinMarginPercent)
	}
	if s.DefaultCOGSFraction <= 0 || s.DefaultCOGSFraction >= 1 {
		return fmt.Errorf("scoring.default_cogs_fraction must be in (0,1), got %v", s.DefaultCOGSFraction)
	}
	return nil
}
