// internal/service/brand_risk.go
// Brand/IP risk lookup against the tiered blacklist. A critical-tier match
// is a veto; high and medium matches feed the profit pillar risk penalty.
package service

import (
	"fmt"
	"strings"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/config"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
)

type BrandRiskChecker struct {
	table config.BrandRiskTable
}

func NewBrandRiskChecker(table config.BrandRiskTable) *BrandRiskChecker {
	return &BrandRiskChecker{table: table}
}

// CheckBrand classifies a product's IP risk. The brand field is checked
// first; when it yields nothing the title is scanned as a fallback, since
// scraped brand fields are often missing or wrong. Tiers are checked most
// severe first so a brand listed in several tiers lands on its worst one.
func (c *BrandRiskChecker) CheckBrand(brand, title string) models.RiskAssessment {
	normBrand := normalizeText(brand)
	normTitle := normalizeText(title)

	tiers := []struct {
		tier   models.RiskTier
		brands []string
	}{
		{models.RiskTierCritical, c.table.Critical},
		{models.RiskTierHigh, c.table.High},
		{models.RiskTierMedium, c.table.Medium},
	}

	// Pass 1: the brand field.
	if normBrand != "" {
		for _, t := range tiers {
			if match := c.matchIn(normBrand, t.brands); match != "" {
				return c.assess(t.tier, match)
			}
		}
	}

	// Pass 2: title fallback.
	for _, t := range tiers {
		if match := c.matchIn(normTitle, t.brands); match != "" {
			return c.assess(t.tier, match)
		}
	}

	return models.RiskAssessment{
		Tier:   models.RiskTierNone,
		Reason: "brand not found in IP risk database",
	}
}

// matchIn returns the first listed brand found in text. Short brand names
// only match on word boundaries to avoid false positives inside unrelated
// words.
func (c *BrandRiskChecker) matchIn(text string, brands []string) string {
	if text == "" {
		return ""
	}
	padded := " " + text + " "
	for _, raw := range brands {
		brand := normalizeText(raw)
		if brand == "" {
			continue
		}
		if len(brand) < c.table.MinSubstringLength {
			if strings.Contains(padded, " "+brand+" ") {
				return raw
			}
			continue
		}
		if strings.Contains(text, brand) {
			return raw
		}
	}
	return ""
}

func (c *BrandRiskChecker) assess(tier models.RiskTier, match string) models.RiskAssessment {
	a := models.RiskAssessment{
		Tier:         tier,
		MatchedBrand: match,
	}
	switch tier {
	case models.RiskTierCritical:
		a.IsVeto = true
		a.Reason = fmt.Sprintf("%q is a high-litigation brand with aggressive IP enforcement", match)
	case models.RiskTierHigh:
		a.Reason = fmt.Sprintf("%q is a protected brand known to file IP claims", match)
	case models.RiskTierMedium:
		a.Reason = fmt.Sprintf("%q is registered but not known for aggressive enforcement", match)
	}
	return a
}

// normalizeText lowercases and replaces punctuation with spaces so that
// "Hydro-Flask" and "hydro flask" compare equal.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}
