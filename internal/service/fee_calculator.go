// internal/service/fee_calculator.go
// Marketplace fee math: referral, fulfillment and storage fees from the
// rate tables, plus profit/margin estimation on top.
package service

import (
	"math"
	"sort"
	"strings"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/config"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
)

type FeeCalculator struct {
	table config.FeeTable

	// Category keyword tables are re-keyed lowercase at construction so a
	// YAML override with capitalized keys still resolves, and the key lists
	// are sorted longest-first so substring lookups are deterministic and
	// prefer the most specific category match.
	rates       map[string]float64
	rateKeys    []string
	minFees     map[string]float64
	minFeeKeys  []string
	defTiers    map[string]string
	defTierKeys []string
}

func NewFeeCalculator(table config.FeeTable) *FeeCalculator {
	c := &FeeCalculator{table: table}
	c.rates, c.rateKeys = normalizeRateTable(table.ReferralRates)
	c.minFees, c.minFeeKeys = normalizeRateTable(table.MinReferralFees)
	c.defTiers, c.defTierKeys = normalizeTierTable(table.CategoryDefaultTiers)
	return c
}

// ProfitEstimate is the per-unit economics derived from a fee breakdown and
// a cost of goods.
type ProfitEstimate struct {
	CostOfGoods   float64 `json:"cost_of_goods"`
	NetProfit     float64 `json:"net_profit"`
	MarginPercent float64 `json:"margin_percent"`
	ROIPercent    float64 `json:"roi_percent"`
}

// CalculateFees computes the full fee breakdown for one unit. dims may be
// nil; the size tier then falls back to the category default and the
// storage fee is zero because the volume cannot be estimated.
func (c *FeeCalculator) CalculateFees(price float64, category string, dims *models.Dimensions) (models.FeeBreakdown, error) {
	if price <= 0 {
		return models.FeeBreakdown{}, models.NewInvalidInput("price", "must be greater than zero")
	}

	rate := c.referralRate(category)
	referral := price * rate
	if min := c.minReferralFee(category); referral < min {
		referral = min
	}
	referral = round2(referral)

	var tier config.SizeTierFee
	estimated := false
	if dims != nil {
		tier = c.classifyTier(*dims)
	} else {
		tier = c.defaultTier(category)
		estimated = true
	}
	fulfillment := round2(tier.FixedFee + price*tier.PercentOfPrice)

	storage := 0.0
	if dims != nil {
		storageRate := c.table.StorageRatePerCubicFoot
		if tier.Oversize {
			storageRate = c.table.OversizeStorageRate
		}
		storage = round2(dims.CubicFeet() * storageRate)
	}

	return models.FeeBreakdown{
		ReferralFee:         referral,
		ReferralRate:        rate,
		FulfillmentFee:      fulfillment,
		MonthlyStorageFee:   storage,
		TotalFees:           referral + fulfillment + storage,
		SizeTier:            tier.Name,
		DimensionsEstimated: estimated,
	}, nil
}

// EstimateProfit computes fees plus net profit, margin and ROI for a given
// cost of goods.
func (c *FeeCalculator) EstimateProfit(price, cogs float64, category string, dims *models.Dimensions) (models.FeeBreakdown, ProfitEstimate, error) {
	fees, err := c.CalculateFees(price, category, dims)
	if err != nil {
		return models.FeeBreakdown{}, ProfitEstimate{}, err
	}

	net := price - fees.TotalFees - cogs
	est := ProfitEstimate{
		CostOfGoods:   cogs,
		NetProfit:     round2(net),
		MarginPercent: round1(net / price * 100),
	}
	if cogs > 0 {
		est.ROIPercent = round1(net / cogs * 100)
	}
	return fees, est, nil
}

// classifyTier walks the size tiers smallest first and returns the first
// one the product fits in. The last tier is the unlimited catch-all.
func (c *FeeCalculator) classifyTier(d models.Dimensions) config.SizeTierFee {
	for _, tier := range c.table.SizeTiers {
		if tier.MaxLongestIn == 0 && tier.MaxWeightLb == 0 {
			return tier
		}
		if d.LongestSide() <= tier.MaxLongestIn &&
			d.MedianSide() <= tier.MaxMedianIn &&
			d.ShortestSide() <= tier.MaxShortestIn &&
			d.BillableWeight() <= tier.MaxWeightLb {
			return tier
		}
	}
	return c.table.SizeTiers[len(c.table.SizeTiers)-1]
}

// defaultTier picks the tier assumed for a category when dimensions are
// missing: the configured category default, else the smallest tier.
func (c *FeeCalculator) defaultTier(category string) config.SizeTierFee {
	name := c.table.DefaultTier
	cat := strings.ToLower(category)
	for _, key := range c.defTierKeys {
		if strings.Contains(cat, key) {
			name = c.defTiers[key]
			break
		}
	}
	for _, tier := range c.table.SizeTiers {
		if tier.Name == name {
			return tier
		}
	}
	// Validated config guarantees the name exists; this is unreachable.
	return c.table.SizeTiers[0]
}

func (c *FeeCalculator) referralRate(category string) float64 {
	cat := strings.ToLower(category)
	for _, key := range c.rateKeys {
		if strings.Contains(cat, key) {
			return c.rates[key]
		}
	}
	return c.table.DefaultReferralRate
}

func (c *FeeCalculator) minReferralFee(category string) float64 {
	cat := strings.ToLower(category)
	for _, key := range c.minFeeKeys {
		if strings.Contains(cat, key) {
			return c.minFees[key]
		}
	}
	return c.table.DefaultMinReferralFee
}

func normalizeRateTable(m map[string]float64) (map[string]float64, []string) {
	norm := make(map[string]float64, len(m))
	keys := make([]string, 0, len(m))
	for k, v := range m {
		lk := strings.ToLower(k)
		norm[lk] = v
		keys = append(keys, lk)
	}
	sortBySpecificity(keys)
	return norm, keys
}

func normalizeTierTable(m map[string]string) (map[string]string, []string) {
	norm := make(map[string]string, len(m))
	keys := make([]string, 0, len(m))
	for k, v := range m {
		lk := strings.ToLower(k)
		norm[lk] = v
		keys = append(keys, lk)
	}
	sortBySpecificity(keys)
	return norm, keys
}

func sortBySpecificity(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
