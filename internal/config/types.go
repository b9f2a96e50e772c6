// internal/config/types.go
// Static reference tables and scoring policy. Loaded once at startup and
// treated as immutable afterwards; the engine only ever reads them.
package config

// Config bundles every reference table the scoring engine needs.
type Config struct {
	Fees    FeeTable       `yaml:"fees"`
	Brands  BrandRiskTable `yaml:"brands"`
	Hazmat  HazmatTable    `yaml:"hazmat"`
	Scoring ScoringConfig  `yaml:"scoring"`
	Sellers SellerConfig   `yaml:"sellers"`
}

// FeeTable drives the fee calculator.
type FeeTable struct {
	// ReferralRates maps a category keyword (substring match against the
	// normalized category) to its referral percentage.
	ReferralRates       map[string]float64 `yaml:"referral_rates"`
	DefaultReferralRate float64            `yaml:"default_referral_rate"`

	MinReferralFees       map[string]float64 `yaml:"min_referral_fees"`
	DefaultMinReferralFee float64            `yaml:"default_min_referral_fee"`

	// SizeTiers are ordered smallest first; the last tier has no limits
	// and catches everything oversized.
	SizeTiers []SizeTierFee `yaml:"size_tiers"`

	// CategoryDefaultTiers names the tier assumed for a category when the
	// product has no dimensions. Unlisted categories use DefaultTier.
	CategoryDefaultTiers map[string]string `yaml:"category_default_tiers"`
	DefaultTier          string            `yaml:"default_tier"`

	StorageRatePerCubicFoot float64 `yaml:"storage_rate_per_cubic_foot"`
	OversizeStorageRate     float64 `yaml:"oversize_storage_rate"`
}

// SizeTierFee is one fulfillment size tier. A zero limit means "no limit"
// for that dimension.
type SizeTierFee struct {
	Name           string  `yaml:"name"`
	MaxLongestIn   float64 `yaml:"max_longest_in"`
	MaxMedianIn    float64 `yaml:"max_median_in"`
	MaxShortestIn  float64 `yaml:"max_shortest_in"`
	MaxWeightLb    float64 `yaml:"max_weight_lb"`
	FixedFee       float64 `yaml:"fixed_fee"`
	PercentOfPrice float64 `yaml:"percent_of_price"`
	Oversize       bool    `yaml:"oversize"`
}

// BrandRiskTable holds the IP-risk brand lists per tier.
type BrandRiskTable struct {
	Critical []string `yaml:"critical"`
	High     []string `yaml:"high"`
	Medium   []string `yaml:"medium"`

	// MinSubstringLength guards against short brand names matching inside
	// unrelated words; brands shorter than this only match on word
	// boundaries.
	MinSubstringLength int `yaml:"min_substring_length"`
}

// HazmatKeyword maps one keyword or phrase to a hazmat category. Veto marks
// outright-prohibited categories as opposed to flagged-but-shippable ones.
type HazmatKeyword struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
	Veto     bool   `yaml:"veto"`
}

// HazmatTable is the hazmat keyword list.
type HazmatTable struct {
	Keywords []HazmatKeyword `yaml:"keywords"`
}

// RankTier maps a rank ceiling to a score.
type RankTier struct {
	MaxRank int     `yaml:"max_rank"`
	Score   float64 `yaml:"score"`
}

// StabilityBand maps a rank-history coefficient-of-variation ceiling to a
// score.
type StabilityBand struct {
	MaxCV float64 `yaml:"max_cv"`
	Score float64 `yaml:"score"`
}

// VelocityTier maps a monthly-sales floor to a score; evaluated highest
// floor first.
type VelocityTier struct {
	MinSales int     `yaml:"min_sales"`
	Score    float64 `yaml:"score"`
}

// MarginTier maps a margin-percent floor to a score; evaluated highest
// floor first.
type MarginTier struct {
	MinMargin float64 `yaml:"min_margin"`
	Score     float64 `yaml:"score"`
}

// PriceBand scores an inclusive price range. Bands are evaluated in order;
// a zero Max means "no upper bound".
type PriceBand struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Score float64 `yaml:"score"`
}

// ScoringConfig carries the three-pillar weights, every tier table, and the
// veto/winner policy. The thresholds are deliberately configuration, not
// code: callers own the policy.
type ScoringConfig struct {
	DemandWeight      float64 `yaml:"demand_weight"`
	CompetitionWeight float64 `yaml:"competition_weight"`
	ProfitWeight      float64 `yaml:"profit_weight"`

	// Demand pillar
	RankWeight      float64    `yaml:"rank_weight"`
	StabilityWeight float64    `yaml:"stability_weight"`
	VelocityWeight  float64    `yaml:"velocity_weight"`
	RankTiers       []RankTier `yaml:"rank_tiers"`
	// RankFloorScore applies to ranks beyond the last tier; a missing rank
	// scores zero outright.
	RankFloorScore        float64         `yaml:"rank_floor_score"`
	StabilityBands        []StabilityBand `yaml:"stability_bands"`
	StabilityFloorScore   float64         `yaml:"stability_floor_score"`
	NeutralStabilityScore float64         `yaml:"neutral_stability_score"`
	VelocityTiers         []VelocityTier  `yaml:"velocity_tiers"`
	VelocityFloorScore    float64         `yaml:"velocity_floor_score"`

	// Competition pillar
	SellerCountWeight   float64 `yaml:"seller_count_weight"`
	VulnerabilityWeight float64 `yaml:"vulnerability_weight"`
	OperatorWeight      float64 `yaml:"operator_weight"`

	SweetSpotMinSellers int     `yaml:"sweet_spot_min_sellers"`
	SweetSpotMaxSellers int     `yaml:"sweet_spot_max_sellers"`
	CrowdedMaxSellers   int     `yaml:"crowded_max_sellers"`
	SweetSpotScore      float64 `yaml:"sweet_spot_score"`
	SparseSellerScore   float64 `yaml:"sparse_seller_score"`
	CrowdedSellerScore  float64 `yaml:"crowded_seller_score"`
	SaturatedScore      float64 `yaml:"saturated_score"`
	NeutralSellerScore  float64 `yaml:"neutral_seller_score"`

	VulnerableReviewCount     int     `yaml:"vulnerable_review_count"`
	MinVulnerableCompetitors  int     `yaml:"min_vulnerable_competitors"`
	NeutralVulnerabilityScore float64 `yaml:"neutral_vulnerability_score"`

	// Profit pillar
	MarginWeight      float64      `yaml:"margin_weight"`
	PricePointWeight  float64      `yaml:"price_point_weight"`
	RiskPenaltyWeight float64      `yaml:"risk_penalty_weight"`
	MarginTiers       []MarginTier `yaml:"margin_tiers"`
	PriceBands        []PriceBand  `yaml:"price_bands"`

	BrandHighPenalty   float64 `yaml:"brand_high_penalty"`
	BrandMediumPenalty float64 `yaml:"brand_medium_penalty"`
	HazmatFlagPenalty  float64 `yaml:"hazmat_flag_penalty"`

	// Veto and winner policy, caller-owned.
	MinMarginPercent       float64 `yaml:"min_margin_percent"`
	VetoOnOperatorPresence bool    `yaml:"veto_on_operator_presence"`
	WinnerScoreThreshold   int     `yaml:"winner_score_threshold"`
	WinnerMarginThreshold  float64 `yaml:"winner_margin_threshold"`

	// DefaultCOGSFraction of price assumed when the caller supplies no
	// cost of goods.
	DefaultCOGSFraction float64 `yaml:"default_cogs_fraction"`
}

// SellerConfig drives the seller composition analyzer.
type SellerConfig struct {
	// OperatorNames are the canonical names the marketplace operator
	// sells under, matched case-insensitively against offer rows.
	OperatorNames []string `yaml:"operator_names"`
}
