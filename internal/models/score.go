// internal/models/score.go
// Result types produced by the scoring engine.
package models

import "time"

type RiskTier string
type HazmatCategory string
type ScoreStatus string

const (
	RiskTierNone     RiskTier = "none"
	RiskTierLow      RiskTier = "low"
	RiskTierMedium   RiskTier = "medium"
	RiskTierHigh     RiskTier = "high"
	RiskTierCritical RiskTier = "critical"

	HazmatBattery     HazmatCategory = "battery"
	HazmatFlammable   HazmatCategory = "flammable"
	HazmatPressurized HazmatCategory = "pressurized"
	HazmatCorrosive   HazmatCategory = "corrosive"
	HazmatToxic       HazmatCategory = "toxic"
	HazmatOxidizer    HazmatCategory = "oxidizer"
	HazmatExplosive   HazmatCategory = "explosive"

	StatusExcellent ScoreStatus = "excellent"  // 80-100
	StatusGood      ScoreStatus = "good"       // 60-79
	StatusMarginal  ScoreStatus = "marginal"   // 40-59
	StatusPoor      ScoreStatus = "poor"       // 20-39
	StatusNotViable ScoreStatus = "not_viable" // 0-19 or vetoed
)

// Veto rule names, stable identifiers for metrics and API consumers.
const (
	VetoRuleBrandRisk = "brand_risk"
	VetoRuleHazmat    = "hazmat"
	VetoRuleLowMargin = "low_margin"
	VetoRuleOperator  = "operator_presence"
)

// FeeBreakdown itemizes marketplace fees for one unit at a given price.
// TotalFees is always the exact sum of the three components.
type FeeBreakdown struct {
	ReferralFee         float64 `json:"referral_fee"`
	ReferralRate        float64 `json:"referral_rate"`
	FulfillmentFee      float64 `json:"fulfillment_fee"`
	MonthlyStorageFee   float64 `json:"monthly_storage_fee"`
	TotalFees           float64 `json:"total_fees"`
	SizeTier            string  `json:"size_tier"`
	DimensionsEstimated bool    `json:"dimensions_estimated"`
}

// RiskAssessment is the brand/IP risk verdict for one product.
type RiskAssessment struct {
	Tier         RiskTier `json:"tier"`
	MatchedBrand string   `json:"matched_brand,omitempty"`
	IsVeto       bool     `json:"is_veto"`
	Reason       string   `json:"reason"`
}

// HazmatAssessment is the hazardous-material verdict for one product.
type HazmatAssessment struct {
	Detected       bool           `json:"detected"`
	Category       HazmatCategory `json:"category,omitempty"`
	MatchedKeyword string         `json:"matched_keyword,omitempty"`
	IsVeto         bool           `json:"is_veto"`
}

// ComponentScore is one sub-score inside a pillar, with the weight it
// carries within that pillar and a short human-readable note.
type ComponentScore struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
	Note   string  `json:"note"`
}

// PillarScore is one of the three weighted pillars.
type PillarScore struct {
	Name          string           `json:"name"`
	Score         float64          `json:"score"`
	Weight        float64          `json:"weight"`
	WeightedScore float64          `json:"weighted_score"`
	Components    []ComponentScore `json:"components"`
}

// ScoreResult is the engine's full output for one product. When IsVetoed is
// true TotalScore is 0, but the pillar scores remain as computed so callers
// can see what the product would have scored.
type ScoreResult struct {
	ItemID     string      `json:"item_id"`
	TotalScore int         `json:"total_score"`
	Status     ScoreStatus `json:"status"`
	Confidence float64     `json:"confidence"`

	DemandPillar      PillarScore `json:"demand_pillar"`
	CompetitionPillar PillarScore `json:"competition_pillar"`
	ProfitPillar      PillarScore `json:"profit_pillar"`

	IsVetoed bool `json:"is_vetoed"`
	// VetoRules holds the stable rule names, VetoReasons the human-readable
	// explanations, index-aligned.
	VetoRules   []string `json:"veto_rules"`
	VetoReasons []string `json:"veto_reasons"`

	Fees             FeeBreakdown `json:"fees"`
	MarginPercent    float64      `json:"margin_percent"`
	NetProfitPerUnit float64      `json:"net_profit_per_unit"`

	BrandRisk RiskAssessment   `json:"brand_risk"`
	Hazmat    HazmatAssessment `json:"hazmat"`

	IsWinner        bool     `json:"is_winner"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`

	ScoredAt time.Time `json:"scored_at"`
}

// ScoreRecord is the persisted form of a ScoreResult.
type ScoreRecord struct {
	ID            string    `json:"id" db:"id"`
	ItemID        string    `json:"item_id" db:"item_id"`
	TotalScore    int       `json:"total_score" db:"total_score"`
	Status        string    `json:"status" db:"status"`
	Confidence    float64   `json:"confidence" db:"confidence"`
	IsVetoed      bool      `json:"is_vetoed" db:"is_vetoed"`
	VetoReasons   []string  `json:"veto_reasons" db:"veto_reasons"`
	MarginPercent float64   `json:"margin_percent" db:"margin_percent"`
	ProcessingMS  int64     `json:"processing_ms" db:"processing_ms"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
