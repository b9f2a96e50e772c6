// internal/service/scorer.go
// Opportunity scoring engine: three weighted pillars plus veto rules.
package service

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/config"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
)

// Confidence increments. The base covers the required fields; each optional
// signal that is actually present adds its increment, capped at 1.0.
const (
	confidenceBase    = 0.50
	confidenceRank    = 0.15
	confidencePrice   = 0.10
	confidenceReviews = 0.10
	confidenceSellers = 0.10
	confidenceHistory = 0.15
	confidenceCOGS    = 0.10
)

type OpportunityScorer struct {
	cfg    config.ScoringConfig
	fees   *FeeCalculator
	brands *BrandRiskChecker
	hazmat *HazmatDetector
	logger *zap.Logger
}

func NewOpportunityScorer(cfg *config.Config, logger *zap.Logger) *OpportunityScorer {
	return &OpportunityScorer{
		cfg:    cfg.Scoring,
		fees:   NewFeeCalculator(cfg.Fees),
		brands: NewBrandRiskChecker(cfg.Brands),
		hazmat: NewHazmatDetector(cfg.Hazmat),
		logger: logger,
	}
}

// ScoreInput carries the optional context around a product: seller
// composition, top competing listings, and the caller's cost of goods.
// Everything here may be absent; absence only lowers confidence.
type ScoreInput struct {
	Sellers     *models.SellerSummary
	Competitors []models.CompetitorListing
	CostOfGoods *float64
}

// Score runs the full pipeline for one product. It is a pure function of
// its inputs and the reference tables: the same product scores identically
// on every call. Missing optional data degrades via documented defaults;
// only invalid required fields produce an error.
func (s *OpportunityScorer) Score(product *models.ProductRecord, in ScoreInput) (*models.ScoreResult, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	// Per-unit economics first: the margin feeds both the profit pillar
	// and the veto check.
	cogs := product.Price * s.cfg.DefaultCOGSFraction
	realCOGS := false
	if in.CostOfGoods != nil && *in.CostOfGoods > 0 {
		cogs = *in.CostOfGoods
		realCOGS = true
	}
	fees, profit, err := s.fees.EstimateProfit(product.Price, cogs, product.Category, product.Dimensions)
	if err != nil {
		return nil, err
	}

	brandRisk := s.brands.CheckBrand(product.Brand, product.Title)
	hazmat := s.hazmat.CheckHazmat(product.Title, product.Description)

	demand := s.demandPillar(product)
	competition := s.competitionPillar(in.Sellers, in.Competitors)
	profitPillar := s.profitPillar(product.Price, profit.MarginPercent, brandRisk, hazmat)

	total := clampInt(int(math.Round(
		demand.WeightedScore+competition.WeightedScore+profitPillar.WeightedScore)), 0, 100)

	result := &models.ScoreResult{
		ItemID:            product.ItemID,
		TotalScore:        total,
		DemandPillar:      demand,
		CompetitionPillar: competition,
		ProfitPillar:      profitPillar,
		Fees:              fees,
		MarginPercent:     profit.MarginPercent,
		NetProfitPerUnit:  profit.NetProfit,
		BrandRisk:         brandRisk,
		Hazmat:            hazmat,
		Confidence:        s.confidence(product, in.Sellers, realCOGS),
		VetoRules:         []string{},
		VetoReasons:       []string{},
	}

	// Veto check runs after pillar computation so the breakdown stays
	// available for debugging; a veto only forces the reported total.
	s.applyVetoes(result, in.Sellers, profit.MarginPercent)
	if result.IsVetoed {
		result.TotalScore = 0
	}

	result.Status = statusFor(result.TotalScore, result.IsVetoed)
	result.IsWinner = !result.IsVetoed &&
		result.TotalScore >= s.cfg.WinnerScoreThreshold &&
		result.MarginPercent >= s.cfg.WinnerMarginThreshold
	s.addInsights(result)

	s.logger.Debug("product scored",
		zap.String("item_id", product.ItemID),
		zap.Int("total_score", result.TotalScore),
		zap.Bool("is_vetoed", result.IsVetoed),
		zap.Float64("margin_percent", result.MarginPercent))

	return result, nil
}

func validateProduct(p *models.ProductRecord) error {
	if p == nil {
		return models.NewInvalidInput("product", "is required")
	}
	if p.ItemID == "" {
		return models.NewInvalidInput("item_id", "is required")
	}
	if p.Title == "" {
		return models.NewInvalidInput("title", "is required")
	}
	if p.Price <= 0 {
		return models.NewInvalidInput("price", "must be greater than zero")
	}
	if p.Rating < 0 || p.Rating > 5 {
		return models.NewInvalidInput("rating", "must be between 0 and 5")
	}
	return nil
}

// demandPillar: rank tier, rank stability and sales velocity.
func (s *OpportunityScorer) demandPillar(p *models.ProductRecord) models.PillarScore {
	rankScore := 0.0
	rankNote := "no rank data available"
	if p.Rank != nil && *p.Rank > 0 {
		rankScore = s.cfg.RankFloorScore
		rankNote = fmt.Sprintf("rank #%d beyond tracked tiers", *p.Rank)
		for _, tier := range s.cfg.RankTiers {
			if *p.Rank <= tier.MaxRank {
				rankScore = tier.Score
				rankNote = fmt.Sprintf("rank #%d within top %d", *p.Rank, tier.MaxRank)
				break
			}
		}
	}

	stabilityScore := s.cfg.NeutralStabilityScore
	stabilityNote := "fewer than 2 rank observations, stability unknown"
	if len(p.RankHistory) >= 2 {
		cv := coefficientOfVariation(p.RankHistory)
		stabilityScore = s.cfg.StabilityFloorScore
		stabilityNote = fmt.Sprintf("volatile rank history (cv %.2f)", cv)
		for _, band := range s.cfg.StabilityBands {
			if cv < band.MaxCV {
				stabilityScore = band.Score
				stabilityNote = fmt.Sprintf("rank history cv %.2f", cv)
				break
			}
		}
	}

	velocityScore := s.cfg.VelocityFloorScore
	velocityNote := "very low or unknown sales velocity"
	if p.EstimatedMonthlySales != nil {
		sales := *p.EstimatedMonthlySales
		for _, tier := range s.cfg.VelocityTiers {
			if sales >= tier.MinSales {
				velocityScore = tier.Score
				velocityNote = fmt.Sprintf("~%d units/month", sales)
				break
			}
		}
	}

	return s.pillar("demand", s.cfg.DemandWeight, []models.ComponentScore{
		{Name: "rank", Score: rankScore, Weight: s.cfg.RankWeight, Note: rankNote},
		{Name: "rank_stability", Score: stabilityScore, Weight: s.cfg.StabilityWeight, Note: stabilityNote},
		{Name: "sales_velocity", Score: velocityScore, Weight: s.cfg.VelocityWeight, Note: velocityNote},
	})
}

// competitionPillar: seller sweet spot, review vulnerability and operator
// presence. The seller-count curve is deliberately non-monotonic: too few
// sellers suggests gating or no demand, too many a price war.
func (s *OpportunityScorer) competitionPillar(sellers *models.SellerSummary, competitors []models.CompetitorListing) models.PillarScore {
	sellerScore := s.cfg.NeutralSellerScore
	sellerNote := "no seller data available"
	operatorScore := 100.0
	operatorNote := "marketplace operator is not a seller"
	if sellers != nil {
		fba := sellers.FBACount
		switch {
		case fba >= s.cfg.SweetSpotMinSellers && fba <= s.cfg.SweetSpotMaxSellers:
			sellerScore = s.cfg.SweetSpotScore
			sellerNote = fmt.Sprintf("%d FBA sellers in the sweet spot", fba)
		case fba < s.cfg.SweetSpotMinSellers:
			sellerScore = s.cfg.SparseSellerScore
			sellerNote = fmt.Sprintf("only %d FBA sellers, may indicate gating or weak demand", fba)
		case fba <= s.cfg.CrowdedMaxSellers:
			sellerScore = s.cfg.CrowdedSellerScore
			sellerNote = fmt.Sprintf("%d FBA sellers, slightly crowded", fba)
		default:
			sellerScore = s.cfg.SaturatedScore
			sellerNote = fmt.Sprintf("%d FBA sellers, price war risk", fba)
		}

		if sellers.OperatorIsSeller {
			operatorScore = 0
			operatorNote = "marketplace operator sells this listing"
		}
	}

	vulnScore := s.cfg.NeutralVulnerabilityScore
	vulnNote := "no competitor data, using neutral default"
	if len(competitors) > 0 {
		vulnerable := 0
		for _, c := range competitors {
			if c.ReviewCount < s.cfg.VulnerableReviewCount {
				vulnerable++
			}
		}
		switch {
		case vulnerable >= s.cfg.MinVulnerableCompetitors:
			vulnScore = 100
		case vulnerable == 2:
			vulnScore = 70
		case vulnerable == 1:
			vulnScore = 50
		default:
			vulnScore = 20
		}
		vulnNote = fmt.Sprintf("%d of %d competitors under %d reviews",
			vulnerable, len(competitors), s.cfg.VulnerableReviewCount)
	}

	return s.pillar("competition", s.cfg.CompetitionWeight, []models.ComponentScore{
		{Name: "seller_count", Score: sellerScore, Weight: s.cfg.SellerCountWeight, Note: sellerNote},
		{Name: "review_vulnerability", Score: vulnScore, Weight: s.cfg.VulnerabilityWeight, Note: vulnNote},
		{Name: "operator_presence", Score: operatorScore, Weight: s.cfg.OperatorWeight, Note: operatorNote},
	})
}

// profitPillar: margin tier, price-point band and risk penalty. The price
// band curve is non-monotonic on purpose: cheap items drown in fees and
// expensive ones tie up capital.
func (s *OpportunityScorer) profitPillar(price, margin float64, brand models.RiskAssessment, hazmat models.HazmatAssessment) models.PillarScore {
	marginScore := 0.0
	for _, tier := range s.cfg.MarginTiers {
		if margin >= tier.MinMargin {
			marginScore = tier.Score
			break
		}
	}

	priceScore := 0.0
	for _, band := range s.cfg.PriceBands {
		if price >= band.Min && (band.Max == 0 || price <= band.Max) {
			priceScore = band.Score
			break
		}
	}

	riskScore := 100.0
	riskNote := "no significant risk factors"
	switch brand.Tier {
	case models.RiskTierHigh:
		riskScore -= s.cfg.BrandHighPenalty
		riskNote = "high IP risk brand"
	case models.RiskTierMedium:
		riskScore -= s.cfg.BrandMediumPenalty
		riskNote = "moderate IP risk brand"
	}
	if hazmat.Detected && !hazmat.IsVeto {
		riskScore -= s.cfg.HazmatFlagPenalty
		riskNote = fmt.Sprintf("potential %s hazmat", hazmat.Category)
	}
	if riskScore < 0 {
		riskScore = 0
	}

	return s.pillar("profit", s.cfg.ProfitWeight, []models.ComponentScore{
		{Name: "margin", Score: marginScore, Weight: s.cfg.MarginWeight, Note: fmt.Sprintf("margin %.1f%%", margin)},
		{Name: "price_point", Score: priceScore, Weight: s.cfg.PricePointWeight, Note: fmt.Sprintf("price %.2f", price)},
		{Name: "risk_penalty", Score: riskScore, Weight: s.cfg.RiskPenaltyWeight, Note: riskNote},
	})
}

func (s *OpportunityScorer) pillar(name string, weight float64, components []models.ComponentScore) models.PillarScore {
	score := 0.0
	for _, c := range components {
		score += c.Score * c.Weight
	}
	score = round1(score)
	return models.PillarScore{
		Name:          name,
		Score:         score,
		Weight:        weight,
		WeightedScore: round1(score * weight),
		Components:    components,
	}
}

// applyVetoes collects every triggered veto rule; all simultaneous reasons
// are reported, not just the first.
func (s *OpportunityScorer) applyVetoes(r *models.ScoreResult, sellers *models.SellerSummary, margin float64) {
	veto := func(rule, reason string) {
		r.VetoRules = append(r.VetoRules, rule)
		r.VetoReasons = append(r.VetoReasons, reason)
	}
	if r.BrandRisk.IsVeto {
		veto(models.VetoRuleBrandRisk, fmt.Sprintf("brand risk: %s", r.BrandRisk.Reason))
	}
	if r.Hazmat.IsVeto {
		veto(models.VetoRuleHazmat,
			fmt.Sprintf("hazmat: %s indicator %q is prohibited", r.Hazmat.Category, r.Hazmat.MatchedKeyword))
	}
	if margin < s.cfg.MinMarginPercent {
		veto(models.VetoRuleLowMargin,
			fmt.Sprintf("margin %.1f%% is below the %.1f%% floor", margin, s.cfg.MinMarginPercent))
	}
	if s.cfg.VetoOnOperatorPresence && sellers != nil && sellers.OperatorIsSeller {
		veto(models.VetoRuleOperator, "marketplace operator is a seller")
	}
	r.IsVetoed = len(r.VetoReasons) > 0
}

// confidence reflects how complete the input data was, independent of how
// the product scored. It only ever grows as more fields are supplied.
func (s *OpportunityScorer) confidence(p *models.ProductRecord, sellers *models.SellerSummary, realCOGS bool) float64 {
	c := confidenceBase
	if p.Rank != nil && *p.Rank > 0 {
		c += confidenceRank
	}
	if p.Price > 0 {
		c += confidencePrice
	}
	if p.ReviewCount != nil {
		c += confidenceReviews
	}
	if sellers != nil {
		c += confidenceSellers
	}
	if len(p.RankHistory) >= 2 {
		c += confidenceHistory
	}
	if realCOGS {
		c += confidenceCOGS
	}
	if c > 1.0 {
		c = 1.0
	}
	return math.Round(c*100) / 100
}

func (s *OpportunityScorer) addInsights(r *models.ScoreResult) {
	if r.IsVetoed {
		r.Weaknesses = append(r.Weaknesses, "vetoed: "+r.VetoReasons[0])
		r.Recommendations = append(r.Recommendations, "do not source this product")
		return
	}

	pillars := []struct {
		p        models.PillarScore
		strength string
		weakness string
		advice   string
	}{
		{r.DemandPillar, "strong demand indicators", "weak demand signals",
			"verify demand with more research before sourcing"},
		{r.CompetitionPillar, "favorable competitive landscape", "highly competitive market",
			"consider a less saturated niche"},
		{r.ProfitPillar, "good profit potential", "margin concerns",
			"source at lower cost or find higher-priced alternatives"},
	}
	for _, x := range pillars {
		if x.p.Score >= 70 {
			r.Strengths = append(r.Strengths, x.strength)
		} else if x.p.Score < 40 {
			r.Weaknesses = append(r.Weaknesses, x.weakness)
			r.Recommendations = append(r.Recommendations, x.advice)
		}
	}

	switch {
	case r.IsWinner:
		r.Recommendations = append(r.Recommendations, "strong opportunity, proceed with sourcing research")
	case r.TotalScore >= 50:
		r.Recommendations = append(r.Recommendations, "moderate opportunity, do additional research before committing")
	default:
		r.Recommendations = append(r.Recommendations, "consider alternative products with better metrics")
	}
}

func statusFor(score int, vetoed bool) models.ScoreStatus {
	switch {
	case vetoed:
		return models.StatusNotViable
	case score >= 80:
		return models.StatusExcellent
	case score >= 60:
		return models.StatusGood
	case score >= 40:
		return models.StatusMarginal
	case score >= 20:
		return models.StatusPoor
	default:
		return models.StatusNotViable
	}
}

func coefficientOfVariation(history []int) float64 {
	mean := 0.0
	for _, v := range history {
		mean += float64(v)
	}
	mean /= float64(len(history))
	if mean == 0 {
		return 0
	}
	variance := 0.0
	for _, v := range history {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= float64(len(history))
	return math.Sqrt(variance) / mean
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
