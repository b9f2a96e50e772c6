// internal/config/defaults.go
package config

// Default policy values. Tier tables and brand/hazmat lists have their own
// builders below since they are structured data, not scalars.
const (
	DefaultReferralRate      = 0.15
	DefaultMinReferralFee    = 0.30
	DefaultStorageRate       = 0.78
	DefaultOversizeStorage   = 0.56
	DefaultSizeTier          = "small_standard"
	DefaultMinSubstringLen   = 4
	DefaultVulnerableReviews = 400
	DefaultMinVulnerable     = 3
	DefaultMinMarginPercent  = 10.0
	DefaultWinnerScore       = 60
	DefaultWinnerMargin      = 25.0
	DefaultCOGSFraction      = 0.35
)

// Defaults returns a fully-populated configuration. Production deployments
// generally load a YAML file on top of this; tests and the bare binary run
// on the defaults alone.
func Defaults() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.Fees.applyDefaults()
	c.Brands.applyDefaults()
	c.Hazmat.applyDefaults()
	c.Scoring.applyDefaults()
	c.Sellers.applyDefaults()
}

func (f *FeeTable) applyDefaults() {
	if f.ReferralRates == nil {
		f.ReferralRates = map[string]float64{
			"electronics":         0.08,
			"computers":           0.08,
			"camera":              0.08,
			"cell phones":         0.08,
			"video game consoles": 0.08,
			"watches":             0.16,
			"clothing":            0.17,
			"jewelry":             0.20,
			"gift cards":          0.20,
			"home":                0.15,
			"kitchen":             0.15,
			"sports":              0.15,
			"toys":                0.15,
			"office":              0.15,
			"pet supplies":        0.15,
			"beauty":              0.15,
			"baby":                0.15,
			"grocery":             0.15,
		}
	}
	if f.DefaultReferralRate == 0 {
		f.DefaultReferralRate = DefaultReferralRate
	}
	if f.MinReferralFees == nil {
		f.MinReferralFees = map[string]float64{
			"jewelry": 2.00,
			"watches": 2.00,
		}
	}
	if f.DefaultMinReferralFee == 0 {
		f.DefaultMinReferralFee = DefaultMinReferralFee
	}
	if f.SizeTiers == nil {
		f.SizeTiers = []SizeTierFee{
			{
				Name:          "small_standard",
				MaxLongestIn:  15,
				MaxMedianIn:   12,
				MaxShortestIn: 0.75,
				MaxWeightLb:   1,
				FixedFee:      3.22,
			},
			{
				Name:           "large_standard",
				MaxLongestIn:   18,
				MaxMedianIn:    14,
				MaxShortestIn:  8,
				MaxWeightLb:    20,
				FixedFee:       4.75,
				PercentOfPrice: 0.01,
			},
			{
				// Catch-all tier: no limits.
				Name:           "oversize",
				FixedFee:       9.73,
				PercentOfPrice: 0.03,
				Oversize:       true,
			},
		}
	}
	if f.CategoryDefaultTiers == nil {
		f.CategoryDefaultTiers = map[string]string{
			"furniture":  "oversize",
			"appliances": "large_standard",
			"luggage":    "large_standard",
			"sports":     "large_standard",
		}
	}
	if f.DefaultTier == "" {
		f.DefaultTier = DefaultSizeTier
	}
	if f.StorageRatePerCubicFoot == 0 {
		f.StorageRatePerCubicFoot = DefaultStorageRate
	}
	if f.OversizeStorageRate == 0 {
		f.OversizeStorageRate = DefaultOversizeStorage
	}
}

func (b *BrandRiskTable) applyDefaults() {
	if b.Critical == nil {
		b.Critical = []string{
			// Entertainment and media
			"disney", "marvel", "star wars", "pixar", "warner bros",
			"dc comics", "harry potter", "nintendo", "pokemon", "mario",
			"zelda", "playstation", "xbox", "dreamworks", "paramount",
			"nickelodeon", "paw patrol", "sesame street",
			// Sports leagues and teams
			"nfl", "nba", "mlb", "nhl", "fifa", "olympics", "ncaa",
			"cowboys", "lakers", "yankees", "patriots",
			// Luxury
			"louis vuitton", "gucci", "prada", "chanel", "hermes",
			"rolex", "cartier", "tiffany", "burberry", "dior",
			"versace", "michael kors", "balenciaga",
			// Tech
			"apple", "iphone", "ipad", "airpods", "samsung", "galaxy",
			"google", "amazon basics", "alexa", "kindle", "meta", "oculus",
			// Automotive
			"tesla", "bmw", "mercedes", "porsche", "ferrari",
			"ford", "toyota", "honda", "jeep", "harley davidson",
			// Apparel
			"nike", "adidas", "under armour", "puma", "new balance",
			"air jordan", "yeezy", "supreme", "north face", "patagonia",
			"lululemon", "levis", "calvin klein", "ralph lauren",
			// Toys
			"lego", "barbie", "hot wheels", "fisher price", "hasbro",
			"transformers", "nerf", "funko pop",
			// Consumer goods
			"bose", "beats", "jbl", "dyson", "irobot", "vitamix",
			"kitchenaid", "instant pot", "keurig", "nespresso",
			// Beauty
			"sephora", "estee lauder", "clinique", "maybelline",
			"loreal", "fenty", "glossier",
			// Food and beverage
			"coca cola", "pepsi", "red bull", "starbucks", "oreo",
			"nutella", "hershey", "nestle",
		}
	}
	if b.High == nil {
		b.High = []string{
			"yeti", "hydro flask", "stanley", "contigo", "simplehuman",
			"oxo", "rubbermaid", "tupperware", "peloton", "bowflex",
			"theragun", "fitbit", "garmin", "coleman", "igloo",
			"callaway", "titleist", "shimano", "anker", "belkin",
			"logitech", "razer", "corsair", "kong", "petsafe",
			"graco", "chicco", "uppababy", "ergobaby", "crest",
			"oral-b", "braun", "conair",
		}
	}
	if b.Medium == nil {
		b.Medium = []string{
			"crocs", "skechers", "vans", "converse", "asics",
			"osprey", "jansport", "herschel", "otterbox", "spigen",
			"gopro", "dji", "ring", "nest", "wyze", "lodge",
			"le creuset", "all-clad", "weber", "traeger", "blackstone",
		}
	}
	if b.MinSubstringLength == 0 {
		b.MinSubstringLength = DefaultMinSubstringLen
	}
}

func (h *HazmatTable) applyDefaults() {
	if h.Keywords != nil {
		return
	}
	add := func(category string, veto bool, words ...string) {
		for _, w := range words {
			h.Keywords = append(h.Keywords, HazmatKeyword{Keyword: w, Category: category, Veto: veto})
		}
	}
	// Veto-level categories: prohibited or FBA-ineligible outright.
	add("explosive", true,
		"explosive", "ammunition", "gunpowder", "fireworks",
		"firecracker", "flare", "smoke bomb", "detonator", "tannerite")
	add("battery", true,
		"lithium battery", "lithium-ion", "li-ion", "lipo", "power bank",
		"battery pack", "18650", "cr2032", "laptop battery",
		"drone battery", "vape battery")
	add("pressurized", true,
		"aerosol", "spray can", "pressurized", "compressed air",
		"air duster", "spray paint", "bear spray", "pepper spray",
		"co2 cartridge", "fire extinguisher", "flammable aerosol")
	// Flag-only categories: shippable with restrictions.
	add("flammable", false,
		"flammable", "combustible", "isopropyl", "acetone",
		"nail polish remover", "paint thinner", "lacquer", "kerosene",
		"lighter fluid", "butane", "propane", "hand sanitizer",
		"rubbing alcohol", "perfume", "cologne", "essential oil",
		"hairspray", "starter fluid", "brake cleaner")
	add("corrosive", false,
		"sulfuric acid", "hydrochloric", "muriatic", "battery acid",
		"drain cleaner", "oven cleaner", "rust remover", "bleach",
		"ammonia", "lye", "caustic soda", "sodium hydroxide",
		"toilet bowl cleaner", "descaler")
	add("toxic", false,
		"poison", "pesticide", "insecticide", "herbicide", "rat poison",
		"ant killer", "roach killer", "weed killer", "glyphosate",
		"antifreeze", "mercury", "formaldehyde", "benzene")
	add("oxidizer", false,
		"oxidizer", "hydrogen peroxide", "pool shock",
		"calcium hypochlorite", "potassium permanganate",
		"sodium hypochlorite", "hair developer")
}

func (s *ScoringConfig) applyDefaults() {
	if s.DemandWeight == 0 {
		s.DemandWeight = 0.40
	}
	if s.CompetitionWeight == 0 {
		s.CompetitionWeight = 0.35
	}
	if s.ProfitWeight == 0 {
		s.ProfitWeight = 0.25
	}

	if s.RankWeight == 0 {
		s.RankWeight = 0.40
	}
	if s.StabilityWeight == 0 {
		s.StabilityWeight = 0.30
	}
	if s.VelocityWeight == 0 {
		s.VelocityWeight = 0.30
	}
	if s.RankTiers == nil {
		s.RankTiers = []RankTier{
			{MaxRank: 5000, Score: 100},
			{MaxRank: 20000, Score: 80},
			{MaxRank: 50000, Score: 60},
			{MaxRank: 100000, Score: 40},
		}
	}
	if s.RankFloorScore == 0 {
		s.RankFloorScore = 20
	}
	if s.StabilityBands == nil {
		s.StabilityBands = []StabilityBand{
			{MaxCV: 0.2, Score: 100},
			{MaxCV: 0.4, Score: 70},
			{MaxCV: 0.6, Score: 40},
		}
	}
	if s.StabilityFloorScore == 0 {
		s.StabilityFloorScore = 20
	}
	if s.NeutralStabilityScore == 0 {
		s.NeutralStabilityScore = 50
	}
	if s.VelocityTiers == nil {
		s.VelocityTiers = []VelocityTier{
			{MinSales: 500, Score: 100},
			{MinSales: 300, Score: 80},
			{MinSales: 100, Score: 60},
			{MinSales: 30, Score: 40},
		}
	}
	if s.VelocityFloorScore == 0 {
		s.VelocityFloorScore = 20
	}

	if s.SellerCountWeight == 0 {
		s.SellerCountWeight = 0.40
	}
	if s.VulnerabilityWeight == 0 {
		s.VulnerabilityWeight = 0.35
	}
	if s.OperatorWeight == 0 {
		s.OperatorWeight = 0.25
	}
	if s.SweetSpotMinSellers == 0 {
		s.SweetSpotMinSellers = 3
	}
	if s.SweetSpotMaxSellers == 0 {
		s.SweetSpotMaxSellers = 15
	}
	if s.CrowdedMaxSellers == 0 {
		s.CrowdedMaxSellers = 20
	}
	if s.SweetSpotScore == 0 {
		s.SweetSpotScore = 100
	}
	if s.SparseSellerScore == 0 {
		s.SparseSellerScore = 40
	}
	if s.CrowdedSellerScore == 0 {
		s.CrowdedSellerScore = 60
	}
	if s.SaturatedScore == 0 {
		s.SaturatedScore = 20
	}
	if s.NeutralSellerScore == 0 {
		s.NeutralSellerScore = 50
	}
	if s.VulnerableReviewCount == 0 {
		s.VulnerableReviewCount = DefaultVulnerableReviews
	}
	if s.MinVulnerableCompetitors == 0 {
		s.MinVulnerableCompetitors = DefaultMinVulnerable
	}
	if s.NeutralVulnerabilityScore == 0 {
		s.NeutralVulnerabilityScore = 50
	}

	if s.MarginWeight == 0 {
		s.MarginWeight = 0.50
	}
	if s.PricePointWeight == 0 {
		s.PricePointWeight = 0.25
	}
	if s.RiskPenaltyWeight == 0 {
		s.RiskPenaltyWeight = 0.25
	}
	if s.MarginTiers == nil {
		s.MarginTiers = []MarginTier{
			{MinMargin: 40, Score: 100},
			{MinMargin: 30, Score: 80},
			{MinMargin: 20, Score: 60},
			{MinMargin: 10, Score: 30},
		}
	}
	if s.PriceBands == nil {
		s.PriceBands = []PriceBand{
			{Min: 20, Max: 50, Score: 100},
			{Min: 15, Max: 20, Score: 80},
			{Min: 50, Max: 75, Score: 80},
			{Min: 10, Max: 15, Score: 60},
			{Min: 75, Max: 100, Score: 60},
			{Min: 0, Max: 10, Score: 30},
			{Min: 100, Max: 0, Score: 50},
		}
	}
	if s.BrandHighPenalty == 0 {
		s.BrandHighPenalty = 40
	}
	if s.BrandMediumPenalty == 0 {
		s.BrandMediumPenalty = 20
	}
	if s.HazmatFlagPenalty == 0 {
		s.HazmatFlagPenalty = 30
	}

	if s.MinMarginPercent == 0 {
		s.MinMarginPercent = DefaultMinMarginPercent
	}
	if s.WinnerScoreThreshold == 0 {
		s.WinnerScoreThreshold = DefaultWinnerScore
	}
	if s.WinnerMarginThreshold == 0 {
		s.WinnerMarginThreshold = DefaultWinnerMargin
	}
	if s.DefaultCOGSFraction == 0 {
		s.DefaultCOGSFraction = DefaultCOGSFraction
	}
}

func (s *SellerConfig) applyDefaults() {
	if s.OperatorNames == nil {
		s.OperatorNames = []string{
			"amazon", "amazon.com", "amazon.com services llc",
			"amazon services llc", "amazon eu sarl", "amazon.ca",
			"amazon.co.uk", "amazon.de", "amazon.fr", "amazon.it",
			"amazon.es", "amazon.co.jp", "amazon.com.au", "amazon.in",
			"amazon.com.mx", "amazon warehouse", "amazon resale",
		}
	}
}
