// internal/models/product.go
package models

// ProductRecord is the normalized product snapshot the scoring engine works
// on. It is assembled upstream (scraper, API client) and never mutated here.
// Required fields: ItemID, Title, Price. Everything else is optional and
// only affects the confidence of the resulting score.
type ProductRecord struct {
	ItemID   string  `json:"item_id" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Currency string  `json:"currency"`
	Category string  `json:"category"`

	// Brand as scraped. Often missing or wrong; the brand risk checker
	// falls back to scanning the title.
	Brand string `json:"brand"`

	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	ReviewCount *int    `json:"review_count"`

	// Rank is the per-category sales rank (lower is better).
	Rank *int `json:"rank"`

	// RankHistory holds prior rank observations, oldest first. Used for
	// the stability component; fewer than 2 points scores neutral.
	RankHistory []int `json:"rank_history"`

	// EstimatedMonthlySales in units, when an estimate is available.
	EstimatedMonthlySales *int `json:"estimated_monthly_sales"`

	Dimensions *Dimensions `json:"dimensions"`
}

// Dimensions in inches and pounds, as listed on the product page.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// LongestSide returns the largest of the three sides.
func (d Dimensions) LongestSide() float64 {
	return max3(d.Length, d.Width, d.Height)
}

// MedianSide returns the middle of the three sides.
func (d Dimensions) MedianSide() float64 {
	return d.Length + d.Width + d.Height - d.LongestSide() - d.ShortestSide()
}

// ShortestSide returns the smallest of the three sides.
func (d Dimensions) ShortestSide() float64 {
	return -max3(-d.Length, -d.Width, -d.Height)
}

// DimensionalWeight applies the marketplace divisor (in^3 / 139).
func (d Dimensions) DimensionalWeight() float64 {
	return d.Length * d.Width * d.Height / 139
}

// BillableWeight is the greater of actual and dimensional weight.
func (d Dimensions) BillableWeight() float64 {
	if d.DimensionalWeight() > d.Weight {
		return d.DimensionalWeight()
	}
	return d.Weight
}

// CubicFeet converts the volume from cubic inches.
func (d Dimensions) CubicFeet() float64 {
	return d.Length * d.Width * d.Height / 1728
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// SellerListing is one raw offer row from the offers page, as supplied by
// the scraping layer.
type SellerListing struct {
	SellerName  string  `json:"seller_name"`
	Fulfillment string  `json:"fulfillment"` // "FBA" or "FBM"
	Price       float64 `json:"price"`
	IsBuyBox    bool    `json:"is_buy_box"`
}

// SellerSummary aggregates the offer rows for one product.
type SellerSummary struct {
	FBACount         int  `json:"fba_count"`
	FBMCount         int  `json:"fbm_count"`
	TotalSellers     int  `json:"total_sellers"`
	OperatorIsSeller bool `json:"operator_is_seller"`

	// PrimarySellerName is the buy-box seller when it could be extracted.
	// Nil means extraction failed; a name is never invented.
	PrimarySellerName *string `json:"primary_seller_name"`
}

// CompetitorListing is a top-ranking competing product, used for the review
// vulnerability component.
type CompetitorListing struct {
	ItemID      string `json:"item_id"`
	ReviewCount int    `json:"review_count"`
}
