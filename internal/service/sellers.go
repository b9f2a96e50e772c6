// internal/service/sellers.go
// Aggregates raw offer rows into a SellerSummary. The rows themselves come
// from the scraping layer; this component only counts and classifies.
package service

import (
	"strings"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/config"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
)

type SellerAnalyzer struct {
	operatorNames map[string]bool
}

func NewSellerAnalyzer(cfg config.SellerConfig) *SellerAnalyzer {
	names := make(map[string]bool, len(cfg.OperatorNames))
	for _, n := range cfg.OperatorNames {
		names[strings.ToLower(strings.TrimSpace(n))] = true
	}
	return &SellerAnalyzer{operatorNames: names}
}

// Summarize aggregates the offer rows for one product. The primary seller
// is taken from the buy-box flag when present; it is left nil when the
// scrape could not determine it, never guessed.
func (a *SellerAnalyzer) Summarize(listings []models.SellerListing) models.SellerSummary {
	summary := models.SellerSummary{TotalSellers: len(listings)}

	for _, l := range listings {
		switch strings.ToUpper(strings.TrimSpace(l.Fulfillment)) {
		case "FBA":
			summary.FBACount++
		case "FBM":
			summary.FBMCount++
		}

		if a.IsOperator(l.SellerName) {
			summary.OperatorIsSeller = true
		}

		if l.IsBuyBox && summary.PrimarySellerName == nil && strings.TrimSpace(l.SellerName) != "" {
			name := strings.TrimSpace(l.SellerName)
			summary.PrimarySellerName = &name
		}
	}

	return summary
}

// IsOperator reports whether a seller name is one of the marketplace
// operator's canonical selling names (exact match, case-insensitive).
func (a *SellerAnalyzer) IsOperator(sellerName string) bool {
	return a.operatorNames[strings.ToLower(strings.TrimSpace(sellerName))]
}
