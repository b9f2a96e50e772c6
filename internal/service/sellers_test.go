// internal/service/sellers_test.go
package service

import (
	"testing"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/config"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
)

func TestSummarizeSellers(t *testing.T) {
	analyzer := NewSellerAnalyzer(config.Defaults().Sellers)

	listings := []models.SellerListing{
		{SellerName: "BrightHome Goods", Fulfillment: "FBA", Price: 24.99, IsBuyBox: true},
		{SellerName: "Discount Depot", Fulfillment: "fba", Price: 25.49},
		{SellerName: "ShipFast LLC", Fulfillment: "FBM", Price: 23.99},
		{SellerName: "Amazon.com", Fulfillment: "FBA", Price: 24.49},
	}

	summary := analyzer.Summarize(listings)

	if summary.FBACount != 3 {
		t.Errorf("FBACount = %d, want 3", summary.FBACount)
	}
	if summary.FBMCount != 1 {
		t.Errorf("FBMCount = %d, want 1", summary.FBMCount)
	}
	if summary.TotalSellers != 4 {
		t.Errorf("TotalSellers = %d, want 4", summary.TotalSellers)
	}
	if !summary.OperatorIsSeller {
		t.Error("OperatorIsSeller = false, want true with Amazon.com in offers")
	}
	if summary.PrimarySellerName == nil || *summary.PrimarySellerName != "BrightHome Goods" {
		t.Errorf("PrimarySellerName = %v, want buy-box seller", summary.PrimarySellerName)
	}
}

func TestSummarizeNeverFabricatesPrimarySeller(t *testing.T) {
	analyzer := NewSellerAnalyzer(config.Defaults().Sellers)

	listings := []models.SellerListing{
		{SellerName: "Discount Depot", Fulfillment: "FBA", Price: 25.49},
		{SellerName: "ShipFast LLC", Fulfillment: "FBM", Price: 23.99},
	}

	summary := analyzer.Summarize(listings)
	if summary.PrimarySellerName != nil {
		t.Errorf("PrimarySellerName = %q, want nil when no buy-box flag present", *summary.PrimarySellerName)
	}
}

func TestIsOperatorExactMatchOnly(t *testing.T) {
	analyzer := NewSellerAnalyzer(config.Defaults().Sellers)

	tests := []struct {
		name   string
		seller string
		want   bool
	}{
		{"canonical name", "Amazon.com", true},
		{"case insensitive", "AMAZON.COM", true},
		{"surrounding whitespace", "  amazon  ", true},
		{"warehouse storefront", "Amazon Warehouse", true},
		{"lookalike is not operator", "Amazonia Traders", false},
		{"contains but not exact", "Sold via Amazon partner", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := analyzer.IsOperator(tt.seller); got != tt.want {
				t.Errorf("IsOperator(%q) = %v, want %v", tt.seller, got, tt.want)
			}
		})
	}
}

func TestSummarizeEmptyListings(t *testing.T) {
	analyzer := NewSellerAnalyzer(config.Defaults().Sellers)

	summary := analyzer.Summarize(nil)
	if summary.TotalSellers != 0 || summary.FBACount != 0 || summary.FBMCount != 0 {
		t.Errorf("empty listings produced counts: %+v", summary)
	}
	if summary.OperatorIsSeller {
		t.Error("OperatorIsSeller = true for empty listings")
	}
}
