// tests/e2e/score_flow_test.go
//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func TestScoreProductE2E(t *testing.T) {
	baseURL := "http://localhost:8084"

	payload := map[string]interface{}{
		"product": map[string]interface{}{
			"item_id":  "B0E2ETEST1",
			"title":    "Collapsible Silicone Colander",
			"price":    19.99,
			"category": "Home & Kitchen",
			"rating":   4.5,
			"rank":     8500,
		},
		"seller_listings": []map[string]interface{}{
			{"seller_name": "KitchenPro Direct", "fulfillment": "FBA", "price": 19.99, "is_buy_box": true},
			{"seller_name": "HomeGoods Plus", "fulfillment": "FBA", "price": 20.49},
		},
	}

	jsonData, _ := json.Marshal(payload)

	resp, err := http.Post(
		baseURL+"/api/v1/opportunities/score",
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		t.Fatalf("Failed to score product: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if result["item_id"] != "B0E2ETEST1" {
		t.Errorf("Expected item_id B0E2ETEST1, got %v", result["item_id"])
	}
	if _, ok := result["total_score"]; !ok {
		t.Error("Response missing total_score")
	}
	if vetoed, ok := result["is_vetoed"].(bool); ok && vetoed {
		t.Errorf("Clean product was vetoed: %v", result["veto_reasons"])
	}

	t.Logf("Product scored: %v (status %v)", result["total_score"], result["status"])
}
