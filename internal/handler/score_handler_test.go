// internal/handler/score_handler_test.go
package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/config"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/service"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Defaults()
	log := zap.NewNop()
	engine := service.NewOpportunityScorer(cfg, log)
	sellers := service.NewSellerAnalyzer(cfg.Sellers)
	cache := service.NewResultCache(nil, time.Minute, log)

	h := NewScoreHandler(engine, sellers, nil, cache, cfg.Scoring.WinnerScoreThreshold, log)

	router := gin.New()
	router.POST("/api/v1/opportunities/score", h.ScoreProduct)
	router.GET("/api/v1/opportunities/stats", h.GetStats)
	router.GET("/api/v1/opportunities/:item_id", h.GetScore)
	return router
}

func postScore(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/opportunities/score", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestScoreProductEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := postScore(t, router, ScoreRequest{
		Product: models.ProductRecord{
			ItemID:   "B0HANDLER1",
			Title:    "Silicone Baking Mat Set",
			Price:    22.99,
			Category: "Home & Kitchen",
			Rating:   4.4,
		},
		SellerListings: []models.SellerListing{
			{SellerName: "KitchenPro Direct", Fulfillment: "FBA", Price: 22.99, IsBuyBox: true},
			{SellerName: "BakeWell Supply", Fulfillment: "FBA", Price: 23.49},
			{SellerName: "HomeGoods Plus", Fulfillment: "FBA", Price: 23.99},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var result models.ScoreResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.ItemID != "B0HANDLER1" {
		t.Errorf("ItemID = %q, want B0HANDLER1", result.ItemID)
	}
	if result.IsVetoed {
		t.Errorf("IsVetoed = true, reasons %v", result.VetoReasons)
	}
	if result.TotalScore < 0 || result.TotalScore > 100 {
		t.Errorf("TotalScore = %d out of range", result.TotalScore)
	}
	if result.ScoredAt.IsZero() {
		t.Error("ScoredAt not stamped by the handler")
	}

	// The result lands in the cache, so a lookup succeeds without a repo.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/B0HANDLER1", nil)
	got := httptest.NewRecorder()
	router.ServeHTTP(got, req)
	if got.Code != http.StatusOK {
		t.Errorf("GET after score: status = %d, want 200", got.Code)
	}
}

func TestScoreProductRejectsBadInput(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty body", map[string]interface{}{}},
		{"missing price", ScoreRequest{Product: models.ProductRecord{ItemID: "B01", Title: "Widget"}}},
		{"rating out of range", ScoreRequest{Product: models.ProductRecord{
			ItemID: "B01", Title: "Widget", Price: 10, Rating: 9,
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postScore(t, router, tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGetScoreNotFound(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/B0NOWHERE1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestStatsWithoutDatabaseOrCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Defaults()
	log := zap.NewNop()
	engine := service.NewOpportunityScorer(cfg, log)
	sellers := service.NewSellerAnalyzer(cfg.Sellers)

	// Bare wiring: no repo, no cache. Stats must still answer.
	h := NewScoreHandler(engine, sellers, nil, nil, cfg.Scoring.WinnerScoreThreshold, log)
	router := gin.New()
	router.GET("/api/v1/opportunities/stats", h.GetStats)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestStatsWithoutDatabase(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := body["cache"]; !ok {
		t.Errorf("response %v missing cache stats", body)
	}
}
