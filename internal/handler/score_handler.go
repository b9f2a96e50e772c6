// internal/handler/score_handler.go
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/metrics"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/repository"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/service"
)

// ScoreRequest wraps the product record with the optional context the
// engine can use: raw seller listings, top competing listings, and the
// caller's cost of goods.
type ScoreRequest struct {
	Product        models.ProductRecord       `json:"product" binding:"required"`
	SellerListings []models.SellerListing     `json:"seller_listings"`
	Competitors    []models.CompetitorListing `json:"competitors"`
	CostOfGoods    *float64                   `json:"cost_of_goods"`
}

type ScoreHandler struct {
	engine  *service.OpportunityScorer
	sellers *service.SellerAnalyzer
	repo    *repository.ScoreRepository
	cache   *service.ResultCache
	winner  int
	logger  *zap.Logger
}

func NewScoreHandler(engine *service.OpportunityScorer, sellers *service.SellerAnalyzer, repo *repository.ScoreRepository, cache *service.ResultCache, winnerScore int, logger *zap.Logger) *ScoreHandler {
	return &ScoreHandler{
		engine:  engine,
		sellers: sellers,
		repo:    repo,
		cache:   cache,
		winner:  winnerScore,
		logger:  logger,
	}
}

// ScoreProduct runs the full pipeline for one product and returns the
// breakdown. Persistence and caching failures are logged but never fail
// the response.
func (h *ScoreHandler) ScoreProduct(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var summary *models.SellerSummary
	if len(req.SellerListings) > 0 {
		s := h.sellers.Summarize(req.SellerListings)
		summary = &s
	}

	start := time.Now()
	result, err := h.engine.Score(&req.Product, service.ScoreInput{
		Sellers:     summary,
		Competitors: req.Competitors,
		CostOfGoods: req.CostOfGoods,
	})
	if err != nil {
		var invalid *models.InvalidInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			return
		}
		h.logger.Error("failed to score product",
			zap.Error(err),
			zap.String("item_id", req.Product.ItemID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to score product"})
		return
	}
	elapsed := time.Since(start)
	result.ScoredAt = time.Now().UTC()

	metrics.ScoresTotal.Inc()
	metrics.ScoringDuration.Observe(elapsed.Seconds())
	if result.IsVetoed {
		for _, rule := range result.VetoRules {
			metrics.VetoesTotal.WithLabelValues(rule).Inc()
		}
	} else {
		metrics.ScoreDistribution.Observe(float64(result.TotalScore))
	}

	if h.repo != nil {
		if err := h.repo.SaveScore(c.Request.Context(), result, elapsed.Milliseconds()); err != nil {
			h.logger.Error("failed to save score", zap.Error(err))
		}
	}
	if h.cache != nil {
		h.cache.Set(c.Request.Context(), result)
	}

	c.JSON(http.StatusOK, result)
}

// GetScore returns the latest result for an item: cache first, then the
// persisted history.
func (h *ScoreHandler) GetScore(c *gin.Context) {
	itemID := c.Param("item_id")

	if h.cache != nil {
		if result, err := h.cache.Get(c.Request.Context(), itemID); err == nil {
			c.JSON(http.StatusOK, result)
			return
		}
	}

	if h.repo != nil {
		rec, err := h.repo.GetLatestByItemID(c.Request.Context(), itemID)
		if err == nil {
			c.JSON(http.StatusOK, rec)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "no score found for item"})
}

// GetStats summarizes the scoring history.
func (h *ScoreHandler) GetStats(c *gin.Context) {
	var cacheStats map[string]interface{}
	if h.cache != nil {
		cacheStats = h.cache.Stats()
	}

	if h.repo == nil {
		c.JSON(http.StatusOK, gin.H{"cache": cacheStats})
		return
	}

	stats, err := h.repo.GetStats(c.Request.Context(), h.winner)
	if err != nil {
		h.logger.Error("failed to load stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scores": stats,
		"cache":  cacheStats,
	})
}
