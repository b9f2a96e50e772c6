// internal/repository/score_repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
)

type ScoreRepository struct {
	db *sql.DB
}

func NewScoreRepository(db *sql.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// SaveScore persists one scoring run for history/stats.
func (r *ScoreRepository) SaveScore(ctx context.Context, result *models.ScoreResult, processingMS int64) error {
	query := `
		INSERT INTO score_results (id, item_id, total_score, status, confidence, is_vetoed, veto_reasons, margin_percent, processing_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		result.ItemID,
		result.TotalScore,
		string(result.Status),
		result.Confidence,
		result.IsVetoed,
		pq.Array(result.VetoReasons),
		result.MarginPercent,
		processingMS,
		time.Now(),
	)
	return err
}

// GetLatestByItemID returns the most recent persisted run for an item.
func (r *ScoreRepository) GetLatestByItemID(ctx context.Context, itemID string) (*models.ScoreRecord, error) {
	query := `
		SELECT id, item_id, total_score, status, confidence, is_vetoed, veto_reasons, margin_percent, processing_ms, created_at
		FROM score_results
		WHERE item_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var rec models.ScoreRecord
	var reasons pq.StringArray
	err := r.db.QueryRowContext(ctx, query, itemID).Scan(
		&rec.ID,
		&rec.ItemID,
		&rec.TotalScore,
		&rec.Status,
		&rec.Confidence,
		&rec.IsVetoed,
		&reasons,
		&rec.MarginPercent,
		&rec.ProcessingMS,
		&rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no score found for item %s", itemID)
	}
	if err != nil {
		return nil, err
	}
	rec.VetoReasons = []string(reasons)
	return &rec, nil
}

// Stats summarizes all persisted runs.
type Stats struct {
	TotalScored  int     `json:"total_scored"`
	VetoedCount  int     `json:"vetoed_count"`
	WinnerCount  int     `json:"winner_count"`
	AverageScore float64 `json:"average_score"`
}

// GetStats aggregates scoring history. The winner threshold mirrors the
// engine's policy and is passed in by the caller.
func (r *ScoreRepository) GetStats(ctx context.Context, winnerScore int) (*Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_vetoed),
			COUNT(*) FILTER (WHERE NOT is_vetoed AND total_score >= $1),
			COALESCE(AVG(total_score) FILTER (WHERE NOT is_vetoed), 0)
		FROM score_results
	`

	var s Stats
	err := r.db.QueryRowContext(ctx, query, winnerScore).Scan(
		&s.TotalScored,
		&s.VetoedCount,
		&s.WinnerCount,
		&s.AverageScore,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
