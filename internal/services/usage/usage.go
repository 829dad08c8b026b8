package usage

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/Egham-7/cover-letter-ai/internal/models"

	"gorm.io/gorm"
)

const maxRecentLimit = 500

// Service persists the resolution log.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// RecordResolution writes one resolution row. Cache keys are stored hashed
// since they embed applicant details.
func (s *Service) RecordResolution(ctx context.Context, params models.RecordResolutionParams) (*models.ResolutionRecord, error) {
	record := models.ResolutionRecord{
		RequestID: params.RequestID,
		Kind:      string(params.Kind),
		Source:    string(params.Source),
		Model:     params.Model,
		Reason:    string(params.Reason),
		LatencyMs: int(params.Latency.Milliseconds()),
	}
	if params.CacheKey != "" {
		sum := sha256.Sum256([]byte(params.CacheKey))
		record.KeyHash = fmt.Sprintf("%x", sum)
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to record resolution: %w", err)
	}
	return &record, nil
}

// Recent returns the newest records first.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.ResolutionRecord, error) {
	if limit <= 0 || limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	var records []models.ResolutionRecord
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resolutions: %w", err)
	}
	return records, nil
}

// Stats counts records grouped by kind and source.
func (s *Service) Stats(ctx context.Context) ([]models.ResolutionStats, error) {
	var stats []models.ResolutionStats
	err := s.db.WithContext(ctx).
		Model(&models.ResolutionRecord{}).
		Select("kind, source, COUNT(*) AS count").
		Group("kind, source").
		Order("kind, source").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate resolutions: %w", err)
	}
	return stats, nil
}
