package assessmentcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	"gitlab.com/skillforge-2025.net/internal/domain"
)

const (
	assessmentKeyPrefix  = "assessment:"
	assessmentExpiration = 5 * time.Minute
)

// AssessmentCache implements the AssessmentCache interface with Redis.
// Questions are read-only during solving, so a short TTL is the only
// invalidation needed.
type AssessmentCache struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewAssessmentCache creates a new Redis assessment cache
func NewAssessmentCache(redisClient *redis.Client, logger primary.Logger) *AssessmentCache {
	return &AssessmentCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetAssessment retrieves a cached assessment bundle, nil on a miss
func (c *AssessmentCache) GetAssessment(ctx context.Context, assessmentID uuid.UUID) (*domain.Assessment, error) {
	key := fmt.Sprintf("%s%s", assessmentKeyPrefix, assessmentID)
	data, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		c.logger.Error("Failed to get cached assessment", "assessmentId", assessmentID, "error", err)
		return nil, fmt.Errorf("failed to get cached assessment: %w", err)
	}

	var assessment domain.Assessment
	if err := json.Unmarshal(data, &assessment); err != nil {
		c.logger.Error("Failed to unmarshal cached assessment", "assessmentId", assessmentID, "error", err)
		return nil, fmt.Errorf("failed to unmarshal cached assessment: %w", err)
	}

	return &assessment, nil
}

// SaveAssessment caches an assessment bundle with expiration
func (c *AssessmentCache) SaveAssessment(ctx context.Context, assessment *domain.Assessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		c.logger.Error("Failed to marshal assessment", "assessmentId", assessment.ID, "error", err)
		return fmt.Errorf("failed to marshal assessment: %w", err)
	}

	key := fmt.Sprintf("%s%s", assessmentKeyPrefix, assessment.ID)
	if err := c.redisClient.Set(ctx, key, data, assessmentExpiration).Err(); err != nil {
		c.logger.Error("Failed to cache assessment", "assessmentId", assessment.ID, "error", err)
		return fmt.Errorf("failed to cache assessment: %w", err)
	}

	return nil
}
