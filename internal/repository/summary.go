package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	summaryKeyPrefix = "summary:"
	latestSummaryKey = "summary:latest"
)

var ErrSummaryNotFound = errors.New("summary not found")

type SummaryRepository interface {
	Save(ctx context.Context, summary *entity.Summary) error
	GetByID(ctx context.Context, runID string) (*entity.Summary, error)
	Latest(ctx context.Context) (*entity.Summary, error)
	DeleteByID(ctx context.Context, runID string) error
}

type dbSummary struct {
	client *redis.Client
}

func NewSummaryRepository(client *redis.Client) SummaryRepository {
	return &dbSummary{
		client: client,
	}
}

// Save - stores the summary and points the latest marker at it in one transaction.
func (that *dbSummary) Save(ctx context.Context, summary *entity.Summary) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("could not marshal summary: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, summaryKeyPrefix+summary.RunID, summaryJSON, 0)
		pipe.Set(ctx, latestSummaryKey, summary.RunID, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set summary: %w", err)
	}

	return nil
}

func (that *dbSummary) GetByID(ctx context.Context, runID string) (*entity.Summary, error) {
	response, err := that.client.Get(ctx, summaryKeyPrefix+runID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSummaryNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get summary by id: %w", err)
	}

	var summary entity.Summary
	if err = json.Unmarshal([]byte(response), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}

	return &summary, nil
}

func (that *dbSummary) Latest(ctx context.Context) (*entity.Summary, error) {
	runID, err := that.client.Get(ctx, latestSummaryKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSummaryNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get latest summary id: %w", err)
	}

	return that.GetByID(ctx, runID)
}

func (that *dbSummary) DeleteByID(ctx context.Context, runID string) error {
	deleted, err := that.client.Del(ctx, summaryKeyPrefix+runID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete summary by id: %w", err)
	}

	if deleted == 0 {
		return ErrSummaryNotFound
	}

	return nil
}
