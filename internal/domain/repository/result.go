package repository

import (
	"context"

	"infragen/internal/domain/entity"
)

// ResultRepository holds the single most recent result per session.
type ResultRepository interface {
	// Save overwrites the session's result slot.
	Save(ctx context.Context, sessionID string, res *entity.Result) error
	// Get returns the session's result, or nil when the session has none.
	Get(ctx context.Context, sessionID string) (*entity.Result, error)
	// Delete clears the session's result slot.
	Delete(ctx context.Context, sessionID string) error
}
