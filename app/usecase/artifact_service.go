package usecase

import (
	"context"
	"fmt"

	"infragen/internal/domain/entity"
	"infragen/internal/domain/repository"
)

type ArtifactUsecase interface {
	GetResult(ctx context.Context, sessionID string) (*entity.Result, error)
	GetArtifact(ctx context.Context, sessionID string) (*entity.Artifact, error)
	ClearResult(ctx context.Context, sessionID string) error
}

var _ ArtifactUsecase = (*ArtifactService)(nil)

type ArtifactService struct {
	results repository.ResultRepository
}

func NewArtifactService(rr repository.ResultRepository) *ArtifactService {
	return &ArtifactService{results: rr}
}

// GetResult returns the session's most recent result, or nil when the
// session has none.
func (s *ArtifactService) GetResult(ctx context.Context, sessionID string) (*entity.Result, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID is required")
	}
	res, err := s.results.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get result for session %s: %w", sessionID, err)
	}
	return res, nil
}

// GetArtifact returns the download view of the session's result, or nil when
// the session has none.
func (s *ArtifactService) GetArtifact(ctx context.Context, sessionID string) (*entity.Artifact, error) {
	res, err := s.GetResult(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return entity.ArtifactFor(res), nil
}

func (s *ArtifactService) ClearResult(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}
	if err := s.results.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear result for session %s: %w", sessionID, err)
	}
	return nil
}
