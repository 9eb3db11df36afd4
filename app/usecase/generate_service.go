package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"infragen/internal/domain/entity"
	"infragen/internal/domain/repository"
	"infragen/internal/infrastructure/metrics"
)

// ErrEmptyRequirements rejects a generate action before any external call is
// made.
var ErrEmptyRequirements = errors.New("please enter your requirements")

type GenerateUsecase interface {
	Generate(ctx context.Context, sessionID string, category entity.Category, requirements string) (*entity.Result, error)
}

var _ GenerateUsecase = (*GenerateService)(nil)

type GenerateService struct {
	results repository.ResultRepository
	llm     repository.Generator
	logger  *slog.Logger
}

func NewGenerateService(
	rr repository.ResultRepository,
	llm repository.Generator,
	logger *slog.Logger,
) *GenerateService {
	return &GenerateService{
		results: rr,
		llm:     llm,
		logger:  logger,
	}
}

// Generate runs one synchronous generation action: build the prompt, call the
// LLM, overwrite the session's result slot. A failed call leaves the slot
// untouched.
func (s *GenerateService) Generate(ctx context.Context, sessionID string, category entity.Category, requirements string) (*entity.Result, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID is required")
	}
	if strings.TrimSpace(requirements) == "" {
		return nil, ErrEmptyRequirements
	}

	startTime := time.Now()
	prompt := entity.BuildPrompt(category, requirements)

	content, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		metrics.IncGeneration(string(category), "error")
		s.logger.Error("llm generation failed", "session_id", sessionID, "category", category, "err", err)
		return nil, fmt.Errorf("generate %s code: %w", category, err)
	}

	res := &entity.Result{
		Category:  category,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.results.Save(ctx, sessionID, res); err != nil {
		metrics.IncGeneration(string(category), "error")
		s.logger.Error("save result failed", "session_id", sessionID, "err", err)
		return nil, fmt.Errorf("save result: %w", err)
	}

	metrics.IncGeneration(string(category), "success")
	metrics.ObserveGenerationDuration(time.Since(startTime))
	s.logger.Info("code generated", "session_id", sessionID, "category", category, "duration", time.Since(startTime))

	return res, nil
}
