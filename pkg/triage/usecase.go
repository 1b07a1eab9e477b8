package triage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/triage/pkg/llm"
)

type service struct {
	llm    llm.ChatModel
	logger *zap.Logger
}

// NewService returns the default UseCase. Each call makes exactly one model
// request; there are no retries or caching.
func NewService(model llm.ChatModel, logger *zap.Logger) UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{llm: model, logger: logger}
}

func (s *service) Recommend(ctx context.Context, patient PatientInfo) (DepartmentRecommendation, error) {
	if s.llm == nil {
		return DepartmentRecommendation{}, errors.New("llm is not configured")
	}
	prompt := BuildPrompt(patient)

	start := time.Now()
	raw, err := s.llm.Ask(ctx, prompt)
	if err != nil {
		return DepartmentRecommendation{}, fmt.Errorf("ask llm: %w", err)
	}
	s.logger.Debug("llm replied",
		zap.Duration("duration", time.Since(start)),
		zap.Int("symptom_count", len(patient.Symptoms)),
		zap.String("raw", truncate(raw, 200)),
	)

	rec, err := ParseRecommendation(raw)
	if err != nil {
		return DepartmentRecommendation{}, err
	}
	if !IsKnownDepartment(rec.RecommendedDepartment) {
		s.logger.Info("department outside the suggested list",
			zap.String("department", rec.RecommendedDepartment),
		)
	}
	return rec, nil
}
