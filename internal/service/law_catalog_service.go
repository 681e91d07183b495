package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/juristudy/internal/dto"
	"github.com/lshigami/juristudy/internal/repository"
	"github.com/rs/zerolog/log"
)

type LawCatalogService interface {
	ListLaws(ctx context.Context) ([]dto.LawSummaryDTO, error)
}

type lawCatalogService struct {
	lawRepo repository.LawRepository
}

func NewLawCatalogService(lawRepo repository.LawRepository) LawCatalogService {
	return &lawCatalogService{lawRepo: lawRepo}
}

func (s *lawCatalogService) ListLaws(ctx context.Context) ([]dto.LawSummaryDTO, error) {
	rows, err := s.lawRepo.FindAllActiveWithQuestionCount(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get active laws with question count from repository")
		return nil, fmt.Errorf("error fetching laws: %w", err)
	}

	dtos := make([]dto.LawSummaryDTO, 0, len(rows))
	if err := copier.Copy(&dtos, &rows); err != nil {
		return nil, fmt.Errorf("error preparing law list: %w", err)
	}
	return dtos, nil
}
