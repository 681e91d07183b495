package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/juristudy/internal/dto"
	"github.com/lshigami/juristudy/internal/model"
	"github.com/lshigami/juristudy/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminContentService interface {
	CreateSubject(ctx context.Context, req dto.SubjectCreateDTO) (*dto.SubjectResponseDTO, error)
	CreateLaw(ctx context.Context, req dto.LawCreateDTO) (*dto.LawResponseDTO, error)
	GetLaw(ctx context.Context, lawID uint) (*dto.LawResponseDTO, error)
	SetActive(ctx context.Context, kind repository.ContentKind, id uint, active bool) error
	GetNotifyEmail(ctx context.Context) (*dto.NotifyEmailDTO, error)
	SetNotifyEmail(ctx context.Context, req dto.NotifyEmailDTO) (*dto.NotifyEmailDTO, error)
}

type adminContentService struct {
	lawRepo     repository.LawRepository
	contentRepo repository.ContentRepository
	settingRepo repository.SettingRepository
}

func NewAdminContentService(
	lawRepo repository.LawRepository,
	contentRepo repository.ContentRepository,
	settingRepo repository.SettingRepository,
) AdminContentService {
	return &adminContentService{lawRepo: lawRepo, contentRepo: contentRepo, settingRepo: settingRepo}
}

func (s *adminContentService) CreateSubject(ctx context.Context, req dto.SubjectCreateDTO) (*dto.SubjectResponseDTO, error) {
	subject := model.Subject{Name: strings.TrimSpace(req.Name), Active: true}
	if subject.Name == "" {
		return nil, fmt.Errorf("subject name is empty: %w", ErrInvalidInput)
	}
	if err := s.contentRepo.CreateSubject(ctx, &subject); err != nil {
		log.Error().Err(err).Str("name", subject.Name).Msg("Failed to create subject")
		return nil, fmt.Errorf("database error creating subject: %w", err)
	}
	var resp dto.SubjectResponseDTO
	if err := copier.Copy(&resp, &subject); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *adminContentService) CreateLaw(ctx context.Context, req dto.LawCreateDTO) (*dto.LawResponseDTO, error) {
	if _, err := s.contentRepo.FindSubjectByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("subject %d: %w", req.SubjectID, ErrNotFound)
		}
		return nil, fmt.Errorf("load subject %d: %w", req.SubjectID, err)
	}

	law := model.Law{SubjectID: req.SubjectID, Name: strings.TrimSpace(req.Name), Active: true}
	for _, tDto := range req.Titles {
		title := model.Title{Name: strings.TrimSpace(tDto.Name), Active: true}
		for _, cDto := range tDto.Chapters {
			chapter := model.Chapter{Name: strings.TrimSpace(cDto.Name), Active: true}
			for _, qDto := range cDto.Questions {
				if strings.TrimSpace(qDto.Prompt) == "" || qDto.Correct == nil {
					return nil, fmt.Errorf("question in chapter '%s' needs a prompt and a correct flag: %w", cDto.Name, ErrInvalidInput)
				}
				chapter.Questions = append(chapter.Questions, model.Question{
					Prompt:         strings.TrimSpace(qDto.Prompt),
					Rationale:      qDto.Rationale,
					RationaleBasis: qDto.RationaleBasis,
					Correct:        *qDto.Correct,
					Active:         true,
				})
			}
			title.Chapters = append(title.Chapters, chapter)
		}
		law.Titles = append(law.Titles, title)
	}

	// gorm inserts the nested tree in one transaction.
	if err := s.lawRepo.Create(ctx, &law); err != nil {
		log.Error().Err(err).Str("name", law.Name).Msg("Failed to create law in database")
		return nil, fmt.Errorf("database error creating law: %w", err)
	}
	log.Info().Uint("lawID", law.ID).Int("titles", len(law.Titles)).Msg("Law created")
	return s.GetLaw(ctx, law.ID)
}

func (s *adminContentService) GetLaw(ctx context.Context, lawID uint) (*dto.LawResponseDTO, error) {
	law, err := s.lawRepo.FindByIDWithContent(ctx, lawID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("law %d: %w", lawID, ErrNotFound)
		}
		return nil, fmt.Errorf("load law %d: %w", lawID, err)
	}
	var resp dto.LawResponseDTO
	if err := copier.Copy(&resp, law); err != nil {
		log.Error().Err(err).Msg("Failed to copy Law model to LawResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *adminContentService) SetActive(ctx context.Context, kind repository.ContentKind, id uint, active bool) error {
	if err := s.contentRepo.SetActive(ctx, kind, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
		}
		return fmt.Errorf("set %s %d active=%t: %w", kind, id, active, err)
	}
	log.Info().Str("kind", string(kind)).Uint("id", id).Bool("active", active).Msg("Content status changed")
	return nil
}

func (s *adminContentService) GetNotifyEmail(ctx context.Context) (*dto.NotifyEmailDTO, error) {
	email, err := s.settingRepo.NotifyEmail(ctx)
	if err != nil {
		return nil, fmt.Errorf("read notify email: %w", err)
	}
	return &dto.NotifyEmailDTO{NotifyEmail: email}, nil
}

func (s *adminContentService) SetNotifyEmail(ctx context.Context, req dto.NotifyEmailDTO) (*dto.NotifyEmailDTO, error) {
	email := req.NotifyEmail
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			email = nil
		} else {
			email = &trimmed
		}
	}
	if err := s.settingRepo.SetNotifyEmail(ctx, email); err != nil {
		log.Error().Err(err).Msg("Failed to store notify email")
		return nil, fmt.Errorf("store notify email: %w", err)
	}
	return &dto.NotifyEmailDTO{NotifyEmail: email}, nil
}
