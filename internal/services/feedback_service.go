package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/errors"
	"github.com/rafabene/feedbackboard-backend/internal/domain/ports"
	"github.com/rafabene/feedbackboard-backend/internal/domain/repositories"
)

// FeedbackService contém a lógica de negócio para feedbacks
type FeedbackService struct {
	feedbackRepo  repositories.FeedbackRepository
	statusLogRepo repositories.StatusLogRepository
	uow           ports.UnitOfWork
	logger        ports.Logger
}

// NewFeedbackService cria um novo FeedbackService
func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	statusLogRepo repositories.StatusLogRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *FeedbackService {
	return &FeedbackService{
		feedbackRepo:  feedbackRepo,
		statusLogRepo: statusLogRepo,
		uow:           uow,
		logger:        logger,
	}
}

// CreateFeedbackInput representa os dados para criar um feedback
type CreateFeedbackInput struct {
	Title       string
	Description string
	Category    entities.FeedbackCategory
}

// UpdateFeedbackInput representa os dados para atualização parcial
// Status não entra aqui: transições passam por ChangeStatus.
type UpdateFeedbackInput struct {
	Title       *string
	Description *string
	Category    *entities.FeedbackCategory
}

// FeedbackListResult representa uma página de feedbacks com o total
// pós-filtro e pré-paginação
type FeedbackListResult struct {
	Items    []*entities.Feedback
	Total    int64
	Page     int
	PageSize int
}

// CreateFeedback cria um novo feedback com status inicial SUGGESTION
func (s *FeedbackService) CreateFeedback(ctx context.Context, authorID string, input CreateFeedbackInput) (*entities.Feedback, error) {
	s.logger.Info("creating feedback", "author_id", authorID, "category", input.Category)

	feedback := &entities.Feedback{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Status:      entities.StatusSuggestion,
		AuthorID:    authorID,
	}

	if err := feedback.Validate(); err != nil {
		return nil, err
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

// ListFeedbacks lista feedbacks com filtro, ordenação e paginação
func (s *FeedbackService) ListFeedbacks(ctx context.Context, filters repositories.FeedbackFilters) (*FeedbackListResult, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	if filters.Sort == "" {
		filters.Sort = repositories.SortByCreatedAt
	}
	if filters.Order == "" {
		filters.Order = repositories.OrderDesc
	}

	items, total, err := s.feedbackRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &FeedbackListResult{
		Items:    items,
		Total:    total,
		Page:     filters.Page,
		PageSize: filters.PageSize,
	}, nil
}

// GetFeedback busca um feedback não deletado por ID
func (s *FeedbackService) GetFeedback(ctx context.Context, id string) (*entities.Feedback, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, errors.ErrFeedbackNotFound
	}
	return feedback, nil
}

// UpdateFeedback atualiza parcialmente título/descrição/categoria
// Política: mutações em registros soft-deletados são rejeitadas com
// NotFound, igual aos caminhos de leitura.
func (s *FeedbackService) UpdateFeedback(ctx context.Context, id string, input UpdateFeedbackInput) (*entities.Feedback, error) {
	feedback, err := s.GetFeedback(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		feedback.Title = *input.Title
	}
	if input.Description != nil {
		feedback.Description = *input.Description
	}
	if input.Category != nil {
		feedback.Category = *input.Category
	}

	if err := feedback.Validate(); err != nil {
		return nil, err
	}

	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, err
	}

	s.logger.Info("feedback updated", "feedback_id", id)
	return feedback, nil
}

// DeleteFeedback marca um feedback como deletado (soft delete)
func (s *FeedbackService) DeleteFeedback(ctx context.Context, id string) error {
	feedback, err := s.GetFeedback(ctx, id)
	if err != nil {
		return err
	}

	if err := s.feedbackRepo.Delete(ctx, feedback.ID); err != nil {
		return err
	}

	s.logger.Info("feedback deleted", "feedback_id", id)
	return nil
}

// ChangeStatus transiciona o status de um feedback registrando a auditoria
// Transição para o status atual é no-op idempotente: retorna o registro
// sem escrever log. Caso contrário, atualização de status e inserção do
// log acontecem na mesma transação: ou ambas aplicam, ou nenhuma.
func (s *FeedbackService) ChangeStatus(ctx context.Context, id, changedBy string, to entities.FeedbackStatus) (*entities.Feedback, error) {
	feedback, err := s.GetFeedback(ctx, id)
	if err != nil {
		return nil, err
	}

	if feedback.Status == to {
		return feedback, nil
	}

	from := feedback.Status

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		feedback.Status = to
		if err := s.feedbackRepo.Update(txCtx, feedback); err != nil {
			return err
		}

		return s.statusLogRepo.Create(txCtx, &entities.FeedbackStatusLog{
			ID:         uuid.NewString(),
			FeedbackID: feedback.ID,
			From:       from,
			To:         to,
			ChangedBy:  changedBy,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("feedback status changed",
		"feedback_id", id,
		"from", from,
		"to", to,
		"changed_by", changedBy,
	)

	return feedback, nil
}

// StatusHistory retorna a trilha de transições de um feedback
func (s *FeedbackService) StatusHistory(ctx context.Context, id string) ([]*entities.FeedbackStatusLog, error) {
	if _, err := s.GetFeedback(ctx, id); err != nil {
		return nil, err
	}
	return s.statusLogRepo.ListByFeedback(ctx, id)
}
