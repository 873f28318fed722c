package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/repositories"
)

// StatusLogRepository implementa repositories.StatusLogRepository
// Append-only: somente Create e leitura.
type StatusLogRepository struct {
	db *gorm.DB
}

// NewStatusLogRepository cria um novo StatusLogRepository
func NewStatusLogRepository(db *gorm.DB) repositories.StatusLogRepository {
	return &StatusLogRepository{db: db}
}

func (r *StatusLogRepository) Create(ctx context.Context, log *entities.FeedbackStatusLog) error {
	model := r.toModel(log)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	log.CreatedAt = time.Unix(0, model.CreatedAt)
	return nil
}

func (r *StatusLogRepository) ListByFeedback(ctx context.Context, feedbackID string) ([]*entities.FeedbackStatusLog, error) {
	var models []*FeedbackStatusLogModel

	db := r.getDB(ctx)
	// Ordem de criação ascendente: a trilha lê como histórico
	err := db.Where("feedback_id = ?", feedbackID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.FeedbackStatusLog, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *StatusLogRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *StatusLogRepository) toModel(log *entities.FeedbackStatusLog) *FeedbackStatusLogModel {
	return &FeedbackStatusLogModel{
		ID:         log.ID,
		FeedbackID: log.FeedbackID,
		FromStatus: string(log.From),
		ToStatus:   string(log.To),
		ChangedBy:  log.ChangedBy,
	}
}

func (r *StatusLogRepository) toEntity(model *FeedbackStatusLogModel) *entities.FeedbackStatusLog {
	return &entities.FeedbackStatusLog{
		ID:         model.ID,
		FeedbackID: model.FeedbackID,
		From:       entities.FeedbackStatus(model.FromStatus),
		To:         entities.FeedbackStatus(model.ToStatus),
		ChangedBy:  model.ChangedBy,
		CreatedAt:  time.Unix(0, model.CreatedAt),
	}
}
