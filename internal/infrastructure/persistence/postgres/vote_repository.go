package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/repositories"
)

// VoteRepository implementa repositories.VoteRepository
type VoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository cria um novo VoteRepository
func NewVoteRepository(db *gorm.DB) repositories.VoteRepository {
	return &VoteRepository{db: db}
}

func (r *VoteRepository) Upsert(ctx context.Context, vote *entities.Vote) error {
	model := r.toModel(vote)

	db := r.getDB(ctx)
	// ON CONFLICT DO NOTHING no par (user_id, feedback_id): o banco
	// serializa adds concorrentes; nunca existe segunda linha
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "feedback_id"}},
		DoNothing: true,
	}).Create(model).Error
}

func (r *VoteRepository) FindByUserAndFeedback(ctx context.Context, userID, feedbackID string) (*entities.Vote, error) {
	var model VoteModel

	db := r.getDB(ctx)
	if err := db.Where("user_id = ? AND feedback_id = ?", userID, feedbackID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *VoteRepository) DeleteByUserAndFeedback(ctx context.Context, userID, feedbackID string) error {
	db := r.getDB(ctx)
	return db.Where("user_id = ? AND feedback_id = ?", userID, feedbackID).Delete(&VoteModel{}).Error
}

func (r *VoteRepository) ListByFeedback(ctx context.Context, feedbackID string) ([]*entities.Vote, error) {
	var models []*VoteModel

	db := r.getDB(ctx)
	// Mais recentes primeiro
	err := db.Where("feedback_id = ?", feedbackID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.Vote, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result, nil
}

func (r *VoteRepository) CountByFeedback(ctx context.Context, feedbackID string) (int64, error) {
	var count int64

	db := r.getDB(ctx)
	if err := db.Model(&VoteModel{}).Where("feedback_id = ?", feedbackID).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *VoteRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *VoteRepository) toModel(vote *entities.Vote) *VoteModel {
	return &VoteModel{
		ID:         vote.ID,
		UserID:     vote.UserID,
		FeedbackID: vote.FeedbackID,
	}
}

func (r *VoteRepository) toEntity(model *VoteModel) *entities.Vote {
	return &entities.Vote{
		ID:         model.ID,
		UserID:     model.UserID,
		FeedbackID: model.FeedbackID,
		CreatedAt:  time.Unix(0, model.CreatedAt),
	}
}
