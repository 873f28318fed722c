package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/repositories"
)

// CommentRepository implementa repositories.CommentRepository
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository cria um novo CommentRepository
func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	model := r.toModel(comment)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	comment.CreatedAt = time.Unix(0, model.CreatedAt)
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*entities.Comment, error) {
	var model CommentModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CommentRepository) ListByFeedback(ctx context.Context, feedbackID string) ([]*entities.Comment, error) {
	var models []*CommentModel

	db := r.getDB(ctx)
	// Ordem ascendente de criação: pré-requisito da montagem da thread
	err := db.Where("feedback_id = ? AND deleted_at IS NULL", feedbackID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *CommentRepository) CountByFeedback(ctx context.Context, feedbackID string) (int64, error) {
	var count int64

	db := r.getDB(ctx)
	err := db.Model(&CommentModel{}).
		Where("feedback_id = ? AND deleted_at IS NULL", feedbackID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().UnixNano()
	return db.Model(&CommentModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *CommentRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *CommentRepository) toModel(comment *entities.Comment) *CommentModel {
	var deletedAt *int64
	if comment.DeletedAt != nil {
		ts := comment.DeletedAt.UnixNano()
		deletedAt = &ts
	}

	return &CommentModel{
		ID:         comment.ID,
		Body:       comment.Body,
		FeedbackID: comment.FeedbackID,
		AuthorID:   comment.AuthorID,
		ParentID:   comment.ParentID,
		DeletedAt:  deletedAt,
	}
}

func (r *CommentRepository) toEntity(model *CommentModel) *entities.Comment {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(0, *model.DeletedAt)
		deletedAt = &ts
	}

	return &entities.Comment{
		ID:         model.ID,
		Body:       model.Body,
		FeedbackID: model.FeedbackID,
		AuthorID:   model.AuthorID,
		ParentID:   model.ParentID,
		CreatedAt:  time.Unix(0, model.CreatedAt),
		DeletedAt:  deletedAt,
	}
}

func (r *CommentRepository) toEntities(models []*CommentModel) []*entities.Comment {
	result := make([]*entities.Comment, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
