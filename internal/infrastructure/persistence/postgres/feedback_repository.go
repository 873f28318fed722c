package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/repositories"
)

// feedbackCountSelects anexa as contagens vivas de votos e comentários
// (não deletados) a cada linha. Subselects por consulta, sem contador
// cacheado: totais de voto nunca ficam obsoletos frente a mudanças
// concorrentes.
const feedbackCountSelects = "feedbacks.*, " +
	"(SELECT COUNT(*) FROM votes WHERE votes.feedback_id = feedbacks.id) AS vote_count, " +
	"(SELECT COUNT(*) FROM comments WHERE comments.feedback_id = feedbacks.id AND comments.deleted_at IS NULL) AS comment_count"

// FeedbackRepository implementa repositories.FeedbackRepository
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository cria um novo FeedbackRepository
func NewFeedbackRepository(db *gorm.DB) repositories.FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *entities.Feedback) error {
	model := r.toModel(feedback)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	feedback.CreatedAt = time.Unix(0, model.CreatedAt)
	feedback.UpdatedAt = time.Unix(0, model.UpdatedAt)
	return nil
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id string) (*entities.Feedback, error) {
	var model FeedbackModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	err := db.Model(&FeedbackModel{}).
		Select(feedbackCountSelects).
		Where("feedbacks.id = ? AND feedbacks.deleted_at IS NULL", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *FeedbackRepository) List(ctx context.Context, filters repositories.FeedbackFilters) ([]*entities.Feedback, int64, error) {
	var models []*FeedbackModel
	var total int64

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	db := r.getDB(ctx)

	// Total e página saem da mesma transação para que ambos observem o
	// mesmo snapshot do predicado de filtro
	err := db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&FeedbackModel{})

		// Soft delete: ignorar registros deletados
		query = query.Where("feedbacks.deleted_at IS NULL")

		// Aplicar filtros
		if filters.Status != nil {
			query = query.Where("feedbacks.status = ?", string(*filters.Status))
		}
		if filters.Category != nil {
			query = query.Where("feedbacks.category = ?", string(*filters.Category))
		}
		if filters.Search != "" {
			pattern := "%" + strings.ToLower(filters.Search) + "%"
			query = query.Where("LOWER(feedbacks.title) LIKE ? OR LOWER(feedbacks.description) LIKE ?", pattern, pattern)
		}

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return query.
			Select(feedbackCountSelects).
			Order(orderClause(filters.Sort, filters.Order)).
			Limit(pageSize).
			Offset(offset).
			Find(&models).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return r.toEntities(models), total, nil
}

func (r *FeedbackRepository) Update(ctx context.Context, feedback *entities.Feedback) error {
	db := r.getDB(ctx)
	// Soft delete: registros deletados não são atualizáveis
	return db.Model(&FeedbackModel{}).
		Where("id = ? AND deleted_at IS NULL", feedback.ID).
		Updates(map[string]interface{}{
			"title":       feedback.Title,
			"description": feedback.Description,
			"category":    string(feedback.Category),
			"status":      string(feedback.Status),
		}).Error
}

func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().UnixNano()
	return db.Model(&FeedbackModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

// orderClause resolve a ordenação da listagem
// vote_count é o alias do subselect, então ordenar por votos sempre usa a
// contagem viva calculada na própria consulta.
func orderClause(sort, order string) string {
	direction := "DESC"
	if order == repositories.OrderAsc {
		direction = "ASC"
	}

	switch sort {
	case repositories.SortByVotes:
		return "vote_count " + direction
	case repositories.SortByUpdatedAt:
		return "feedbacks.updated_at " + direction
	default:
		return "feedbacks.created_at " + direction
	}
}

// getDB extrai DB do contexto (para suportar transações)
func (r *FeedbackRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *FeedbackRepository) toModel(feedback *entities.Feedback) *FeedbackModel {
	var deletedAt *int64
	if feedback.DeletedAt != nil {
		ts := feedback.DeletedAt.UnixNano()
		deletedAt = &ts
	}

	return &FeedbackModel{
		ID:          feedback.ID,
		Title:       feedback.Title,
		Description: feedback.Description,
		Category:    string(feedback.Category),
		Status:      string(feedback.Status),
		AuthorID:    feedback.AuthorID,
		DeletedAt:   deletedAt,
	}
}

func (r *FeedbackRepository) toEntity(model *FeedbackModel) *entities.Feedback {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(0, *model.DeletedAt)
		deletedAt = &ts
	}

	return &entities.Feedback{
		ID:           model.ID,
		Title:        model.Title,
		Description:  model.Description,
		Category:     entities.FeedbackCategory(model.Category),
		Status:       entities.FeedbackStatus(model.Status),
		AuthorID:     model.AuthorID,
		CreatedAt:    time.Unix(0, model.CreatedAt),
		UpdatedAt:    time.Unix(0, model.UpdatedAt),
		DeletedAt:    deletedAt,
		VoteCount:    model.VoteCount,
		CommentCount: model.CommentCount,
	}
}

func (r *FeedbackRepository) toEntities(models []*FeedbackModel) []*entities.Feedback {
	result := make([]*entities.Feedback, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
