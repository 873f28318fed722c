package repositories

import (
	"context"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
)

// CommentRepository define a interface para persistência de comentários
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	FindByID(ctx context.Context, id string) (*entities.Comment, error)
	// ListByFeedback retorna os comentários não deletados de um feedback,
	// ordenados por criação ascendente (ordem exigida pela montagem da thread)
	ListByFeedback(ctx context.Context, feedbackID string) ([]*entities.Comment, error)
	CountByFeedback(ctx context.Context, feedbackID string) (int64, error)
	Delete(ctx context.Context, id string) error
}
