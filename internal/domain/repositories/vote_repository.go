package repositories

import (
	"context"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
)

// VoteRepository define a interface para persistência de votos
type VoteRepository interface {
	// Upsert garante a existência do voto (UserID, FeedbackID) de forma
	// idempotente: conflito no índice único é resolvido pelo banco, não
	// por lock em nível de aplicação
	Upsert(ctx context.Context, vote *entities.Vote) error
	FindByUserAndFeedback(ctx context.Context, userID, feedbackID string) (*entities.Vote, error)
	DeleteByUserAndFeedback(ctx context.Context, userID, feedbackID string) error
	// ListByFeedback retorna os votos de um feedback, mais recentes primeiro
	ListByFeedback(ctx context.Context, feedbackID string) ([]*entities.Vote, error)
	// CountByFeedback conta direto do banco; nenhum contador é cacheado
	CountByFeedback(ctx context.Context, feedbackID string) (int64, error)
}
