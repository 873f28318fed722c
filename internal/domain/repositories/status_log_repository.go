package repositories

import (
	"context"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
)

// StatusLogRepository define a interface para o histórico de status
// Append-only: não há Update nem Delete.
type StatusLogRepository interface {
	Create(ctx context.Context, log *entities.FeedbackStatusLog) error
	// ListByFeedback retorna as transições em ordem de criação ascendente
	ListByFeedback(ctx context.Context, feedbackID string) ([]*entities.FeedbackStatusLog, error)
}
