package repositories

import (
	"context"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
)

// FeedbackRepository define a interface para persistência de feedbacks
// Leituras retornam nil (sem erro) quando o registro não existe ou foi
// soft-deletado; a classificação em erro de negócio fica nos services.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entities.Feedback) error
	FindByID(ctx context.Context, id string) (*entities.Feedback, error)
	List(ctx context.Context, filters FeedbackFilters) ([]*entities.Feedback, int64, error)
	Update(ctx context.Context, feedback *entities.Feedback) error
	Delete(ctx context.Context, id string) error
}

// Campos de ordenação aceitos na listagem
const (
	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"
	SortByVotes     = "votes"
)

// Direções de ordenação aceitas na listagem
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// FeedbackFilters contém filtros para listagem de feedbacks
type FeedbackFilters struct {
	Status   *entities.FeedbackStatus
	Category *entities.FeedbackCategory
	Search   string // Substring case-insensitive sobre título OU descrição
	Sort     string // createdAt (default), updatedAt ou votes
	Order    string // asc ou desc (default: desc)
	Page     int    // Página (começa em 1)
	PageSize int    // Itens por página (default: 20)
}
