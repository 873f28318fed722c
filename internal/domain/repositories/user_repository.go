package repositories

import (
	"context"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	// Save cria ou atualiza o usuário pelo ID (usado pelo seed)
	Save(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
}
