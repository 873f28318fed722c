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

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := r.getDB(ctx)
	// Upsert pelo ID: o seed roda mais de uma vez sem duplicar
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "role", "avatar_url"}),
	}).Create(model).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

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

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var deletedAt *int64
	if user.DeletedAt != nil {
		ts := user.DeletedAt.UnixNano()
		deletedAt = &ts
	}

	return &UserModel{
		ID:        user.ID,
		Name:      user.Name,
		Role:      string(user.Role),
		AvatarURL: user.AvatarURL,
		DeletedAt: deletedAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) *entities.User {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(0, *model.DeletedAt)
		deletedAt = &ts
	}

	return &entities.User{
		ID:        model.ID,
		Name:      model.Name,
		Role:      entities.Role(model.Role),
		AvatarURL: model.AvatarURL,
		CreatedAt: time.Unix(0, model.CreatedAt),
		DeletedAt: deletedAt,
	}
}
