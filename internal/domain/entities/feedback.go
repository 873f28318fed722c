package entities

import (
	"errors"
	"time"
)

// Feedback representa um item de feedback do quadro
type Feedback struct {
	ID          string
	Title       string
	Description string
	Category    FeedbackCategory
	Status      FeedbackStatus
	AuthorID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft delete

	// Contadores calculados na consulta (nunca persistidos)
	VoteCount    int64
	CommentCount int64
}

// IsDeleted verifica se o feedback foi deletado (soft delete)
func (f *Feedback) IsDeleted() bool {
	return f.DeletedAt != nil
}

// SoftDelete marca o feedback como deletado
func (f *Feedback) SoftDelete() {
	now := time.Now()
	f.DeletedAt = &now
}

// Validate valida regras de negócio da entidade Feedback
func (f *Feedback) Validate() error {
	if f.Title == "" {
		return errors.New("title is required")
	}

	if f.Description == "" {
		return errors.New("description is required")
	}

	if !f.Category.IsValid() {
		return errors.New("invalid category")
	}

	if !f.Status.IsValid() {
		return errors.New("invalid status")
	}

	return nil
}
