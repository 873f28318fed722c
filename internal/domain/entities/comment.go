package entities

import (
	"errors"
	"time"
)

// Comment representa um comentário em um feedback
// ParentID aponta para outro comentário do mesmo feedback e nunca muda
// depois da criação; comentários com ParentID nulo são raízes da thread.
type Comment struct {
	ID         string
	Body       string
	FeedbackID string
	AuthorID   string
	ParentID   *string
	CreatedAt  time.Time
	DeletedAt  *time.Time // Soft delete
}

// IsReply verifica se o comentário é uma resposta a outro comentário
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

// IsDeleted verifica se o comentário foi deletado (soft delete)
func (c *Comment) IsDeleted() bool {
	return c.DeletedAt != nil
}

// SoftDelete marca o comentário como deletado
func (c *Comment) SoftDelete() {
	now := time.Now()
	c.DeletedAt = &now
}

// Validate valida regras de negócio da entidade Comment
func (c *Comment) Validate() error {
	if c.Body == "" {
		return errors.New("body is required")
	}

	if c.FeedbackID == "" {
		return errors.New("feedback id is required")
	}

	if c.AuthorID == "" {
		return errors.New("author id is required")
	}

	return nil
}
