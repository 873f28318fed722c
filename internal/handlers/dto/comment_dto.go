package dto

import (
	"time"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/services"
)

// CreateCommentRequest representa a requisição para criar um comentário
// ParentID opcional transforma o comentário em resposta de thread.
type CreateCommentRequest struct {
	Body     string  `json:"body" binding:"required,min=1"`
	ParentID *string `json:"parentId" binding:"omitempty,uuid"`
}

// CommentResponse representa a resposta de um comentário
type CommentResponse struct {
	ID         string    `json:"id"`
	Body       string    `json:"body"`
	FeedbackID string    `json:"feedbackId"`
	AuthorID   string    `json:"authorId"`
	ParentID   *string   `json:"parentId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CommentNodeResponse representa um comentário com sua subárvore de respostas
type CommentNodeResponse struct {
	CommentResponse
	Replies    []CommentNodeResponse `json:"replies"`
	ReplyCount int                   `json:"replyCount"`
}

// ToCommentResponse converte uma entidade Comment para CommentResponse
func ToCommentResponse(comment *entities.Comment) CommentResponse {
	return CommentResponse{
		ID:         comment.ID,
		Body:       comment.Body,
		FeedbackID: comment.FeedbackID,
		AuthorID:   comment.AuthorID,
		ParentID:   comment.ParentID,
		CreatedAt:  comment.CreatedAt,
	}
}

// ToCommentTreeResponse converte a floresta de comentários para resposta
func ToCommentTreeResponse(nodes []*services.CommentNode) []CommentNodeResponse {
	responses := make([]CommentNodeResponse, len(nodes))
	for i, node := range nodes {
		responses[i] = CommentNodeResponse{
			CommentResponse: ToCommentResponse(node.Comment),
			Replies:         ToCommentTreeResponse(node.Replies),
			ReplyCount:      node.ReplyCount,
		}
	}
	return responses
}
