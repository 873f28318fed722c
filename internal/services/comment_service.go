package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/errors"
	"github.com/rafabene/feedbackboard-backend/internal/domain/ports"
	"github.com/rafabene/feedbackboard-backend/internal/domain/repositories"
)

// CommentService contém a lógica de negócio para comentários
type CommentService struct {
	commentRepo  repositories.CommentRepository
	feedbackRepo repositories.FeedbackRepository
	logger       ports.Logger
}

// NewCommentService cria um novo CommentService
func NewCommentService(
	commentRepo repositories.CommentRepository,
	feedbackRepo repositories.FeedbackRepository,
	logger ports.Logger,
) *CommentService {
	return &CommentService{
		commentRepo:  commentRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// CreateCommentInput representa os dados para criar um comentário
type CreateCommentInput struct {
	Body     string
	ParentID *string
}

// CreateComment cria um comentário (raiz ou resposta) em um feedback
// Quando ParentID é informado, o pai precisa existir, não estar deletado
// e pertencer ao mesmo feedback; a referência nunca muda depois.
func (s *CommentService) CreateComment(ctx context.Context, authorID, feedbackID string, input CreateCommentInput) (*entities.Comment, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, errors.ErrFeedbackNotFound
	}

	if input.ParentID != nil {
		parent, err := s.commentRepo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errors.ErrParentCommentNotFound
		}
		if parent.FeedbackID != feedbackID {
			return nil, errors.ErrParentCommentMismatch
		}
	}

	comment := &entities.Comment{
		ID:         uuid.NewString(),
		Body:       input.Body,
		FeedbackID: feedbackID,
		AuthorID:   authorID,
		ParentID:   input.ParentID,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"comment_id", comment.ID,
		"feedback_id", feedbackID,
		"is_reply", comment.IsReply(),
	)

	return comment, nil
}

// ListCommentsByFeedback retorna a lista plana de comentários não
// deletados de um feedback, em ordem de criação ascendente
func (s *CommentService) ListCommentsByFeedback(ctx context.Context, feedbackID string) ([]*entities.Comment, error) {
	return s.commentRepo.ListByFeedback(ctx, feedbackID)
}

// ListCommentTree retorna a thread hierárquica de um feedback
func (s *CommentService) ListCommentTree(ctx context.Context, feedbackID string) ([]*CommentNode, error) {
	comments, err := s.commentRepo.ListByFeedback(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	return BuildCommentTree(comments), nil
}

// DeleteComment marca um comentário como deletado (soft delete)
func (s *CommentService) DeleteComment(ctx context.Context, id string) (*entities.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errors.ErrCommentNotFound
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return nil, err
	}

	comment.SoftDelete()
	s.logger.Info("comment deleted", "comment_id", id)
	return comment, nil
}
