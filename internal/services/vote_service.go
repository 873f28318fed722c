package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/errors"
	"github.com/rafabene/feedbackboard-backend/internal/domain/ports"
	"github.com/rafabene/feedbackboard-backend/internal/domain/repositories"
)

// VoteService contém a lógica de negócio para votos
type VoteService struct {
	voteRepo     repositories.VoteRepository
	feedbackRepo repositories.FeedbackRepository
	logger       ports.Logger
}

// NewVoteService cria um novo VoteService
func NewVoteService(
	voteRepo repositories.VoteRepository,
	feedbackRepo repositories.FeedbackRepository,
	logger ports.Logger,
) *VoteService {
	return &VoteService{
		voteRepo:     voteRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// AddVote garante a existência do voto (userID, feedbackID)
// Idempotente: voto repetido do mesmo usuário no mesmo feedback devolve o
// registro existente sem erro. Corridas entre chamadas concorrentes são
// resolvidas pelo índice único do banco.
func (s *VoteService) AddVote(ctx context.Context, userID, feedbackID string) (*entities.Vote, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, errors.ErrFeedbackNotFound
	}

	vote := &entities.Vote{
		ID:         uuid.NewString(),
		UserID:     userID,
		FeedbackID: feedbackID,
	}

	if err := s.voteRepo.Upsert(ctx, vote); err != nil {
		return nil, err
	}

	// Releitura: no caso de conflito o Upsert não toca a linha existente
	existing, err := s.voteRepo.FindByUserAndFeedback(ctx, userID, feedbackID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("vote ensured", "user_id", userID, "feedback_id", feedbackID)
	return existing, nil
}

// RemoveVote remove o voto (userID, feedbackID) e retorna o registro removido
func (s *VoteService) RemoveVote(ctx context.Context, userID, feedbackID string) (*entities.Vote, error) {
	vote, err := s.voteRepo.FindByUserAndFeedback(ctx, userID, feedbackID)
	if err != nil {
		return nil, err
	}
	if vote == nil {
		return nil, errors.ErrVoteNotFound
	}

	if err := s.voteRepo.DeleteByUserAndFeedback(ctx, userID, feedbackID); err != nil {
		return nil, err
	}

	s.logger.Info("vote removed", "user_id", userID, "feedback_id", feedbackID)
	return vote, nil
}

// ListVotesByFeedback retorna os votos de um feedback, mais recentes primeiro
func (s *VoteService) ListVotesByFeedback(ctx context.Context, feedbackID string) ([]*entities.Vote, error) {
	return s.voteRepo.ListByFeedback(ctx, feedbackID)
}

// CountVotesByFeedback retorna a contagem viva de votos de um feedback
func (s *VoteService) CountVotesByFeedback(ctx context.Context, feedbackID string) (int64, error) {
	return s.voteRepo.CountByFeedback(ctx, feedbackID)
}
