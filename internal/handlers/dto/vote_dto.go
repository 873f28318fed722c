package dto

import (
	"time"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
)

// VoteResponse representa a resposta de um voto
type VoteResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	FeedbackID string    `json:"feedbackId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// VoteCountResponse representa a contagem viva de votos de um feedback
type VoteCountResponse struct {
	Count int64 `json:"count"`
}

// ToVoteResponse converte uma entidade Vote para VoteResponse
func ToVoteResponse(vote *entities.Vote) VoteResponse {
	return VoteResponse{
		ID:         vote.ID,
		UserID:     vote.UserID,
		FeedbackID: vote.FeedbackID,
		CreatedAt:  vote.CreatedAt,
	}
}

// ToVoteResponses converte uma lista de entidades Vote para VoteResponse
func ToVoteResponses(votes []*entities.Vote) []VoteResponse {
	responses := make([]VoteResponse, len(votes))
	for i, vote := range votes {
		responses[i] = ToVoteResponse(vote)
	}
	return responses
}
