package dto

import (
	"time"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/repositories"
	"github.com/rafabene/feedbackboard-backend/internal/services"
)

// JSON em camelCase: a API é consumida pelo mesmo front do quadro, que
// fala camelCase desde a primeira versão.

// CreateFeedbackRequest representa a requisição para criar um feedback
type CreateFeedbackRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=500"`
	Description string `json:"description" binding:"required,min=1"`
	Category    string `json:"category" binding:"required,feedback_category"`
}

// UpdateFeedbackRequest representa a atualização parcial de um feedback
// Status fica de fora: transições passam por ChangeFeedbackStatusRequest.
type UpdateFeedbackRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=500"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Category    *string `json:"category" binding:"omitempty,feedback_category"`
}

// ChangeFeedbackStatusRequest representa a transição de status
type ChangeFeedbackStatusRequest struct {
	To string `json:"to" binding:"required,feedback_status"`
}

// ListFeedbacksQuery representa os parâmetros de listagem
type ListFeedbacksQuery struct {
	Status   string `form:"status" binding:"omitempty,feedback_status"`
	Category string `form:"category" binding:"omitempty,feedback_category"`
	Search   string `form:"search"`
	Sort     string `form:"sort" binding:"omitempty,oneof=createdAt updatedAt votes"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1"`
}

// ToFilters converte a query em filtros de repositório
func (q *ListFeedbacksQuery) ToFilters() repositories.FeedbackFilters {
	filters := repositories.FeedbackFilters{
		Search:   q.Search,
		Sort:     q.Sort,
		Order:    q.Order,
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	if q.Status != "" {
		status := entities.FeedbackStatus(q.Status)
		filters.Status = &status
	}
	if q.Category != "" {
		category := entities.FeedbackCategory(q.Category)
		filters.Category = &category
	}

	return filters
}

// FeedbackResponse representa a resposta de um feedback
type FeedbackResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	AuthorID     string    `json:"authorId"`
	VoteCount    int64     `json:"voteCount"`
	CommentCount int64     `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FeedbackListResponse representa uma página de feedbacks
type FeedbackListResponse struct {
	Items    []FeedbackResponse `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}

// ToFeedbackResponse converte uma entidade Feedback para FeedbackResponse
func ToFeedbackResponse(feedback *entities.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:           feedback.ID,
		Title:        feedback.Title,
		Description:  feedback.Description,
		Category:     string(feedback.Category),
		Status:       string(feedback.Status),
		AuthorID:     feedback.AuthorID,
		VoteCount:    feedback.VoteCount,
		CommentCount: feedback.CommentCount,
		CreatedAt:    feedback.CreatedAt,
		UpdatedAt:    feedback.UpdatedAt,
	}
}

// ToFeedbackListResponse converte o resultado de listagem do service
func ToFeedbackListResponse(result *services.FeedbackListResult) FeedbackListResponse {
	items := make([]FeedbackResponse, len(result.Items))
	for i, feedback := range result.Items {
		items[i] = ToFeedbackResponse(feedback)
	}

	return FeedbackListResponse{
		Items:    items,
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	}
}

// StatusLogResponse representa uma transição de status na trilha
type StatusLogResponse struct {
	ID         string    `json:"id"`
	FeedbackID string    `json:"feedbackId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ChangedBy  string    `json:"changedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToStatusLogResponses converte a trilha de transições
func ToStatusLogResponses(logs []*entities.FeedbackStatusLog) []StatusLogResponse {
	responses := make([]StatusLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = StatusLogResponse{
			ID:         log.ID,
			FeedbackID: log.FeedbackID,
			From:       string(log.From),
			To:         string(log.To),
			ChangedBy:  log.ChangedBy,
			CreatedAt:  log.CreatedAt,
		}
	}
	return responses
}
