package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/errors"
	"github.com/rafabene/feedbackboard-backend/internal/handlers/dto"
	"github.com/rafabene/feedbackboard-backend/internal/handlers/middleware"
	"github.com/rafabene/feedbackboard-backend/internal/services"
)

// FeedbackHandler lida com requisições HTTP relacionadas a feedbacks
type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackHandler cria um novo FeedbackHandler
func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// CreateFeedback cria um novo feedback
// @Summary Criar feedback
// @Tags feedbacks
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "Feedback"
// @Success 201 {object} dto.FeedbackResponse
// @Failure 400 {object} dto.ValidationProblem
// @Router /feedbacks [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req dto.CreateFeedbackRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationProblemI18n(c, err)
		return
	}

	feedback, err := h.feedbackService.CreateFeedback(c.Request.Context(), middleware.ActorID(c), services.CreateFeedbackInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    entities.FeedbackCategory(req.Category),
	})
	if err != nil {
		dto.InternalProblemI18n(c)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeedbackResponse(feedback))
}

// ListFeedbacks lista feedbacks com filtro, ordenação e paginação
// @Summary Listar feedbacks
// @Tags feedbacks
// @Produce json
// @Param status query string false "Filtro por status"
// @Param category query string false "Filtro por categoria"
// @Param search query string false "Busca em título e descrição"
// @Param sort query string false "createdAt, updatedAt ou votes"
// @Param order query string false "asc ou desc"
// @Param page query int false "Página (1-indexada)"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.FeedbackListResponse
// @Router /feedbacks [get]
func (h *FeedbackHandler) ListFeedbacks(c *gin.Context) {
	var query dto.ListFeedbacksQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		dto.ValidationProblemI18n(c, err)
		return
	}

	result, err := h.feedbackService.ListFeedbacks(c.Request.Context(), query.ToFilters())
	if err != nil {
		dto.InternalProblemI18n(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeedbackListResponse(result))
}

// GetFeedback busca um feedback por ID
// @Summary Buscar feedback
// @Tags feedbacks
// @Produce json
// @Param id path string true "ID do feedback"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 404 {object} problems.DefaultProblem
// @Router /feedbacks/{id} [get]
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	feedback, err := h.feedbackService.GetFeedback(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeedbackResponse(feedback))
}

// UpdateFeedback atualiza parcialmente título/descrição/categoria
// @Summary Atualizar feedback
// @Tags feedbacks
// @Accept json
// @Produce json
// @Param id path string true "ID do feedback"
// @Param request body dto.UpdateFeedbackRequest true "Campos a atualizar"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 404 {object} problems.DefaultProblem
// @Router /feedbacks/{id} [patch]
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	var req dto.UpdateFeedbackRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationProblemI18n(c, err)
		return
	}

	input := services.UpdateFeedbackInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Category != nil {
		category := entities.FeedbackCategory(*req.Category)
		input.Category = &category
	}

	feedback, err := h.feedbackService.UpdateFeedback(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeedbackResponse(feedback))
}

// ChangeStatus transiciona o status de um feedback
// @Summary Transicionar status
// @Tags feedbacks
// @Accept json
// @Produce json
// @Param id path string true "ID do feedback"
// @Param request body dto.ChangeFeedbackStatusRequest true "Novo status"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 404 {object} problems.DefaultProblem
// @Router /feedbacks/{id}/status [patch]
func (h *FeedbackHandler) ChangeStatus(c *gin.Context) {
	var req dto.ChangeFeedbackStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationProblemI18n(c, err)
		return
	}

	feedback, err := h.feedbackService.ChangeStatus(
		c.Request.Context(),
		c.Param("id"),
		middleware.AdminActorID(c),
		entities.FeedbackStatus(req.To),
	)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeedbackResponse(feedback))
}

// StatusHistory retorna a trilha de transições de um feedback
// @Summary Histórico de status
// @Tags feedbacks
// @Produce json
// @Param id path string true "ID do feedback"
// @Success 200 {array} dto.StatusLogResponse
// @Failure 404 {object} problems.DefaultProblem
// @Router /feedbacks/{id}/status-logs [get]
func (h *FeedbackHandler) StatusHistory(c *gin.Context) {
	logs, err := h.feedbackService.StatusHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusLogResponses(logs))
}

// DeleteFeedback marca um feedback como deletado
// @Summary Deletar feedback
// @Tags feedbacks
// @Param id path string true "ID do feedback"
// @Success 204
// @Failure 404 {object} problems.DefaultProblem
// @Router /feedbacks/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	if err := h.feedbackService.DeleteFeedback(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// renderError traduz erros de negócio para problems RFC 7807
func (h *FeedbackHandler) renderError(c *gin.Context, err error) {
	if errs.Is(err, errors.ErrFeedbackNotFound) {
		dto.NotFoundProblemI18n(c, err.Error())
		return
	}
	dto.InternalProblemI18n(c)
}
