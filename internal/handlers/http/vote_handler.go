package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/feedbackboard-backend/internal/domain/errors"
	"github.com/rafabene/feedbackboard-backend/internal/handlers/dto"
	"github.com/rafabene/feedbackboard-backend/internal/handlers/middleware"
	"github.com/rafabene/feedbackboard-backend/internal/services"
)

// VoteHandler lida com requisições HTTP relacionadas a votos
type VoteHandler struct {
	voteService *services.VoteService
}

// NewVoteHandler cria um novo VoteHandler
func NewVoteHandler(voteService *services.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// AddVote garante o voto do usuário atuante no feedback (idempotente)
// @Summary Votar em feedback
// @Tags votes
// @Produce json
// @Param id path string true "ID do feedback"
// @Success 201 {object} dto.VoteResponse
// @Failure 404 {object} problems.DefaultProblem
// @Router /feedbacks/{id}/votes [post]
func (h *VoteHandler) AddVote(c *gin.Context) {
	vote, err := h.voteService.AddVote(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoteResponse(vote))
}

// ListVotes lista os votos de um feedback, mais recentes primeiro
// @Summary Listar votos
// @Tags votes
// @Produce json
// @Param id path string true "ID do feedback"
// @Success 200 {array} dto.VoteResponse
// @Router /feedbacks/{id}/votes [get]
func (h *VoteHandler) ListVotes(c *gin.Context) {
	votes, err := h.voteService.ListVotesByFeedback(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.InternalProblemI18n(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToVoteResponses(votes))
}

// CountVotes retorna a contagem viva de votos de um feedback
// @Summary Contar votos
// @Tags votes
// @Produce json
// @Param id path string true "ID do feedback"
// @Success 200 {object} dto.VoteCountResponse
// @Router /feedbacks/{id}/votes/count [get]
func (h *VoteHandler) CountVotes(c *gin.Context) {
	count, err := h.voteService.CountVotesByFeedback(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.InternalProblemI18n(c)
		return
	}

	c.JSON(http.StatusOK, dto.VoteCountResponse{Count: count})
}

// RemoveVote remove o voto do usuário atuante no feedback
// @Summary Remover voto
// @Tags votes
// @Produce json
// @Param id path string true "ID do feedback"
// @Success 200 {object} dto.VoteResponse
// @Failure 404 {object} problems.DefaultProblem
// @Router /feedbacks/{id}/votes [delete]
func (h *VoteHandler) RemoveVote(c *gin.Context) {
	vote, err := h.voteService.RemoveVote(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVoteResponse(vote))
}

// renderError traduz erros de negócio para problems RFC 7807
func (h *VoteHandler) renderError(c *gin.Context, err error) {
	if errs.Is(err, errors.ErrFeedbackNotFound) || errs.Is(err, errors.ErrVoteNotFound) {
		dto.NotFoundProblemI18n(c, err.Error())
		return
	}
	dto.InternalProblemI18n(c)
}
