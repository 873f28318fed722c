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

// CommentHandler lida com requisições HTTP relacionadas a comentários
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler cria um novo CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment cria um comentário (raiz ou resposta) em um feedback
// @Summary Criar comentário
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "ID do feedback"
// @Param request body dto.CreateCommentRequest true "Comentário"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} problems.DefaultProblem
// @Failure 404 {object} problems.DefaultProblem
// @Router /feedbacks/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationProblemI18n(c, err)
		return
	}

	comment, err := h.commentService.CreateComment(
		c.Request.Context(),
		middleware.ActorID(c),
		c.Param("id"),
		services.CreateCommentInput{
			Body:     req.Body,
			ParentID: req.ParentID,
		},
	)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// ListCommentTree retorna a thread hierárquica de um feedback
// @Summary Thread de comentários
// @Tags comments
// @Produce json
// @Param id path string true "ID do feedback"
// @Success 200 {array} dto.CommentNodeResponse
// @Router /feedbacks/{id}/comments [get]
func (h *CommentHandler) ListCommentTree(c *gin.Context) {
	tree, err := h.commentService.ListCommentTree(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.InternalProblemI18n(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentTreeResponse(tree))
}

// DeleteComment marca um comentário como deletado
// @Summary Deletar comentário
// @Tags comments
// @Produce json
// @Param id path string true "ID do comentário"
// @Success 200 {object} dto.CommentResponse
// @Failure 404 {object} problems.DefaultProblem
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	comment, err := h.commentService.DeleteComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// renderError traduz erros de negócio para problems RFC 7807
func (h *CommentHandler) renderError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrFeedbackNotFound),
		errs.Is(err, errors.ErrCommentNotFound),
		errs.Is(err, errors.ErrParentCommentNotFound):
		dto.NotFoundProblemI18n(c, err.Error())
	case errs.Is(err, errors.ErrParentCommentMismatch):
		dto.BadRequestProblemI18n(c, err.Error())
	default:
		dto.InternalProblemI18n(c)
	}
}
