package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/feedbackboard-backend/internal/domain/errors"
)

// Respostas de erro seguem RFC 7807 (Problem Details for HTTP APIs)

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// ValidationProblem é um problem RFC 7807 com a lista de erros de campo
type ValidationProblem struct {
	problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// newProblem cria um problem RFC 7807 com título e detalhe traduzidos
func newProblem(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) *problems.Problem {
	// Base URL da configuração para montar a URI do tipo
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	p := problems.NewStatusProblem(status)
	p.Type = baseURL + problemType
	p.Title = T(c, titleKey, params...)
	p.Detail = T(c, detailKey, params...)
	p.Instance = c.Request.URL.Path
	return p
}

// RenderProblem escreve o problem com o media type RFC 7807
func RenderProblem(c *gin.Context, status int, problem interface{}) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(status, problem)
}

// ValidationProblemI18n responde 400 com os erros de campo do binding
func ValidationProblemI18n(c *gin.Context, err error) {
	problem := &ValidationProblem{
		Problem: *newProblem(
			c,
			domainerrors.ProblemTypeValidation,
			"error.validation.title",
			"error.validation.detail",
			http.StatusBadRequest,
		),
		Errors: fieldErrors(err),
	}
	RenderProblem(c, http.StatusBadRequest, problem)
}

// NotFoundProblemI18n responde 404 com o detalhe traduzido
// detailKey normalmente é o próprio código do erro de negócio.
func NotFoundProblemI18n(c *gin.Context, detailKey string) {
	problem := newProblem(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		http.StatusNotFound,
	)
	RenderProblem(c, http.StatusNotFound, problem)
}

// BadRequestProblemI18n responde 400 com o detalhe traduzido
func BadRequestProblemI18n(c *gin.Context, detailKey string) {
	problem := newProblem(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		http.StatusBadRequest,
	)
	RenderProblem(c, http.StatusBadRequest, problem)
}

// ConflictProblemI18n responde 409 com o detalhe traduzido
// Reservado: o caminho idempotente de voto absorve o conflito de
// unicidade, mas a taxonomia prevê o caso.
func ConflictProblemI18n(c *gin.Context, detailKey string) {
	problem := newProblem(
		c,
		domainerrors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		http.StatusConflict,
	)
	RenderProblem(c, http.StatusConflict, problem)
}

// InternalProblemI18n responde 500
func InternalProblemI18n(c *gin.Context) {
	problem := newProblem(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
	RenderProblem(c, http.StatusInternalServerError, problem)
}

// fieldErrors converte erros do validator em erros de campo da resposta
func fieldErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	result := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: fe.Error(),
			Tag:     fe.Tag(),
		})
	}
	return result
}
