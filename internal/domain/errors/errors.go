package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrFeedbackNotFound      = errors.New("error.feedback_not_found")
	ErrCommentNotFound       = errors.New("error.comment_not_found")
	ErrParentCommentNotFound = errors.New("error.parent_comment_not_found")
	ErrParentCommentMismatch = errors.New("error.parent_comment_mismatch")
	ErrVoteNotFound          = errors.New("error.vote_not_found")
	ErrUserNotFound          = errors.New("error.user_not_found")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeNotFound   = "/problems/not-found"
	ProblemTypeBadRequest = "/problems/bad-request"
	ProblemTypeConflict   = "/problems/conflict"
	ProblemTypeInternal   = "/problems/internal-error"
)
