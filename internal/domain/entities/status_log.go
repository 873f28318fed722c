package entities

import "time"

// FeedbackStatusLog registra uma transição de status de um feedback
// Trilha de auditoria append-only: nunca atualizada nem deletada, criada
// exatamente uma vez por transição efetiva (From != To).
type FeedbackStatusLog struct {
	ID         string
	FeedbackID string
	From       FeedbackStatus
	To         FeedbackStatus
	ChangedBy  string
	CreatedAt  time.Time
}
