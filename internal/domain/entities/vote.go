package entities

import "time"

// Vote representa um voto de um usuário em um feedback
// A identidade efetiva é o par (UserID, FeedbackID): no máximo um voto
// por usuário por feedback, garantido por índice único no banco.
type Vote struct {
	ID         string
	UserID     string
	FeedbackID string
	CreatedAt  time.Time
}
