package entities

// FeedbackStatus representa o estado de um feedback no quadro
type FeedbackStatus string

const (
	StatusSuggestion FeedbackStatus = "SUGGESTION"
	StatusPlanned    FeedbackStatus = "PLANNED"
	StatusInProgress FeedbackStatus = "IN_PROGRESS"
	StatusLive       FeedbackStatus = "LIVE"
	StatusClosed     FeedbackStatus = "CLOSED"
)

// AllStatuses retorna todos os status válidos
func AllStatuses() []FeedbackStatus {
	return []FeedbackStatus{
		StatusSuggestion,
		StatusPlanned,
		StatusInProgress,
		StatusLive,
		StatusClosed,
	}
}

// IsValid verifica se o status é um dos valores conhecidos
func (s FeedbackStatus) IsValid() bool {
	for _, valid := range AllStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}
