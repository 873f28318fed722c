package entities

// FeedbackCategory representa a categoria de um feedback
type FeedbackCategory string

const (
	CategoryUI          FeedbackCategory = "UI"
	CategoryUX          FeedbackCategory = "UX"
	CategoryEnhancement FeedbackCategory = "ENHANCEMENT"
	CategoryFeature     FeedbackCategory = "FEATURE"
	CategoryBug         FeedbackCategory = "BUG"
	CategoryOther       FeedbackCategory = "OTHER"
)

// AllCategories retorna todas as categorias válidas
func AllCategories() []FeedbackCategory {
	return []FeedbackCategory{
		CategoryUI,
		CategoryUX,
		CategoryEnhancement,
		CategoryFeature,
		CategoryBug,
		CategoryOther,
	}
}

// IsValid verifica se a categoria é um dos valores conhecidos
func (c FeedbackCategory) IsValid() bool {
	for _, valid := range AllCategories() {
		if c == valid {
			return true
		}
	}
	return false
}
