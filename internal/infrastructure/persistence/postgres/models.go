package postgres

// Models GORM do quadro de feedback
// Timestamps em Unix nanos: inteiros ordenáveis e estáveis entre drivers,
// com precisão suficiente para a ordem de criação desempatar comentários
// gravados em sequência rápida.

// UserModel é o model GORM para usuários
type UserModel struct {
	ID        string  `gorm:"type:varchar(255);primary_key"`
	Name      string  `gorm:"type:varchar(500);not null"`
	Role      string  `gorm:"type:varchar(50);not null;index"`
	AvatarURL *string `gorm:"type:varchar(500)"`
	CreatedAt int64   `gorm:"autoCreateTime:nano;index"`
	DeletedAt *int64  `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// FeedbackModel é o model GORM para feedbacks
type FeedbackModel struct {
	ID          string `gorm:"type:varchar(36);primary_key"`
	Title       string `gorm:"type:varchar(500);not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"type:varchar(50);not null;index"`
	Status      string `gorm:"type:varchar(50);not null;index"`
	AuthorID    string `gorm:"type:varchar(255);not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:nano;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:nano"`
	DeletedAt   *int64 `gorm:"index"` // Soft delete

	// Colunas calculadas por subselect na leitura; fora da migração
	VoteCount    int64 `gorm:"->;-:migration"`
	CommentCount int64 `gorm:"->;-:migration"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}

// CommentModel é o model GORM para comentários
type CommentModel struct {
	ID         string  `gorm:"type:varchar(36);primary_key"`
	Body       string  `gorm:"type:text;not null"`
	FeedbackID string  `gorm:"type:varchar(36);not null;index"`
	AuthorID   string  `gorm:"type:varchar(255);not null"`
	ParentID   *string `gorm:"type:varchar(36);index"`
	CreatedAt  int64   `gorm:"autoCreateTime:nano;index"`
	DeletedAt  *int64  `gorm:"index"` // Soft delete
}

func (CommentModel) TableName() string {
	return "comments"
}

// VoteModel é o model GORM para votos
// O índice único composto (user_id, feedback_id) é quem serializa adds
// concorrentes do mesmo par.
type VoteModel struct {
	ID         string `gorm:"type:varchar(36);primary_key"`
	UserID     string `gorm:"type:varchar(255);not null;uniqueIndex:ux_votes_user_feedback"`
	FeedbackID string `gorm:"type:varchar(36);not null;uniqueIndex:ux_votes_user_feedback;index"`
	CreatedAt  int64  `gorm:"autoCreateTime:nano;index"`
}

func (VoteModel) TableName() string {
	return "votes"
}

// FeedbackStatusLogModel é o model GORM para o histórico de status
type FeedbackStatusLogModel struct {
	ID         string `gorm:"type:varchar(36);primary_key"`
	FeedbackID string `gorm:"type:varchar(36);not null;index"`
	FromStatus string `gorm:"column:from_status;type:varchar(50);not null"`
	ToStatus   string `gorm:"column:to_status;type:varchar(50);not null"`
	ChangedBy  string `gorm:"type:varchar(255);not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:nano;index"`
}

func (FeedbackStatusLogModel) TableName() string {
	return "feedback_status_logs"
}
