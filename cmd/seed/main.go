package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/repositories"
	"github.com/rafabene/feedbackboard-backend/internal/handlers/middleware"
	"github.com/rafabene/feedbackboard-backend/internal/infrastructure/config"
	"github.com/rafabene/feedbackboard-backend/internal/infrastructure/logging"
	"github.com/rafabene/feedbackboard-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/feedbackboard-backend/internal/services"
)

// Popula o banco com os usuários placeholder e dados de demonstração.
// Seguro para rodar mais de uma vez: os usuários são upserts e os dados
// de demonstração só são criados quando não existe nenhum feedback.
func main() {
	// Carrega o .env antes do config; em produção as variáveis já vêm do ambiente
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	userRepo := postgres.NewUserRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	statusLogRepo := postgres.NewStatusLogRepository(db)
	uow := postgres.NewUnitOfWork(db)

	feedbackService := services.NewFeedbackService(feedbackRepo, statusLogRepo, uow, logger)
	commentService := services.NewCommentService(commentRepo, feedbackRepo, logger)
	voteService := services.NewVoteService(voteRepo, feedbackRepo, logger)

	users := []*entities.User{
		{ID: middleware.PlaceholderUserID, Name: "Demo User", Role: entities.RoleUser},
		{ID: middleware.PlaceholderAdminID, Name: "Demo Admin", Role: entities.RoleAdmin},
		{ID: "seed-user-maria", Name: "Maria Silva", Role: entities.RoleUser},
		{ID: "seed-user-joao", Name: "João Souza", Role: entities.RoleUser},
	}
	for _, user := range users {
		if err := userRepo.Save(ctx, user); err != nil {
			logger.Error("failed to seed user", "user_id", user.ID, "error", err)
			os.Exit(1)
		}
	}
	logger.Info("users seeded", "count", len(users))

	existing, err := feedbackService.ListFeedbacks(ctx, repositories.FeedbackFilters{})
	if err != nil {
		logger.Error("failed to check existing feedbacks", "error", err)
		os.Exit(1)
	}
	if existing.Total > 0 {
		logger.Info("demo data skipped, feedbacks already exist", "total", existing.Total)
		return
	}

	darkMode, err := feedbackService.CreateFeedback(ctx, middleware.PlaceholderUserID, services.CreateFeedbackInput{
		Title:       "Add dark mode",
		Description: "A dark theme would be easier on the eyes during night sessions.",
		Category:    entities.CategoryUI,
	})
	if err != nil {
		logger.Error("failed to seed feedback", "error", err)
		os.Exit(1)
	}

	exportCSV, err := feedbackService.CreateFeedback(ctx, "seed-user-maria", services.CreateFeedbackInput{
		Title:       "Export board to CSV",
		Description: "Let admins export all feedback items with vote counts for offline analysis.",
		Category:    entities.CategoryFeature,
	})
	if err != nil {
		logger.Error("failed to seed feedback", "error", err)
		os.Exit(1)
	}

	slowSearch, err := feedbackService.CreateFeedback(ctx, "seed-user-joao", services.CreateFeedbackInput{
		Title:       "Search is slow on long boards",
		Description: "Typing in the search box freezes the page when there are hundreds of items.",
		Category:    entities.CategoryBug,
	})
	if err != nil {
		logger.Error("failed to seed feedback", "error", err)
		os.Exit(1)
	}

	root, err := commentService.CreateComment(ctx, "seed-user-maria", darkMode.ID, services.CreateCommentInput{
		Body: "Please also remember the choice between sessions.",
	})
	if err != nil {
		logger.Error("failed to seed comment", "error", err)
		os.Exit(1)
	}
	if _, err := commentService.CreateComment(ctx, middleware.PlaceholderUserID, darkMode.ID, services.CreateCommentInput{
		Body:     "Agreed, persisting it in the profile would be ideal.",
		ParentID: &root.ID,
	}); err != nil {
		logger.Error("failed to seed reply", "error", err)
		os.Exit(1)
	}
	if _, err := commentService.CreateComment(ctx, "seed-user-joao", exportCSV.ID, services.CreateCommentInput{
		Body: "XLSX support would help too.",
	}); err != nil {
		logger.Error("failed to seed comment", "error", err)
		os.Exit(1)
	}

	votes := []struct {
		userID     string
		feedbackID string
	}{
		{middleware.PlaceholderUserID, darkMode.ID},
		{"seed-user-maria", darkMode.ID},
		{"seed-user-joao", darkMode.ID},
		{middleware.PlaceholderUserID, exportCSV.ID},
		{"seed-user-maria", slowSearch.ID},
	}
	for _, vote := range votes {
		if _, err := voteService.AddVote(ctx, vote.userID, vote.feedbackID); err != nil {
			logger.Error("failed to seed vote", "feedback_id", vote.feedbackID, "error", err)
			os.Exit(1)
		}
	}

	if _, err := feedbackService.ChangeStatus(ctx, darkMode.ID, middleware.PlaceholderAdminID, entities.StatusPlanned); err != nil {
		logger.Error("failed to seed status change", "error", err)
		os.Exit(1)
	}
	if _, err := feedbackService.ChangeStatus(ctx, slowSearch.ID, middleware.PlaceholderAdminID, entities.StatusInProgress); err != nil {
		logger.Error("failed to seed status change", "error", err)
		os.Exit(1)
	}

	logger.Info("demo data seeded", "feedbacks", 3, "comments", 3, "votes", len(votes))
}
