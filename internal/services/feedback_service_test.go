package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/errors"
	"github.com/rafabene/feedbackboard-backend/internal/domain/repositories"
	"github.com/rafabene/feedbackboard-backend/internal/services"
)

var _ = Describe("FeedbackService", func() {
	var (
		env *testEnv
		ctx context.Context
	)

	BeforeEach(func() {
		env = newTestEnv()
		ctx = context.Background()
	})

	create := func(title, description string, category entities.FeedbackCategory) *entities.Feedback {
		feedback, err := env.feedbacks.CreateFeedback(ctx, "user-1", services.CreateFeedbackInput{
			Title:       title,
			Description: description,
			Category:    category,
		})
		Expect(err).NotTo(HaveOccurred())
		return feedback
	}

	Describe("CreateFeedback", func() {
		It("cria com status inicial SUGGESTION", func() {
			feedback := create("Dark mode", "Tema escuro para uso noturno", entities.CategoryUI)

			Expect(feedback.ID).NotTo(BeEmpty())
			Expect(feedback.Status).To(Equal(entities.StatusSuggestion))
			Expect(feedback.AuthorID).To(Equal("user-1"))
		})

		It("rejeita categoria inválida", func() {
			_, err := env.feedbacks.CreateFeedback(ctx, "user-1", services.CreateFeedbackInput{
				Title:       "Qualquer",
				Description: "Qualquer",
				Category:    entities.FeedbackCategory("INVALID"),
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetFeedback", func() {
		It("retorna o feedback com contagens vivas", func() {
			created := create("Dark mode", "Tema escuro", entities.CategoryUI)

			_, err := env.votes.AddVote(ctx, "user-1", created.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = env.comments.CreateComment(ctx, "user-2", created.ID, services.CreateCommentInput{Body: "Apoiado"})
			Expect(err).NotTo(HaveOccurred())

			found, err := env.feedbacks.GetFeedback(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.VoteCount).To(Equal(int64(1)))
			Expect(found.CommentCount).To(Equal(int64(1)))
		})

		It("retorna not found para ID desconhecido", func() {
			_, err := env.feedbacks.GetFeedback(ctx, "nope")
			Expect(err).To(MatchError(errors.ErrFeedbackNotFound))
		})

		It("não conta comentários deletados", func() {
			created := create("Dark mode", "Tema escuro", entities.CategoryUI)

			comment, err := env.comments.CreateComment(ctx, "user-2", created.ID, services.CreateCommentInput{Body: "Apoiado"})
			Expect(err).NotTo(HaveOccurred())
			_, err = env.comments.DeleteComment(ctx, comment.ID)
			Expect(err).NotTo(HaveOccurred())

			found, err := env.feedbacks.GetFeedback(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.CommentCount).To(BeZero())
		})
	})

	Describe("UpdateFeedback", func() {
		It("atualiza apenas os campos informados", func() {
			created := create("Dark mode", "Tema escuro", entities.CategoryUI)

			newTitle := "Dark mode everywhere"
			updated, err := env.feedbacks.UpdateFeedback(ctx, created.ID, services.UpdateFeedbackInput{
				Title: &newTitle,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Title).To(Equal(newTitle))
			Expect(updated.Description).To(Equal("Tema escuro"))
			Expect(updated.Category).To(Equal(entities.CategoryUI))
		})

		It("rejeita mutação em registro deletado", func() {
			created := create("Dark mode", "Tema escuro", entities.CategoryUI)
			Expect(env.feedbacks.DeleteFeedback(ctx, created.ID)).To(Succeed())

			newTitle := "Tarde demais"
			_, err := env.feedbacks.UpdateFeedback(ctx, created.ID, services.UpdateFeedbackInput{Title: &newTitle})
			Expect(err).To(MatchError(errors.ErrFeedbackNotFound))
		})
	})

	Describe("DeleteFeedback", func() {
		It("esconde o feedback das leituras", func() {
			created := create("Dark mode", "Tema escuro", entities.CategoryUI)

			Expect(env.feedbacks.DeleteFeedback(ctx, created.ID)).To(Succeed())

			_, err := env.feedbacks.GetFeedback(ctx, created.ID)
			Expect(err).To(MatchError(errors.ErrFeedbackNotFound))

			result, err := env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(BeZero())
		})

		It("retorna not found para ID desconhecido", func() {
			Expect(env.feedbacks.DeleteFeedback(ctx, "nope")).To(MatchError(errors.ErrFeedbackNotFound))
		})
	})

	Describe("ListFeedbacks", func() {
		BeforeEach(func() {
			create("Dark mode", "Tema escuro para a interface", entities.CategoryUI)
			create("Export CSV", "Exportar o quadro para análise", entities.CategoryFeature)
			create("Search freeze", "A busca trava com muitos itens", entities.CategoryBug)
		})

		It("filtra por categoria", func() {
			category := entities.CategoryBug
			result, err := env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{Category: &category})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(Equal(int64(1)))
			Expect(result.Items[0].Title).To(Equal("Search freeze"))
		})

		It("filtra por status", func() {
			status := entities.StatusPlanned
			result, err := env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{Status: &status})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(BeZero())

			status = entities.StatusSuggestion
			result, err = env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{Status: &status})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(Equal(int64(3)))
		})

		It("busca por substring sem diferenciar maiúsculas, em título ou descrição", func() {
			result, err := env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{Search: "DARK"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(Equal(int64(1)))
			Expect(result.Items[0].Title).To(Equal("Dark mode"))

			result, err = env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{Search: "quadro"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(Equal(int64(1)))
			Expect(result.Items[0].Title).To(Equal("Export CSV"))
		})

		It("ordena por criação descendente por padrão", func() {
			result, err := env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Items).To(HaveLen(3))
			Expect(result.Items[0].Title).To(Equal("Search freeze"))
			Expect(result.Items[2].Title).To(Equal("Dark mode"))
		})

		It("ordena por votos usando a contagem viva", func() {
			result, err := env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{})
			Expect(err).NotTo(HaveOccurred())

			var exportCSV, darkMode *entities.Feedback
			for _, item := range result.Items {
				switch item.Title {
				case "Export CSV":
					exportCSV = item
				case "Dark mode":
					darkMode = item
				}
			}

			for _, userID := range []string{"u1", "u2", "u3"} {
				_, err := env.votes.AddVote(ctx, userID, exportCSV.ID)
				Expect(err).NotTo(HaveOccurred())
			}
			_, err = env.votes.AddVote(ctx, "u1", darkMode.ID)
			Expect(err).NotTo(HaveOccurred())

			sorted, err := env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{
				Sort:  repositories.SortByVotes,
				Order: repositories.OrderDesc,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(sorted.Items[0].Title).To(Equal("Export CSV"))
			Expect(sorted.Items[0].VoteCount).To(Equal(int64(3)))
			Expect(sorted.Items[1].Title).To(Equal("Dark mode"))
		})

		It("pagina sem perder nem duplicar itens", func() {
			full, err := env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{PageSize: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(full.Items).To(HaveLen(3))

			var paged []string
			for page := 1; page <= 2; page++ {
				result, err := env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{
					Page:     page,
					PageSize: 2,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Total).To(Equal(int64(3)))
				for _, item := range result.Items {
					paged = append(paged, item.ID)
				}
			}

			var expected []string
			for _, item := range full.Items {
				expected = append(expected, item.ID)
			}
			Expect(paged).To(Equal(expected))
		})

		It("normaliza página e tamanho inválidos", func() {
			result, err := env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{Page: -3, PageSize: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Page).To(Equal(1))
			Expect(result.PageSize).To(Equal(20))
		})

		It("página além do fim vem vazia mantendo o total", func() {
			result, err := env.feedbacks.ListFeedbacks(ctx, repositories.FeedbackFilters{Page: 50, PageSize: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Items).To(BeEmpty())
			Expect(result.Total).To(Equal(int64(3)))
		})
	})

	Describe("ChangeStatus", func() {
		It("registra exatamente um log por transição", func() {
			created := create("Dark mode", "Tema escuro", entities.CategoryUI)

			changed, err := env.feedbacks.ChangeStatus(ctx, created.ID, "admin-1", entities.StatusPlanned)
			Expect(err).NotTo(HaveOccurred())
			Expect(changed.Status).To(Equal(entities.StatusPlanned))

			history, err := env.feedbacks.StatusHistory(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(1))
			Expect(history[0].From).To(Equal(entities.StatusSuggestion))
			Expect(history[0].To).To(Equal(entities.StatusPlanned))
			Expect(history[0].ChangedBy).To(Equal("admin-1"))
		})

		It("transição para o status atual é no-op sem log", func() {
			created := create("Dark mode", "Tema escuro", entities.CategoryUI)

			same, err := env.feedbacks.ChangeStatus(ctx, created.ID, "admin-1", entities.StatusSuggestion)
			Expect(err).NotTo(HaveOccurred())
			Expect(same.Status).To(Equal(entities.StatusSuggestion))

			history, err := env.feedbacks.StatusHistory(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(BeEmpty())
		})

		It("histórico sai em ordem de criação ascendente", func() {
			created := create("Dark mode", "Tema escuro", entities.CategoryUI)

			transitions := []entities.FeedbackStatus{
				entities.StatusPlanned,
				entities.StatusInProgress,
				entities.StatusLive,
			}
			for _, to := range transitions {
				_, err := env.feedbacks.ChangeStatus(ctx, created.ID, "admin-1", to)
				Expect(err).NotTo(HaveOccurred())
			}

			history, err := env.feedbacks.StatusHistory(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(3))
			for i, log := range history {
				Expect(log.To).To(Equal(transitions[i]))
			}
			Expect(history[1].From).To(Equal(entities.StatusPlanned))
		})

		It("retorna not found para feedback deletado", func() {
			created := create("Dark mode", "Tema escuro", entities.CategoryUI)
			Expect(env.feedbacks.DeleteFeedback(ctx, created.ID)).To(Succeed())

			_, err := env.feedbacks.ChangeStatus(ctx, created.ID, "admin-1", entities.StatusPlanned)
			Expect(err).To(MatchError(errors.ErrFeedbackNotFound))
		})
	})
})
