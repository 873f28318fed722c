package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/errors"
	"github.com/rafabene/feedbackboard-backend/internal/services"
)

var _ = Describe("VoteService", func() {
	var (
		env      *testEnv
		ctx      context.Context
		feedback *entities.Feedback
	)

	BeforeEach(func() {
		env = newTestEnv()
		ctx = context.Background()

		var err error
		feedback, err = env.feedbacks.CreateFeedback(ctx, "user-1", services.CreateFeedbackInput{
			Title:       "Dark mode",
			Description: "Tema escuro",
			Category:    entities.CategoryUI,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("AddVote", func() {
		It("registra o voto do usuário", func() {
			vote, err := env.votes.AddVote(ctx, "user-2", feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(vote.UserID).To(Equal("user-2"))
			Expect(vote.FeedbackID).To(Equal(feedback.ID))

			count, err := env.votes.CountVotesByFeedback(ctx, feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})

		It("é idempotente: voto repetido devolve o registro existente", func() {
			first, err := env.votes.AddVote(ctx, "user-2", feedback.ID)
			Expect(err).NotTo(HaveOccurred())

			second, err := env.votes.AddVote(ctx, "user-2", feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))
			Expect(second.CreatedAt).To(Equal(first.CreatedAt))

			count, err := env.votes.CountVotesByFeedback(ctx, feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})

		It("usuários diferentes contam separadamente", func() {
			for _, userID := range []string{"u1", "u2", "u3"} {
				_, err := env.votes.AddVote(ctx, userID, feedback.ID)
				Expect(err).NotTo(HaveOccurred())
			}

			count, err := env.votes.CountVotesByFeedback(ctx, feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(3)))
		})

		It("rejeita feedback inexistente", func() {
			_, err := env.votes.AddVote(ctx, "user-2", "nope")
			Expect(err).To(MatchError(errors.ErrFeedbackNotFound))
		})

		It("rejeita feedback deletado", func() {
			Expect(env.feedbacks.DeleteFeedback(ctx, feedback.ID)).To(Succeed())

			_, err := env.votes.AddVote(ctx, "user-2", feedback.ID)
			Expect(err).To(MatchError(errors.ErrFeedbackNotFound))
		})
	})

	Describe("RemoveVote", func() {
		It("remove e devolve o voto", func() {
			added, err := env.votes.AddVote(ctx, "user-2", feedback.ID)
			Expect(err).NotTo(HaveOccurred())

			removed, err := env.votes.RemoveVote(ctx, "user-2", feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed.ID).To(Equal(added.ID))

			count, err := env.votes.CountVotesByFeedback(ctx, feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("retorna not found quando o voto não existe", func() {
			_, err := env.votes.RemoveVote(ctx, "user-2", feedback.ID)
			Expect(err).To(MatchError(errors.ErrVoteNotFound))
		})

		It("remover e votar de novo cria um registro novo", func() {
			first, err := env.votes.AddVote(ctx, "user-2", feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = env.votes.RemoveVote(ctx, "user-2", feedback.ID)
			Expect(err).NotTo(HaveOccurred())

			again, err := env.votes.AddVote(ctx, "user-2", feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.ID).NotTo(Equal(first.ID))
		})
	})

	Describe("ListVotesByFeedback", func() {
		It("lista votos do mais recente para o mais antigo", func() {
			for _, userID := range []string{"u1", "u2", "u3"} {
				_, err := env.votes.AddVote(ctx, userID, feedback.ID)
				Expect(err).NotTo(HaveOccurred())
			}

			votes, err := env.votes.ListVotesByFeedback(ctx, feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(votes).To(HaveLen(3))
			Expect(votes[0].UserID).To(Equal("u3"))
			Expect(votes[2].UserID).To(Equal("u1"))
		})
	})
})
