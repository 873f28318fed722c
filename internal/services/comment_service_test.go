package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/errors"
	"github.com/rafabene/feedbackboard-backend/internal/services"
)

var _ = Describe("CommentService", func() {
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

	Describe("CreateComment", func() {
		It("cria comentário raiz", func() {
			comment, err := env.comments.CreateComment(ctx, "user-2", feedback.ID, services.CreateCommentInput{
				Body: "Apoiado",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(comment.ParentID).To(BeNil())
			Expect(comment.IsReply()).To(BeFalse())
		})

		It("cria resposta apontando para o pai", func() {
			root, err := env.comments.CreateComment(ctx, "user-2", feedback.ID, services.CreateCommentInput{
				Body: "Apoiado",
			})
			Expect(err).NotTo(HaveOccurred())

			reply, err := env.comments.CreateComment(ctx, "user-3", feedback.ID, services.CreateCommentInput{
				Body:     "Também",
				ParentID: &root.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(reply.IsReply()).To(BeTrue())
			Expect(*reply.ParentID).To(Equal(root.ID))
		})

		It("rejeita feedback inexistente", func() {
			_, err := env.comments.CreateComment(ctx, "user-2", "nope", services.CreateCommentInput{Body: "Oi"})
			Expect(err).To(MatchError(errors.ErrFeedbackNotFound))
		})

		It("rejeita pai inexistente", func() {
			missing := "nope"
			_, err := env.comments.CreateComment(ctx, "user-2", feedback.ID, services.CreateCommentInput{
				Body:     "Oi",
				ParentID: &missing,
			})
			Expect(err).To(MatchError(errors.ErrParentCommentNotFound))
		})

		It("rejeita pai deletado", func() {
			root, err := env.comments.CreateComment(ctx, "user-2", feedback.ID, services.CreateCommentInput{
				Body: "Apoiado",
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = env.comments.DeleteComment(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = env.comments.CreateComment(ctx, "user-3", feedback.ID, services.CreateCommentInput{
				Body:     "Também",
				ParentID: &root.ID,
			})
			Expect(err).To(MatchError(errors.ErrParentCommentNotFound))
		})

		It("rejeita pai de outro feedback", func() {
			other, err := env.feedbacks.CreateFeedback(ctx, "user-1", services.CreateFeedbackInput{
				Title:       "Export CSV",
				Description: "Exportar o quadro",
				Category:    entities.CategoryFeature,
			})
			Expect(err).NotTo(HaveOccurred())

			foreign, err := env.comments.CreateComment(ctx, "user-2", other.ID, services.CreateCommentInput{
				Body: "Comentário no outro",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = env.comments.CreateComment(ctx, "user-3", feedback.ID, services.CreateCommentInput{
				Body:     "Cruzado",
				ParentID: &foreign.ID,
			})
			Expect(err).To(MatchError(errors.ErrParentCommentMismatch))
		})
	})

	Describe("ListCommentTree", func() {
		It("monta a thread com respostas aninhadas em ordem de criação", func() {
			root1, err := env.comments.CreateComment(ctx, "user-2", feedback.ID, services.CreateCommentInput{Body: "Primeiro"})
			Expect(err).NotTo(HaveOccurred())
			reply1, err := env.comments.CreateComment(ctx, "user-3", feedback.ID, services.CreateCommentInput{Body: "Resposta", ParentID: &root1.ID})
			Expect(err).NotTo(HaveOccurred())
			_, err = env.comments.CreateComment(ctx, "user-1", feedback.ID, services.CreateCommentInput{Body: "Neta", ParentID: &reply1.ID})
			Expect(err).NotTo(HaveOccurred())
			root2, err := env.comments.CreateComment(ctx, "user-2", feedback.ID, services.CreateCommentInput{Body: "Segundo"})
			Expect(err).NotTo(HaveOccurred())

			tree, err := env.comments.ListCommentTree(ctx, feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tree).To(HaveLen(2))
			Expect(tree[0].ID).To(Equal(root1.ID))
			Expect(tree[1].ID).To(Equal(root2.ID))
			Expect(tree[0].ReplyCount).To(Equal(1))
			Expect(tree[0].Descendants()).To(Equal(2))
			Expect(tree[0].Replies[0].Replies[0].Body).To(Equal("Neta"))
		})

		It("comentário deletado some da thread e seus filhos viram raízes", func() {
			root, err := env.comments.CreateComment(ctx, "user-2", feedback.ID, services.CreateCommentInput{Body: "Primeiro"})
			Expect(err).NotTo(HaveOccurred())
			reply, err := env.comments.CreateComment(ctx, "user-3", feedback.ID, services.CreateCommentInput{Body: "Resposta", ParentID: &root.ID})
			Expect(err).NotTo(HaveOccurred())

			_, err = env.comments.DeleteComment(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())

			tree, err := env.comments.ListCommentTree(ctx, feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tree).To(HaveLen(1))
			Expect(tree[0].ID).To(Equal(reply.ID))
			Expect(tree[0].Replies).To(BeEmpty())
		})
	})

	Describe("DeleteComment", func() {
		It("retorna o comentário marcado como deletado", func() {
			comment, err := env.comments.CreateComment(ctx, "user-2", feedback.ID, services.CreateCommentInput{Body: "Apoiado"})
			Expect(err).NotTo(HaveOccurred())

			deleted, err := env.comments.DeleteComment(ctx, comment.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.IsDeleted()).To(BeTrue())

			flat, err := env.comments.ListCommentsByFeedback(ctx, feedback.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(flat).To(BeEmpty())
		})

		It("retorna not found para ID desconhecido", func() {
			_, err := env.comments.DeleteComment(ctx, "nope")
			Expect(err).To(MatchError(errors.ErrCommentNotFound))
		})

		It("deletar duas vezes retorna not found na segunda", func() {
			comment, err := env.comments.CreateComment(ctx, "user-2", feedback.ID, services.CreateCommentInput{Body: "Apoiado"})
			Expect(err).NotTo(HaveOccurred())

			_, err = env.comments.DeleteComment(ctx, comment.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = env.comments.DeleteComment(ctx, comment.ID)
			Expect(err).To(MatchError(errors.ErrCommentNotFound))
		})
	})
})
