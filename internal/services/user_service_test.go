package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
	"github.com/rafabene/feedbackboard-backend/internal/domain/errors"
)

var _ = Describe("UserService", func() {
	var (
		env *testEnv
		ctx context.Context
	)

	BeforeEach(func() {
		env = newTestEnv()
		ctx = context.Background()
	})

	Describe("GetUser", func() {
		It("retorna o usuário salvo", func() {
			Expect(env.userRepo.Save(ctx, &entities.User{
				ID:   "user-1",
				Name: "Maria Silva",
				Role: entities.RoleUser,
			})).To(Succeed())

			user, err := env.users.GetUser(ctx, "user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("Maria Silva"))
			Expect(user.IsAdmin()).To(BeFalse())
		})

		It("retorna not found para ID desconhecido", func() {
			_, err := env.users.GetUser(ctx, "nope")
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("salvar de novo atualiza sem duplicar", func() {
			Expect(env.userRepo.Save(ctx, &entities.User{
				ID:   "user-1",
				Name: "Maria Silva",
				Role: entities.RoleUser,
			})).To(Succeed())
			Expect(env.userRepo.Save(ctx, &entities.User{
				ID:   "user-1",
				Name: "Maria S. Souza",
				Role: entities.RoleAdmin,
			})).To(Succeed())

			user, err := env.users.GetUser(ctx, "user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("Maria S. Souza"))
			Expect(user.IsAdmin()).To(BeTrue())
		})
	})
})
