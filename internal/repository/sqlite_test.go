package repository_test

import (
	"context"
	"time"

	"minitwit/internal/db/dbtest"
	"minitwit/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SimulatorRepository on sqlite", func() {
	var (
		repo  *repository.SimulatorRepository
		ctx   context.Context
		users []repository.User
	)

	BeforeEach(func() {
		ctx = context.Background()

		store, err := dbtest.NewSQLite()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(store.Close)

		repo = repository.NewSimulatorRepository(store)
		Expect(repo.Migrate()).To(Succeed())

		users = []repository.User{
			{Username: "TestUser1", Email: "TestUser1@test.com", PwHash: "h1"},
			{Username: "TestUser2", Email: "TestUser2@test.com", PwHash: "h2"},
			{Username: "TestUser3", Email: "TestUser3@test.com", PwHash: "h3"},
		}
		Expect(repo.Seed(ctx, users)).To(Succeed())
	})

	It("should assign the next id to a new user", func() {
		user, err := repo.CreateUser(ctx, repository.User{Username: "testUser", Email: "testuser@email.com", PwHash: "h"})
		Expect(err).NotTo(HaveOccurred())
		Expect(user.ID).To(Equal(uint(4)))

		found, err := repo.GetUserByUsername(ctx, "testUser")
		Expect(err).NotTo(HaveOccurred())
		Expect(found.ID).To(Equal(uint(4)))
	})

	It("should reject a duplicate username through the unique index", func() {
		_, err := repo.CreateUser(ctx, repository.User{Username: "TestUser1", Email: "x@y", PwHash: "h"})
		Expect(err).To(MatchError(repository.ErrUsernameTaken))
	})

	It("should report unknown users", func() {
		_, err := repo.GetUserByUsername(ctx, "nobody")
		Expect(err).To(MatchError(repository.ErrUserNotFound))
	})

	Describe("follow edges", func() {
		It("should not accumulate duplicate follows", func() {
			Expect(repo.Follow(ctx, 1, 2)).To(Succeed())
			Expect(repo.Follow(ctx, 1, 2)).To(MatchError(repository.ErrAlreadyFollowing))

			following, err := repo.IsFollowing(ctx, 1, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(following).To(BeTrue())
		})

		It("should remove the edge on unfollow", func() {
			Expect(repo.Follow(ctx, 1, 2)).To(Succeed())
			Expect(repo.Unfollow(ctx, 1, 2)).To(Succeed())

			following, err := repo.IsFollowing(ctx, 1, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(following).To(BeFalse())
		})

		It("should refuse to unfollow a user that is not followed", func() {
			Expect(repo.Unfollow(ctx, 1, 3)).To(MatchError(repository.ErrNotFollowing))
		})

		It("should list followed usernames", func() {
			Expect(repo.Follow(ctx, 1, 3)).To(Succeed())
			Expect(repo.Follow(ctx, 1, 2)).To(Succeed())

			follows, err := repo.GetFollows(ctx, 1, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(follows).To(Equal([]string{"TestUser2", "TestUser3"}))

			follows, err = repo.GetFollows(ctx, 1, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(follows).To(Equal([]string{"TestUser2"}))
		})
	})

	Describe("messages", func() {
		BeforeEach(func() {
			now := time.Now().Unix()
			for i, text := range []string{"first", "second", "third"} {
				_, err := repo.CreateMessage(ctx, repository.Message{
					AuthorID: uint(i%2 + 1),
					Text:     text,
					PubDate:  now + int64(i),
				})
				Expect(err).NotTo(HaveOccurred())
			}
			_, err := repo.CreateMessage(ctx, repository.Message{AuthorID: 1, Text: "hidden", PubDate: now + 10, Flagged: true})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should count messages per author", func() {
			count, err := repo.CountMessages(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(3)))
		})

		It("should return unflagged messages newest first with authors", func() {
			messages, err := repo.GetMessages(ctx, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(3))
			Expect(messages[0].Text).To(Equal("third"))
			Expect(messages[0].Author.Username).To(Equal("TestUser1"))
			Expect(messages[2].Text).To(Equal("first"))
		})

		It("should filter by author", func() {
			messages, err := repo.GetUserMessages(ctx, 2, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(1))
			Expect(messages[0].Text).To(Equal("second"))
			Expect(messages[0].Author.Username).To(Equal("TestUser2"))
		})

		It("should honour the limit", func() {
			messages, err := repo.GetMessages(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(2))
		})
	})

	Describe("latest", func() {
		It("should start without a value", func() {
			latest, err := repo.GetLatest(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).To(Equal(repository.NoLatest))
		})

		It("should keep the last value set", func() {
			Expect(repo.SetLatest(ctx, 1)).To(Succeed())
			Expect(repo.SetLatest(ctx, 5)).To(Succeed())

			latest, err := repo.GetLatest(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).To(Equal(5))
		})
	})
})
