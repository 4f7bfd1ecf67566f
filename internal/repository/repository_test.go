package repository_test

import (
	"context"
	"errors"

	"minitwit/internal/db"
	"minitwit/internal/repository"
	"minitwit/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SimulatorRepository", func() {
	var (
		repo        *repository.SimulatorRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewSimulatorRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate every table", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(tables).To(HaveLen(4))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Message{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Follower{}))
				Expect(tables[3]).To(BeAssignableToTypeOf(&repository.Latest{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("Seed", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Seed(ctx, []repository.User{{Username: "TestUser1"}})
		})

		When("seeding succeeds", func() {
			It("should pass the users to storage", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.SeedCallCount()).To(Equal(1))
				_, records := fakeStorage.SeedArgsForCall(0)
				Expect(records).To(Equal(&[]repository.User{{Username: "TestUser1"}}))
			})
		})

		When("seeding fails", func() {
			BeforeEach(func() {
				fakeStorage.SeedReturns(errors.New("seed error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("seed database: seed error"))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user     repository.User
			err      error
			username string
		)

		BeforeEach(func() {
			username = "TestUser1"
		})

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, username)
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					user := dest.(*repository.User)
					*user = repository.User{ID: 1, Username: username}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(1)))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal(username))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, repository.User{Username: "testUser", Email: "testuser@email.com", PwHash: "hash"})
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CreateStub = func(ctx context.Context, record any) error {
					record.(*repository.User).ID = 4
					return nil
				}
			})

			It("should return the stored user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(4)))
				Expect(user.Username).To(Equal("testUser"))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicate)
			})

			It("should return username taken error", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError("create user: fake error"))
			})
		})
	})

	Describe("Follow", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Follow(ctx, 1, 2)
		})

		When("the edge is new", func() {
			BeforeEach(func() {
				fakeStorage.CreateIfAbsentReturns(true, nil)
			})

			It("should insert the edge", func() {
				Expect(err).NotTo(HaveOccurred())
				_, record := fakeStorage.CreateIfAbsentArgsForCall(0)
				Expect(record).To(Equal(&repository.Follower{WhoID: 1, WhomID: 2}))
			})
		})

		When("the edge already exists", func() {
			BeforeEach(func() {
				fakeStorage.CreateIfAbsentReturns(false, nil)
			})

			It("should report already following", func() {
				Expect(err).To(MatchError(repository.ErrAlreadyFollowing))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.CreateIfAbsentReturns(false, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Unfollow", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Unfollow(ctx, 1, 2)
		})

		When("the edge is deleted", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(1, nil)
			})

			It("should delete by both ids", func() {
				Expect(err).NotTo(HaveOccurred())
				_, model, conds := fakeStorage.DeleteWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Follower{}))
				Expect(conds).To(Equal(map[string]any{"who_id": uint(1), "whom_id": uint(2)}))
			})
		})

		When("no edge exists", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, nil)
			})

			It("should report not following", func() {
				Expect(err).To(MatchError(repository.ErrNotFollowing))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetFollows", func() {
		var (
			follows []string
			err     error
		)

		JustBeforeEach(func() {
			follows, err = repo.GetFollows(ctx, 1, 10)
		})

		When("the user follows others", func() {
			BeforeEach(func() {
				fakeStorage.FindAllStub = func(ctx context.Context, dest any, opts db.FindOptions) error {
					edges := dest.(*[]repository.Follower)
					*edges = []repository.Follower{
						{WhoID: 1, WhomID: 2, Whom: repository.User{Username: "TestUser2"}},
						{WhoID: 1, WhomID: 3, Whom: repository.User{Username: "TestUser3"}},
					}
					return nil
				}
			})

			It("should return the followed usernames", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(follows).To(Equal([]string{"TestUser2", "TestUser3"}))

				_, _, opts := fakeStorage.FindAllArgsForCall(0)
				Expect(opts.Where).To(Equal(map[string]any{"who_id": uint(1)}))
				Expect(opts.Limit).To(Equal(10))
				Expect(opts.Preload).To(ConsistOf("Whom"))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.FindAllReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetMessages", func() {
		var (
			messages []repository.Message
			err      error
		)

		JustBeforeEach(func() {
			messages, err = repo.GetMessages(ctx, 100)
		})

		When("the query succeeds", func() {
			BeforeEach(func() {
				fakeStorage.FindAllStub = func(ctx context.Context, dest any, opts db.FindOptions) error {
					msgs := dest.(*[]repository.Message)
					*msgs = []repository.Message{{Text: "hello"}}
					return nil
				}
			})

			It("should only ask for unflagged messages", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(messages).To(HaveLen(1))

				_, _, opts := fakeStorage.FindAllArgsForCall(0)
				Expect(opts.Where).To(Equal(map[string]any{"flagged": false}))
				Expect(opts.Order).To(Equal("pub_date desc, id desc"))
				Expect(opts.Preload).To(ConsistOf("Author"))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.FindAllReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetLatest", func() {
		var (
			latest int
			err    error
		)

		JustBeforeEach(func() {
			latest, err = repo.GetLatest(ctx)
		})

		When("a value was recorded", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					dest.(*repository.Latest).Value = 42
					return nil
				}
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(latest).To(Equal(42))
			})
		})

		When("nothing was recorded", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return NoLatest", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(latest).To(Equal(repository.NoLatest))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SetLatest", func() {
		It("should upsert the single latest row", func() {
			Expect(repo.SetLatest(ctx, 7)).To(Succeed())
			_, record := fakeStorage.UpsertArgsForCall(0)
			Expect(record).To(Equal(&repository.Latest{ID: 1, Value: 7}))
		})

		It("should wrap storage errors", func() {
			fakeStorage.UpsertReturns(fakeErr)
			Expect(repo.SetLatest(ctx, 7)).To(MatchError("set latest: fake error"))
		})
	})
})
