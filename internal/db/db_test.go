package db_test

import (
	"context"
	"database/sql"

	"minitwit/internal/db"
	"minitwit/internal/db/dbtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex"`
}

type Pair struct {
	Src  uint `gorm:"primaryKey;autoIncrement:false"`
	Dst  uint `gorm:"primaryKey;autoIncrement:false"`
	Note string
}

var _ = Describe("Database", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("postgres dialect", func() {
		var (
			mock   sqlmock.Sqlmock
			mockDb *sql.DB
			testDB *db.GormDB
		)

		BeforeEach(func() {
			var err error
			mockDb, mock, err = sqlmock.New()
			Expect(err).NotTo(HaveOccurred())

			dialector := postgres.New(postgres.Config{
				Conn:       mockDb,
				DriverName: "postgres",
			})

			gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
			Expect(err).NotTo(HaveOccurred())

			testDB = db.New(gormDB)
		})

		AfterEach(func() {
			mock.ExpectClose()
			Expect(mockDb.Close()).To(Succeed())
		})

		Describe("GetOneBy", func() {
			When("a record is found", func() {
				BeforeEach(func() {
					mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT .*`).
						WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
							AddRow(1, "Alice"))
				})

				It("should return the correct record", func() {
					var result Test
					err := testDB.GetOneBy(ctx, "username", "Alice", &result)
					Expect(err).NotTo(HaveOccurred())
					Expect(result.ID).To(Equal(uint(1)))
					Expect(result.Username).To(Equal("Alice"))
					Expect(mock.ExpectationsWereMet()).To(Succeed())
				})
			})

			When("no record is found", func() {
				BeforeEach(func() {
					mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT .*`).
						WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
				})

				It("should return ErrNotFound", func() {
					var result Test
					err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
					Expect(err).To(Equal(db.ErrNotFound))
					Expect(mock.ExpectationsWereMet()).To(Succeed())
				})
			})

			When("the query fails", func() {
				BeforeEach(func() {
					mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
						WillReturnError(sql.ErrConnDone)
				})

				It("should wrap the error", func() {
					var result Test
					err := testDB.GetOneBy(ctx, "username", "Alice", &result)
					Expect(err).To(MatchError(ContainSubstring(`getting record by "username"`)))
					Expect(err).To(MatchError(sql.ErrConnDone))
				})
			})
		})

		Describe("Create", func() {
			When("the insert succeeds", func() {
				BeforeEach(func() {
					mock.ExpectBegin()
					mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) RETURNING "id"$`).
						WithArgs("Alice").
						WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
					mock.ExpectCommit()
				})

				It("should fill in the generated id", func() {
					record := Test{Username: "Alice"}
					Expect(testDB.Create(ctx, &record)).To(Succeed())
					Expect(record.ID).To(Equal(uint(7)))
					Expect(mock.ExpectationsWereMet()).To(Succeed())
				})
			})

			When("a unique constraint is violated", func() {
				BeforeEach(func() {
					mock.ExpectBegin()
					mock.ExpectQuery(`^INSERT INTO "tests".*`).
						WillReturnError(&pgconn.PgError{Code: "23505"})
					mock.ExpectRollback()
				})

				It("should return ErrDuplicate", func() {
					err := testDB.Create(ctx, &Test{Username: "Alice"})
					Expect(err).To(MatchError(db.ErrDuplicate))
					Expect(mock.ExpectationsWereMet()).To(Succeed())
				})
			})
		})

		Describe("CreateIfAbsent", func() {
			It("should report a written row", func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) ON CONFLICT DO NOTHING RETURNING "id"$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()

				created, err := testDB.CreateIfAbsent(ctx, &Test{Username: "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})

			It("should report a skipped row", func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" .* ON CONFLICT DO NOTHING.*`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectCommit()

				created, err := testDB.CreateIfAbsent(ctx, &Test{Username: "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		Describe("DeleteWhere", func() {
			It("should return the number of deleted rows", func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests" WHERE .*username.* = \$1$`).
					WithArgs("Alice").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()

				n, err := testDB.DeleteWhere(ctx, &Test{}, map[string]any{"username": "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})

			It("should refuse to delete without conditions", func() {
				_, err := testDB.DeleteWhere(ctx, &Test{}, nil)
				Expect(err).To(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		Describe("FindAll", func() {
			It("should wrap query errors", func() {
				mock.ExpectQuery(`SELECT \* FROM "tests".*`).
					WillReturnError(sql.ErrConnDone)

				var results []Test
				err := testDB.FindAll(ctx, &results, db.FindOptions{Limit: 10})
				Expect(err).To(MatchError(ContainSubstring("finding records")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Context("sqlite", func() {
		var testDB *db.GormDB

		BeforeEach(func() {
			var err error
			testDB, err = dbtest.NewSQLite()
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(testDB.Close)

			Expect(testDB.MigrateModels(&Test{}, &Pair{})).To(Succeed())
		})

		Describe("Seed", func() {
			It("should only insert into an empty table", func() {
				Expect(testDB.Seed(ctx, &[]Test{{Username: "Alice"}, {Username: "Bob"}})).To(Succeed())
				Expect(testDB.Seed(ctx, &[]Test{{Username: "Carol"}})).To(Succeed())

				count, err := testDB.CountWhere(ctx, &Test{}, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(int64(2)))
			})

			It("should reject anything but a pointer to a slice", func() {
				Expect(testDB.Seed(ctx, []Test{{Username: "Alice"}})).To(MatchError(ContainSubstring("pointer to a slice")))
			})
		})

		Describe("Create", func() {
			It("should assign increasing ids", func() {
				first := Test{Username: "Alice"}
				second := Test{Username: "Bob"}
				Expect(testDB.Create(ctx, &first)).To(Succeed())
				Expect(testDB.Create(ctx, &second)).To(Succeed())
				Expect(second.ID).To(BeNumerically(">", first.ID))
			})

			It("should translate unique violations", func() {
				Expect(testDB.Create(ctx, &Test{Username: "Alice"})).To(Succeed())
				Expect(testDB.Create(ctx, &Test{Username: "Alice"})).To(MatchError(db.ErrDuplicate))
			})
		})

		Describe("CreateIfAbsent", func() {
			It("should not duplicate a composite key", func() {
				created, err := testDB.CreateIfAbsent(ctx, &Pair{Src: 1, Dst: 2})
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())

				created, err = testDB.CreateIfAbsent(ctx, &Pair{Src: 1, Dst: 2})
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())

				count, err := testDB.CountWhere(ctx, &Pair{}, map[string]any{"src": 1, "dst": 2})
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(int64(1)))
			})
		})

		Describe("Upsert", func() {
			It("should overwrite the conflicting row", func() {
				Expect(testDB.Upsert(ctx, &Pair{Src: 1, Dst: 1, Note: "first"})).To(Succeed())
				Expect(testDB.Upsert(ctx, &Pair{Src: 1, Dst: 1, Note: "second"})).To(Succeed())

				var pair Pair
				Expect(testDB.GetOneBy(ctx, "src", 1, &pair)).To(Succeed())
				Expect(pair.Note).To(Equal("second"))
			})
		})

		Describe("DeleteWhere", func() {
			It("should report zero rows when nothing matches", func() {
				n, err := testDB.DeleteWhere(ctx, &Pair{}, map[string]any{"src": 9, "dst": 9})
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(BeZero())
			})
		})

		Describe("FindAll", func() {
			BeforeEach(func() {
				for _, name := range []string{"Alice", "Bob", "Carol"} {
					Expect(testDB.Create(ctx, &Test{Username: name})).To(Succeed())
				}
			})

			It("should apply order and limit", func() {
				var results []Test
				err := testDB.FindAll(ctx, &results, db.FindOptions{Order: "id desc", Limit: 2})
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Username).To(Equal("Carol"))
				Expect(results[1].Username).To(Equal("Bob"))
			})

			It("should filter by conditions", func() {
				var results []Test
				err := testDB.FindAll(ctx, &results, db.FindOptions{Where: map[string]any{"username": "Bob"}})
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(1))
			})
		})
	})
})
