package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hometrack/hometrack-api/internal/models"
	"github.com/hometrack/hometrack-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
	now   time.Time
}

func (s *GormRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewGormStore(testutil.NewDB(s.T()))
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *GormRepositoryTestSuite) food(id, owner, name string, quantity, minimum int, expiry time.Time, updated time.Time) *models.FoodItem {
	item := &models.FoodItem{
		Base:  models.Base{ID: id, CreatedAt: updated, UpdatedAt: updated},
		Owned: models.Owned{UserID: owner},
		StockFields: models.StockFields{
			ItemName:     name,
			Category:     "Dairy",
			Quantity:     quantity,
			MinimumLevel: minimum,
			ExpiryDate:   &expiry,
		},
		Unit: models.FoodUnitLiter,
	}
	s.Require().NoError(s.store.Food.Create(s.ctx, item))
	return item
}

func (s *GormRepositoryTestSuite) TestFirst_ScopesByOwner() {
	s.food("f1", "alice", "Milk", 2, 1, s.now, s.now)

	got, err := s.store.Food.First(s.ctx, Query{ID: "f1", OwnerID: "alice"})
	s.Require().NoError(err)
	s.Equal("Milk", got.ItemName)
	s.Equal("alice", got.UserID)

	_, err = s.store.Food.First(s.ctx, Query{ID: "f1", OwnerID: "bob"})
	s.ErrorIs(err, ErrNotFound)

	_, err = s.store.Food.First(s.ctx, Query{ID: "missing"})
	s.ErrorIs(err, ErrNotFound)
}

func (s *GormRepositoryTestSuite) TestFind_OrdersByUpdatedDesc() {
	s.food("f1", "alice", "Milk", 2, 1, s.now, s.now.Add(-2*time.Hour))
	s.food("f2", "alice", "Eggs", 2, 1, s.now, s.now)
	s.food("f3", "alice", "Bread", 2, 1, s.now, s.now.Add(-time.Hour))
	s.food("f4", "bob", "Rice", 2, 1, s.now, s.now)

	docs, err := s.store.Food.Find(s.ctx, Query{OwnerID: "alice", SortDesc: "updated_at"})
	s.Require().NoError(err)
	s.Require().Len(docs, 3)
	s.Equal([]string{"f2", "f3", "f1"}, []string{docs[0].ID, docs[1].ID, docs[2].ID})

	page, err := s.store.Food.Find(s.ctx, Query{OwnerID: "alice", SortDesc: "updated_at", Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("f3", page[0].ID)
}

func (s *GormRepositoryTestSuite) TestFind_EmptyIsNotNil() {
	docs, err := s.store.Tasks.Find(s.ctx, Query{OwnerID: "nobody"})
	s.Require().NoError(err)
	s.NotNil(docs)
	s.Empty(docs)
}

func (s *GormRepositoryTestSuite) TestFind_Conditions() {
	s.food("low", "alice", "Milk", 1, 2, s.now.Add(24*time.Hour), s.now)
	s.food("equal", "alice", "Eggs", 2, 2, s.now.Add(10*24*time.Hour), s.now)
	s.food("plenty", "alice", "Rice", 9, 2, s.now.Add(-24*time.Hour), s.now)

	low, err := s.store.Food.Find(s.ctx, Query{OwnerID: "alice"}.Where(LTEField("quantity", "minimum_level")))
	s.Require().NoError(err)
	s.ElementsMatch([]string{"low", "equal"}, ids(low))

	soon, err := s.store.Food.Find(s.ctx, Query{OwnerID: "alice"}.Where(LTE("expiry_date", s.now.Add(72*time.Hour))))
	s.Require().NoError(err)
	s.ElementsMatch([]string{"low", "plenty"}, ids(soon))

	named, err := s.store.Food.Find(s.ctx, Query{OwnerID: "alice"}.Where(Eq("item_name", "Eggs")))
	s.Require().NoError(err)
	s.Equal([]string{"equal"}, ids(named))
}

func (s *GormRepositoryTestSuite) TestFirst_DuplicateKeyLookup() {
	item := s.food("f1", "alice", "Milk", 2, 1, s.now, s.now)

	_, err := s.store.Food.First(s.ctx, Query{OwnerID: "alice"}.Where(EqualsAll(item.DuplicateKey())...))
	s.NoError(err)

	other := *item
	other.StorageLocation = "Pantry"
	_, err = s.store.Food.First(s.ctx, Query{OwnerID: "alice"}.Where(EqualsAll(other.DuplicateKey())...))
	s.ErrorIs(err, ErrNotFound)
}

func (s *GormRepositoryTestSuite) TestFirst_NilMatchesNull() {
	task := &models.Task{
		Base:     models.Base{ID: "t1", CreatedAt: s.now, UpdatedAt: s.now},
		Owned:    models.Owned{UserID: "alice"},
		Category: models.TaskCategoryCleaning,
		Title:    "Mop",
		Priority: models.PriorityLow,
		Status:   models.TaskStatusNotStarted,
	}
	s.Require().NoError(s.store.Tasks.Create(s.ctx, task))

	got, err := s.store.Tasks.First(s.ctx, Query{OwnerID: "alice"}.Where(EqualsAll(task.DuplicateKey())...))
	s.Require().NoError(err)
	s.Equal("t1", got.ID)
	s.Nil(got.DueDate)
}

func (s *GormRepositoryTestSuite) TestCreate_DuplicateEmail() {
	user := &models.User{Base: models.Base{ID: "u1", CreatedAt: s.now, UpdatedAt: s.now}, FullName: "A", Email: "a@example.com", PasswordHash: "x"}
	s.Require().NoError(s.store.Users.Create(s.ctx, user))

	dup := &models.User{Base: models.Base{ID: "u2", CreatedAt: s.now, UpdatedAt: s.now}, FullName: "B", Email: "a@example.com", PasswordHash: "y"}
	s.ErrorIs(s.store.Users.Create(s.ctx, dup), ErrDuplicateKey)
}

func (s *GormRepositoryTestSuite) TestReplace() {
	item := s.food("f1", "alice", "Milk", 2, 1, s.now, s.now)

	item.Quantity = 0
	item.StorageLocation = ""
	item.UpdatedAt = s.now.Add(time.Hour)
	s.Require().NoError(s.store.Food.Replace(s.ctx, Query{ID: "f1", OwnerID: "alice"}, item))

	got, err := s.store.Food.First(s.ctx, Query{ID: "f1"})
	s.Require().NoError(err)
	s.Equal(0, got.Quantity, "zero values are written")
	s.True(got.UpdatedAt.Equal(s.now.Add(time.Hour)))

	s.ErrorIs(s.store.Food.Replace(s.ctx, Query{ID: "f1", OwnerID: "bob"}, item), ErrNotFound)
}

func (s *GormRepositoryTestSuite) TestDelete() {
	s.food("f1", "alice", "Milk", 2, 1, s.now, s.now)

	s.ErrorIs(s.store.Food.Delete(s.ctx, Query{ID: "f1", OwnerID: "bob"}), ErrNotFound)
	s.Require().NoError(s.store.Food.Delete(s.ctx, Query{ID: "f1", OwnerID: "alice"}))
	s.ErrorIs(s.store.Food.Delete(s.ctx, Query{ID: "f1", OwnerID: "alice"}), ErrNotFound)
}

func TestGormRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}

func ids[T any, P interface {
	*T
	models.Document
}](docs []T) []string {
	out := make([]string, 0, len(docs))
	for i := range docs {
		out = append(out, P(&docs[i]).Meta().ID)
	}
	return out
}

func newPostgresMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormRepository_PostgresErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("query failure passes through", func(t *testing.T) {
		db, mock := newPostgresMock(t)
		repo := NewGormRepository[models.Expense](db)

		mock.ExpectQuery(`SELECT \* FROM "expenses"`).WillReturnError(errors.New("connection reset by peer"))

		_, err := repo.Find(ctx, Query{OwnerID: "alice"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "connection reset")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation becomes ErrDuplicateKey", func(t *testing.T) {
		db, mock := newPostgresMock(t)
		repo := NewGormRepository[models.User](db)

		mock.ExpectExec(`UPDATE "users"`).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`))

		err := repo.Replace(ctx, Query{ID: "u1"}, &models.User{Base: models.Base{ID: "u1"}, Email: "taken@example.com"})
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows deleted becomes ErrNotFound", func(t *testing.T) {
		db, mock := newPostgresMock(t)
		repo := NewGormRepository[models.Task](db)

		mock.ExpectExec(`DELETE FROM "tasks"`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, Query{ID: "t1", OwnerID: "alice"})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
