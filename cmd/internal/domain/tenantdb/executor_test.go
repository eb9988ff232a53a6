package tenantdb

import (
	"context"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"regexp"
	"testing"
)

type widget struct {
	ID       int64 `gorm:"primaryKey"`
	TenantID int64 `gorm:"not null;index"`
	Name     string
}

func (w *widget) SetTenant(id int64) { w.TenantID = id }

type ExecutorSuite struct {
	suite.Suite
	db   *gorm.DB
	exec *Executor
	ctx  context.Context
}

func TestExecutorSuite(t *testing.T) {
	suite.Run(t, new(ExecutorSuite))
}

func (s *ExecutorSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(db.AutoMigrate(&widget{}))
	s.db = db
	s.exec = New(db)
	s.ctx = context.Background()
}

func (s *ExecutorSuite) insert(tenantID int64, name string) *widget {
	w := &widget{Name: name}
	s.Require().NoError(s.exec.For(tenantID).Insert(s.ctx, w))
	return w
}

func (s *ExecutorSuite) TestMissingTenant() {
	for _, tenantID := range []int64{0, -1} {
		scope := s.exec.For(tenantID)

		var rows []*widget
		s.ErrorIs(scope.Select(s.ctx, &rows, "SELECT * FROM widgets WHERE tenant_id = ?"), ErrNoTenant)

		_, err := scope.First(s.ctx, &widget{}, "SELECT * FROM widgets WHERE tenant_id = ?")
		s.ErrorIs(err, ErrNoTenant)

		_, err = scope.Exec(s.ctx, "DELETE FROM widgets WHERE tenant_id = ?")
		s.ErrorIs(err, ErrNoTenant)

		s.ErrorIs(scope.Insert(s.ctx, &widget{Name: "x"}), ErrNoTenant)

		_, err = scope.Update(s.ctx, &widget{}, 1, map[string]any{"name": "y"})
		s.ErrorIs(err, ErrNoTenant)
	}

	var count int64
	s.Require().NoError(s.db.Model(&widget{}).Count(&count).Error)
	s.Zero(count)
}

func (s *ExecutorSuite) TestInsertStampsTenant() {
	w := s.insert(7, "a")

	s.NotZero(w.ID)
	s.Equal(int64(7), w.TenantID)
}

func (s *ExecutorSuite) TestTenantIsolation() {
	mine := s.insert(7, "mine")
	theirs := s.insert(9, "theirs")

	s.Run("select only sees own rows", func() {
		var rows []*widget
		err := s.exec.For(7).Select(s.ctx, &rows, "SELECT * FROM widgets WHERE tenant_id = ? ORDER BY id")
		s.Require().NoError(err)
		s.Require().Len(rows, 1)
		s.Equal(mine.ID, rows[0].ID)
	})

	s.Run("first misses rows of other tenants", func() {
		var row widget
		found, err := s.exec.For(7).First(s.ctx, &row, "SELECT * FROM widgets WHERE tenant_id = ? AND id = ?", theirs.ID)
		s.Require().NoError(err)
		s.False(found)
	})

	s.Run("update does not touch rows of other tenants", func() {
		n, err := s.exec.For(7).Update(s.ctx, &widget{}, theirs.ID, map[string]any{"name": "hijacked"})
		s.Require().NoError(err)
		s.Zero(n)

		var row widget
		s.Require().NoError(s.db.First(&row, theirs.ID).Error)
		s.Equal("theirs", row.Name)
	})

	s.Run("exec does not touch rows of other tenants", func() {
		n, err := s.exec.For(7).Exec(s.ctx, "DELETE FROM widgets WHERE tenant_id = ? AND id = ?", theirs.ID)
		s.Require().NoError(err)
		s.Zero(n)

		n, err = s.exec.For(9).Exec(s.ctx, "DELETE FROM widgets WHERE tenant_id = ? AND id = ?", theirs.ID)
		s.Require().NoError(err)
		s.Equal(int64(1), n)
	})
}

func (s *ExecutorSuite) TestInTx() {
	boom := errors.New("boom")

	s.Run("rolls back on error", func() {
		err := s.exec.InTx(s.ctx, func(ctx context.Context) error {
			s.Require().NoError(s.exec.For(7).Insert(ctx, &widget{Name: "rolled back"}))
			return boom
		})
		s.ErrorIs(err, boom)

		var count int64
		s.Require().NoError(s.db.Model(&widget{}).Where("name = ?", "rolled back").Count(&count).Error)
		s.Zero(count)
	})

	s.Run("rolls back on panic", func() {
		s.Panics(func() {
			_ = s.exec.InTx(s.ctx, func(ctx context.Context) error {
				s.Require().NoError(s.exec.For(7).Insert(ctx, &widget{Name: "panicked"}))
				panic("boom")
			})
		})

		var count int64
		s.Require().NoError(s.db.Model(&widget{}).Where("name = ?", "panicked").Count(&count).Error)
		s.Zero(count)
	})

	s.Run("nested calls join the outer transaction", func() {
		err := s.exec.InTx(s.ctx, func(ctx context.Context) error {
			inner := s.exec.InTx(ctx, func(ctx context.Context) error {
				return s.exec.For(7).Insert(ctx, &widget{Name: "nested"})
			})
			s.Require().NoError(inner)
			return boom
		})
		s.ErrorIs(err, boom)

		var count int64
		s.Require().NoError(s.db.Model(&widget{}).Where("name = ?", "nested").Count(&count).Error)
		s.Zero(count)
	})

	s.Run("commits on success", func() {
		err := s.exec.InTx(s.ctx, func(ctx context.Context) error {
			return s.exec.For(7).Insert(ctx, &widget{Name: "kept"})
		})
		s.Require().NoError(err)

		var count int64
		s.Require().NoError(s.db.Model(&widget{}).Where("name = ?", "kept").Count(&count).Error)
		s.Equal(int64(1), count)
	})
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestScopeBindsTenantFirst(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM widgets WHERE tenant_id = ? AND id = ?")).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name"}).AddRow(3, 7, "a"))

	var row widget
	found, err := New(db).For(7).First(context.Background(), &row, "SELECT * FROM widgets WHERE tenant_id = ? AND id = ?", int64(3))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "a", row.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScopePropagatesDriverErrors(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("select", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT").WillReturnError(boom)

		var rows []*widget
		err := New(db).For(7).Select(context.Background(), &rows, "SELECT * FROM widgets WHERE tenant_id = ?")
		require.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("DELETE FROM widgets").
			WithArgs(int64(7), int64(1)).
			WillReturnError(boom)

		_, err := New(db).For(7).Exec(context.Background(), "DELETE FROM widgets WHERE tenant_id = ? AND id = ?", int64(1))
		require.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("transaction rollback", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM widgets").WillReturnError(boom)
		mock.ExpectRollback()

		exec := New(db)
		err := exec.InTx(context.Background(), func(ctx context.Context) error {
			_, err := exec.For(7).Exec(ctx, "DELETE FROM widgets WHERE tenant_id = ?")
			return err
		})
		require.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
