package postgres

import (
	"context"
	"testing"
	"time"

	"surplus/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"
)

// statementRecorder keeps the SQL of every statement gorm builds.
type statementRecorder struct {
	statements []string
}

func (r *statementRecorder) LogMode(logger.LogLevel) logger.Interface { return r }
func (r *statementRecorder) Info(context.Context, string, ...any)     {}
func (r *statementRecorder) Warn(context.Context, string, ...any)     {}
func (r *statementRecorder) Error(context.Context, string, ...any)    {}

func (r *statementRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func newDryRunDB(t *testing.T) (*gorm.DB, *statementRecorder) {
	t.Helper()

	recorder := &statementRecorder{}
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		Logger:                 recorder,
	})
	require.NoError(t, err)

	return db, recorder
}

func TestCartRepository_DecrementItem_EachStatementRechecksQuantity(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewCartRepository(db)
	itemID := uuid.New()

	// A dry run affects no rows, so the item ends up reported as missing after one pass.
	removed, err := repo.DecrementItem(context.Background(), itemID)

	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)
	assert.False(t, removed)

	require.Len(t, recorder.statements, 3)

	update := recorder.statements[0]
	assert.Contains(t, update, "UPDATE")
	assert.Contains(t, update, "quantity > 1")
	assert.Contains(t, update, itemID.String())

	deleteStmt := recorder.statements[1]
	assert.Contains(t, deleteStmt, "DELETE")
	assert.Contains(t, deleteStmt, "quantity = 1")
	assert.Contains(t, deleteStmt, itemID.String())

	assert.Contains(t, recorder.statements[2], "count(*)")
}
