package activity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
	"github.com/BruksfildServices01/pg-backoffice/internal/testutil"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db    *gorm.DB
	repo  *repository.ActivityGormRepository
	dir   *repository.DirectoryGormRepository
	rec   *Recorder
	query *Query
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	repo := repository.NewActivityGormRepository(db)
	dir := repository.NewDirectoryGormRepository(db)

	rec := NewRecorder(repo)
	rec.now = func() time.Time { return now }

	q := NewQuery(repo, dir)
	q.now = func() time.Time { return now }

	return &fixture{db: db, repo: repo, dir: dir, rec: rec, query: q}
}

func (f *fixture) recordAt(t *testing.T, at time.Time, in domain.Input) *models.Activity {
	t.Helper()

	f.rec.now = func() time.Time { return at }
	defer func() { f.rec.now = func() time.Time { return now } }()

	a, err := f.rec.Record(context.Background(), in)
	require.NoError(t, err)
	return a
}

func event(typ domain.Type, category domain.Category, userID, role, branchID string) domain.Input {
	return domain.Input{
		Type:     typ,
		Title:    string(typ),
		UserID:   userID,
		UserRole: role,
		BranchID: branchID,
		Category: category,
	}
}
