package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

type mockArchiver struct {
	mock.Mock
}

func (m *mockArchiver) Archive(ctx context.Context, key string, items []models.Activity) error {
	args := m.Called(ctx, key, items)
	return args.Error(0)
}

var superadmin = session.Actor{UserID: "sa1", Email: "root@pg.test", Role: session.RoleSuperadmin}

func seedAges(t *testing.T, f *fixture) {
	t.Helper()
	for _, age := range []time.Duration{40, 35, 31, 5} {
		f.recordAt(t, now.Add(-age*24*time.Hour), event(domain.TypeUserLogin, domain.CategoryAuthentication, "a1", "admin", "b1"))
	}
}

func TestPurger_ArchivesThenDeletesInBatches(t *testing.T) {
	f := newFixture(t)
	seedAges(t, f)

	arch := &mockArchiver{}
	arch.On("Archive", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]models.Activity")).Return(nil)

	p := NewPurger(f.repo, arch, f.rec)
	p.now = func() time.Time { return now }
	p.batchSize = 2

	res, err := p.Purge(context.Background(), superadmin, 30)
	require.NoError(t, err)

	assert.EqualValues(t, 3, res.Deleted)
	assert.Equal(t, 2, res.Batches)
	assert.Len(t, res.ArchiveKeys, 2)
	arch.AssertNumberOfCalls(t, "Archive", 2)

	var remaining []models.Activity
	require.NoError(t, f.db.Order("timestamp").Find(&remaining).Error)
	require.Len(t, remaining, 2)
	assert.Equal(t, "user_login", remaining[0].Type)
	assert.Equal(t, "activity_purge", remaining[1].Type)
	assert.Equal(t, "sa1", remaining[1].UserID)
}

func TestPurger_ArchiveFailureKeepsRecords(t *testing.T) {
	f := newFixture(t)
	seedAges(t, f)

	arch := &mockArchiver{}
	arch.On("Archive", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket missing"))

	p := NewPurger(f.repo, arch, f.rec)
	p.now = func() time.Time { return now }

	_, err := p.Purge(context.Background(), superadmin, 30)
	require.Error(t, err)

	var count int64
	require.NoError(t, f.db.Model(&models.Activity{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}

func TestPurger_Guards(t *testing.T) {
	f := newFixture(t)
	p := NewPurger(f.repo, nil, f.rec)

	_, err := p.Purge(context.Background(), session.Actor{UserID: "a1", Role: session.RoleAdmin}, 30)
	assert.True(t, httperr.IsAccessDenied(err))

	_, err = p.Purge(context.Background(), superadmin, 0)
	assert.True(t, httperr.IsValidation(err))
}

func TestPurger_WithoutArchiver(t *testing.T) {
	f := newFixture(t)
	seedAges(t, f)

	p := NewPurger(f.repo, nil, f.rec)
	p.now = func() time.Time { return now }

	res, err := p.Purge(context.Background(), superadmin, 30)
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Deleted)
	assert.Empty(t, res.ArchiveKeys)
}
