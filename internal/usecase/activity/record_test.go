package activity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

func TestRecorder_AppliesDefaultsAndServerTimestamp(t *testing.T) {
	f := newFixture(t)

	in := event(domain.TypeResidentCheckin, domain.CategoryManagement, "a1", "admin", "b1")
	in.Metadata = map[string]any{"room": "101"}

	a, err := f.rec.Record(context.Background(), in)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "normal", a.Priority)
	assert.Equal(t, "success", a.Status)
	assert.True(t, a.Timestamp.Equal(now))

	var stored models.Activity
	require.NoError(t, f.db.First(&stored, "id = ?", a.ID).Error)
	assert.Equal(t, "101", stored.Metadata["room"])
	assert.True(t, stored.Timestamp.Equal(now))
}

func TestRecorder_RejectsInvalidInputWithoutWriting(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		in   domain.Input
	}{
		{"unknown type", event("resident_teleport", domain.CategoryManagement, "a1", "admin", "")},
		{"missing category", event(domain.TypeUserLogin, "", "a1", "admin", "")},
		{"missing role", event(domain.TypeUserLogin, domain.CategoryAuthentication, "a1", "", "")},
		{"missing user", event(domain.TypeUserLogin, domain.CategoryAuthentication, "", "admin", "")},
		{"entity id without type", func() domain.Input {
			in := event(domain.TypeRoomUpdate, domain.CategoryManagement, "a1", "admin", "")
			in.EntityID = "r1"
			return in
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.rec.Record(context.Background(), tt.in)
			assert.True(t, httperr.IsValidation(err), "got %v", err)
		})
	}

	var count int64
	require.NoError(t, f.db.Model(&models.Activity{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecorder_RecordsAreAppendOnly(t *testing.T) {
	f := newFixture(t)

	first := f.recordAt(t, now.Add(-time.Minute), event(domain.TypeUserLogin, domain.CategoryAuthentication, "a1", "admin", "b1"))
	f.recordAt(t, now, event(domain.TypeUserLogout, domain.CategoryAuthentication, "a1", "admin", "b1"))

	var stored models.Activity
	require.NoError(t, f.db.First(&stored, "id = ?", first.ID).Error)
	assert.Equal(t, "user_login", stored.Type)
	assert.True(t, stored.Timestamp.Equal(now.Add(-time.Minute)))
}
