package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

func TestMarkRead_KeepsFirstReadAt(t *testing.T) {
	n := &models.Notification{}
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, MarkRead(n, first))
	require.NotNil(t, n.ReadAt)
	assert.True(t, n.IsRead)

	assert.False(t, MarkRead(n, first.Add(time.Hour)))
	assert.Equal(t, first, *n.ReadAt)
}

func TestRoleScope_Valid(t *testing.T) {
	assert.True(t, ScopeAll.Valid())
	assert.False(t, RoleScope("residents").Valid())
}

func TestRestrict(t *testing.T) {
	admin := session.Actor{UserID: "a1", Role: session.RoleAdmin, PGID: "pg1"}
	support := session.Actor{UserID: "s1", Role: session.RoleSupport, PGID: "pg1"}
	root := session.Actor{UserID: "r1", Role: session.RoleSuperadmin}

	f, err := Restrict(admin, Filter{UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, Filter{PGID: "pg1", UserID: "u2"}, f)

	_, err = Restrict(admin, Filter{PGID: "pg2"})
	assert.True(t, httperr.IsAccessDenied(err))

	_, err = Restrict(session.Actor{UserID: "a2", Role: session.RoleAdmin}, Filter{})
	assert.True(t, httperr.IsAccessDenied(err), "admin without a PG sees nothing")

	f, err = Restrict(support, Filter{UnreadOnly: true})
	require.NoError(t, err)
	assert.Equal(t, Filter{PGID: "pg1", UserID: "s1", UnreadOnly: true}, f)

	_, err = Restrict(support, Filter{UserID: "a1"})
	assert.True(t, httperr.IsAccessDenied(err))

	f, err = Restrict(root, Filter{PGID: "pg9"})
	require.NoError(t, err)
	assert.Equal(t, "pg9", f.PGID)
}
