package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/dto"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

func TestNotificationHandler_SendValidation(t *testing.T) {
	s := newTestServer(t)
	s.actor = branchAdmin

	code, env := s.do(t, http.MethodPost, "/api/notifications", `{"pgId":"pg1","type":"rent_due","message":"pay"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation_failed", env.ErrorCode)
	assert.Contains(t, env.Message, "title")

	code, _ = s.do(t, http.MethodPost, "/api/notifications", `{"pgId":"pg1","type":"t","title":"x","message":"m","roleScope":"everyone"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestNotificationHandler_Lifecycle(t *testing.T) {
	s := newTestServer(t)
	s.actor = branchAdmin

	code, env := s.do(t, http.MethodPost, "/api/notifications",
		`{"pgId":"pg1","branchId":"b1","userId":"admin-1","type":"rent_due","title":"Rent due","message":"Room 4 is late","data":{"room":"4"}}`)
	require.Equal(t, http.StatusCreated, code)
	created := decode[models.Notification](t, env.Data)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "admin", created.RoleScope)

	_, _ = s.do(t, http.MethodPost, "/api/notifications", `{"pgId":"pg1","type":"info","title":"Hello","message":"All staff"}`)
	code, _ = s.do(t, http.MethodPost, "/api/notifications", `{"pgId":"pg2","type":"info","title":"Other PG","message":"x"}`)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = s.do(t, http.MethodGet, "/api/notifications", "")
	require.Equal(t, http.StatusOK, code)
	list := decode[dto.NotificationList](t, env.Data)
	assert.Equal(t, int64(2), list.Pagination.Total, "defaults to the caller's PG")

	code, env = s.do(t, http.MethodGet, "/api/notifications/unread-count", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(2), decode[dto.UnreadCount](t, env.Data).Unread)

	code, env = s.do(t, http.MethodPut, "/api/notifications/"+created.ID+"/read", "")
	require.Equal(t, http.StatusOK, code)
	read := decode[models.Notification](t, env.Data)
	assert.True(t, read.IsRead)
	require.NotNil(t, read.ReadAt)

	code, env = s.do(t, http.MethodPut, "/api/notifications/"+created.ID+"/read", "")
	require.Equal(t, http.StatusOK, code)
	again := decode[models.Notification](t, env.Data)
	assert.True(t, read.ReadAt.Equal(*again.ReadAt), "readAt is kept")

	code, env = s.do(t, http.MethodPut, "/api/notifications/missing/read", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "notification_not_found", env.ErrorCode)

	code, env = s.do(t, http.MethodPut, "/api/notifications/mark-all/read", `{"pgId":"pg1"}`)
	require.Equal(t, http.StatusOK, code)
	res := decode[dto.MarkAllReadResult](t, env.Data)
	assert.True(t, res.Success)
	assert.Equal(t, int64(1), res.Updated)

	code, env = s.do(t, http.MethodPut, "/api/notifications/mark-all/read", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(0), decode[dto.MarkAllReadResult](t, env.Data).Updated)
}

func TestNotificationHandler_MarkAllReadNeedsPG(t *testing.T) {
	s := newTestServer(t)
	s.actor = session.Actor{UserID: "root", Role: session.RoleSuperadmin}

	code, env := s.do(t, http.MethodPut, "/api/notifications/mark-all/read", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "pgId")
}

func TestNotificationHandler_StaysInsideCallerScope(t *testing.T) {
	s := newTestServer(t)
	s.actor = session.Actor{UserID: "root", Role: session.RoleSuperadmin}

	code, _ := s.do(t, http.MethodPost, "/api/notifications", `{"pgId":"pg2","userId":"s1","type":"info","title":"Other PG","message":"x"}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = s.do(t, http.MethodPost, "/api/notifications", `{"pgId":"pg1","userId":"s2","type":"info","title":"Colleague","message":"x"}`)
	require.Equal(t, http.StatusCreated, code)

	s.actor = branchAdmin
	for _, path := range []string{
		"/api/notifications?pgId=pg2",
		"/api/notifications/unread-count?pgId=pg2",
	} {
		code, env := s.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusForbidden, code, path)
		assert.Equal(t, "access_denied", env.ErrorCode, path)
	}

	code, _ = s.do(t, http.MethodPut, "/api/notifications/mark-all/read", `{"pgId":"pg2"}`)
	assert.Equal(t, http.StatusForbidden, code)

	s.actor = session.Actor{UserID: "s1", Role: session.RoleSupport, PGID: "pg1"}
	code, env := s.do(t, http.MethodGet, "/api/notifications", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(0), decode[dto.NotificationList](t, env.Data).Pagination.Total, "only own notifications of own PG")

	code, _ = s.do(t, http.MethodPut, "/api/notifications/mark-all/read", `{"userId":"s2"}`)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = s.do(t, http.MethodGet, "/api/notifications/unread-count", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(0), decode[dto.UnreadCount](t, env.Data).Unread)
}
