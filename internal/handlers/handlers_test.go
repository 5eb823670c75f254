package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/pg-backoffice/internal/middleware"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
	"github.com/BruksfildServices01/pg-backoffice/internal/testutil"
	ucActivity "github.com/BruksfildServices01/pg-backoffice/internal/usecase/activity"
	ucNotification "github.com/BruksfildServices01/pg-backoffice/internal/usecase/notification"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

type testServer struct {
	db     *gorm.DB
	router *gin.Engine
	actor  session.Actor
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	activityRepo := repository.NewActivityGormRepository(db)
	directory := repository.NewDirectoryGormRepository(db)

	recorder := ucActivity.NewRecorder(activityRepo)
	engine := ucActivity.NewEngine(ucActivity.NewQuery(activityRepo, directory), directory, false)
	purger := ucActivity.NewPurger(activityRepo, nil, recorder)

	activityHandler := NewActivityHandler(engine, purger, time.UTC)
	notificationHandler := NewNotificationHandler(
		ucNotification.NewService(repository.NewNotificationGormRepository(db), nil),
	)

	s := &testServer{db: db}

	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		if !s.actor.IsZero() {
			middleware.SetActor(c, s.actor)
		}
		c.Next()
	})

	api.GET("/activities", activityHandler.List)
	api.GET("/activities/stats", activityHandler.Stats)
	api.GET("/activities/users/:userId", activityHandler.ByUser)
	api.GET("/activities/branches/:branchId", activityHandler.ByBranch)
	api.GET("/activities/entities/:entityType/:entityId", activityHandler.Timeline)
	api.DELETE("/activities/purge", activityHandler.Purge)

	api.POST("/notifications", notificationHandler.Send)
	api.GET("/notifications", notificationHandler.List)
	api.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	api.PUT("/notifications/:id/read", notificationHandler.MarkRead)
	api.PUT("/notifications/mark-all/read", notificationHandler.MarkAllRead)

	s.router = r
	return s
}

func (s *testServer) do(t *testing.T, method, path, body string) (int, envelope) {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (s *testServer) seedActivity(t *testing.T, a models.Activity) models.Activity {
	t.Helper()
	if a.Title == "" {
		a.Title = a.Type
	}
	if a.Category == "" {
		a.Category = "management"
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC().Add(-time.Minute)
	}
	require.NoError(t, s.db.Create(&a).Error)
	return a
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}
