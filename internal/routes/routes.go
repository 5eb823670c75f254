package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pg-backoffice/internal/audit"
	"github.com/BruksfildServices01/pg-backoffice/internal/config"
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/handlers"
	"github.com/BruksfildServices01/pg-backoffice/internal/infra/archive"
	"github.com/BruksfildServices01/pg-backoffice/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/pg-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/pg-backoffice/internal/middleware"
	"github.com/BruksfildServices01/pg-backoffice/internal/timezone"
	ucActivity "github.com/BruksfildServices01/pg-backoffice/internal/usecase/activity"
	ucNotification "github.com/BruksfildServices01/pg-backoffice/internal/usecase/notification"
)

// RegisterRoutes wires the service onto r. The returned function drains the
// activity dispatcher and closes the cache connection; call it after the
// HTTP server stopped.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) func() {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	// ======================================================
	// METRICS
	// ======================================================
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	activityRepo := infraRepo.NewActivityGormRepository(db)
	notificationRepo := infraRepo.NewNotificationGormRepository(db)

	var directory activity.Directory = infraRepo.NewDirectoryGormRepository(db)

	closers := []func(){}

	if cfg.RedisEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		rdb, err := cache.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		cancel()

		if err != nil {
			slog.Warn("redis unavailable, directory lookups go straight to the database",
				"addr", cfg.RedisAddr,
				"error", err,
			)
		} else {
			directory = cache.NewDirectoryCache(rdb, directory, cfg.DirectoryCacheTTL)
			closers = append(closers, func() { _ = rdb.Close() })
		}
	}

	var archiver ucActivity.Archiver
	if cfg.ArchiveEnabled() {
		archiver = archive.NewS3Store(archive.Options{
			Bucket:    cfg.ArchiveBucket,
			Region:    cfg.ArchiveRegion,
			Endpoint:  cfg.ArchiveEndpoint,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
	}

	// ======================================================
	// USE CASES
	// ======================================================
	recorder := ucActivity.NewRecorder(activityRepo)

	dispatcher := audit.NewDispatcher(
		recorder,
		audit.Options{
			Sync:         cfg.AuditSync,
			QueueSize:    cfg.AuditQueueSize,
			Workers:      cfg.AuditWorkers,
			WriteTimeout: cfg.AuditWriteTimeout,
		},
		audit.NewMetrics(reg),
	)

	engine := ucActivity.NewEngine(
		ucActivity.NewQuery(activityRepo, directory),
		directory,
		cfg.DiagnosticFallback,
	)

	purger := ucActivity.NewPurger(activityRepo, archiver, recorder)

	notificationService := ucNotification.NewService(notificationRepo, dispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	activityHandler := handlers.NewActivityHandler(engine, purger, timezone.Location(cfg.Timezone))
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// ======================================================
	// OPERATIONS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// ------------------------------
		// ACTIVITIES
		// ------------------------------
		api.GET("/activities", activityHandler.List)
		api.GET("/activities/stats", activityHandler.Stats)
		api.GET("/activities/users/:userId", activityHandler.ByUser)
		api.GET("/activities/branches/:branchId", activityHandler.ByBranch)
		api.GET("/activities/entities/:entityType/:entityId", activityHandler.Timeline)
		api.DELETE("/activities/purge",
			middleware.RequireRole(session.RoleSuperadmin),
			activityHandler.Purge,
		)

		// ------------------------------
		// NOTIFICATIONS
		// ------------------------------
		api.POST("/notifications", notificationHandler.Send)
		api.GET("/notifications", notificationHandler.List)
		api.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		api.PUT("/notifications/:id/read", notificationHandler.MarkRead)
		api.PUT("/notifications/mark-all/read",
			middleware.Activity(dispatcher, middleware.EventMeta{
				Type:       activity.TypeNotificationRead,
				Title:      "All notifications marked as read",
				Category:   activity.CategoryCommunication,
				Priority:   activity.PriorityLow,
				EntityType: activity.EntityNotification,
			}),
			notificationHandler.MarkAllRead,
		)
	}

	return func() {
		dispatcher.Close()
		for _, c := range closers {
			c()
		}
	}
}
