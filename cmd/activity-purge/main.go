package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/BruksfildServices01/pg-backoffice/internal/config"
	dbpkg "github.com/BruksfildServices01/pg-backoffice/internal/db"
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/infra/archive"
	infraRepo "github.com/BruksfildServices01/pg-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/pg-backoffice/internal/logging"
	ucActivity "github.com/BruksfildServices01/pg-backoffice/internal/usecase/activity"
)

// activity-purge removes activity records older than -older-than-days,
// archiving them to S3 first when ARCHIVE_S3_BUCKET is set.
func main() {
	olderThanDays := flag.Int("older-than-days", 0, "delete activities older than this many days (required, >= 1)")
	operator := flag.String("operator", "system", "user id recorded on the activity_purge event")
	flag.Parse()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogJSON)

	if *olderThanDays < 1 {
		slog.Error("-older-than-days must be at least 1")
		flag.Usage()
		os.Exit(2)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
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
	} else {
		slog.Warn("ARCHIVE_S3_BUCKET not set, purged records will not be archived")
	}

	repo := infraRepo.NewActivityGormRepository(db)
	purger := ucActivity.NewPurger(repo, archiver, ucActivity.NewRecorder(repo))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := purger.Purge(ctx, session.Actor{
		UserID: *operator,
		Role:   session.RoleSuperadmin,
	}, *olderThanDays)
	if err != nil {
		slog.Error("purge failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(res)
}
