package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domain "github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/dto"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

const defaultPurgeBatch = 500

// Archiver stores a batch of records before they are deleted.
type Archiver interface {
	Archive(ctx context.Context, key string, items []models.Activity) error
}

// Purger removes records older than a cutoff. It only runs on explicit
// request.
type Purger struct {
	repo      domain.Repository
	archiver  Archiver
	recorder  *Recorder
	batchSize int
	now       func() time.Time
}

// NewPurger builds a Purger. A nil archiver deletes without archiving.
func NewPurger(repo domain.Repository, archiver Archiver, recorder *Recorder) *Purger {
	return &Purger{
		repo:      repo,
		archiver:  archiver,
		recorder:  recorder,
		batchSize: defaultPurgeBatch,
		now:       time.Now,
	}
}

func archiveKey(cutoff time.Time, batch int) string {
	return fmt.Sprintf("activities/cutoff=%s/batch-%04d.jsonl",
		cutoff.UTC().Format("2006-01-02T15-04-05Z"), batch)
}

func (uc *Purger) Purge(ctx context.Context, actor session.Actor, olderThanDays int) (*dto.PurgeResult, error) {
	if actor.Role != session.RoleSuperadmin {
		return nil, httperr.NewAccessDenied("only superadmins can purge activity logs")
	}
	if olderThanDays < 1 {
		return nil, httperr.NewValidation("olderThanDays", "must be at least 1")
	}

	cutoff := uc.now().UTC().AddDate(0, 0, -olderThanDays)
	res := &dto.PurgeResult{Cutoff: cutoff.Format(time.RFC3339)}

	for {
		items, err := uc.repo.ListOlderThan(ctx, cutoff, uc.batchSize)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}

		res.Batches++

		if uc.archiver != nil {
			key := archiveKey(cutoff, res.Batches)
			if err := uc.archiver.Archive(ctx, key, items); err != nil {
				return nil, fmt.Errorf("archive batch %d: %w", res.Batches, err)
			}
			res.ArchiveKeys = append(res.ArchiveKeys, key)
		}

		ids := make([]string, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}

		deleted, err := uc.repo.DeleteByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		res.Deleted += deleted

		if len(items) < uc.batchSize {
			break
		}
	}

	slog.InfoContext(ctx, "activity purge finished",
		"cutoff", res.Cutoff,
		"deleted", res.Deleted,
		"batches", res.Batches,
		"archived", uc.archiver != nil,
	)

	_, err := uc.recorder.Record(ctx, domain.Input{
		Type:       domain.TypeActivityPurge,
		Title:      "Activity log purged",
		UserID:     actor.UserID,
		UserEmail:  actor.Email,
		UserRole:   string(actor.Role),
		EntityType: domain.EntitySystem,
		Priority:   domain.PriorityHigh,
		Category:   domain.CategorySystem,
		Metadata: map[string]any{
			"cutoff":        res.Cutoff,
			"olderThanDays": olderThanDays,
			"deleted":       res.Deleted,
			"batches":       res.Batches,
			"archiveKeys":   res.ArchiveKeys,
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to record activity purge", "error", err)
	}

	return res, nil
}
