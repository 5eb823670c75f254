package activity

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Activity) error

	List(
		ctx context.Context,
		scope Constraint,
		filter Filter,
		page int,
		limit int,
	) ([]models.Activity, int64, error)

	Timeline(
		ctx context.Context,
		scope Constraint,
		entityType string,
		entityID string,
	) ([]models.Activity, error)

	Stats(
		ctx context.Context,
		scope Constraint,
		filter Filter,
		since time.Time,
	) ([]StatBucket, error)

	// -------- Retention --------
	ListOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]models.Activity, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

// Directory answers the lookups scoping and presentation need from the
// property-management data.
type Directory interface {
	// DefaultBranchForAdmin returns the default branch of the PG the admin
	// manages, or "" when there is none.
	DefaultBranchForAdmin(ctx context.Context, adminID string, pgID string) (string, error)
	BranchName(ctx context.Context, branchID string) (string, error)
	UserName(ctx context.Context, userID string) (string, error)
}
