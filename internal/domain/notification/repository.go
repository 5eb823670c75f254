package notification

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

type Repository interface {
	Create(ctx context.Context, n *models.Notification) error
	List(ctx context.Context, filter Filter, page int, limit int) ([]models.Notification, int64, error)
	Get(ctx context.Context, id string) (*models.Notification, error)

	// MarkRead flips a single unread row and reports whether it changed.
	MarkRead(ctx context.Context, id string, at time.Time) (bool, error)
	MarkAllRead(ctx context.Context, filter Filter, at time.Time) (int64, error)
	CountUnread(ctx context.Context, filter Filter) (int64, error)
}
