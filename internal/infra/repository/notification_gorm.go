package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pg-backoffice/internal/domain/notification"
	"github.com/BruksfildServices01/pg-backoffice/internal/dto"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) filtered(ctx context.Context, f domain.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Notification{})

	if f.PGID != "" {
		q = q.Where("pg_id = ?", f.PGID)
	}
	if f.BranchID != "" {
		q = q.Where("branch_id = ?", f.BranchID)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.RoleScope != "" {
		q = q.Where("role_scope = ?", f.RoleScope)
	}
	if f.UnreadOnly {
		q = q.Where("is_read = ?", false)
	}

	return q
}

func (r *NotificationGormRepository) Create(ctx context.Context, n *models.Notification) error {
	return persistErr("insert notification", r.db.WithContext(ctx).Create(n).Error)
}

func (r *NotificationGormRepository) List(
	ctx context.Context,
	filter domain.Filter,
	page int,
	limit int,
) ([]models.Notification, int64, error) {

	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, persistErr("count notifications", err)
	}

	items := make([]models.Notification, 0, limit)
	if total == 0 {
		return items, 0, nil
	}

	if err := r.filtered(ctx, filter).
		Order("created_at DESC").
		Order("id").
		Limit(limit).
		Offset(dto.Offset(page, limit)).
		Find(&items).Error; err != nil {
		return nil, 0, persistErr("list notifications", err)
	}

	return items, total, nil
}

func (r *NotificationGormRepository) Get(ctx context.Context, id string) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("notification", id)
		}
		return nil, persistErr("get notification", err)
	}
	return &n, nil
}

func (r *NotificationGormRepository) MarkRead(ctx context.Context, id string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": at,
		})
	if res.Error != nil {
		return false, persistErr("mark notification read", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *NotificationGormRepository) MarkAllRead(
	ctx context.Context,
	filter domain.Filter,
	at time.Time,
) (int64, error) {

	filter.UnreadOnly = true

	res := r.filtered(ctx, filter).
		Updates(map[string]any{
			"is_read": true,
			"read_at": at,
		})
	if res.Error != nil {
		return 0, persistErr("mark all notifications read", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *NotificationGormRepository) CountUnread(ctx context.Context, filter domain.Filter) (int64, error) {
	filter.UnreadOnly = true

	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, persistErr("count unread notifications", err)
	}
	return total, nil
}

// Compile-time check
var _ domain.Repository = (*NotificationGormRepository)(nil)
