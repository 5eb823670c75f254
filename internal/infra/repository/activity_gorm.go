package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/dto"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

type ActivityGormRepository struct {
	db *gorm.DB
}

func NewActivityGormRepository(db *gorm.DB) *ActivityGormRepository {
	return &ActivityGormRepository{db: db}
}

func (r *ActivityGormRepository) Create(ctx context.Context, a *models.Activity) error {
	return persistErr("insert activity", r.db.WithContext(ctx).Create(a).Error)
}

// --------------------------------------------------
// Query building
// --------------------------------------------------

func (r *ActivityGormRepository) scoped(ctx context.Context, scope domain.Constraint) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Activity{})

	if scope.BranchID != "" {
		q = q.Where("branch_id = ?", scope.BranchID)
	}
	if scope.UserID != "" {
		q = q.Where("user_id = ?", scope.UserID)
	}
	if len(scope.Roles) > 0 {
		q = q.Where("user_role IN ?", scope.Roles)
	}

	return q
}

func applyFilter(q *gorm.DB, f domain.Filter) *gorm.DB {
	eq := []struct {
		column string
		value  string
	}{
		{"user_id", f.UserID},
		{"branch_id", f.BranchID},
		{"type", f.Type},
		{"category", f.Category},
		{"priority", f.Priority},
		{"user_role", f.UserRole},
		{"status", f.Status},
		{"entity_type", f.EntityType},
		{"entity_id", f.EntityID},
	}
	for _, c := range eq {
		if c.value != "" {
			q = q.Where(clause.Eq{Column: clause.Column{Name: c.column}, Value: c.value})
		}
	}

	if f.From != nil {
		q = q.Where("timestamp >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("timestamp <= ?", f.To.UTC())
	}

	if term := strings.TrimSpace(f.Q); term != "" {
		like := "%" + escapeLike(strings.ToLower(term)) + "%"
		q = q.Where(
			"(LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\' OR "+
				"LOWER(entity_name) LIKE ? ESCAPE '\\' OR LOWER(user_email) LIKE ? ESCAPE '\\' OR "+
				"LOWER(type) LIKE ? ESCAPE '\\' OR LOWER(category) LIKE ? ESCAPE '\\')",
			like, like, like, like, like, like,
		)
	}

	return q
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *ActivityGormRepository) List(
	ctx context.Context,
	scope domain.Constraint,
	filter domain.Filter,
	page int,
	limit int,
) ([]models.Activity, int64, error) {

	column, desc, ok := domain.SortColumn(filter.Sort)
	if !ok {
		return nil, 0, httperr.NewValidation("sort", "unsupported sort key "+filter.Sort)
	}

	var total int64
	if err := applyFilter(r.scoped(ctx, scope), filter).
		Count(&total).Error; err != nil {
		return nil, 0, persistErr("count activities", err)
	}

	items := make([]models.Activity, 0, limit)
	if total == 0 {
		return items, 0, nil
	}

	if err := applyFilter(r.scoped(ctx, scope), filter).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order("id").
		Limit(limit).
		Offset(dto.Offset(page, limit)).
		Find(&items).Error; err != nil {
		return nil, 0, persistErr("list activities", err)
	}

	return items, total, nil
}

func (r *ActivityGormRepository) Timeline(
	ctx context.Context,
	scope domain.Constraint,
	entityType string,
	entityID string,
) ([]models.Activity, error) {

	items := []models.Activity{}
	if err := r.scoped(ctx, scope).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("timestamp ASC").
		Order("id").
		Find(&items).Error; err != nil {
		return nil, persistErr("entity timeline", err)
	}

	return items, nil
}

func (r *ActivityGormRepository) Stats(
	ctx context.Context,
	scope domain.Constraint,
	filter domain.Filter,
	since time.Time,
) ([]domain.StatBucket, error) {

	buckets := []domain.StatBucket{}
	if err := applyFilter(r.scoped(ctx, scope), filter).
		Select("type, category, status, COUNT(*) AS count").
		Where("timestamp >= ?", since.UTC()).
		Group("type, category, status").
		Order("count DESC, type ASC").
		Scan(&buckets).Error; err != nil {
		return nil, persistErr("activity stats", err)
	}

	return buckets, nil
}

// --------------------------------------------------
// Retention
// --------------------------------------------------

func (r *ActivityGormRepository) ListOlderThan(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]models.Activity, error) {

	var items []models.Activity
	if err := r.db.WithContext(ctx).
		Where("timestamp < ?", cutoff.UTC()).
		Order("timestamp ASC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, persistErr("list expired activities", err)
	}

	return items, nil
}

func (r *ActivityGormRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&models.Activity{})
	if res.Error != nil {
		return 0, persistErr("delete activities", res.Error)
	}

	return res.RowsAffected, nil
}

// Compile-time check
var _ domain.Repository = (*ActivityGormRepository)(nil)
