package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

// DirectoryGormRepository reads users, PGs and branches. A missing row is
// not an error: callers get an empty string.
type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

func (r *DirectoryGormRepository) DefaultBranchForAdmin(
	ctx context.Context,
	adminID string,
	pgID string,
) (string, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Branch{}).
		Where("is_default = ?", true)

	if pgID != "" {
		q = q.Where("pg_id = ?", pgID)
	} else {
		q = q.Where("pg_id IN (?)",
			r.db.Model(&models.PG{}).Select("id").Where("admin_id = ?", adminID),
		)
	}

	var branch models.Branch
	if err := q.Order("id").First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", persistErr("default branch lookup", err)
	}

	return branch.ID, nil
}

func (r *DirectoryGormRepository) BranchName(ctx context.Context, branchID string) (string, error) {
	var branch models.Branch
	if err := r.db.WithContext(ctx).
		Select("name").
		First(&branch, "id = ?", branchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", persistErr("branch name lookup", err)
	}
	return branch.Name, nil
}

func (r *DirectoryGormRepository) UserName(ctx context.Context, userID string) (string, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Select("name").
		First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", persistErr("user name lookup", err)
	}
	return user.Name, nil
}

// Compile-time check
var _ activity.Directory = (*DirectoryGormRepository)(nil)
