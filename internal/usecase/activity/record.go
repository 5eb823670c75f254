package activity

import (
	"context"
	"time"

	"gorm.io/datatypes"

	domain "github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
	"github.com/BruksfildServices01/pg-backoffice/internal/validators"
)

// Recorder validates and appends activity records. It never updates or
// deletes.
type Recorder struct {
	repo domain.Repository
	now  func() time.Time
}

func NewRecorder(repo domain.Repository) *Recorder {
	return &Recorder{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *Recorder) Record(ctx context.Context, in domain.Input) (*models.Activity, error) {
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if in.EntityID != "" && in.EntityType == "" {
		return nil, httperr.NewValidation("entityType", "is required when entityId is set")
	}

	in.ApplyDefaults()

	a := &models.Activity{
		Type:         string(in.Type),
		Title:        in.Title,
		Description:  in.Description,
		UserID:       in.UserID,
		UserEmail:    in.UserEmail,
		UserRole:     in.UserRole,
		EntityType:   string(in.EntityType),
		EntityID:     in.EntityID,
		EntityName:   in.EntityName,
		BranchID:     in.BranchID,
		BranchName:   in.BranchName,
		Priority:     string(in.Priority),
		Category:     string(in.Category),
		IPAddress:    in.IPAddress,
		UserAgent:    in.UserAgent,
		Status:       string(in.Status),
		ErrorMessage: in.ErrorMessage,
		Timestamp:    uc.now().UTC(),
	}
	if len(in.Metadata) > 0 {
		a.Metadata = datatypes.JSONMap(in.Metadata)
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}
