package activity

import (
	"context"
	"log/slog"
	"time"

	domain "github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/dto"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
)

// Query answers listing and aggregation requests inside a given scope
// constraint. The zero Constraint reads the whole log.
type Query struct {
	repo domain.Repository
	dir  domain.Directory
	now  func() time.Time
}

func NewQuery(repo domain.Repository, dir domain.Directory) *Query {
	return &Query{
		repo: repo,
		dir:  dir,
		now:  time.Now,
	}
}

func validateFilter(f domain.Filter) error {
	if _, _, ok := domain.SortColumn(f.Sort); !ok {
		return httperr.NewValidation("sort", "unsupported sort key "+f.Sort)
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return httperr.NewValidation("startDate", "must not be after endDate")
	}
	if f.EntityID != "" && f.EntityType == "" {
		return httperr.NewValidation("entityType", "is required when entityId is set")
	}
	return nil
}

func (uc *Query) List(
	ctx context.Context,
	scope domain.Constraint,
	filter domain.Filter,
	page int,
	limit int,
) (*dto.ActivityList, error) {

	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	page, limit = dto.Normalize(page, limit)

	items, total, err := uc.repo.List(ctx, scope, filter, page, limit)
	if err != nil {
		return nil, err
	}

	return &dto.ActivityList{
		Items:      items,
		Pagination: dto.NewPagination(page, limit, total),
		Scope:      string(scope.Tier),
	}, nil
}

func (uc *Query) ByUser(
	ctx context.Context,
	scope domain.Constraint,
	userID string,
	filter domain.Filter,
	page int,
	limit int,
) (*dto.ActivityList, error) {

	if userID == "" {
		return nil, httperr.NewValidation("userId", "is required")
	}

	filter.UserID = userID
	res, err := uc.List(ctx, scope, filter, page, limit)
	if err != nil {
		return nil, err
	}

	res.Subject = &dto.Subject{Kind: "user", ID: userID}
	if uc.dir != nil {
		name, err := uc.dir.UserName(ctx, userID)
		res.Subject.Name = displayName(ctx, userID, name, err)
	}
	return res, nil
}

func (uc *Query) ByBranch(
	ctx context.Context,
	scope domain.Constraint,
	branchID string,
	filter domain.Filter,
	page int,
	limit int,
) (*dto.ActivityList, error) {

	if branchID == "" {
		return nil, httperr.NewValidation("branchId", "is required")
	}

	filter.BranchID = branchID
	res, err := uc.List(ctx, scope, filter, page, limit)
	if err != nil {
		return nil, err
	}

	res.Subject = &dto.Subject{Kind: "branch", ID: branchID}
	if uc.dir != nil {
		name, err := uc.dir.BranchName(ctx, branchID)
		res.Subject.Name = displayName(ctx, branchID, name, err)
	}
	return res, nil
}

// displayName is presentation only: lookup failures leave the name empty.
func displayName(ctx context.Context, id string, name string, err error) string {
	if err != nil {
		slog.WarnContext(ctx, "display name lookup failed", "id", id, "error", err)
		return ""
	}
	return name
}

func (uc *Query) EntityTimeline(
	ctx context.Context,
	scope domain.Constraint,
	entityType string,
	entityID string,
) (*dto.Timeline, error) {

	if !domain.EntityType(entityType).Valid() {
		return nil, httperr.NewValidation("entityType", "unknown entity type "+entityType)
	}
	if entityID == "" {
		return nil, httperr.NewValidation("entityId", "is required")
	}

	items, err := uc.repo.Timeline(ctx, scope, entityType, entityID)
	if err != nil {
		return nil, err
	}

	return &dto.Timeline{
		EntityType: entityType,
		EntityID:   entityID,
		Items:      items,
		Scope:      string(scope.Tier),
	}, nil
}

func (uc *Query) Stats(
	ctx context.Context,
	scope domain.Constraint,
	timeRange string,
	filter domain.Filter,
) (*dto.ActivityStats, error) {

	r := domain.TimeRange(timeRange)
	window, ok := r.Duration()
	if !ok {
		return nil, httperr.NewValidation("timeRange", "must be one of 1h, 24h, 7d, 30d")
	}
	if r == "" {
		r = domain.Range24h
	}

	since := uc.now().UTC().Add(-window)

	buckets, err := uc.repo.Stats(ctx, scope, filter, since)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, b := range buckets {
		total += b.Count
	}

	return &dto.ActivityStats{
		TimeRange: string(r),
		Since:     since.Format(time.RFC3339),
		Total:     total,
		Buckets:   buckets,
		Scope:     string(scope.Tier),
	}, nil
}
