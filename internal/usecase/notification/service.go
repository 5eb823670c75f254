package notification

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	domain "github.com/BruksfildServices01/pg-backoffice/internal/domain/notification"
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/dto"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
	"github.com/BruksfildServices01/pg-backoffice/internal/validators"
)

// ActivitySink receives best-effort activity events.
type ActivitySink interface {
	Dispatch(ctx context.Context, in activity.Input)
}

type Service struct {
	repo  domain.Repository
	audit ActivitySink
	now   func() time.Time
}

func NewService(repo domain.Repository, audit ActivitySink) *Service {
	return &Service{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (s *Service) Send(ctx context.Context, actor session.Actor, in domain.Input) (*models.Notification, error) {
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if !domain.CanAccessPG(actor, in.PGID) {
		return nil, httperr.NewAccessDenied("cannot notify pg " + in.PGID)
	}
	if in.RoleScope == "" {
		in.RoleScope = domain.ScopeAdmin
	}

	n := &models.Notification{
		PGID:      in.PGID,
		BranchID:  in.BranchID,
		UserID:    in.UserID,
		RoleScope: string(in.RoleScope),
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		CreatedBy: actor.UserID,
	}
	if len(in.Data) > 0 {
		n.Data = datatypes.JSONMap(in.Data)
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.record(ctx, actor, activity.Input{
		Type:        activity.TypeNotificationSend,
		Title:       "Notification sent",
		Description: n.Title,
		EntityType:  activity.EntityNotification,
		EntityID:    n.ID,
		EntityName:  n.Title,
		BranchID:    n.BranchID,
		Category:    activity.CategoryCommunication,
		Metadata: map[string]any{
			"pgId":      n.PGID,
			"roleScope": n.RoleScope,
			"recipient": n.UserID,
		},
	})

	return n, nil
}

func (s *Service) List(
	ctx context.Context,
	filter domain.Filter,
	page int,
	limit int,
) (*dto.NotificationList, error) {

	page, limit = dto.Normalize(page, limit)

	items, total, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	return &dto.NotificationList{
		Items:      items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// MarkRead is idempotent: a notification that is already read keeps its
// first readAt. Notifications of another PG or addressed to another user are
// reported as not found.
func (s *Service) MarkRead(ctx context.Context, actor session.Actor, id string) (*models.Notification, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessPG(actor, n.PGID) || (n.UserID != "" && n.UserID != actor.UserID) {
		return nil, httperr.NewNotFound("notification", id)
	}

	at := s.now().UTC()
	if !domain.MarkRead(n, at) {
		return n, nil
	}

	changed, err := s.repo.MarkRead(ctx, id, at)
	if err != nil {
		return nil, err
	}
	if !changed {
		// Someone else read it in between; return the stored state.
		return s.repo.Get(ctx, id)
	}

	s.record(ctx, actor, activity.Input{
		Type:       activity.TypeNotificationRead,
		Title:      "Notification read",
		EntityType: activity.EntityNotification,
		EntityID:   n.ID,
		EntityName: n.Title,
		BranchID:   n.BranchID,
		Priority:   activity.PriorityLow,
		Category:   activity.CategoryCommunication,
	})

	return n, nil
}

func (s *Service) MarkAllRead(ctx context.Context, filter domain.Filter) (*dto.MarkAllReadResult, error) {
	if filter.PGID == "" {
		return nil, httperr.NewValidation("pgId", "is required")
	}

	updated, err := s.repo.MarkAllRead(ctx, filter, s.now().UTC())
	if err != nil {
		return nil, err
	}

	return &dto.MarkAllReadResult{Success: true, Updated: updated}, nil
}

func (s *Service) UnreadCount(ctx context.Context, filter domain.Filter) (*dto.UnreadCount, error) {
	count, err := s.repo.CountUnread(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCount{Unread: count}, nil
}

func (s *Service) record(ctx context.Context, actor session.Actor, in activity.Input) {
	if s.audit == nil || actor.IsZero() {
		return
	}

	in.UserID = actor.UserID
	in.UserEmail = actor.Email
	in.UserRole = string(actor.Role)
	if in.BranchID == "" {
		in.BranchID = actor.BranchID
		in.BranchName = actor.BranchName
	}

	s.audit.Dispatch(ctx, in)
}
