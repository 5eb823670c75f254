package activity

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/dto"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
)

// Engine runs Query operations inside the caller's role scope.
type Engine struct {
	query *Query
	dir   domain.Directory
	// diagnostic enables the unfiltered fallback for admins whose
	// own_actions view came back empty.
	diagnostic bool
}

func NewEngine(query *Query, dir domain.Directory, diagnostic bool) *Engine {
	return &Engine{
		query:      query,
		dir:        dir,
		diagnostic: diagnostic,
	}
}

// Scope resolves the constraint for actor. The default-branch lookup only
// happens for admins without a session branch.
func (e *Engine) Scope(ctx context.Context, actor session.Actor) (domain.Constraint, error) {
	in := domain.ScopeInput{Actor: actor}

	if actor.Role == session.RoleAdmin && actor.BranchID == "" && e.dir != nil {
		branchID, err := e.dir.DefaultBranchForAdmin(ctx, actor.UserID, actor.PGID)
		if err != nil {
			slog.WarnContext(ctx, "default branch lookup failed",
				"user_id", actor.UserID,
				"pg_id", actor.PGID,
				"error", err,
			)
		}
		in.DefaultBranchID = branchID
	}

	scope, err := domain.ResolveScope(in)
	if err != nil {
		return domain.Constraint{}, err
	}

	slog.DebugContext(ctx, "activity scope resolved",
		"user_id", actor.UserID,
		"role", actor.Role,
		"tier", scope.Tier,
		"branch_id", scope.BranchID,
	)

	return scope, nil
}

// widen returns the diagnostic constraint when the fallback applies.
func (e *Engine) widen(ctx context.Context, actor session.Actor, scope domain.Constraint, op string) (domain.Constraint, bool) {
	if !e.diagnostic {
		return scope, false
	}
	widened, ok := scope.Diagnostic()
	if !ok {
		return scope, false
	}
	slog.WarnContext(ctx, "diagnostic activity fallback: serving unfiltered log",
		"op", op,
		"user_id", actor.UserID,
		"role", actor.Role,
	)
	return widened, true
}

func (e *Engine) List(
	ctx context.Context,
	actor session.Actor,
	filter domain.Filter,
	page int,
	limit int,
) (*dto.ActivityList, error) {

	scope, err := e.Scope(ctx, actor)
	if err != nil {
		return nil, err
	}

	res, err := e.query.List(ctx, scope, filter, page, limit)
	if err != nil || res.Pagination.Total > 0 {
		return res, err
	}

	if widened, ok := e.widen(ctx, actor, scope, "list"); ok {
		return e.query.List(ctx, widened, filter, page, limit)
	}
	return res, nil
}

func (e *Engine) Stats(
	ctx context.Context,
	actor session.Actor,
	timeRange string,
	filter domain.Filter,
) (*dto.ActivityStats, error) {

	scope, err := e.Scope(ctx, actor)
	if err != nil {
		return nil, err
	}

	res, err := e.query.Stats(ctx, scope, timeRange, filter)
	if err != nil || res.Total > 0 {
		return res, err
	}

	if widened, ok := e.widen(ctx, actor, scope, "stats"); ok {
		return e.query.Stats(ctx, widened, timeRange, filter)
	}
	return res, nil
}

func (e *Engine) ByUser(
	ctx context.Context,
	actor session.Actor,
	userID string,
	filter domain.Filter,
	page int,
	limit int,
) (*dto.ActivityList, error) {

	scope, err := e.Scope(ctx, actor)
	if err != nil {
		return nil, err
	}

	res, err := e.query.ByUser(ctx, scope, userID, filter, page, limit)
	if err != nil || res.Pagination.Total > 0 {
		return res, err
	}

	if widened, ok := e.widen(ctx, actor, scope, "by_user"); ok {
		return e.query.ByUser(ctx, widened, userID, filter, page, limit)
	}
	return res, nil
}

// ByBranch additionally refuses admins asking for a branch outside their
// resolved scope.
func (e *Engine) ByBranch(
	ctx context.Context,
	actor session.Actor,
	branchID string,
	filter domain.Filter,
	page int,
	limit int,
) (*dto.ActivityList, error) {

	scope, err := e.Scope(ctx, actor)
	if err != nil {
		return nil, err
	}

	if actor.Role == session.RoleAdmin && !scope.AllowsBranch(branchID) {
		return nil, httperr.NewAccessDenied("branch " + branchID + " is outside the admin's scope")
	}

	return e.query.ByBranch(ctx, scope, branchID, filter, page, limit)
}

func (e *Engine) EntityTimeline(
	ctx context.Context,
	actor session.Actor,
	entityType string,
	entityID string,
) (*dto.Timeline, error) {

	scope, err := e.Scope(ctx, actor)
	if err != nil {
		return nil, err
	}

	return e.query.EntityTimeline(ctx, scope, entityType, entityID)
}
