package activity

import (
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
)

// Tier names the rule that produced a Constraint. It is returned to clients
// so dashboards can tell which view they are looking at.
type Tier string

const (
	TierSessionBranch Tier = "session_branch"
	TierDefaultBranch Tier = "default_branch"
	TierOwnActions    Tier = "own_actions"
	TierDiagnostic    Tier = "diagnostic_unfiltered"
	TierStaffRoles    Tier = "staff_roles"
	TierSupportOnly   Tier = "support_only"
)

// Constraint is the access predicate added to every query. Empty fields do
// not constrain.
type Constraint struct {
	Tier     Tier
	BranchID string
	UserID   string
	Roles    []string
}

// ScopeInput is what the decision table needs to know about the caller.
// DefaultBranchID is the default branch of the PG the admin manages, or empty.
type ScopeInput struct {
	Actor           session.Actor
	DefaultBranchID string
}

// ResolveScope applies the role decision table.
func ResolveScope(in ScopeInput) (Constraint, error) {
	a := in.Actor

	switch a.Role {
	case session.RoleSuperadmin:
		return Constraint{
			Tier: TierStaffRoles,
			Roles: []string{
				string(session.RoleSuperadmin),
				string(session.RoleSupport),
				string(session.RoleAdmin),
			},
		}, nil

	case session.RoleSupport:
		return Constraint{
			Tier:  TierSupportOnly,
			Roles: []string{string(session.RoleSupport)},
		}, nil

	case session.RoleAdmin:
		if a.UserID == "" {
			return Constraint{}, httperr.NewAccessDenied("admin session without user id")
		}
		if a.BranchID != "" {
			return Constraint{Tier: TierSessionBranch, BranchID: a.BranchID}, nil
		}
		if in.DefaultBranchID != "" {
			return Constraint{Tier: TierDefaultBranch, BranchID: in.DefaultBranchID}, nil
		}
		return Constraint{Tier: TierOwnActions, UserID: a.UserID}, nil
	}

	return Constraint{}, httperr.NewAccessDenied("role " + string(a.Role) + " cannot read activity logs")
}

// Diagnostic widens an own_actions constraint to the unfiltered log. Only
// own_actions can be widened.
func (c Constraint) Diagnostic() (Constraint, bool) {
	if c.Tier != TierOwnActions {
		return c, false
	}
	return Constraint{Tier: TierDiagnostic}, true
}

// AllowsBranch reports whether a ByBranch request for branchID stays inside
// the constraint. Role-based constraints carry no branch and allow any.
func (c Constraint) AllowsBranch(branchID string) bool {
	switch c.Tier {
	case TierSessionBranch, TierDefaultBranch:
		return c.BranchID == branchID
	case TierOwnActions, TierDiagnostic:
		return false
	}
	return true
}
