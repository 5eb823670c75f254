package notification

import (
	"time"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

type RoleScope string

const (
	ScopeAdmin      RoleScope = "admin"
	ScopeSuperadmin RoleScope = "superadmin"
	ScopeSupport    RoleScope = "support"
	ScopeAll        RoleScope = "all"
)

func (r RoleScope) Valid() bool {
	switch r {
	case ScopeAdmin, ScopeSuperadmin, ScopeSupport, ScopeAll:
		return true
	}
	return false
}

type Input struct {
	PGID      string         `json:"pgId" binding:"required,max=36"`
	BranchID  string         `json:"branchId" binding:"max=36"`
	UserID    string         `json:"userId" binding:"max=36"`
	RoleScope RoleScope      `json:"roleScope" binding:"omitempty,role_scope"`
	Type      string         `json:"type" binding:"required,max=50"`
	Title     string         `json:"title" binding:"required,max=200"`
	Message   string         `json:"message" binding:"required,max=2000"`
	Data      map[string]any `json:"data"`
	CreatedBy string         `json:"-"`
}

type Filter struct {
	PGID       string
	BranchID   string
	UserID     string
	RoleScope  string
	UnreadOnly bool
}

// MarkRead moves n to the read state. It reports false when n was already
// read, in which case the original readAt is kept.
func MarkRead(n *models.Notification, now time.Time) bool {
	if n.IsRead {
		return false
	}
	n.IsRead = true
	n.ReadAt = &now
	return true
}

// CanAccessPG reports whether actor may read or write notifications of pgID.
// Superadmins reach every PG, everyone else only their own.
func CanAccessPG(actor session.Actor, pgID string) bool {
	return actor.Role == session.RoleSuperadmin || (pgID != "" && pgID == actor.PGID)
}

// Restrict binds f to what actor may see. An empty pgId means the actor's
// PG. Admins and superadmins may filter by any user of that PG; other roles
// only see notifications addressed to themselves.
func Restrict(actor session.Actor, f Filter) (Filter, error) {
	if f.PGID == "" {
		f.PGID = actor.PGID
	}
	if !CanAccessPG(actor, f.PGID) {
		return f, httperr.NewAccessDenied("pg " + f.PGID + " is outside the caller's scope")
	}

	switch actor.Role {
	case session.RoleSuperadmin, session.RoleAdmin:
	default:
		if f.UserID != "" && f.UserID != actor.UserID {
			return f, httperr.NewAccessDenied("cannot read notifications of another user")
		}
		f.UserID = actor.UserID
	}

	return f, nil
}
