package session

type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleSupport    Role = "support"
	RoleUser       Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperadmin, RoleAdmin, RoleSupport, RoleUser:
		return true
	}
	return false
}

// Actor is the authenticated caller as carried by the session token.
type Actor struct {
	UserID     string
	Email      string
	Role       Role
	BranchID   string
	BranchName string
	PGID       string
}

func (a Actor) IsZero() bool {
	return a.UserID == ""
}
