package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
)

// titleFor turns "resident_checkin" into "Resident checkin".
func titleFor(t activity.Type) string {
	s := strings.ReplaceAll(string(t), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func LoginActivity(d Dispatcher) gin.HandlerFunc {
	return Activity(d, EventMeta{
		Type:       activity.TypeUserLogin,
		Title:      "User logged in",
		Category:   activity.CategoryAuthentication,
		Priority:   activity.PriorityNormal,
		EntityType: activity.EntityUser,
	})
}

func LogoutActivity(d Dispatcher) gin.HandlerFunc {
	return Activity(d, EventMeta{
		Type:       activity.TypeUserLogout,
		Title:      "User logged out",
		Category:   activity.CategoryAuthentication,
		Priority:   activity.PriorityLow,
		EntityType: activity.EntityUser,
	})
}

func ResidentActivity(d Dispatcher, t activity.Type) gin.HandlerFunc {
	return Activity(d, EventMeta{
		Type:       t,
		Title:      titleFor(t),
		Category:   activity.CategoryManagement,
		Priority:   activity.PriorityNormal,
		EntityType: activity.EntityResident,
	})
}

func PaymentActivity(d Dispatcher, t activity.Type) gin.HandlerFunc {
	return Activity(d, EventMeta{
		Type:       t,
		Title:      titleFor(t),
		Category:   activity.CategoryFinancial,
		Priority:   activity.PriorityHigh,
		EntityType: activity.EntityPayment,
	})
}

func RoomActivity(d Dispatcher, t activity.Type) gin.HandlerFunc {
	return Activity(d, EventMeta{
		Type:       t,
		Title:      titleFor(t),
		Category:   activity.CategoryManagement,
		Priority:   activity.PriorityNormal,
		EntityType: activity.EntityRoom,
	})
}

func SuperadminUserActivity(d Dispatcher, t activity.Type) gin.HandlerFunc {
	return Activity(d, EventMeta{
		Type:       t,
		Title:      titleFor(t),
		Category:   activity.CategoryManagement,
		Priority:   activity.PriorityHigh,
		EntityType: activity.EntityUser,
	})
}

func SuperadminSystemActivity(d Dispatcher, t activity.Type) gin.HandlerFunc {
	return Activity(d, EventMeta{
		Type:       t,
		Title:      titleFor(t),
		Category:   activity.CategorySystem,
		Priority:   activity.PriorityCritical,
		EntityType: activity.EntitySystem,
	})
}

// PropertyActivity covers PG, branch and floor changes. The entity type is
// taken from the activity type prefix.
func PropertyActivity(d Dispatcher, t activity.Type) gin.HandlerFunc {
	entity := activity.EntityPG
	switch {
	case strings.HasPrefix(string(t), "branch_"):
		entity = activity.EntityBranch
	case strings.HasPrefix(string(t), "floor_"):
		entity = activity.EntityFloor
	}

	return Activity(d, EventMeta{
		Type:       t,
		Title:      titleFor(t),
		Category:   activity.CategoryManagement,
		Priority:   activity.PriorityNormal,
		EntityType: entity,
	})
}

func SupportTicketActivity(d Dispatcher, t activity.Type) gin.HandlerFunc {
	return Activity(d, EventMeta{
		Type:       t,
		Title:      titleFor(t),
		Category:   activity.CategorySupport,
		Priority:   activity.PriorityNormal,
		EntityType: activity.EntityTicket,
	})
}
