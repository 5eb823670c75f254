package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/middleware"
	"github.com/BruksfildServices01/pg-backoffice/internal/timezone"
)

// actorOrAbort writes a 401 when the request carries no session.
func actorOrAbort(c *gin.Context) (session.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		httperr.Unauthorized(c, "missing_session", "authentication required")
	}
	return actor, ok
}

// pageParams reads page and limit. Unparsable values fall back to the
// defaults applied by dto.Normalize.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return page, limit
}

// activityFilter builds a Filter from the query string. startDate and endDate
// accept YYYY-MM-DD (expanded in loc) or RFC3339.
func activityFilter(c *gin.Context, loc *time.Location) (activity.Filter, error) {
	f := activity.Filter{
		UserID:     c.Query("userId"),
		BranchID:   c.Query("branchId"),
		Type:       c.Query("type"),
		Category:   c.Query("category"),
		Priority:   c.Query("priority"),
		UserRole:   c.Query("userRole"),
		Status:     c.Query("status"),
		EntityType: c.Query("entityType"),
		EntityID:   c.Query("entityId"),
		Q:          c.Query("q"),
		Sort:       c.Query("sort"),
	}

	if v := c.Query("startDate"); v != "" {
		from, err := timezone.ParseStart(v, loc)
		if err != nil {
			return f, httperr.NewValidation("startDate", err.Error())
		}
		f.From = &from
	}

	if v := c.Query("endDate"); v != "" {
		to, err := timezone.ParseEnd(v, loc)
		if err != nil {
			return f, httperr.NewValidation("endDate", err.Error())
		}
		f.To = &to
	}

	return f, nil
}
