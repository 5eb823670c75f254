package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/httpresp"
	ucActivity "github.com/BruksfildServices01/pg-backoffice/internal/usecase/activity"
)

// ======================================================
// HANDLER
// ======================================================

type ActivityHandler struct {
	engine *ucActivity.Engine
	purger *ucActivity.Purger
	loc    *time.Location
}

func NewActivityHandler(
	engine *ucActivity.Engine,
	purger *ucActivity.Purger,
	loc *time.Location,
) *ActivityHandler {
	return &ActivityHandler{
		engine: engine,
		purger: purger,
		loc:    loc,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ActivityHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	filter, err := activityFilter(c, h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	page, limit := pageParams(c)

	res, err := h.engine.List(c.Request.Context(), actor, filter, page, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "activities retrieved", res)
}

// ======================================================
// STATS
// ======================================================

func (h *ActivityHandler) Stats(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	filter, err := activityFilter(c, h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.engine.Stats(c.Request.Context(), actor, c.Query("timeRange"), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "activity stats retrieved", res)
}

// ======================================================
// BY USER / BY BRANCH
// ======================================================

func (h *ActivityHandler) ByUser(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	filter, err := activityFilter(c, h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	page, limit := pageParams(c)

	res, err := h.engine.ByUser(c.Request.Context(), actor, c.Param("userId"), filter, page, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "user activities retrieved", res)
}

func (h *ActivityHandler) ByBranch(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	filter, err := activityFilter(c, h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	page, limit := pageParams(c)

	res, err := h.engine.ByBranch(c.Request.Context(), actor, c.Param("branchId"), filter, page, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "branch activities retrieved", res)
}

// ======================================================
// TIMELINE
// ======================================================

func (h *ActivityHandler) Timeline(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	res, err := h.engine.EntityTimeline(
		c.Request.Context(),
		actor,
		c.Param("entityType"),
		c.Param("entityId"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "entity timeline retrieved", res)
}

// ======================================================
// PURGE
// ======================================================

func (h *ActivityHandler) Purge(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	days, err := strconv.Atoi(c.Query("olderThanDays"))
	if err != nil {
		httperr.Respond(c, httperr.NewValidation("olderThanDays", "must be a whole number of days"))
		return
	}

	res, err := h.purger.Purge(c.Request.Context(), actor, days)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "activities purged", res)
}
