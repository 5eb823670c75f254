package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/pg-backoffice/internal/domain/notification"
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
	"github.com/BruksfildServices01/pg-backoffice/internal/httpresp"
	ucNotification "github.com/BruksfildServices01/pg-backoffice/internal/usecase/notification"
	"github.com/BruksfildServices01/pg-backoffice/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type NotificationHandler struct {
	service *ucNotification.Service
}

func NewNotificationHandler(service *ucNotification.Service) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ======================================================
// REQUESTS
// ======================================================

type MarkAllReadRequest struct {
	PGID     string `json:"pgId"`
	BranchID string `json:"branchId"`
	UserID   string `json:"userId"`
}

// notificationFilter reads the equality filters and binds them to what the
// caller may see. pgId defaults to the caller's PG.
func notificationFilter(c *gin.Context, actor session.Actor) (domain.Filter, error) {
	unreadOnly, _ := strconv.ParseBool(c.Query("unreadOnly"))

	return domain.Restrict(actor, domain.Filter{
		PGID:       c.Query("pgId"),
		BranchID:   c.Query("branchId"),
		UserID:     c.Query("userId"),
		RoleScope:  c.Query("roleScope"),
		UnreadOnly: unreadOnly,
	})
}

// ======================================================
// SEND
// ======================================================

func (h *NotificationHandler) Send(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, validators.Translate(err))
		return
	}

	n, err := h.service.Send(c.Request.Context(), actor, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "notification sent", n)
}

// ======================================================
// LIST / COUNT
// ======================================================

func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	filter, err := notificationFilter(c, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	page, limit := pageParams(c)

	res, err := h.service.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "notifications retrieved", res)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	filter, err := notificationFilter(c, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.service.UnreadCount(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "unread count retrieved", res)
}

// ======================================================
// READ STATE
// ======================================================

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	n, err := h.service.MarkRead(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "notification marked as read", n)
}

// MarkAllRead takes its filter from an optional JSON body, falling back to
// the query string. The filter is bound to the caller like a listing.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	req := MarkAllReadRequest{
		PGID:     c.Query("pgId"),
		BranchID: c.Query("branchId"),
		UserID:   c.Query("userId"),
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, validators.Translate(err))
			return
		}
	}
	filter, err := domain.Restrict(actor, domain.Filter{
		PGID:     req.PGID,
		BranchID: req.BranchID,
		UserID:   req.UserID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.service.MarkAllRead(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "notifications marked as read", res)
}
