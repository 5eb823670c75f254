package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
)

const maxSniffedBody = 1 << 20

// Dispatcher receives recorded activities. Implementations must not block
// for long and must swallow their own errors.
type Dispatcher interface {
	Dispatch(ctx context.Context, in activity.Input)
}

// EventMeta is the static description of what a route does.
type EventMeta struct {
	Type        activity.Type
	Title       string
	Description string
	Category    activity.Category
	Priority    activity.Priority
	EntityType  activity.EntityType
}

// bufferedWriter holds the response body until the activity has been
// captured. Status handling stays with the wrapped writer.
type bufferedWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

// Activity records one event per request after the handler ran. Requests
// without an authenticated actor pass through unrecorded. A panicking handler
// is recorded as failed and the panic is re-raised for the recovery
// middleware.
func Activity(d Dispatcher, meta EventMeta) gin.HandlerFunc {
	return func(c *gin.Context) {
		branch := branchFromBody(c)

		w := &bufferedWriter{ResponseWriter: c.Writer}
		c.Writer = w

		defer func() {
			c.Writer = w.ResponseWriter

			if rec := recover(); rec != nil {
				record(c, d, meta, branch, http.StatusInternalServerError, nil, fmt.Sprint(rec))
				panic(rec)
			}

			status := w.Status()
			body := w.body.Bytes()

			if len(body) > 0 {
				if _, err := w.ResponseWriter.Write(body); err != nil {
					_ = c.Error(err)
				}
			}

			message, _ := parseEnvelope(body)
			record(c, d, meta, branch, status, body, message)
		}()

		c.Next()
	}
}

func record(
	c *gin.Context,
	d Dispatcher,
	meta EventMeta,
	branch branchHint,
	status int,
	body []byte,
	message string,
) {
	actor, ok := ActorFrom(c)
	if !ok {
		return
	}

	in := activity.Input{
		Type:        meta.Type,
		Title:       meta.Title,
		Description: meta.Description,
		UserID:      actor.UserID,
		UserEmail:   actor.Email,
		UserRole:    string(actor.Role),
		Priority:    meta.Priority,
		Category:    meta.Category,
		IPAddress:   c.ClientIP(),
		UserAgent:   truncate(c.Request.UserAgent(), 512),
		Status:      activity.StatusSuccess,
		Metadata: map[string]any{
			"method":     c.Request.Method,
			"url":        c.Request.URL.String(),
			"statusCode": status,
			"userRole":   string(actor.Role),
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		},
	}

	switch {
	case branch.BranchID != "":
		in.BranchID, in.BranchName = branch.BranchID, branch.BranchName
	case c.Param("branchId") != "":
		in.BranchID = c.Param("branchId")
	default:
		in.BranchID, in.BranchName = actor.BranchID, actor.BranchName
	}

	if meta.EntityType != "" {
		in.EntityType = meta.EntityType
		in.EntityID = c.Param("id")
		if in.EntityID == "" {
			_, in.EntityID = parseEnvelope(body)
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		in.Status = activity.StatusFailed
		in.ErrorMessage = truncate(message, 1000)
	}

	d.Dispatch(c.Request.Context(), in)
}

type branchHint struct {
	BranchID   string `json:"branchId"`
	BranchName string `json:"branchName"`
}

// branchFromBody peeks at a JSON request body and restores it for the handler.
func branchFromBody(c *gin.Context) branchHint {
	var hint branchHint

	if c.Request.Body == nil || !strings.Contains(c.ContentType(), "json") {
		return hint
	}

	// The handler reads the sniffed prefix followed by the unread rest.
	orig := c.Request.Body
	raw, err := io.ReadAll(io.LimitReader(orig, maxSniffedBody))
	c.Request.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(raw), orig), orig}
	if err != nil || len(raw) == 0 || int64(len(raw)) == maxSniffedBody {
		return hint
	}

	_ = json.Unmarshal(raw, &hint)
	return hint
}

// parseEnvelope extracts the message of a {success, message, data} response
// and data.id when data is an object.
func parseEnvelope(body []byte) (message string, dataID string) {
	var env struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return "", ""
	}

	message = env.Message

	var data struct {
		ID string `json:"id"`
	}
	if len(env.Data) > 0 && json.Unmarshal(env.Data, &data) == nil && len(data.ID) <= 36 {
		dataID = data.ID
	}

	return message, dataID
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
