package activity

import (
	"strings"
	"time"
)

// Filter narrows a listing. Every field is optional and all set fields are
// combined with AND.
type Filter struct {
	UserID     string
	BranchID   string
	Type       string
	Category   string
	Priority   string
	UserRole   string
	Status     string
	EntityType string
	EntityID   string

	From *time.Time
	To   *time.Time

	// Q is a case-insensitive substring matched against title, description,
	// entityName, userEmail, type and category.
	Q string

	Sort string
}

const DefaultSort = "-timestamp"

var sortColumns = map[string]string{
	"timestamp":  "timestamp",
	"type":       "type",
	"category":   "category",
	"priority":   "priority",
	"status":     "status",
	"userRole":   "user_role",
	"userEmail":  "user_email",
	"title":      "title",
	"branchName": "branch_name",
	"entityType": "entity_type",
}

// SortColumn resolves a sort key such as "-timestamp" to its column. The
// second result reports descending order; ok is false for unknown keys.
func SortColumn(key string) (column string, desc bool, ok bool) {
	if key == "" {
		key = DefaultSort
	}
	if strings.HasPrefix(key, "-") {
		desc = true
		key = key[1:]
	}
	column, ok = sortColumns[key]
	return column, desc, ok
}

// TimeRange is a Stats window.
type TimeRange string

const (
	Range1h  TimeRange = "1h"
	Range24h TimeRange = "24h"
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
)

func (r TimeRange) Duration() (time.Duration, bool) {
	switch r {
	case Range1h:
		return time.Hour, true
	case Range24h, "":
		return 24 * time.Hour, true
	case Range7d:
		return 7 * 24 * time.Hour, true
	case Range30d:
		return 30 * 24 * time.Hour, true
	}
	return 0, false
}

type StatBucket struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Count    int64  `json:"count"`
}
