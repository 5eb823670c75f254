package dto

import (
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

// Subject describes the user or branch a ByUser/ByBranch listing is about.
type Subject struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ActivityList struct {
	Items      []models.Activity `json:"items"`
	Pagination Pagination        `json:"pagination"`
	Scope      string            `json:"scope,omitempty"`
	Subject    *Subject          `json:"subject,omitempty"`
}

type ActivityStats struct {
	TimeRange string                `json:"timeRange"`
	Since     string                `json:"since"`
	Total     int64                 `json:"total"`
	Buckets   []activity.StatBucket `json:"buckets"`
	Scope     string                `json:"scope,omitempty"`
}

type Timeline struct {
	EntityType string            `json:"entityType"`
	EntityID   string            `json:"entityId"`
	Items      []models.Activity `json:"items"`
	Scope      string            `json:"scope,omitempty"`
}

type PurgeResult struct {
	Cutoff  string `json:"cutoff"`
	Batches int    `json:"batches"`
	Deleted int64  `json:"deleted"`

	// ArchiveKeys is empty when archiving is disabled or nothing matched.
	ArchiveKeys []string `json:"archiveKeys,omitempty"`
}
