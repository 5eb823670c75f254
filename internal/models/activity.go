package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity is one immutable entry of the back-office audit trail.
type Activity struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	Type        string `gorm:"size:50;not null;index:idx_activities_type_ts,priority:1" json:"type"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"size:1000" json:"description,omitempty"`

	UserID    string `gorm:"size:36;not null;index:idx_activities_user_ts,priority:1" json:"userId"`
	UserEmail string `gorm:"size:255" json:"userEmail,omitempty"`
	UserRole  string `gorm:"size:20;not null" json:"userRole"`

	EntityType string `gorm:"size:30;index:idx_activities_entity,priority:1" json:"entityType,omitempty"`
	EntityID   string `gorm:"size:36;index:idx_activities_entity,priority:2" json:"entityId,omitempty"`
	EntityName string `gorm:"size:255" json:"entityName,omitempty"`

	BranchID   string `gorm:"size:36;index:idx_activities_branch_ts,priority:1" json:"branchId,omitempty"`
	BranchName string `gorm:"size:255" json:"branchName,omitempty"`

	Priority string `gorm:"size:20;not null;default:'normal';index:idx_activities_priority_ts,priority:1" json:"priority"`
	Category string `gorm:"size:30;not null;index:idx_activities_category_ts,priority:1" json:"category"`

	Metadata datatypes.JSONMap `json:"metadata,omitempty"`

	IPAddress string `gorm:"size:64" json:"ipAddress,omitempty"`
	UserAgent string `gorm:"size:512" json:"userAgent,omitempty"`

	Status       string `gorm:"size:20;not null;default:'success'" json:"status"`
	ErrorMessage string `gorm:"size:1000" json:"errorMessage,omitempty"`

	Timestamp time.Time `gorm:"not null;index:idx_activities_ts;index:idx_activities_user_ts,priority:2;index:idx_activities_type_ts,priority:2;index:idx_activities_branch_ts,priority:2;index:idx_activities_category_ts,priority:2;index:idx_activities_priority_ts,priority:2" json:"timestamp"`
}

func (a *Activity) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
