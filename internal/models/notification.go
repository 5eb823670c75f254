package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Notification struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	PGID     string `gorm:"size:36;not null;index:idx_notifications_pg_created,priority:1" json:"pgId"`
	BranchID string `gorm:"size:36;index:idx_notifications_branch_created,priority:1" json:"branchId,omitempty"`
	// Empty UserID broadcasts to every user of RoleScope.
	UserID    string `gorm:"size:36;index:idx_notifications_user_read_created,priority:1" json:"userId,omitempty"`
	RoleScope string `gorm:"size:20;not null;default:'admin'" json:"roleScope"`

	Type    string            `gorm:"size:50;not null" json:"type"`
	Title   string            `gorm:"size:200;not null" json:"title"`
	Message string            `gorm:"size:2000;not null" json:"message"`
	Data    datatypes.JSONMap `json:"data,omitempty"`

	IsRead     bool       `gorm:"not null;default:false;index:idx_notifications_user_read_created,priority:2" json:"isRead"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
	IsArchived bool       `gorm:"not null;default:false" json:"isArchived"`

	CreatedBy string `gorm:"size:36" json:"createdBy,omitempty"`

	CreatedAt time.Time `gorm:"index:idx_notifications_pg_created,priority:2;index:idx_notifications_branch_created,priority:2;index:idx_notifications_user_read_created,priority:3" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n *Notification) BeforeCreate(_ *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
