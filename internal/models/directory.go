package models

// Directory entities are owned by the property-management domain. This
// service only reads them for branch resolution and display names.

type User struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Role     string `gorm:"size:20;not null" json:"role"`
	PGID     string `gorm:"size:36;index" json:"pgId,omitempty"`
	BranchID string `gorm:"size:36;index" json:"branchId,omitempty"`
}

type PG struct {
	ID      string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name    string `gorm:"size:200;not null" json:"name"`
	AdminID string `gorm:"size:36;index" json:"adminId"`
}

func (PG) TableName() string {
	return "pgs"
}

type Branch struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	PGID      string `gorm:"size:36;not null;index" json:"pgId"`
	Name      string `gorm:"size:200;not null" json:"name"`
	IsDefault bool   `gorm:"not null;default:false" json:"isDefault"`
}
