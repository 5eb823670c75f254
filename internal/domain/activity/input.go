package activity

// Input is what callers hand to the recorder. Id and timestamp are always
// assigned server side.
type Input struct {
	Type        Type   `json:"type" binding:"required,activity_type"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`

	UserID    string `json:"userId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"max=255"`
	UserRole  string `json:"userRole" binding:"required,user_role"`

	EntityType EntityType `json:"entityType" binding:"omitempty,entity_type"`
	EntityID   string     `json:"entityId" binding:"max=36"`
	EntityName string     `json:"entityName" binding:"max=255"`

	BranchID   string `json:"branchId" binding:"max=36"`
	BranchName string `json:"branchName" binding:"max=255"`

	Priority Priority `json:"priority" binding:"omitempty,activity_priority"`
	Category Category `json:"category" binding:"required,activity_category"`

	Metadata map[string]any `json:"metadata"`

	IPAddress string `json:"ipAddress" binding:"max=64"`
	UserAgent string `json:"userAgent" binding:"max=512"`

	Status       Status `json:"status" binding:"omitempty,activity_status"`
	ErrorMessage string `json:"errorMessage" binding:"max=1000"`
}

// ApplyDefaults fills priority and status when the caller left them empty.
func (in *Input) ApplyDefaults() {
	if in.Priority == "" {
		in.Priority = PriorityNormal
	}
	if in.Status == "" {
		in.Status = StatusSuccess
	}
}
