package dto

import "github.com/BruksfildServices01/pg-backoffice/internal/models"

type NotificationList struct {
	Items      []models.Notification `json:"items"`
	Pagination Pagination            `json:"pagination"`
}

type MarkAllReadResult struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}

type UnreadCount struct {
	Unread int64 `json:"unread"`
}
