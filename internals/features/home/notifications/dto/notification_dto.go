package dto

import "laporkampus_backend/internals/features/home/notifications/model"

// ================== REQUEST ==================
type MarkReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// ================== RESPONSE ==================
type NotificationListResponse struct {
	Items       []model.Notification `json:"items"`
	UnreadCount int                  `json:"unread_count"`
}
