package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetNotifications      = "notifications retrieved successfully"
	MessageSuccessGenerateNotifications = "notifications generated successfully"
	MessageSuccessMarkNotificationRead  = "notification marked as read"

	MessageFailedGetNotifications      = "failed to retrieve notifications"
	MessageFailedGenerateNotifications = "failed to generate notifications"
	MessageFailedMarkNotificationRead  = "failed to mark notification as read"

	ErrNotificationNotFound = errors.New("notification not found")
)

type NotificationType string

const (
	NotificationFinancial       NotificationType = "financial"
	NotificationChef            NotificationType = "chef"
	NotificationPersonification NotificationType = "personification"
)

var NotificationTypes = []NotificationType{
	NotificationFinancial,
	NotificationChef,
	NotificationPersonification,
}

type (
	Notification struct {
		ID        string           `json:"id"`
		Type      NotificationType `json:"type"`
		Title     string           `json:"title"`
		Body      string           `json:"body"`
		ItemID    string           `json:"itemId"`
		CTA       string           `json:"cta"`
		Read      bool             `json:"read"`
		CreatedAt time.Time        `json:"createdAt"`
	}

	NotificationListResponse struct {
		Notifications []Notification `json:"notifications"`
		Unread        int            `json:"unread"`
	}
)
