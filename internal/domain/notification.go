package domain

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// MaxNotifications bounds the retained notification list; the oldest entry
// is evicted when an insert would exceed it.
const MaxNotifications = 20

type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
