package response

import (
	"shopfront/internal/usecase/notify"
)

type NotificationResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	OrderID   string `json:"order_id,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

func FromNotifications(items []notify.Notification) *NotificationListResponse {
	res := make([]NotificationResponse, len(items))
	for i, n := range items {
		res[i] = NotificationResponse{
			ID:        n.ID.String(),
			Kind:      n.Kind,
			Message:   n.Message,
			OrderID:   n.OrderID,
			CreatedAt: n.CreatedAt.Unix(),
		}
	}
	return &NotificationListResponse{Notifications: res}
}
