package api

import (
	"net/http"

	resdto "shopfront/internal/handler/dto/response"
	"shopfront/internal/usecase/notify"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	feed *notify.Feed
}

func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// @Summary Drain notifications
// @Description Pending approval notices; each is returned exactly once
// @Tags notifications
// @Produce json
// @Success 200 {object} resdto.NotificationListResponse
// @Router /notifications [get]
func (h *NotificationHandler) Drain(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromNotifications(h.feed.Drain()))
}
