package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	notificationUC "github.com/snapstream/snapstream-api/internal/application/usecase/notification"
)

type NotificationHandler struct {
	listRecentUC *notificationUC.ListRecentUseCase
}

func NewNotificationHandler(listUC *notificationUC.ListRecentUseCase) *NotificationHandler {
	return &NotificationHandler{listRecentUC: listUC}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, err := h.listRecentUC.Execute(c.Request.Context(), notificationUC.ListRecentInput{Limit: limit})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]NotificationDTO, len(items))
	for i, n := range items {
		dtos[i] = ToNotificationDTO(n)
	}
	c.JSON(http.StatusOK, dtos)
}
