package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapstream/snapstream-api/pkg/logger"
)

// NewRouter wires every handler onto the API surface. Shared by the server
// binary and the HTTP tests.
func NewRouter(
	accountHandler *AccountHandler,
	mediaHandler *MediaHandler,
	userHandler *UserHandler,
	notificationHandler *NotificationHandler,
	log logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/register", accountHandler.Register)
		api.POST("/login", accountHandler.Login)

		mediaRoutes := api.Group("/media")
		{
			mediaRoutes.GET("", mediaHandler.ListMedia)
			mediaRoutes.POST("", mediaHandler.CreateMedia)
			mediaRoutes.POST("/upload", mediaHandler.UploadMedia)
			mediaRoutes.PUT("/:id/analysis", mediaHandler.AttachAnalysis)
			mediaRoutes.DELETE("/:id", mediaHandler.DeleteMedia)
		}

		api.GET("/users", userHandler.ListUsers)
		api.GET("/notifications", notificationHandler.ListNotifications)
	}

	return router
}
