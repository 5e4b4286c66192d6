package routes

import (
	"tripbudget/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
)

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.GET("/:session_id", sessionHandler.GetSession)
		sessions.POST("/:session_id/close", sessionHandler.CloseSession)
		sessions.POST("/:session_id/restore", sessionHandler.RestoreSnapshot)
		sessions.POST("/:session_id/changes", sessionHandler.ApplyChange)
		sessions.POST("/:session_id/validate", sessionHandler.ValidateChange)
		sessions.GET("/:session_id/metrics", sessionHandler.GetMetrics)
	}
}
