package routes

import (
	"github.com/drmoti/moti-backend/internal/handler"
	"github.com/drmoti/moti-backend/internal/middleware"
	"github.com/drmoti/moti-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Setup configures v1 API routes
func Setup(
	router *gin.Engine,
	analyzeHandler *handler.AnalyzeHandler,
	testCaseHandler *handler.TestCaseHandler,
	llmHandler *handler.LLMHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")
	auth := middleware.JWTAuth(jwtManager)
	admin := middleware.RequireAdmin()

	// Analysis
	api.POST("/analyze", analyzeHandler.Analyze)

	// Test cases (등록은 관리자 전용)
	api.GET("/test-cases", testCaseHandler.List)
	api.POST("/test-cases", auth, admin, testCaseHandler.Save)

	// Judgment backend
	api.GET("/llm-status", llmHandler.Status)
	api.POST("/llm-switch", auth, admin, llmHandler.Switch)
}
