package handler

import (
	"net/http"

	"github.com/drmoti/moti-backend/internal/common"
	"github.com/drmoti/moti-backend/internal/domain"
	"github.com/drmoti/moti-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AnalyzeHandler handles text analysis requests
type AnalyzeHandler struct {
	service *service.AnalysisService
}

// NewAnalyzeHandler creates a new AnalyzeHandler
func NewAnalyzeHandler(service *service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{service: service}
}

// Analyze handles POST /api/v1/analyze
// @Summary 텍스트 위험도 분석
// @Description 한국어 텍스트의 마약 은어 위험도를 분석합니다
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body domain.AnalyzeRequest true "분석할 텍스트"
// @Success 200 {object} analyzer.Result
// @Failure 400 {object} common.APIResponse
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "text 필드가 필요합니다", err)
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "분석 실패", err)
		return
	}

	// 결과 객체 자체가 응답 계약이므로 APIResponse로 감싸지 않는다
	c.JSON(http.StatusOK, result)
}
