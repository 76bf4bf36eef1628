package handler

import (
	"errors"
	"net/http"

	"github.com/drmoti/moti-backend/internal/common"
	"github.com/drmoti/moti-backend/internal/domain"
	"github.com/drmoti/moti-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// LLMHandler handles judgment backend status and switching
type LLMHandler struct {
	service *service.AnalysisService
}

// NewLLMHandler creates a new LLMHandler
func NewLLMHandler(service *service.AnalysisService) *LLMHandler {
	return &LLMHandler{service: service}
}

// Status handles GET /api/v1/llm-status
// @Summary 판단 백엔드 상태 조회
// @Tags llm
// @Produce json
// @Success 200 {object} domain.LLMStatus
// @Router /llm-status [get]
func (h *LLMHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status())
}

// Switch handles POST /api/v1/llm-switch
// @Summary 판단 백엔드 교체
// @Description 새 파이프라인 인스턴스를 만들어 교체합니다 (관리자 전용)
// @Tags llm
// @Accept json
// @Produce json
// @Param request body domain.SwitchJudgeRequest true "백엔드 종류"
// @Success 200 {object} common.APIResponse
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /llm-switch [post]
func (h *LLMHandler) Switch(c *gin.Context) {
	var req domain.SwitchJudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "llmType 필드가 필요합니다", err)
		return
	}

	if err := h.service.Switch(req.LLMType); err != nil {
		if errors.Is(err, common.ErrUnknownBackend) {
			common.ErrorResponse(c, http.StatusBadRequest, "유효하지 않은 백엔드입니다", err)
			return
		}
		common.ErrorResponse(c, http.StatusBadRequest, "백엔드 교체 실패", err)
		return
	}

	common.SuccessResponse(c, gin.H{
		"message": "판단 백엔드가 교체되었습니다",
		"backend": req.LLMType,
	})
}
