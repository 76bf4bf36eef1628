package handler

import (
	"net/http"

	"github.com/drmoti/moti-backend/internal/common"
	"github.com/drmoti/moti-backend/internal/domain"
	"github.com/drmoti/moti-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// TestCaseHandler handles test case management requests
type TestCaseHandler struct {
	service *service.TestCaseService
}

// NewTestCaseHandler creates a new TestCaseHandler
func NewTestCaseHandler(service *service.TestCaseService) *TestCaseHandler {
	return &TestCaseHandler{service: service}
}

// List handles GET /api/v1/test-cases
// @Summary 테스트 케이스 목록 조회
// @Tags test-cases
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /test-cases [get]
func (h *TestCaseHandler) List(c *gin.Context) {
	cases, err := h.service.List()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "테스트 케이스 조회 실패", err)
		return
	}
	common.SuccessResponse(c, cases)
}

// Save handles POST /api/v1/test-cases
// @Summary 테스트 케이스 등록
// @Description 테스트 케이스를 등록합니다 (관리자 전용)
// @Tags test-cases
// @Accept json
// @Produce json
// @Param request body domain.SaveTestCaseRequest true "테스트 케이스"
// @Success 200 {object} common.APIResponse
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /test-cases [post]
func (h *TestCaseHandler) Save(c *gin.Context) {
	var req domain.SaveTestCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "name과 text 필드가 필요합니다", err)
		return
	}

	tc, err := h.service.Save(&req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "테스트 케이스 저장 실패", err)
		return
	}

	common.SuccessResponse(c, tc)
}
