package domain

import "time"

// TestCase 사용자가 등록한 분석 테스트 케이스
type TestCase struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"column:name;size:100;uniqueIndex" json:"name"`
	Text          string    `gorm:"column:text;type:text" json:"text"`
	Description   string    `gorm:"column:description;size:500" json:"description"`
	ExpectedScore string    `gorm:"column:expected_score;size:50" json:"expectedScore"`
	ExpectedLevel string    `gorm:"column:expected_level;size:20" json:"expectedLevel"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name
func (TestCase) TableName() string {
	return "moti_test_case"
}

// SaveTestCaseRequest 테스트 케이스 등록 요청
type SaveTestCaseRequest struct {
	Name          string `json:"name" binding:"required"`
	Text          string `json:"text" binding:"required"`
	Description   string `json:"description"`
	ExpectedScore string `json:"expectedScore"`
	ExpectedLevel string `json:"expectedLevel"`
}

// AnalyzeRequest 분석 요청
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// SwitchJudgeRequest 판단 백엔드 교체 요청
type SwitchJudgeRequest struct {
	LLMType string `json:"llmType" binding:"required"`
}

// LLMStatus 판단 백엔드 상태
type LLMStatus struct {
	CurrentLLM    string            `json:"currentLLM"`
	AvailableLLMs map[string]bool   `json:"availableLLMs"`
	APIKeys       map[string]string `json:"apiKeys"`
}
