package service

import (
	"fmt"
	"time"

	"github.com/drmoti/moti-backend/internal/domain"
	"github.com/drmoti/moti-backend/internal/repository"
)

// TestCaseService 테스트 케이스 관리
type TestCaseService struct {
	store repository.TestCaseStore
}

// NewTestCaseService creates a new TestCaseService
func NewTestCaseService(store repository.TestCaseStore) *TestCaseService {
	return &TestCaseService{store: store}
}

// List 전체 테스트 케이스 조회
func (s *TestCaseService) List() ([]domain.TestCase, error) {
	cases, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("테스트 케이스 조회 실패: %w", err)
	}
	if cases == nil {
		cases = []domain.TestCase{}
	}
	return cases, nil
}

// Save 테스트 케이스 등록. 설명이 없으면 기본 설명을 채운다
func (s *TestCaseService) Save(req *domain.SaveTestCaseRequest) (*domain.TestCase, error) {
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Custom test case: %s", req.Name)
	}
	expectedScore := req.ExpectedScore
	if expectedScore == "" {
		expectedScore = "Unknown"
	}
	expectedLevel := req.ExpectedLevel
	if expectedLevel == "" {
		expectedLevel = "Unknown"
	}

	tc := &domain.TestCase{
		Name:          req.Name,
		Text:          req.Text,
		Description:   description,
		ExpectedScore: expectedScore,
		ExpectedLevel: expectedLevel,
		CreatedAt:     time.Now(),
	}
	if err := s.store.Save(tc); err != nil {
		return nil, fmt.Errorf("테스트 케이스 저장 실패: %w", err)
	}
	return tc, nil
}
