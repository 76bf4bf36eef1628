package repository

import (
	"errors"

	"github.com/drmoti/moti-backend/internal/common"
	"github.com/drmoti/moti-backend/internal/domain"
	"gorm.io/gorm"
)

// TestCaseStore 테스트 케이스 저장소 인터페이스.
// DB가 있으면 MySQL, 없으면 JSON 파일 구현이 선택된다.
type TestCaseStore interface {
	List() ([]domain.TestCase, error)
	GetByName(name string) (*domain.TestCase, error)
	Save(tc *domain.TestCase) error
}

// TestCaseRepository MySQL 기반 테스트 케이스 저장소
type TestCaseRepository struct {
	db *gorm.DB
}

// NewTestCaseRepository creates a new TestCaseRepository
func NewTestCaseRepository(db *gorm.DB) *TestCaseRepository {
	return &TestCaseRepository{db: db}
}

// List 전체 테스트 케이스 조회 (등록 순)
func (r *TestCaseRepository) List() ([]domain.TestCase, error) {
	var cases []domain.TestCase
	if err := r.db.Order("id ASC").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

// GetByName 이름으로 조회
func (r *TestCaseRepository) GetByName(name string) (*domain.TestCase, error) {
	var tc domain.TestCase
	err := r.db.Where("name = ?", name).First(&tc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrTestCaseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tc, nil
}

// Save 신규 저장 또는 동명 케이스 갱신
func (r *TestCaseRepository) Save(tc *domain.TestCase) error {
	var existing domain.TestCase
	err := r.db.Where("name = ?", tc.Name).First(&existing).Error
	if err == nil {
		tc.ID = existing.ID
		tc.CreatedAt = existing.CreatedAt
		return r.db.Save(tc).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(tc).Error
}
