package migration

import (
	"fmt"

	"github.com/drmoti/moti-backend/internal/domain"
	"gorm.io/gorm"
)

// Run 스키마 마이그레이션 실행
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.TestCase{}); err != nil {
		return fmt.Errorf("테스트 케이스 테이블 마이그레이션 실패: %w", err)
	}
	return nil
}
