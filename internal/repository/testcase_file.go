package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/drmoti/moti-backend/internal/common"
	"github.com/drmoti/moti-backend/internal/domain"
)

// fileEntry JSON 파일 내 항목 형태
type fileEntry struct {
	Text          string `json:"text"`
	Description   string `json:"description"`
	ExpectedScore string `json:"expectedScore"`
	ExpectedLevel string `json:"expectedLevel"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// fileDocument 파일 전체 구조: {"testCases": {이름: 항목}}
type fileDocument struct {
	TestCases map[string]fileEntry `json:"testCases"`
}

// FileTestCaseStore JSON 파일 기반 테스트 케이스 저장소.
// DB 없이 기동할 때의 대체 구현이다.
type FileTestCaseStore struct {
	path string
	mu   sync.Mutex
}

// NewFileTestCaseStore creates a new FileTestCaseStore
func NewFileTestCaseStore(path string) *FileTestCaseStore {
	return &FileTestCaseStore{path: path}
}

// List 전체 테스트 케이스 조회 (이름 순)
func (s *FileTestCaseStore) List() ([]domain.TestCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc.TestCases))
	for name := range doc.TestCases {
		names = append(names, name)
	}
	sort.Strings(names)

	cases := make([]domain.TestCase, 0, len(names))
	for _, name := range names {
		cases = append(cases, toDomain(name, doc.TestCases[name]))
	}
	return cases, nil
}

// GetByName 이름으로 조회
func (s *FileTestCaseStore) GetByName(name string) (*domain.TestCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	entry, ok := doc.TestCases[name]
	if !ok {
		return nil, common.ErrTestCaseNotFound
	}
	tc := toDomain(name, entry)
	return &tc, nil
}

// Save 신규 저장 또는 동명 케이스 갱신
func (s *FileTestCaseStore) Save(tc *domain.TestCase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	if tc.CreatedAt.IsZero() {
		tc.CreatedAt = time.Now()
	}
	doc.TestCases[tc.Name] = fileEntry{
		Text:          tc.Text,
		Description:   tc.Description,
		ExpectedScore: tc.ExpectedScore,
		ExpectedLevel: tc.ExpectedLevel,
		CreatedAt:     tc.CreatedAt.Format(time.RFC3339),
	}

	return s.store(doc)
}

func (s *FileTestCaseStore) load() (*fileDocument, error) {
	doc := &fileDocument{TestCases: map[string]fileEntry{}}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("테스트 케이스 파일 읽기 실패: %w", err)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("테스트 케이스 파일 파싱 실패: %w", err)
	}
	if doc.TestCases == nil {
		doc.TestCases = map[string]fileEntry{}
	}
	return doc, nil
}

func (s *FileTestCaseStore) store(doc *fileDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("테스트 케이스 디렉터리 생성 실패: %w", err)
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

func toDomain(name string, e fileEntry) domain.TestCase {
	created, _ := time.Parse(time.RFC3339, e.CreatedAt)
	return domain.TestCase{
		Name:          name,
		Text:          e.Text,
		Description:   e.Description,
		ExpectedScore: e.ExpectedScore,
		ExpectedLevel: e.ExpectedLevel,
		CreatedAt:     created,
	}
}
