package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/drmoti/moti-backend/internal/common"
	"github.com/drmoti/moti-backend/internal/domain"
)

func newFileStore(t *testing.T) *FileTestCaseStore {
	t.Helper()
	return NewFileTestCaseStore(filepath.Join(t.TempDir(), "data", "test-cases.json"))
}

func TestFileStoreEmpty(t *testing.T) {
	store := newFileStore(t)

	cases, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cases) != 0 {
		t.Errorf("cases = %v, want empty", cases)
	}

	if _, err := store.GetByName("없음"); !errors.Is(err, common.ErrTestCaseNotFound) {
		t.Errorf("err = %v, want ErrTestCaseNotFound", err)
	}
}

func TestFileStoreSaveAndGet(t *testing.T) {
	store := newFileStore(t)

	tc := &domain.TestCase{
		Name:          "대마거래",
		Text:          "dm 가능? 🍁 가격 말해줘",
		Description:   "고위험 거래 케이스",
		ExpectedScore: "70+",
		ExpectedLevel: "high",
	}
	if err := store.Save(tc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if tc.CreatedAt.IsZero() {
		t.Error("Save must fill CreatedAt")
	}

	got, err := store.GetByName("대마거래")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if got.Text != tc.Text || got.ExpectedLevel != "high" {
		t.Errorf("got = %+v", got)
	}
}

func TestFileStoreUpsertByName(t *testing.T) {
	store := newFileStore(t)

	if err := store.Save(&domain.TestCase{Name: "케이스", Text: "처음"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(&domain.TestCase{Name: "케이스", Text: "수정됨"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cases, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("cases = %d, want 1 (upsert)", len(cases))
	}
	if cases[0].Text != "수정됨" {
		t.Errorf("text = %q, want 수정됨", cases[0].Text)
	}
}

func TestFileStoreListSorted(t *testing.T) {
	store := newFileStore(t)

	for _, name := range []string{"나", "다", "가"} {
		if err := store.Save(&domain.TestCase{Name: name, Text: "x"}); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	cases, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"가", "나", "다"}
	for i, w := range want {
		if cases[i].Name != w {
			t.Errorf("cases[%d].Name = %q, want %q", i, cases[i].Name, w)
		}
	}
}

func TestFileStoreIgnoresCorruptFileGracefully(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewFileTestCaseStore(path)
	if _, err := store.List(); err == nil {
		t.Error("expected parse error for corrupt file")
	}
}
