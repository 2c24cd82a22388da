package service

import (
	"testing"

	"github.com/thesisai/backend/internal/model"
	"github.com/thesisai/backend/internal/repository"
)

type mockSectionRepo struct {
	sections map[string]*model.ChapterSection
}

func sectionKey(thesisID, chapterID, sectionID string) string {
	return thesisID + "/" + chapterID + "/" + sectionID
}

// Get 获取小节
func (m *mockSectionRepo) Get(thesisID, chapterID, sectionID string) (*model.ChapterSection, error) {
	section, ok := m.sections[sectionKey(thesisID, chapterID, sectionID)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return section, nil
}

// ListByChapter 获取章节下小节
func (m *mockSectionRepo) ListByChapter(thesisID, chapterID string) ([]model.ChapterSection, error) {
	return nil, nil
}

// Upsert 插入或更新小节
func (m *mockSectionRepo) Upsert(section *model.ChapterSection) error {
	if m.sections == nil {
		m.sections = make(map[string]*model.ChapterSection)
	}
	m.sections[sectionKey(section.ThesisID, section.ChapterID, section.SectionID)] = section
	return nil
}

// TestSectionSaveComputesHash 验证保存时写入内容哈希
func TestSectionSaveComputesHash(t *testing.T) {
	repo := &mockSectionRepo{}
	svc := NewSectionService(repo)

	section, err := svc.Save("t-1", "chapter-1", "1.1", "Introduction text.")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if section.ContentHash == nil || *section.ContentHash != ContentHash("Introduction text.") {
		t.Fatalf("unexpected content hash: %v", section.ContentHash)
	}
}

// TestSectionSaveRejectsUnknownChapter 验证章节槽位校验
func TestSectionSaveRejectsUnknownChapter(t *testing.T) {
	svc := NewSectionService(&mockSectionRepo{})

	if _, err := svc.Save("t-1", "chapter-6", "1.1", "text"); err == nil {
		t.Fatal("expected error for unknown chapter slot")
	}
	if _, err := svc.Save("t-1", "chapter-1", "  ", "text"); err == nil {
		t.Fatal("expected error for blank section id")
	}
}

// TestApplyRevisionOverwritesContent 验证采纳修订覆盖小节内容并更新哈希
func TestApplyRevisionOverwritesContent(t *testing.T) {
	repo := &mockSectionRepo{}
	svc := NewSectionService(repo)

	if _, err := svc.Save("t-1", "chapter-2", "2.1", "Old text."); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := svc.ApplyRevision("t-1", "chapter-2", "2.1", "Revised text."); err != nil {
		t.Fatalf("ApplyRevision error: %v", err)
	}

	section, err := svc.Get("t-1", "chapter-2", "2.1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if section.Content != "Revised text." {
		t.Fatalf("expected revised content, got %q", section.Content)
	}
	if *section.ContentHash != ContentHash("Revised text.") {
		t.Fatalf("hash not updated: %v", *section.ContentHash)
	}
}

// TestApplyRevisionRejectsEmptyText 验证空的修订文本被拒绝
func TestApplyRevisionRejectsEmptyText(t *testing.T) {
	svc := NewSectionService(&mockSectionRepo{})

	if _, err := svc.ApplyRevision("t-1", "chapter-1", "1.1", "   "); err == nil {
		t.Fatal("expected error for empty revised text")
	}
}
