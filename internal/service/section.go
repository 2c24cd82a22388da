package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/thesisai/backend/internal/model"
	"github.com/thesisai/backend/internal/repository"
)

// SectionService 章节小节文本管理
// 小节文本只通过显式保存或采纳修订结果两条路径变化
type SectionService struct {
	sectionRepo repository.ChapterSectionRepository
}

// NewSectionService 创建小节服务
func NewSectionService(sectionRepo repository.ChapterSectionRepository) *SectionService {
	return &SectionService{sectionRepo: sectionRepo}
}

// Get 获取小节
func (s *SectionService) Get(thesisID, chapterID, sectionID string) (*model.ChapterSection, error) {
	return s.sectionRepo.Get(thesisID, chapterID, sectionID)
}

// ListByChapter 获取章节下全部小节
func (s *SectionService) ListByChapter(thesisID, chapterID string) ([]model.ChapterSection, error) {
	return s.sectionRepo.ListByChapter(thesisID, chapterID)
}

// Save 保存小节文本并记录内容快照哈希
func (s *SectionService) Save(thesisID, chapterID, sectionID, content string) (*model.ChapterSection, error) {
	if !model.IsValidChapterID(chapterID) {
		return nil, &InvalidInputError{Field: "chapter_id", Reason: "unknown chapter slot"}
	}
	if strings.TrimSpace(sectionID) == "" {
		return nil, &InvalidInputError{Field: "section_id", Reason: "must not be empty"}
	}

	hash := ContentHash(content)
	section := &model.ChapterSection{
		ThesisID:    thesisID,
		ChapterID:   chapterID,
		SectionID:   sectionID,
		Content:     content,
		ContentHash: &hash,
		UpdatedAt:   time.Now(),
	}
	if err := s.sectionRepo.Upsert(section); err != nil {
		return nil, err
	}
	return section, nil
}

// ApplyRevision 把修订结果的 revised_text 写入小节
// 这是采纳修订的显式步骤，与生成请求本身分离；并发修订以最后一次成功写入为准
func (s *SectionService) ApplyRevision(thesisID, chapterID, sectionID, revisedText string) (*model.ChapterSection, error) {
	if strings.TrimSpace(revisedText) == "" {
		return nil, &InvalidInputError{Field: "revised_text", Reason: "must not be empty"}
	}
	return s.Save(thesisID, chapterID, sectionID, revisedText)
}

// ContentHash 小节文本的 sha256 快照哈希
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
