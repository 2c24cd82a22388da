package repository

import (
	"errors"
	"time"

	"github.com/thesisai/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sectionRepository 实现
type sectionRepository struct {
	db *gorm.DB
}

// NewChapterSectionRepository 创建 Repository 实例
func NewChapterSectionRepository(db *gorm.DB) ChapterSectionRepository {
	return &sectionRepository{db: db}
}

// Get 按 thesis/chapter/section 定位小节
func (r *sectionRepository) Get(thesisID, chapterID, sectionID string) (*model.ChapterSection, error) {
	var section model.ChapterSection
	result := r.db.Where("thesis_id = ? AND chapter_id = ? AND section_id = ?",
		thesisID, chapterID, sectionID).First(&section)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &section, nil
}

// ListByChapter 获取章节下全部小节
func (r *sectionRepository) ListByChapter(thesisID, chapterID string) ([]model.ChapterSection, error) {
	var sections []model.ChapterSection
	result := r.db.Where("thesis_id = ? AND chapter_id = ?", thesisID, chapterID).
		Order("section_id ASC").
		Find(&sections)
	return sections, result.Error
}

// Upsert 按地址唯一键写入小节文本
func (r *sectionRepository) Upsert(section *model.ChapterSection) error {
	section.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "thesis_id"}, {Name: "chapter_id"}, {Name: "section_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"content", "content_hash", "updated_at"}),
	}).Create(section).Error
}
