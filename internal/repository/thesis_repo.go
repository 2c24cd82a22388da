package repository

import (
	"errors"

	"github.com/thesisai/backend/internal/model"
	"gorm.io/gorm"
)

// thesisRepository 实现
type thesisRepository struct {
	db *gorm.DB
}

// NewThesisRepository 创建 Repository 实例
func NewThesisRepository(db *gorm.DB) ThesisRepository {
	return &thesisRepository{db: db}
}

// Create 创建论文项目
func (r *thesisRepository) Create(thesis *model.Thesis) error {
	return r.db.Create(thesis).Error
}

// Get 根据ID获取论文（含批注与小节）
func (r *thesisRepository) Get(id string) (*model.Thesis, error) {
	var thesis model.Thesis
	result := r.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Preload("Sections").First(&thesis, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &thesis, nil
}

// GetByUser 获取用户的论文列表
func (r *thesisRepository) GetByUser(userID string) ([]model.Thesis, error) {
	var theses []model.Thesis
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&theses)
	return theses, result.Error
}

// Save 保存论文
func (r *thesisRepository) Save(thesis *model.Thesis) error {
	return r.db.Save(thesis).Error
}

// Delete 删除论文（批注、小节一并删除）
func (r *thesisRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.AdvisorComment{}, "thesis_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.ChapterSection{}, "thesis_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Message{}, "thesis_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Thesis{}, "id = ?", id).Error
	})
}
