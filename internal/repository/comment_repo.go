package repository

import (
	"errors"

	"github.com/thesisai/backend/internal/model"
	"gorm.io/gorm"
)

// commentRepository 实现
type commentRepository struct {
	db *gorm.DB
}

// NewAdvisorCommentRepository 创建 Repository 实例
func NewAdvisorCommentRepository(db *gorm.DB) AdvisorCommentRepository {
	return &commentRepository{db: db}
}

// Create 创建批注
func (r *commentRepository) Create(comment *model.AdvisorComment) error {
	return r.db.Create(comment).Error
}

// Get 根据ID获取批注
func (r *commentRepository) Get(id string) (*model.AdvisorComment, error) {
	var comment model.AdvisorComment
	result := r.db.First(&comment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &comment, nil
}

// ListByThesis 获取论文下全部批注
func (r *commentRepository) ListByThesis(thesisID string) ([]model.AdvisorComment, error) {
	var comments []model.AdvisorComment
	result := r.db.Where("thesis_id = ?", thesisID).
		Order("created_at ASC, id ASC").
		Find(&comments)
	return comments, result.Error
}

// ListByThesisAndStatus 按状态过滤批注
func (r *commentRepository) ListByThesisAndStatus(thesisID, status string) ([]model.AdvisorComment, error) {
	var comments []model.AdvisorComment
	result := r.db.Where("thesis_id = ? AND status = ?", thesisID, status).
		Order("created_at ASC, id ASC").
		Find(&comments)
	return comments, result.Error
}

// ListPending 获取论文下所有待处理批注，跨章节，不保证顺序
func (r *commentRepository) ListPending(thesisID string) ([]model.AdvisorComment, error) {
	if thesisID == "" {
		return []model.AdvisorComment{}, nil
	}
	return r.ListByThesisAndStatus(thesisID, model.CommentStatusPending)
}

// Save 保存批注
func (r *commentRepository) Save(comment *model.AdvisorComment) error {
	return r.db.Save(comment).Error
}

// Delete 删除批注
func (r *commentRepository) Delete(id string) error {
	return r.db.Delete(&model.AdvisorComment{}, "id = ?", id).Error
}
