package repository

import (
	"github.com/thesisai/backend/internal/model"
	"gorm.io/gorm"
)

// messageRepository 实现
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建 Repository 实例
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create 写入消息
func (r *messageRepository) Create(msg *model.Message) error {
	return r.db.Create(msg).Error
}

// ListByThesis 按时间顺序获取论文下的全部消息
func (r *messageRepository) ListByThesis(thesisID string) ([]model.Message, error) {
	var msgs []model.Message
	result := r.db.Where("thesis_id = ?", thesisID).
		Order("created_at ASC, id ASC").
		Find(&msgs)
	return msgs, result.Error
}

// MarkRead 将他人发送的未读消息置为已读，返回影响行数
func (r *messageRepository) MarkRead(thesisID, readerID string) (int64, error) {
	result := r.db.Model(&model.Message{}).
		Where("thesis_id = ? AND sender_id <> ? AND read = ?", thesisID, readerID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}
