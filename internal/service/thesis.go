package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thesisai/backend/internal/model"
	"github.com/thesisai/backend/internal/repository"
)

// ThesisService 论文项目管理
type ThesisService struct {
	thesisRepo repository.ThesisRepository
}

// NewThesisService 创建论文服务
func NewThesisService(thesisRepo repository.ThesisRepository) *ThesisService {
	return &ThesisService{thesisRepo: thesisRepo}
}

// CreateThesisRequest 创建论文的输入
type CreateThesisRequest struct {
	UserID string `json:"user_id"`
	Title  string `json:"title"`
}

// Create 创建论文项目
func (s *ThesisService) Create(req CreateThesisRequest) (*model.Thesis, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &InvalidInputError{Field: "title", Reason: "must not be empty"}
	}

	thesis := &model.Thesis{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Title:     req.Title,
		Status:    "in_progress",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.thesisRepo.Create(thesis); err != nil {
		return nil, err
	}
	return thesis, nil
}

// Get 获取论文详情
func (s *ThesisService) Get(id string) (*model.Thesis, error) {
	return s.thesisRepo.Get(id)
}

// GetByUser 获取用户的论文列表
func (s *ThesisService) GetByUser(userID string) ([]model.Thesis, error) {
	return s.thesisRepo.GetByUser(userID)
}

// Delete 删除论文及其批注、小节与消息
func (s *ThesisService) Delete(id string) error {
	return s.thesisRepo.Delete(id)
}
