package repository

import (
	"errors"

	"github.com/thesisai/backend/internal/model"
	"gorm.io/gorm"
)

// onboardingRepository 实现
type onboardingRepository struct {
	db *gorm.DB
}

// NewOnboardingRepository 创建 Repository 实例
func NewOnboardingRepository(db *gorm.DB) OnboardingRepository {
	return &onboardingRepository{db: db}
}

// Get 获取用户引导进度
func (r *onboardingRepository) Get(userID string) (*model.OnboardingState, error) {
	var state model.OnboardingState
	result := r.db.First(&state, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &state, nil
}

// Save 保存引导进度
func (r *onboardingRepository) Save(state *model.OnboardingState) error {
	return r.db.Save(state).Error
}
