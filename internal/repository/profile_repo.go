package repository

import (
	"errors"

	"github.com/thesisai/backend/internal/model"
	"gorm.io/gorm"
)

// profileRepository 实现
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository 创建 Repository 实例
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Get 获取用户档案
func (r *profileRepository) Get(userID string) (*model.Profile, error) {
	var profile model.Profile
	result := r.db.First(&profile, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &profile, nil
}

// Save 保存用户档案
func (r *profileRepository) Save(profile *model.Profile) error {
	return r.db.Save(profile).Error
}
