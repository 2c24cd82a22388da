package service

import (
	"errors"

	"github.com/thesisai/backend/internal/model"
	"github.com/thesisai/backend/internal/repository"
)

// ProfileService 用户档案与授权视图
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService 创建档案服务
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Get 获取档案，不存在时返回免费版学生档案
func (s *ProfileService) Get(userID string) (*model.Profile, error) {
	profile, err := s.profileRepo.Get(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.Profile{
				UserID: userID,
				Role:   string(model.RoleStudent),
				Plan:   model.PlanFree,
			}, nil
		}
		return nil, err
	}
	return profile, nil
}

// Save 保存档案
func (s *ProfileService) Save(profile *model.Profile) error {
	return s.profileRepo.Save(profile)
}

// ProfileView 返回给前端的档案视图
type ProfileView struct {
	Profile   *model.Profile `json:"profile"`
	Dashboard string         `json:"dashboard"`
	Features  []string       `json:"features"`
}

// View 组装档案视图：角色决定仪表盘，计划决定功能项
func (s *ProfileService) View(userID string) (*ProfileView, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	role, err := model.ParseRole(profile.Role)
	if err != nil {
		return nil, &InvalidInputError{Field: "role", Reason: err.Error()}
	}

	var features []string
	for _, f := range []model.Feature{
		model.FeatureBasicRevision,
		model.FeatureAdvisorRevision,
		model.FeaturePaperSearch,
	} {
		if profile.HasFeature(f) {
			features = append(features, string(f))
		}
	}

	return &ProfileView{
		Profile:   profile,
		Dashboard: role.Dashboard(),
		Features:  features,
	}, nil
}
