package service

import (
	"errors"
	"time"

	"github.com/thesisai/backend/internal/model"
	"github.com/thesisai/backend/internal/repository"
	"github.com/thesisai/backend/internal/service/statemachine"
)

// OnboardingService 新用户引导流程
type OnboardingService struct {
	onboardingRepo repository.OnboardingRepository
	sm             *statemachine.OnboardingStateMachine
}

// NewOnboardingService 创建引导服务
func NewOnboardingService(onboardingRepo repository.OnboardingRepository) *OnboardingService {
	return &OnboardingService{
		onboardingRepo: onboardingRepo,
		sm:             statemachine.NewOnboardingStateMachine(),
	}
}

// Get 获取用户引导进度，不存在时视为刚开始
func (s *OnboardingService) Get(userID string) (*model.OnboardingState, error) {
	state, err := s.onboardingRepo.Get(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.OnboardingState{
				UserID: userID,
				Step:   string(statemachine.StepWelcome),
			}, nil
		}
		return nil, err
	}
	return state, nil
}

// Advance 前进到下一步，只允许相邻步骤
func (s *OnboardingService) Advance(userID string) (*model.OnboardingState, error) {
	state, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	current := statemachine.OnboardingStep(state.Step)
	next := s.sm.Next(current)
	if err := s.sm.Transition(current, next, userID); err != nil {
		return nil, err
	}

	state.Step = string(next)
	state.UpdatedAt = time.Now()
	if err := s.onboardingRepo.Save(state); err != nil {
		return nil, err
	}
	return state, nil
}
