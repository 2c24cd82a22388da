package service

import (
	"testing"

	"github.com/thesisai/backend/internal/model"
	"github.com/thesisai/backend/internal/repository"
	"github.com/thesisai/backend/internal/service/statemachine"
)

type mockProfileStore struct {
	profiles map[string]*model.Profile
}

// Get 获取档案
func (m *mockProfileStore) Get(userID string) (*model.Profile, error) {
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return profile, nil
}

// Save 保存档案
func (m *mockProfileStore) Save(profile *model.Profile) error {
	if m.profiles == nil {
		m.profiles = make(map[string]*model.Profile)
	}
	m.profiles[profile.UserID] = profile
	return nil
}

// TestProfileGetDefaultsToFreeStudent 验证无档案时返回免费版学生档案
func TestProfileGetDefaultsToFreeStudent(t *testing.T) {
	svc := NewProfileService(&mockProfileStore{})

	profile, err := svc.Get("new-user")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if profile.Role != string(model.RoleStudent) || profile.Plan != model.PlanFree {
		t.Fatalf("unexpected default profile: %+v", profile)
	}
}

// TestProfileViewFeatures 验证视图按角色和计划组装
func TestProfileViewFeatures(t *testing.T) {
	store := &mockProfileStore{profiles: map[string]*model.Profile{
		"advisor-pro": {
			UserID: "advisor-pro",
			Role:   string(model.RoleAdvisor),
			Plan:   model.PlanProComplete,
		},
		"bad-role": {UserID: "bad-role", Role: "superuser"},
	}}
	svc := NewProfileService(store)

	view, err := svc.View("advisor-pro")
	if err != nil {
		t.Fatalf("View error: %v", err)
	}
	if view.Dashboard != "advisor-command-center" {
		t.Fatalf("unexpected dashboard: %q", view.Dashboard)
	}
	if len(view.Features) != 3 {
		t.Fatalf("expected all features for pro_complete, got %v", view.Features)
	}

	if _, err := svc.View("bad-role"); err == nil {
		t.Fatal("expected error for unknown role")
	}

	// 免费版默认档案只有文献检索
	view, err = svc.View("new-user")
	if err != nil {
		t.Fatalf("View error: %v", err)
	}
	if len(view.Features) != 1 || view.Features[0] != string(model.FeaturePaperSearch) {
		t.Fatalf("expected only paper search for free plan, got %v", view.Features)
	}
}

type mockOnboardingStore struct {
	states map[string]*model.OnboardingState
}

// Get 获取引导进度
func (m *mockOnboardingStore) Get(userID string) (*model.OnboardingState, error) {
	state, ok := m.states[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return state, nil
}

// Save 保存引导进度
func (m *mockOnboardingStore) Save(state *model.OnboardingState) error {
	if m.states == nil {
		m.states = make(map[string]*model.OnboardingState)
	}
	m.states[state.UserID] = state
	return nil
}

// TestOnboardingAdvanceFromScratch 验证从零开始逐步推进到完成
func TestOnboardingAdvanceFromScratch(t *testing.T) {
	svc := NewOnboardingService(&mockOnboardingStore{})

	state, err := svc.Get("u-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if state.Step != string(statemachine.StepWelcome) {
		t.Fatalf("expected welcome as initial step, got %q", state.Step)
	}

	var last *model.OnboardingState
	for i := 0; i < 3; i++ {
		last, err = svc.Advance("u-1")
		if err != nil {
			t.Fatalf("Advance %d error: %v", i, err)
		}
	}
	if last.Step != string(statemachine.StepFirstChapter) {
		t.Fatalf("expected first_chapter after three advances, got %q", last.Step)
	}

	// 终点之后不可再前进
	if _, err = svc.Advance("u-1"); err != nil {
		t.Fatalf("Advance to done error: %v", err)
	}
	if _, err = svc.Advance("u-1"); err == nil {
		t.Fatal("expected error advancing past done")
	}
}
