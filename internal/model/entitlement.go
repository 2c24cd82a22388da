package model

// Feature 订阅计划解锁的功能项
type Feature string

const (
	FeatureBasicRevision   Feature = "basic_revision"
	FeatureAdvisorRevision Feature = "advisor_revision"
	FeaturePaperSearch     Feature = "paper_search"
)

// Plan values
const (
	PlanFree           = "free"
	PlanPro            = "pro"
	PlanProPlusAdvisor = "pro_plus_advisor"
	PlanProComplete    = "pro_complete"
)

// HasFeature 判断档案是否具备某功能的授权
func (p *Profile) HasFeature(feature Feature) bool {
	if p == nil {
		return false
	}
	if p.Role == string(RoleAdmin) {
		return true
	}

	switch feature {
	case FeaturePaperSearch:
		return true
	case FeatureBasicRevision:
		return p.isPremium()
	case FeatureAdvisorRevision:
		return p.Plan == PlanProPlusAdvisor || p.Plan == PlanProComplete
	default:
		return false
	}
}

func (p *Profile) isPremium() bool {
	if p.SubscriptionStatus == "active" {
		return true
	}
	switch p.Plan {
	case PlanPro, PlanProPlusAdvisor, PlanProComplete:
		return true
	}
	return false
}
