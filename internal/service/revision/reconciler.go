package revision

import (
	revisiondto "github.com/thesisai/backend/internal/dto/revision"
	"k8s.io/klog/v2"
)

// Reconcile 对照批注清单与模型自报的满足状态，给出可置为 integrated 的候选
// 清单与提交的批注按提交顺序一一对应，按位置匹配
// 只产出建议，状态迁移由用户确认后另行执行
func Reconcile(job *revisiondto.RevisionJob, result *revisiondto.RevisionResult) []revisiondto.IntegrationProposal {
	if job == nil || result == nil {
		return nil
	}

	// 清单与状态不等长视为结果不可用，只保留 revised_text/diff_notes 供人工查看
	if !result.ChecklistConsistent() {
		klog.V(6).Infof("修订结果清单不一致，跳过对账: checklist=%d, status=%d",
			len(result.AdvisorRequirementsChecklist), len(result.RequirementStatus))
		return nil
	}

	var proposals []revisiondto.IntegrationProposal
	for i, status := range result.RequirementStatus {
		if status != revisiondto.RequirementFullySatisfied {
			continue
		}
		if i >= len(job.AdvisorCommentIDs) {
			break
		}
		proposals = append(proposals, revisiondto.IntegrationProposal{
			CommentID:   job.AdvisorCommentIDs[i],
			Requirement: result.AdvisorRequirementsChecklist[i],
		})
	}
	return proposals
}
