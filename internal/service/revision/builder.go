package revision

import (
	"strings"

	revisiondto "github.com/thesisai/backend/internal/dto/revision"
	"github.com/thesisai/backend/internal/model"
	"github.com/thesisai/backend/internal/repository"
	"k8s.io/klog/v2"
)

// JobBuilder 把章节文本、选中的待处理批注和风格选项组装成 RevisionJob
type JobBuilder struct {
	commentRepo repository.AdvisorCommentRepository
}

// NewJobBuilder 创建 JobBuilder
func NewJobBuilder(commentRepo repository.AdvisorCommentRepository) *JobBuilder {
	return &JobBuilder{commentRepo: commentRepo}
}

// BuildInput 构建请求的原始输入
type BuildInput struct {
	ThesisID            string
	ChapterID           string
	RevisionScope       string
	ScopeID             string
	OriginalText        string
	AdvisorCommentIDs   []string
	StudentInstructions string
	ProtectedSpans      []revisiondto.ProtectedSpan
	RewriteLevel        string
	StyleConstraints    *revisiondto.StyleConstraints
	OutputFormat        string
}

// Build 校验输入并生成 RevisionJob，纯构造，无副作用
func (b *JobBuilder) Build(in BuildInput) (*revisiondto.RevisionJob, error) {
	if strings.TrimSpace(in.OriginalText) == "" {
		return nil, &ValidationError{Field: "originalText", Reason: "must not be empty"}
	}
	if !model.IsValidChapterID(in.ChapterID) {
		return nil, &ValidationError{Field: "chapterId", Reason: "unknown chapter slot"}
	}

	job := &revisiondto.RevisionJob{
		ThesisID:            in.ThesisID,
		ChapterID:           in.ChapterID,
		RevisionScope:       in.RevisionScope,
		ScopeID:             in.ScopeID,
		OriginalText:        in.OriginalText,
		StudentInstructions: in.StudentInstructions,
		ProtectedSpans:      in.ProtectedSpans,
		RewriteLevel:        in.RewriteLevel,
		StyleConstraints:    in.StyleConstraints,
		OutputFormat:        in.OutputFormat,
	}

	// 输出保证：protectedSpans 至少是空列表
	if job.ProtectedSpans == nil {
		job.ProtectedSpans = []revisiondto.ProtectedSpan{}
	}
	if job.OutputFormat == "" {
		job.OutputFormat = revisiondto.FormatTextWithDiff
	}
	if job.RewriteLevel == "" {
		job.RewriteLevel = revisiondto.RewriteLightRevision
	}
	if job.RevisionScope == "" {
		job.RevisionScope = revisiondto.ScopeSection
	}

	if len(in.AdvisorCommentIDs) > 0 {
		job.AdvisorCommentIDs, job.AdvisorComments = b.resolveComments(in)
	}

	return job, nil
}

// resolveComments 与批注库交叉核对，丢弃不属于该论文/章节的ID
// 批注读取失败时退化为无结构化批注模式，不中断修订
func (b *JobBuilder) resolveComments(in BuildInput) ([]string, string) {
	pending, err := b.commentRepo.ListPending(in.ThesisID)
	if err != nil {
		klog.Errorf("读取待处理批注失败，按无批注继续: thesisID=%s, error=%v", in.ThesisID, err)
		return nil, ""
	}

	byID := make(map[string]*model.AdvisorComment, len(pending))
	for i := range pending {
		byID[pending[i].ID] = &pending[i]
	}

	var (
		ids   []string
		lines []string
	)
	for _, id := range in.AdvisorCommentIDs {
		comment, ok := byID[id]
		if !ok || comment.ChapterID != in.ChapterID {
			// 客户端状态可能已过期，静默丢弃并记录
			klog.V(6).Infof("丢弃不匹配的批注ID: thesisID=%s, chapterID=%s, commentID=%s",
				in.ThesisID, in.ChapterID, id)
			continue
		}
		ids = append(ids, id)
		lines = append(lines, "- "+comment.RawText)
	}

	return ids, strings.Join(lines, "\n")
}
