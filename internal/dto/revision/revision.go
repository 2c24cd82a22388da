package revisiondto

// Revision scope values
const (
	ScopeParagraph = "paragraph"
	ScopeSection   = "section"
	ScopeChapter   = "chapter"
)

// Rewrite level values
const (
	RewritePolish        = "polish"
	RewriteLightRevision = "light_revision"
	RewriteDeepRevision  = "deep_revision"
)

// Output format values
const (
	FormatTextOnly         = "text_only"
	FormatTextWithDiff     = "text_with_diff"
	FormatTextAndRationale = "text_and_rationale"
)

// Requirement status values
const (
	RequirementFullySatisfied     = "already_fully_satisfied"
	RequirementPartiallySatisfied = "partially_satisfied"
	RequirementNotSatisfied       = "not_satisfied"
)

// ProtectedSpan 修订中不得改动的原文片段
type ProtectedSpan struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// StyleConstraints 修订风格约束
type StyleConstraints struct {
	CitationStyle  string  `json:"citationStyle,omitempty"` // APA, MLA, ...
	Voice          string  `json:"voice,omitempty"`
	MaxChangeRatio float64 `json:"maxChangeRatio,omitempty"`
}

// RevisionJob 一次导师对齐修订的请求值，不落库
type RevisionJob struct {
	ThesisID            string            `json:"thesisId"`
	ChapterID           string            `json:"chapterId"`
	RevisionScope       string            `json:"revisionScope"`
	ScopeID             string            `json:"scopeId"`
	OriginalText        string            `json:"originalText"`
	AdvisorComments     string            `json:"advisorComments,omitempty"`
	AdvisorCommentIDs   []string          `json:"advisorCommentIds,omitempty"`
	StudentInstructions string            `json:"studentInstructions,omitempty"`
	ProtectedSpans      []ProtectedSpan   `json:"protectedSpans"`
	RewriteLevel        string            `json:"rewriteLevel"`
	StyleConstraints    *StyleConstraints `json:"styleConstraints,omitempty"`
	OutputFormat        string            `json:"outputFormat"`
}

// RevisionResult 修订引擎的应答值，不落库
type RevisionResult struct {
	AdvisorRequirementsChecklist []string `json:"advisor_requirements_checklist"`
	RequirementStatus            []string `json:"requirement_status"`
	RevisedText                  string   `json:"revised_text"`
	DiffNotes                    string   `json:"diff_notes"`
}

// ChecklistConsistent 检查清单与状态数组是否等长
func (r *RevisionResult) ChecklistConsistent() bool {
	return len(r.RequirementStatus) == len(r.AdvisorRequirementsChecklist)
}

// IntegrationProposal 建议将某条批注置为 integrated
// 只是建议，状态迁移由用户确认后另行触发
type IntegrationProposal struct {
	CommentID   string `json:"comment_id"`
	Requirement string `json:"requirement"`
}

// BasicRevisionRequest 基础修订请求
type BasicRevisionRequest struct {
	Text        string `json:"text"`
	Instruction string `json:"instruction,omitempty"`
}

// BasicRevisionResponse 基础修订应答
type BasicRevisionResponse struct {
	RevisedText string `json:"revisedText"`
}
