package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thesisai/backend/internal/dto/revision"
	"github.com/thesisai/backend/internal/model"
	"github.com/thesisai/backend/internal/service"
	revisionsvc "github.com/thesisai/backend/internal/service/revision"
	"k8s.io/klog/v2"
)

// RevisionHandler 修订相关接口
type RevisionHandler struct {
	builder        *revisionsvc.JobBuilder
	requester      *revisionsvc.Requester
	basicReviser   *revisionsvc.BasicReviser
	profileService *service.ProfileService
}

// NewRevisionHandler 创建修订处理器
func NewRevisionHandler(
	builder *revisionsvc.JobBuilder,
	requester *revisionsvc.Requester,
	basicReviser *revisionsvc.BasicReviser,
	profileService *service.ProfileService,
) *RevisionHandler {
	return &RevisionHandler{
		builder:        builder,
		requester:      requester,
		basicReviser:   basicReviser,
		profileService: profileService,
	}
}

// AdvisorRevisionRequest 导师对齐修订的请求体
type AdvisorRevisionRequest struct {
	ThesisID            string                        `json:"thesisId"`
	ChapterID           string                        `json:"chapterId"`
	RevisionScope       string                        `json:"revisionScope"`
	ScopeID             string                        `json:"scopeId"`
	OriginalText        string                        `json:"originalText"`
	AdvisorCommentIDs   []string                      `json:"advisorCommentIds"`
	StudentInstructions string                        `json:"studentInstructions"`
	ProtectedSpans      []revisiondto.ProtectedSpan   `json:"protectedSpans"`
	RewriteLevel        string                        `json:"rewriteLevel"`
	StyleConstraints    *revisiondto.StyleConstraints `json:"styleConstraints"`
	OutputFormat        string                        `json:"outputFormat"`
}

// AdvisorAligned 导师对齐修订
// 授权与输入校验先于任何上游调用，成功时原样返回修订结果
func (h *RevisionHandler) AdvisorAligned(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !profile.HasFeature(model.FeatureAdvisorRevision) {
		c.JSON(http.StatusForbidden, gin.H{"error": "advisor revision requires an eligible plan"})
		return
	}

	var req AdvisorRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.builder.Build(revisionsvc.BuildInput{
		ThesisID:            req.ThesisID,
		ChapterID:           req.ChapterID,
		RevisionScope:       req.RevisionScope,
		ScopeID:             req.ScopeID,
		OriginalText:        req.OriginalText,
		AdvisorCommentIDs:   req.AdvisorCommentIDs,
		StudentInstructions: req.StudentInstructions,
		ProtectedSpans:      req.ProtectedSpans,
		RewriteLevel:        req.RewriteLevel,
		StyleConstraints:    req.StyleConstraints,
		OutputFormat:        req.OutputFormat,
	})
	if err != nil {
		respondRevisionError(c, err)
		return
	}

	result, err := h.requester.Request(c.Request.Context(), job)
	if err != nil {
		respondRevisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ReconcileRequest 对账请求：一次修订的任务与结果
type ReconcileRequest struct {
	Job    *revisiondto.RevisionJob    `json:"job"`
	Result *revisiondto.RevisionResult `json:"result"`
}

// Reconcile 根据修订结果生成批注整合提案
// 只产出提案，状态迁移由用户显式确认后另行触发
func (h *RevisionHandler) Reconcile(c *gin.Context) {
	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposals := revisionsvc.Reconcile(req.Job, req.Result)
	if proposals == nil {
		proposals = []revisiondto.IntegrationProposal{}
	}

	c.JSON(http.StatusOK, gin.H{"proposals": proposals})
}

// Basic 基础修订：自由指令改写一段文本
func (h *RevisionHandler) Basic(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req revisiondto.BasicRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	revised, err := h.basicReviser.Revise(c.Request.Context(), profile, req)
	if err != nil {
		respondRevisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, revisiondto.BasicRevisionResponse{RevisedText: revised})
}

// respondRevisionError 把修订错误分类映射为 HTTP 状态
func respondRevisionError(c *gin.Context, err error) {
	var (
		validationErr *revisionsvc.ValidationError
		forbiddenErr  *revisionsvc.ForbiddenError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &forbiddenErr):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		klog.Errorf("修订请求失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
