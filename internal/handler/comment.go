package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thesisai/backend/internal/repository"
	"github.com/thesisai/backend/internal/service"
	"github.com/thesisai/backend/internal/service/statemachine"
)

// CommentHandler 导师批注接口
type CommentHandler struct {
	service *service.CommentService
}

// NewCommentHandler 创建批注处理器
func NewCommentHandler(service *service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	ChapterID string `json:"chapter_id" binding:"required"`
	ScopeID   string `json:"scope_id"`
	RawText   string `json:"raw_text" binding:"required"`
}

// Create 在论文下新建批注，作者取当前用户
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.service.Create(service.CreateCommentRequest{
		ThesisID:  c.Param("id"),
		AdvisorID: userID,
		ChapterID: req.ChapterID,
		ScopeID:   req.ScopeID,
		RawText:   req.RawText,
	})
	if err != nil {
		var inputErr *service.InvalidInputError
		if errors.As(err, &inputErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListByThesis 获取论文的批注，支持 status 查询参数过滤
func (h *CommentHandler) ListByThesis(c *gin.Context) {
	comments, err := h.service.ListByThesis(c.Param("id"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Integrate 确认批注已整合进文稿
func (h *CommentHandler) Integrate(c *gin.Context) {
	comment, err := h.service.Integrate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Verify 导师确认批注已落实
func (h *CommentHandler) Verify(c *gin.Context) {
	comment, err := h.service.Verify(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func respondCommentError(c *gin.Context, err error) {
	var transitionErr *statemachine.InvalidStateTransitionError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
