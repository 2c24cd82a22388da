package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thesisai/backend/internal/model"
	"github.com/thesisai/backend/internal/service"
)

// ProfileHandler 用户档案接口
type ProfileHandler struct {
	service *service.ProfileService
}

// NewProfileHandler 创建档案处理器
func NewProfileHandler(service *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get 返回档案视图：角色决定仪表盘，计划决定功能项
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.service.View(userID)
	if err != nil {
		var inputErr *service.InvalidInputError
		if errors.As(err, &inputErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

type updateProfileRequest struct {
	Email              string `json:"email"`
	DisplayName        string `json:"display_name"`
	Role               string `json:"role"`
	Plan               string `json:"plan"`
	SubscriptionStatus string `json:"subscription_status"`
}

// Update 保存档案，角色必须是已知枚举值
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.service.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.Role != "" {
		if _, err := model.ParseRole(req.Role); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		profile.Role = req.Role
	}
	if req.Email != "" {
		profile.Email = req.Email
	}
	if req.DisplayName != "" {
		profile.DisplayName = req.DisplayName
	}
	if req.Plan != "" {
		profile.Plan = req.Plan
	}
	if req.SubscriptionStatus != "" {
		profile.SubscriptionStatus = req.SubscriptionStatus
	}
	profile.UpdatedAt = time.Now()

	if err := h.service.Save(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
