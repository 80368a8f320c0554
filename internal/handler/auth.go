package handler

import (
	"net/http"
	"time"

	"zipway/internal/model"
	auth "zipway/pkg/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthHandler 包含认证相关的处理器
// 本服务不开放注册，账户在启动时引导创建
type AuthHandler struct {
	db         *gorm.DB
	jwtManager *auth.TokenManager
}

// NewAuthHandler 创建一个新的 AuthHandler
func NewAuthHandler(db *gorm.DB, jwtManager *auth.TokenManager) *AuthHandler {
	return &AuthHandler{db: db, jwtManager: jwtManager}
}

// LoginRequest 定义了登录请求的结构体
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin"`
}

// AuthResponse 定义了认证成功后的响应
type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// Login godoc
// @Summary 管理员登录
// @Description 使用用户名和密码获取 JWT 令牌
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param   account  body   LoginRequest  true  "登录凭据"
// @Success 200 {object} AuthResponse "成功响应"
// @Failure 400 {object} gin.H "请求无效"
// @Failure 401 {object} gin.H "认证失败"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据: " + err.Error()})
		return
	}

	var user model.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户名或密码错误"})
		return
	}

	if !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户名或密码错误"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "账户已被禁用"})
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		zap.S().Errorf("生成令牌失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成令牌失败"})
		return
	}

	go h.db.Model(&user).Update("last_login", time.Now())
	c.JSON(http.StatusOK, AuthResponse{Token: token})
}

// GetCurrentUser godoc
// @Summary 获取当前用户信息
// @Description 获取当前已登录用户的信息
// @Tags Auth
// @Security ApiKeyAuth
// @Produce  json
// @Success 200 {object} model.User "成功响应"
// @Failure 401 {object} gin.H "未认证"
// @Failure 404 {object} gin.H "用户不存在"
// @Router /api/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未认证"})
		return
	}

	var user model.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
		return
	}

	c.JSON(http.StatusOK, user)
}
