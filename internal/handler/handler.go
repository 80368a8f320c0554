package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"zipway/internal/alias"
	"zipway/internal/service"
	"zipway/internal/store"

	"github.com/gin-gonic/gin"
)

// LinkHandler 短链接处理器
type LinkHandler struct {
	shortener *service.Shortener
	baseURL   string
}

// NewLinkHandler 创建处理器实例
// baseURL 留空时用请求的 Host 拼接短链接
func NewLinkHandler(shortener *service.Shortener, baseURL string) *LinkHandler {
	return &LinkHandler{shortener: shortener, baseURL: baseURL}
}

// ReservedPaths 返回路由层占用的顶级路径段
// 别名校验器用它拒绝会遮蔽路由的短码，核心层不需要了解任何路由细节
func ReservedPaths() []string {
	return []string{
		"shorten", "stats", "delete_url", "links",
		"api", "auth", "login", "register", "me",
		"admin", "ping", "health", "status", "metrics",
		"docs", "redoc", "openapi.json", "swagger",
		"static", "favicon.ico", "robots.txt",
	}
}

// IndexPage godoc
// @Summary 服务信息
// @Description 返回服务的基础信息和端点列表
// @Tags Information
// @Produce  json
// @Success 200 {object} gin.H "成功响应"
// @Router / [get]
func (h *LinkHandler) IndexPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     "Zipway - URL Shortener",
		"version": "1.0.0",
		"endpoints": gin.H{
			"POST /shorten":          "创建短链接",
			"GET /{id}":              "重定向到原始地址",
			"GET /api/links":         "链接列表（管理员）",
			"GET /api/stats":         "使用统计（管理员）",
			"DELETE /api/links/{id}": "删除短链接（管理员）",
		},
	})
}

// HealthCheck godoc
// @Summary 健康检查
// @Tags Health
// @Produce  json
// @Success 200 {object} gin.H "成功响应"
// @Router /ping [get]
func (h *LinkHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
}

// CreateShortLinkRequest 创建请求体
type CreateShortLinkRequest struct {
	TargetURL string `json:"target_url" binding:"required" example:"https://github.com/gin-gonic/gin"`
	CustomID  string `json:"custom_id" example:"my-link"`
}

// CreateShortLinkResponse 创建成功的响应
type CreateShortLinkResponse struct {
	ID        string `json:"id" example:"my-link"`
	TargetURL string `json:"target_url" example:"https://github.com/gin-gonic/gin"`
	ShortURL  string `json:"short_url" example:"http://localhost:8080/my-link"`
}

// CreateShortLink godoc
// @Summary 创建短链接
// @Description 为一个长 URL 创建短链接，可指定自定义短码
// @Tags ShortLink
// @Accept  json
// @Produce  json
// @Param   url  body   CreateShortLinkRequest  true  "目标地址与可选的自定义短码"
// @Success 201 {object} CreateShortLinkResponse "成功响应"
// @Failure 400 {object} gin.H "URL 或别名无效"
// @Failure 409 {object} gin.H "自定义短码已被占用"
// @Failure 500 {object} gin.H "服务器内部错误"
// @Failure 503 {object} gin.H "存储暂时不可用"
// @Router /shorten [post]
func (h *LinkHandler) CreateShortLink(c *gin.Context) {
	var req CreateShortLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据: " + err.Error()})
		return
	}

	link, err := h.shortener.Create(c.Request.Context(), req.TargetURL, req.CustomID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateShortLinkResponse{
		ID:        link.ID,
		TargetURL: link.TargetURL,
		ShortURL:  h.shortURL(c, link.ID),
	})
}

// RedirectToOriginal godoc
// @Summary 短码重定向
// @Description 重定向到短码对应的原始地址并记一次点击
// @Tags ShortLink
// @Param   id  path  string  true  "短码"
// @Success 302 "重定向"
// @Failure 404 {object} gin.H "短码不存在"
// @Router /{id} [get]
func (h *LinkHandler) RedirectToOriginal(c *gin.Context) {
	id := c.Param("id")

	target, _, err := h.shortener.Resolve(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, target)
}

// GetAllLinks godoc
// @Summary 链接列表
// @Description 按创建时间倒序分页返回所有短链接
// @Tags Admin
// @Security ApiKeyAuth
// @Produce  json
// @Param   limit   query  int  false  "每页数量"
// @Param   offset  query  int  false  "偏移量"
// @Success 200 {array} model.Link "成功响应"
// @Failure 503 {object} gin.H "存储暂时不可用"
// @Router /api/links [get]
func (h *LinkHandler) GetAllLinks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	links, err := h.shortener.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// GetStats godoc
// @Summary 使用统计
// @Description 返回链接总数、点击总数和最热门的链接
// @Tags Admin
// @Security ApiKeyAuth
// @Produce  json
// @Param   limit  query  int  false  "热门链接数量"
// @Success 200 {object} service.Stats "成功响应"
// @Failure 503 {object} gin.H "存储暂时不可用"
// @Router /api/stats [get]
func (h *LinkHandler) GetStats(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	stats, err := h.shortener.GetStats(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DeleteLink godoc
// @Summary 删除短链接
// @Tags Admin
// @Security ApiKeyAuth
// @Produce  json
// @Param   id  path  string  true  "短码"
// @Success 200 {object} gin.H "删除成功"
// @Failure 404 {object} gin.H "短码不存在"
// @Failure 503 {object} gin.H "存储暂时不可用"
// @Router /api/links/{id} [delete]
func (h *LinkHandler) DeleteLink(c *gin.Context) {
	id := c.Param("id")

	if err := h.shortener.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// respondError 把核心层错误映射为 HTTP 状态码
// 校验类错误附带机器可读的 reason，客户端不需要解析中文提示
func (h *LinkHandler) respondError(c *gin.Context, err error) {
	var verr *alias.ValidationError
	var serr *store.StorageError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "reason": string(verr.Reason)})
	case errors.Is(err, service.ErrInvalidURL):
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 URL 格式，请提供 http/https 绝对地址", "reason": "invalid_url"})
	case errors.Is(err, service.ErrAliasTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "自定义短码已被占用，请换一个", "reason": "alias_taken"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "短链接不存在"})
	case errors.Is(err, service.ErrGenerationExhausted):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "短码生成失败，请稍后再试"})
	case errors.As(err, &serr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "存储暂时不可用，请稍后重试"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
	}
}

// shortURL 拼接对外返回的短链接
func (h *LinkHandler) shortURL(c *gin.Context, id string) string {
	if h.baseURL != "" {
		return h.baseURL + "/" + id
	}
	return "http://" + c.Request.Host + "/" + id
}
