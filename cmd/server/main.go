package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"zipway/internal/alias"
	"zipway/internal/config"
	"zipway/internal/handler"
	"zipway/internal/middleware"
	"zipway/internal/model"
	"zipway/internal/service"
	"zipway/internal/shortid"
	"zipway/internal/store"
	"zipway/pkg/database"
	auth "zipway/pkg/jwt"
	"zipway/pkg/logger"
	"zipway/pkg/redis"

	_ "zipway/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Zipway - URL Shortener API
// @version 1.0.0
// @description 简单高效的短链接服务
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	logger.InitLogger()
	defer func() {
		if err := logger.Logger.Sync(); err != nil {
			fmt.Println("日志同步失败:", err)
		}
	}()
	sugaredLogger := zap.S()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		sugaredLogger.Fatalf("配置加载失败: %v", err)
	}

	db, err := database.InitMySQL(cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	if err != nil {
		sugaredLogger.Fatalf("数据库初始化失败: %v", err)
	}
	sugaredLogger.Info("✅ 数据库连接成功")

	rdb, err := redis.NewClient(&redis.Config{
		Host: cfg.Cache.Host, Port: cfg.Cache.Port, Password: cfg.Cache.Password, DB: cfg.Cache.DB,
	})
	if err != nil {
		sugaredLogger.Warnf("缓存连接失败，限流降级为进程内模式: %v", err)
	} else if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				sugaredLogger.Errorf("关闭 Redis 连接失败: %v", err)
			}
		}()
		sugaredLogger.Info("✅ 缓存连接成功")
	}

	tokenManager := auth.NewManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.ExpirationHours)
	sugaredLogger.Info("✅ 认证管理器初始化成功")

	if err := createAdminUser(db, cfg); err != nil {
		sugaredLogger.Errorf("创建管理员失败: %v", err)
	}

	// 组装核心服务：保留字来自路由层和配置，核心本身不感知路由
	validator := alias.NewValidator(alias.Config{
		MinLength:    cfg.Shortener.AliasMinLength,
		MaxLength:    cfg.Shortener.AliasMaxLength,
		Reserved:     append(handler.ReservedPaths(), cfg.Shortener.ExtraReserved...),
		Blocklist:    cfg.Shortener.Blocklist,
		AllowNumeric: cfg.Shortener.AllowNumericAlias,
	})
	generator := shortid.NewGenerator(cfg.Shortener.CodeLength)
	shortener := service.NewShortener(store.NewGormStore(db), generator, validator, cfg.Shortener.MaxRetries, sugaredLogger)
	sugaredLogger.Info("✅ 短链接服务初始化成功")

	if cfg.App.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinZapRecovery(logger.Logger, true))
	router.Use(middleware.GinZapLogger(logger.Logger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMiddleware := middleware.AuthMiddleware(tokenManager)
	adminMiddleware := middleware.AdminMiddleware()
	router.Use(middleware.RateLimit(rdb, &cfg.RateLimit))

	linkHandler := handler.NewLinkHandler(shortener, cfg.Shortener.BaseURL)
	authHandler := handler.NewAuthHandler(db, tokenManager)

	registerRoutes(router, linkHandler, authHandler, authMiddleware, adminMiddleware)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	sugaredLogger.Infof("🚀 服务启动成功, 访问 http://localhost:%d", cfg.Server.Port)
	sugaredLogger.Infof("📚 Swagger 文档地址: http://localhost:%d/swagger/index.html", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugaredLogger.Fatalf("服务启动失败: %v", err)
	}
}

func registerRoutes(
	router *gin.Engine,
	linkHandler *handler.LinkHandler,
	authHandler *handler.AuthHandler,
	authMiddleware, adminMiddleware gin.HandlerFunc,
) {
	router.GET("/", linkHandler.IndexPage)
	router.GET("/ping", linkHandler.HealthCheck)
	router.HEAD("/ping", linkHandler.HealthCheck)
	router.POST("/shorten", linkHandler.CreateShortLink)
	router.GET("/:id", linkHandler.RedirectToOriginal)

	router.POST("/auth/login", authHandler.Login)

	api := router.Group("/api")
	api.Use(authMiddleware)
	{
		api.GET("/me", authHandler.GetCurrentUser)
	}

	admin := api.Group("")
	admin.Use(adminMiddleware)
	{
		admin.GET("/links", linkHandler.GetAllLinks)
		admin.GET("/stats", linkHandler.GetStats)
		admin.DELETE("/links/:id", linkHandler.DeleteLink)
	}
}

// createAdminUser 启动时创建引导管理员账户，已存在则跳过
func createAdminUser(db *gorm.DB, cfg *config.Config) error {
	username := cfg.Auth.AdminUsername
	if username == "" {
		username = "admin"
	}

	var existing model.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil
	}

	admin := model.User{Username: username, Role: "admin", IsActive: true}
	password := cfg.Auth.AdminPassword
	if password == "" {
		password = "admin"
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	zap.S().Infow("✅ 默认管理员创建成功", "username", username)
	return nil
}
