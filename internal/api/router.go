package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/campus-security-backend-go/internal/config"
	"github.com/jengzang/campus-security-backend-go/internal/faceapi"
	"github.com/jengzang/campus-security-backend-go/internal/generator"
	"github.com/jengzang/campus-security-backend-go/internal/handler"
	"github.com/jengzang/campus-security-backend-go/internal/middleware"
	"github.com/jengzang/campus-security-backend-go/internal/service"
	"github.com/jengzang/campus-security-backend-go/internal/store"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// Services
	recordStore := store.New()
	recordService := service.NewRecordService(recordStore, generator.New())
	faceClient := faceapi.NewClient(cfg.FaceAPIBaseURL, cfg.FaceAPITimeout)
	faceService := service.NewFaceService(faceClient)

	// Handlers
	recordHandler := handler.NewRecordHandler(recordService)
	faceHandler := handler.NewFaceHandler(faceService)
	authHandler := handler.NewAuthHandler(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Campus Security Backend API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
	{
		api.POST("/auth/token", authHandler.Token)

		// 活动记录接口
		records := api.Group("/records")
		{
			records.GET("", recordHandler.List)
			records.GET("/summary", recordHandler.Summary)
			records.GET("/alerts", recordHandler.Alerts)
			records.GET("/export", recordHandler.Export)
			records.GET("/entities/:entityId", recordHandler.EntityInfo)

			// Mutating routes require an operator token
			protected := records.Group("")
			protected.Use(middleware.RequireAuth(cfg.JWTSecret))
			{
				protected.POST("", recordHandler.Ingest)
				protected.POST("/sample", recordHandler.LoadSample)
			}
		}

		// 人脸识别接口
		api.POST("/face-recognition/process", faceHandler.Process)

		faceDB := api.Group("/face-database")
		faceDB.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			faceDB.POST("/add-person", faceHandler.AddPerson)
			faceDB.POST("/detect-duplicates", faceHandler.DetectDuplicates)
		}
	}

	return r
}
