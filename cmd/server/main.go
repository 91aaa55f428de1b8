package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/jengzang/campus-security-backend-go/internal/api"
	"github.com/jengzang/campus-security-backend-go/internal/config"
)

func main() {
	// 加载.env文件（可选，环境变量可能已通过其他方式设置）
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// 加载配置
	cfg := config.Load()

	// 初始化路由
	router := api.SetupRouter(cfg)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
