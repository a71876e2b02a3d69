// @title 能力评估平台 API
// @version 1.0
// @description 基于能力-技能模型的学习平台后端服务器。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"competency_backend/internal/app"
	"competency_backend/internal/config"
	"competency_backend/pkg/configwatcher"
	"competency_backend/pkg/logger"
	"flag"
	"log"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 建表迁移在 NewApp 内完成，迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	// 配置热更新：CORS 白名单等变更无需重启生效
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Config reloaded", zap.Strings("cors_origins", newCfg.CORS.AllowedOrigins))
		application.Config = newCfg
	})

	application.Run()
}
