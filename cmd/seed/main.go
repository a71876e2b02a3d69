// 初始化数据库并导入 CSV 种子数据。
// 数据源由 seed.source 配置决定，支持本地目录与 MinIO 存储桶。
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"competency_backend/internal/config"
	"competency_backend/internal/seed"
	"competency_backend/pkg/database"
	"competency_backend/pkg/logger"
)

func main() {
	dir := flag.String("dir", "", "覆盖配置中的种子数据目录")
	timeout := flag.Duration("timeout", 5*time.Minute, "导入超时时间")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dir != "" {
		cfg.Seed.Source = "local"
		cfg.Seed.Dir = *dir
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	source, err := seed.NewSource(&cfg.Seed)
	if err != nil {
		log.Fatalf("Failed to create seed source: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := seed.NewLoader(db, source).Run(ctx); err != nil {
		log.Fatalf("Seed import failed: %v", err)
	}

	log.Println("Seed import completed")
}
