package main

import (
	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/config"
	"github.com/platelog/internal/db"
	"github.com/platelog/internal/handler"
	"github.com/platelog/internal/logging"
	"github.com/platelog/internal/router"
	"github.com/platelog/internal/service"
	"github.com/platelog/internal/store"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log := logging.New(cfg)
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close(db.DB)

	lookup := service.NewOpenFoodFactsClient(cfg.OpenFoodFactsBaseURL, cfg.OpenFoodFactsTimeout)
	diary := service.NewDiary(
		store.NewDocumentStore(db.DB, cfg.DocumentKey),
		service.WithLogger(log),
		service.WithProductSource(lookup),
	)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(handler.NewAPI(db.DB, diary), log)
	log.WithFields(logrus.Fields{
		"addr":     cfg.ListenAddr,
		"database": cfg.DatabasePath,
		"key":      cfg.DocumentKey,
	}).Info("platelog listening")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
