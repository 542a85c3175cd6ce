package main

import (
	"go.uber.org/zap"

	"go-riegopanel/client"
	"go-riegopanel/config"
	"go-riegopanel/routes"
)

func main() {
	// 加载配置
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	// 创建上游后端客户端
	api := client.New(cfg.BackendURL, cfg.RequestTimeout, logger)

	// 设置路由
	r := routes.SetupRouter(cfg, api, logger)

	// 启动服务器
	logger.Info("dashboard listening",
		zap.String("addr", cfg.ListenAddr),
		zap.String("backend", cfg.BackendURL),
	)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
