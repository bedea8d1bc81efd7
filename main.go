package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"freemodels/config"
	"freemodels/logger"
	"freemodels/models"
	"freemodels/service"
)

func main() {
	// .env 可选,不存在时使用系统环境变量
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.SetOutput(os.Stderr)
		log.Printf("⚠️  Warning: .env file cannot be loaded: %v", err)
	}

	cfg := config.Load()
	logger.Init(cfg.Logger.Level, cfg.Logger.Verbose)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run(ctx, cfg, os.Stdout)
}

// run fetches the listing once and prints the free models to out.
// Any top-level failure is reported on out as a single "Error:" line;
// the process exit status stays 0 either way.
func run(ctx context.Context, cfg *config.Config, out io.Writer) {
	catalog := models.NewCatalog(cfg.Upstream)

	list, err := catalog.Fetch(ctx)
	if err != nil {
		logger.Error("❌ 获取模型列表失败 | error=%v", err)
		service.WriteError(out, err)
		return
	}

	free := service.FreeModels(list)
	if err := service.WriteReport(out, free); err != nil {
		logger.Error("❌ 输出结果失败 | error=%v", err)
	}
}
