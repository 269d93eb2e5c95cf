package main

import (
	"order-service/internal/config"
	"order-service/internal/domain/model"
	"order-service/internal/handler"
	"order-service/internal/infra/db"
	infraRepo "order-service/internal/infra/repository"
	"order-service/internal/infra/userdir"
	"order-service/internal/server"
	"order-service/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無ければ無いで良い（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Cart{},
		&model.Order{},
	); err != nil {
		logger.Fatal("auto migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//user-serviceクライアント
	userDir := userdir.NewClient(cfg.UserServiceURL)

	//Usecase生成
	cartUC := usecase.NewCartUsecase(cartRepo, userDir, logger)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, logger)

	//Handler生成
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(cartH, orderH)

	logger.Info("server starting", zap.String("addr", addr))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
