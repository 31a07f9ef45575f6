package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"board_backend/internal/app/di"
	"board_backend/internal/app/router"
	analysishandler "board_backend/internal/feature/analysis/transport/handler"
	analysisusecase "board_backend/internal/feature/analysis/usecase"
	authadapters "board_backend/internal/feature/auth/adapters"
	authhandler "board_backend/internal/feature/auth/transport/handler"
	authusecase "board_backend/internal/feature/auth/usecase"
	infradb "board_backend/internal/platform/db"
	jwtmw "board_backend/internal/platform/jwt"
	infraredis "board_backend/internal/platform/redis"
)

func main() {
	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Using database for analysis records.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Gemini（構造化出力の生成コラボレーター）
	generator, err := di.NewSuggestionGenerator(ctx)
	if err != nil {
		log.Fatal("failed to initialize suggestion generator: ", err)
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	analysisRepo := di.NewAnalysisRepository(rdb, db)

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(secret, 24*time.Hour))
	analysisUC := analysisusecase.NewAnalysisUsecase(analysisRepo, generator, di.NewPacer(), analysisusecase.Config{})

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	analysisH := analysishandler.NewAnalysisHandler(analysisUC)

	// ルータ生成
	r := router.NewRouter(authH, analysisH)

	slog.Info("board panel backend starting", "addr", ":8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
