// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"github.com/gin-gonic/gin"

	analysishandler "board_backend/internal/feature/analysis/transport/handler"
	authhandler "board_backend/internal/feature/auth/transport/handler"
	handler "board_backend/internal/platform/http/handler"
	jwtmw "board_backend/internal/platform/jwt"
)

func NewRouter(authHandler *authhandler.AuthHandler, analysis *analysishandler.AnalysisHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// リクエストヘッダーに JWT が必要になる
	api := r.Group("/api")
	api.Use(jwtmw.AuthRequired())
	{
		// スタートアップ分析の受付（バックグラウンド実行）
		api.POST("/analyze", analysis.Analyze)
		// 分析状態・結果の照会
		api.GET("/results/:id", analysis.GetResults)
	}

	return r
}
