// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"board_backend/internal/api"
	"board_backend/internal/feature/analysis/domain/entity"
	"board_backend/internal/feature/analysis/transport/http/dto"
	"board_backend/internal/feature/analysis/usecase"
)

// AnalysisUsecase は分析操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	Submit(ctx context.Context, input entity.StartupInput) (*entity.Analysis, error)
	Get(ctx context.Context, id string) (*entity.Analysis, error)
}

// AnalysisHandler は分析リクエストのHTTPリクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Analyze はスタートアップ分析を受け付けます。
//
// エンドポイント: POST /api/analyze
// Content-Type: application/json
// 分析はバックグラウンドで実行され、202と分析IDを返します。
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("analyze request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid startup data"})
		return
	}

	analysis, err := h.uc.Submit(c.Request.Context(), req.ToEntity())
	if err != nil {
		slog.Error("failed to submit analysis", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to submit analysis"})
		return
	}

	slog.Info("analysis submitted", "analysis_id", analysis.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusAccepted, dto.AnalyzeResponse{
		AnalysisID: analysis.ID,
		Status:     string(analysis.Status),
		Message:    "Analysis queued. Check status at /api/results/" + analysis.ID + ".",
	})
}

// GetResults は分析IDで状態と結果を返します。
//
// エンドポイント: GET /api/results/:id
func (h *AnalysisHandler) GetResults(c *gin.Context) {
	id := c.Param("id")

	analysis, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "analysis not found"})
			return
		}
		slog.Error("failed to load analysis", "analysis_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load analysis"})
		return
	}

	c.JSON(http.StatusOK, dto.NewStatusResponse(analysis))
}
